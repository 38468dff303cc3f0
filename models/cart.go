package models

// CartItem is one (user, product) pairing. The joined product fields reflect
// the current catalog price, not the price frozen at order time.
type CartItem struct {
	ID        int     `json:"id"`
	UserID    int     `json:"-"`
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
}
