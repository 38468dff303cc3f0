package models

import "time"

type Order struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	FullName   string    `json:"full_name"`
	Address    string    `json:"address"`
	Email      string    `json:"email"`
	CardNumber string    `json:"-"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderItem carries the unit price captured at purchase time, decoupled from
// the current catalog price.
type OrderItem struct {
	ID        int     `json:"id"`
	OrderID   int     `json:"order_id"`
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderHistoryLine is one row of the order history join, newest order first.
type OrderHistoryLine struct {
	OrderID     int       `json:"order_id"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
}
