package models

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0"`
	Quantity  int `json:"quantity" binding:"omitempty,gt=0"`
}

// Quantity is a pointer so zero and negative values survive binding; both mean
// "remove the item".
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CheckoutItemRequest mirrors the cart line the client assembled. The json key
// "id" is the product id, matching what the browser cart sends.
type CheckoutItemRequest struct {
	ProductID int     `json:"id" binding:"required,gt=0"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price"`
}

type CheckoutRequest struct {
	FullName   string                `json:"fullName"`
	Address    string                `json:"address"`
	Email      string                `json:"email"`
	CardNumber string                `json:"cardNumber"`
	CartItems  []CheckoutItemRequest `json:"cartItems"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
