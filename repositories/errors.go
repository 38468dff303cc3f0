package repositories

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrDuplicate     = errors.New("duplicate resource")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrPriceMismatch = errors.New("order total does not match catalog prices")
)
