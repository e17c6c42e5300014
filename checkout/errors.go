package checkout

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when checkout is attempted on a cart with no
// entries.
var ErrEmptyCart = errors.New("cart is empty")

// ErrInsufficientBalance is returned when the total charge, shipping
// included, exceeds the customer's balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// InsufficientStockError is returned when a requested quantity exceeds a
// product's current stock, either when adding to the cart or when the
// stock is re-checked during checkout.
type InsufficientStockError struct {
	Name string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough %s in stock", e.Name)
}

// ExpiredProductError is returned when a perishable product in the cart
// is past its expiration date.
type ExpiredProductError struct {
	Name string
}

func (e *ExpiredProductError) Error() string {
	return fmt.Sprintf("%s is expired", e.Name)
}
