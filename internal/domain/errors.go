package domain

import "errors"

// Domain-level errors
var (
	// ErrEmptyCart is returned when checkout is entered with nothing in
	// the cart; the caller redirects instead of rendering a summary.
	ErrEmptyCart = errors.New("cart is empty")
)
