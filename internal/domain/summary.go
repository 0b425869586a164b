package domain

import "math"

// Pricing constants shared by the cart page and checkout
const (
	FreeShippingThreshold = 1750
	FlatShippingRate      = 209
	TaxRate               = 0.08
)

// Summary holds the order totals at full precision. Rounding to whole
// currency units happens only when a figure is displayed.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Summarize computes the order summary for a cart. Shipping is free once the
// subtotal reaches the threshold, tax is a flat rate on the subtotal.
func Summarize(cart Cart) Summary {
	subtotal := cart.Subtotal()

	var shipping float64
	if subtotal < FreeShippingThreshold {
		shipping = FlatShippingRate
	}

	tax := subtotal * TaxRate

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// DisplayAmount rounds a monetary value to the nearest whole unit for
// display. Stored values keep full precision.
func DisplayAmount(v float64) int {
	return int(math.Round(v))
}

// FreeShipping reports whether the summary qualifies for free shipping, in
// which case the shipping figure renders as "FREE" instead of an amount.
func (s Summary) FreeShipping() bool {
	return s.Shipping == 0
}
