package domain

import (
	"strconv"
	"time"
)

// OrderReferencePrefix starts every order reference issued at checkout.
const OrderReferencePrefix = "PP"

// Order is the outcome of a successful checkout
//
// swagger:model
type Order struct {
	// The order reference shown on the confirmation
	//
	// required: true
	// example: PP56789012
	Reference string `json:"reference"`

	// The purchased lines, frozen at checkout time
	Items Cart `json:"items"`

	// The totals the order was placed at
	Summary Summary `json:"summary"`

	// When the order was placed
	PlacedAt time.Time `json:"placed_at"`
}

// NewOrderReference builds an order reference from the fixed prefix and the
// last 8 digits of the millisecond timestamp.
func NewOrderReference(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return OrderReferencePrefix + ms
}
