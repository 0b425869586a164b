package events

// CartUpdated fires after every cart mutation. Count is the new badge value
// for the cart's owner.
type CartUpdated struct {
	CartID string `json:"cart_id"`
	Count  int    `json:"count"`
}

// ItemAdded fires when a product lands in a cart, at the quantity chosen.
type ItemAdded struct {
	CartID    string `json:"cart_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderPlaced fires once a checkout completes and the cart has been cleared.
type OrderPlaced struct {
	CartID    string `json:"cart_id"`
	Reference string `json:"reference"`
}
