package domain

// Quantity bounds enforced on every explicit quantity update
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// LineItem represents one product entry in a cart. Display attributes are
// copied from the product at add-time and are not re-synced afterwards.
//
// swagger:model
type LineItem struct {
	// The ID of the product this line refers to
	//
	// required: true
	// example: pp-1042
	ID string `json:"id"`

	// The product name at add-time
	//
	// required: true
	// example: Premium Dog Food
	Name string `json:"name"`

	// The unit price at add-time
	//
	// required: true
	// min: 0
	// example: 500
	Price float64 `json:"price"`

	// Reference to the product image
	//
	// example: /images/dog-food.jpg
	Image string `json:"image"`

	// Units of this product in the cart
	//
	// required: true
	// min: 1
	// max: 10
	// example: 2
	Quantity int `json:"quantity"`
}

// Cart is an ordered sequence of line items. Order is insertion order: the
// first add of a product fixes its position, later adds to the same ID only
// change the quantity. IDs are unique within the sequence.
type Cart []LineItem

// ClampQuantity bounds q to [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// Add merges a product into the cart. An existing line with the same ID has
// its quantity incremented (not clamped here, clamping happens on explicit
// updates); otherwise a new line is appended.
func (c Cart) Add(p Product, quantity int) Cart {
	for i := range c {
		if c[i].ID == p.ID {
			c[i].Quantity += quantity
			return c
		}
	}

	return append(c, LineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: quantity,
	})
}

// Remove deletes the line with the given ID. Removing an absent ID is a
// no-op.
func (c Cart) Remove(id string) Cart {
	for i := range c {
		if c[i].ID == id {
			return append(c[:i], c[i+1:]...)
		}
	}
	return c
}

// SetQuantity clamps quantity to [MinQuantity, MaxQuantity] and sets it on
// the matching line. A missing ID leaves the cart unchanged; callers still
// persist afterwards.
func (c Cart) SetQuantity(id string, quantity int) Cart {
	for i := range c {
		if c[i].ID == id {
			c[i].Quantity = ClampQuantity(quantity)
			break
		}
	}
	return c
}

// Count returns the total number of units across all lines. This is the
// value every count badge displays.
func (c Cart) Count() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}
	return total
}

// Subtotal returns the full-precision sum of price times quantity.
func (c Cart) Subtotal() float64 {
	var subtotal float64
	for _, item := range c {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// IsEmpty reports whether the cart holds no lines.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
