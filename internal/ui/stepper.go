package ui

import "github.com/pawpals/storefront/internal/domain"

// Stepper is the bounded quantity selector shown in the product overlay and
// on cart rows. It never leaves [domain.MinQuantity, domain.MaxQuantity].
type Stepper struct {
	value int
}

// NewStepper starts at the minimum quantity.
func NewStepper() Stepper {
	return Stepper{value: domain.MinQuantity}
}

func (s *Stepper) Value() int {
	return s.value
}

// Increment steps up, stopping at the maximum.
func (s *Stepper) Increment() {
	if s.value < domain.MaxQuantity {
		s.value++
	}
}

// Decrement steps down, stopping at the minimum.
func (s *Stepper) Decrement() {
	if s.value > domain.MinQuantity {
		s.value--
	}
}

// Set clamps an arbitrary typed-in value into range.
func (s *Stepper) Set(v int) {
	s.value = domain.ClampQuantity(v)
}

// Reset returns the stepper to the minimum quantity.
func (s *Stepper) Reset() {
	s.value = domain.MinQuantity
}
