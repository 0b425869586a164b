package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductCardPrefersStructuredData(t *testing.T) {
	card := ProductCard{
		DataID:      "pp-7",
		DataName:    "Cat Tree",
		DataPrice:   "899.50",
		DataImage:   "/images/cat-tree.jpg",
		HeadingText: "Something Else",
		PriceText:   "999 THB",
	}

	p := card.Resolve()
	assert.Equal(t, "pp-7", p.ID)
	assert.Equal(t, "Cat Tree", p.Name)
	assert.Equal(t, 899.50, p.Price)
	assert.Equal(t, "/images/cat-tree.jpg", p.Image)
}

func TestProductCardFallsBackToDisplayedText(t *testing.T) {
	card := ProductCard{
		HeadingText: "  Chew Toy  ",
		PriceText:   "149 THB",
		ImageSource: "/images/chew-toy.jpg",
	}

	p := card.Resolve()
	assert.NotEmpty(t, p.ID, "absent structured id gets a generated one")
	assert.Equal(t, "Chew Toy", p.Name)
	assert.Equal(t, 149.0, p.Price)
	assert.Equal(t, "/images/chew-toy.jpg", p.Image)
}

func TestProductCardUnparsablePrice(t *testing.T) {
	card := ProductCard{DataID: "pp-1", PriceText: "call us"}

	p := card.Resolve()
	assert.Equal(t, 0.0, p.Price)
}
