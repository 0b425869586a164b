package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Product represents a storefront product as captured from a product card
//
// swagger:model
type Product struct {
	// The ID of the product
	//
	// required: true
	// example: pp-1042
	ID string `json:"id" validate:"required"`

	// The name of the product
	//
	// required: true
	// example: Premium Dog Food
	Name string `json:"name" validate:"required"`

	// The price of the product
	//
	// required: true
	// min: 0
	// example: 500
	Price float64 `json:"price" validate:"gte=0"`

	// Reference to the product image
	//
	// example: /images/dog-food.jpg
	Image string `json:"image"`

	// Short marketing description
	Description string `json:"description,omitempty"`

	// Detail/spec text shown in the product overlay
	Details string `json:"details,omitempty"`
}

// ProductCard carries the structured attributes of a product card plus the
// visible text a card displays. Inline add-to-cart controls resolve their
// product from the structured fields first and fall back to the displayed
// text when those are absent.
type ProductCard struct {
	DataID          string `json:"data_id"`
	DataName        string `json:"data_name"`
	DataPrice       string `json:"data_price"`
	DataImage       string `json:"data_image"`
	DataDescription string `json:"data_description"`
	DataDetails     string `json:"data_details"`

	// Visible fallbacks
	HeadingText string `json:"heading_text"`
	PriceText   string `json:"price_text"`
	ImageSource string `json:"image_source"`
}

// Resolve builds a Product from the card, preferring structured data over
// displayed text. Absent IDs get a random one, price text has its currency
// suffix stripped before parsing. Fragile when the display format changes,
// same as the storefront it mirrors.
func (pc ProductCard) Resolve() Product {
	p := Product{
		ID:          pc.DataID,
		Name:        pc.DataName,
		Image:       pc.DataImage,
		Description: pc.DataDescription,
		Details:     pc.DataDetails,
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Name == "" {
		p.Name = strings.TrimSpace(pc.HeadingText)
	}
	if p.Image == "" {
		p.Image = pc.ImageSource
	}

	priceText := pc.DataPrice
	if priceText == "" {
		priceText = strings.TrimSuffix(strings.TrimSpace(pc.PriceText), " THB")
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(priceText), 64); err == nil {
		p.Price = v
	}

	return p
}
