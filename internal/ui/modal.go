package ui

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
	"github.com/pawpals/storefront/internal/service"
)

// Button labels and flash timings for the add-to-cart controls.
const (
	AddToCartLabel = "Add to Cart"
	AddedLabel     = "Added!"

	modalFlashDuration  = 1500 * time.Millisecond
	inlineFlashDuration = 2 * time.Second
)

// ProductModal is the product detail overlay. Opening it captures the
// product's attributes and resets the quantity stepper; while it is open the
// page behind it does not scroll.
type ProductModal struct {
	carts  service.CartService
	flash  *Scheduler
	logger hclog.Logger

	mutex        sync.Mutex
	current      *domain.Product
	stepper      Stepper
	open         bool
	scrollLocked bool
	addLabel     string
}

func NewProductModal(carts service.CartService, flash *Scheduler, logger hclog.Logger) *ProductModal {
	return &ProductModal{
		carts:    carts,
		flash:    flash,
		logger:   logger,
		stepper:  NewStepper(),
		addLabel: AddToCartLabel,
	}
}

// Open populates the overlay from a product card and locks page scroll.
func (m *ProductModal) Open(card domain.ProductCard) {
	product := card.Resolve()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.current = &product
	m.stepper.Reset()
	m.open = true
	m.scrollLocked = true
}

// Close dismisses the overlay and restores page scroll. Explicit close
// controls, backdrop clicks and the Escape key all land here.
func (m *ProductModal) Close() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.open = false
	m.scrollLocked = false
}

// HandleBackdropClick closes only when the click hit the backdrop itself,
// not the overlay content.
func (m *ProductModal) HandleBackdropClick(onContent bool) {
	if !onContent {
		m.Close()
	}
}

// HandleEscape closes the overlay when it is open.
func (m *ProductModal) HandleEscape() {
	m.mutex.Lock()
	open := m.open
	m.mutex.Unlock()

	if open {
		m.Close()
	}
}

func (m *ProductModal) IsOpen() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.open
}

func (m *ProductModal) ScrollLocked() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.scrollLocked
}

func (m *ProductModal) Product() *domain.Product {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.current
}

func (m *ProductModal) AddLabel() string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.addLabel
}

// StepUp / StepDown / SetQuantity drive the overlay's quantity stepper.
func (m *ProductModal) StepUp() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.stepper.Increment()
}

func (m *ProductModal) StepDown() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.stepper.Decrement()
}

func (m *ProductModal) SetQuantity(v int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.stepper.Set(v)
}

func (m *ProductModal) Quantity() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.stepper.Value()
}

// AddToCart inserts the displayed product at the chosen quantity, flashes
// the confirm label, and schedules the overlay to close once the flash
// reverts.
func (m *ProductModal) AddToCart(ctx context.Context, cartID string) error {
	m.mutex.Lock()
	if m.current == nil {
		m.mutex.Unlock()
		return nil
	}
	product := *m.current
	quantity := m.stepper.Value()
	m.mutex.Unlock()

	if _, err := m.carts.AddItem(ctx, cartID, product, quantity); err != nil {
		m.logger.Error("Unable to add product from overlay", "product_id", product.ID, "error", err)
		return err
	}

	m.mutex.Lock()
	m.addLabel = AddedLabel
	m.mutex.Unlock()

	m.flash.Schedule("modal-add", modalFlashDuration, func() {
		m.mutex.Lock()
		m.addLabel = AddToCartLabel
		m.mutex.Unlock()
		m.Close()
	})

	return nil
}

// AddButton is an inline add-to-cart control on a product card, outside the
// overlay. Its click does not bubble up into the card's overlay handler.
type AddButton struct {
	carts  service.CartService
	flash  *Scheduler
	logger hclog.Logger

	mutex sync.Mutex
	key   string
	label string
}

func NewAddButton(key string, carts service.CartService, flash *Scheduler, logger hclog.Logger) *AddButton {
	return &AddButton{
		carts:  carts,
		flash:  flash,
		logger: logger,
		key:    key,
		label:  AddToCartLabel,
	}
}

func (b *AddButton) Label() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.label
}

// Click resolves the surrounding card's product, adds one unit, and flashes
// the confirm label.
func (b *AddButton) Click(ctx context.Context, cartID string, card domain.ProductCard) error {
	product := card.Resolve()

	if _, err := b.carts.AddItem(ctx, cartID, product, 1); err != nil {
		b.logger.Error("Unable to add product", "product_id", product.ID, "error", err)
		return err
	}

	b.mutex.Lock()
	b.label = AddedLabel
	b.mutex.Unlock()

	b.flash.Schedule(b.key, inlineFlashDuration, func() {
		b.mutex.Lock()
		b.label = AddToCartLabel
		b.mutex.Unlock()
	})

	return nil
}
