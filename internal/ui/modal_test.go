package ui

import (
	"context"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
	"github.com/pawpals/storefront/internal/events"
	"github.com/pawpals/storefront/internal/repository"
	"github.com/pawpals/storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModalFixture(t *testing.T) (*ProductModal, service.CartService) {
	t.Helper()

	bus := events.NewEventBus[any]()
	t.Cleanup(bus.Close)
	carts := service.NewCartService(repository.NewMemoryCartRepository(), bus, hclog.NewNullLogger())

	flash := NewScheduler()
	t.Cleanup(flash.Stop)

	return NewProductModal(carts, flash, hclog.NewNullLogger()), carts
}

func sampleCard() domain.ProductCard {
	return domain.ProductCard{
		DataID:          "pp-1",
		DataName:        "Dog Food",
		DataPrice:       "500",
		DataImage:       "/images/dog-food.jpg",
		DataDescription: "Tasty",
		DataDetails:     "5kg bag",
	}
}

func TestOpenCapturesProductAndResetsStepper(t *testing.T) {
	modal, _ := newModalFixture(t)

	modal.StepUp()
	modal.Open(sampleCard())

	require.True(t, modal.IsOpen())
	assert.True(t, modal.ScrollLocked())
	assert.Equal(t, 1, modal.Quantity(), "stepper resets on every open")

	p := modal.Product()
	require.NotNil(t, p)
	assert.Equal(t, "pp-1", p.ID)
	assert.Equal(t, 500.0, p.Price)
}

func TestStepperBounds(t *testing.T) {
	modal, _ := newModalFixture(t)
	modal.Open(sampleCard())

	modal.StepDown()
	assert.Equal(t, 1, modal.Quantity(), "decrement stops at 1")

	for i := 0; i < 15; i++ {
		modal.StepUp()
	}
	assert.Equal(t, 10, modal.Quantity(), "increment stops at 10")

	modal.SetQuantity(99)
	assert.Equal(t, 10, modal.Quantity())
}

func TestCloseRestoresScroll(t *testing.T) {
	modal, _ := newModalFixture(t)
	modal.Open(sampleCard())

	modal.Close()
	assert.False(t, modal.IsOpen())
	assert.False(t, modal.ScrollLocked())
}

func TestBackdropAndEscapeClose(t *testing.T) {
	modal, _ := newModalFixture(t)

	modal.Open(sampleCard())
	modal.HandleBackdropClick(true)
	assert.True(t, modal.IsOpen(), "clicks on overlay content do not close")

	modal.HandleBackdropClick(false)
	assert.False(t, modal.IsOpen())

	modal.Open(sampleCard())
	modal.HandleEscape()
	assert.False(t, modal.IsOpen())
}

func TestAddToCartUsesChosenQuantityThenFlashesAndCloses(t *testing.T) {
	modal, carts := newModalFixture(t)
	ctx := context.Background()

	modal.Open(sampleCard())
	modal.StepUp()
	modal.StepUp()

	require.NoError(t, modal.AddToCart(ctx, "c1"))
	assert.Equal(t, AddedLabel, modal.AddLabel())

	cart, err := carts.GetCart(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)

	assert.Eventually(t, func() bool {
		return modal.AddLabel() == AddToCartLabel && !modal.IsOpen()
	}, 3*time.Second, 20*time.Millisecond)
}

func TestInlineAddButton(t *testing.T) {
	bus := events.NewEventBus[any]()
	t.Cleanup(bus.Close)
	carts := service.NewCartService(repository.NewMemoryCartRepository(), bus, hclog.NewNullLogger())
	flash := NewScheduler()
	t.Cleanup(flash.Stop)

	btn := NewAddButton("card-1-add", carts, flash, hclog.NewNullLogger())
	ctx := context.Background()

	card := domain.ProductCard{
		HeadingText: "Chew Toy",
		PriceText:   "149 THB",
		ImageSource: "/images/chew-toy.jpg",
	}
	require.NoError(t, btn.Click(ctx, "c1", card))
	assert.Equal(t, AddedLabel, btn.Label())

	cart, err := carts.GetCart(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, "Chew Toy", cart[0].Name)
	assert.Equal(t, 149.0, cart[0].Price)

	assert.Eventually(t, func() bool { return btn.Label() == AddToCartLabel },
		4*time.Second, 20*time.Millisecond)
}

func TestNavMenu(t *testing.T) {
	nav := NewNavMenu()

	nav.Toggle()
	assert.True(t, nav.Active())

	nav.Toggle()
	assert.False(t, nav.Active())

	nav.Toggle()
	nav.LinkClicked()
	assert.False(t, nav.Active(), "following a link collapses the panel")
}
