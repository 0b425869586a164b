package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
	"github.com/pawpals/storefront/internal/events"
	"github.com/pawpals/storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() CheckoutDraft {
	return CheckoutDraft{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		Phone:      "555-0101",
		Address:    "1 Paw Lane",
		City:       "Bangkok",
		State:      "BKK",
		Zip:        "10110",
		CardName:   "Jane Doe",
		CardNumber: "4242424242424242",
		Expiry:     "1226",
		CVV:        "123",
	}
}

func newCheckoutFixture(t *testing.T) (CheckoutService, CartService, repository.CartRepository) {
	t.Helper()

	repo := repository.NewMemoryCartRepository()
	bus := events.NewEventBus[any]()
	t.Cleanup(bus.Close)
	validator := domain.NewValidation()

	carts := NewCartService(repo, bus, hclog.NewNullLogger())
	checkout := NewCheckoutService(repo, validator, bus, hclog.NewNullLogger())
	return checkout, carts, repo
}

func TestSummaryEmptyCart(t *testing.T) {
	checkout, _, _ := newCheckoutFixture(t)

	_, _, err := checkout.Summary(context.Background(), "c1")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestSummaryComputesTotals(t *testing.T) {
	checkout, carts, _ := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "c1", domain.Product{ID: "a", Price: 500}, 1)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "c1", domain.Product{ID: "b", Price: 600}, 1)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "c1", domain.Product{ID: "c", Price: 700}, 1)
	require.NoError(t, err)

	cart, summary, err := checkout.Summary(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, cart, 3)
	assert.Equal(t, 1800.0, summary.Subtotal)
	assert.True(t, summary.FreeShipping())
	assert.Equal(t, 1944, domain.DisplayAmount(summary.Total))
}

func TestPlaceOrderSuccess(t *testing.T) {
	checkout, carts, repo := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "c1", domain.Product{ID: "a", Price: 500}, 2)
	require.NoError(t, err)

	order, fieldErrs, err := checkout.PlaceOrder(ctx, "c1", validDraft())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, order)

	assert.True(t, strings.HasPrefix(order.Reference, domain.OrderReferencePrefix))
	assert.Len(t, order.Reference, len(domain.OrderReferencePrefix)+8)
	assert.Equal(t, 1289, domain.DisplayAmount(order.Summary.Total))

	// the cart is gone after a successful checkout
	stored, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	checkout, _, _ := newCheckoutFixture(t)

	order, fieldErrs, err := checkout.PlaceOrder(context.Background(), "c1", validDraft())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Nil(t, order)
	assert.Empty(t, fieldErrs)
}

func TestPlaceOrderReportsEveryInvalidField(t *testing.T) {
	checkout, carts, repo := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "c1", domain.Product{ID: "a", Price: 500}, 1)
	require.NoError(t, err)

	draft := CheckoutDraft{
		Email:      "not-an-email@x",
		CardNumber: "4242 4242",
	}

	order, fieldErrs, err := checkout.PlaceOrder(ctx, "c1", draft)
	require.NoError(t, err)
	assert.Nil(t, order)

	// every empty field reported in the single pass
	for _, field := range []string{"firstName", "lastName", "phone", "address", "city", "state", "zip", "cardName", "expiry", "cvv"} {
		assert.Equal(t, "This field is required", fieldErrs[field], field)
	}
	assert.Equal(t, "Please enter a valid email", fieldErrs["email"])
	assert.Equal(t, "Please enter a valid card number", fieldErrs["cardNumber"])

	// a failed submit never mutates the cart
	stored, _ := repo.Load(ctx, "c1")
	assert.Equal(t, 1, stored.Count())
}

func TestPlaceOrderNormalizesFormattedInput(t *testing.T) {
	checkout, carts, _ := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "c1", domain.Product{ID: "a", Price: 500}, 1)
	require.NoError(t, err)

	draft := validDraft()
	draft.CardNumber = "4242-4242-4242-4242"
	draft.Expiry = "12 26"

	order, fieldErrs, err := checkout.PlaceOrder(ctx, "c1", draft)
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	require.NotNil(t, order)
}

func TestOrderReferenceUsesTimestamp(t *testing.T) {
	checkout, carts, _ := newCheckoutFixture(t)
	ctx := context.Background()

	fixed := time.UnixMilli(1756450000123)
	checkout.(*checkoutService).now = func() time.Time { return fixed }

	_, err := carts.AddItem(ctx, "c1", domain.Product{ID: "a", Price: 500}, 1)
	require.NoError(t, err)

	order, _, err := checkout.PlaceOrder(ctx, "c1", validDraft())
	require.NoError(t, err)
	assert.Equal(t, "PP50000123", order.Reference)
}
