package service

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
	"github.com/pawpals/storefront/internal/events"
	"github.com/pawpals/storefront/internal/repository"
)

// FieldErrors maps a field name to its single active error message. The set
// is recomputed from scratch on every submit attempt.
type FieldErrors map[string]string

// CheckoutDraft holds the form-field values of one checkout attempt. It is
// never persisted; card fields are length-checked only.
type CheckoutDraft struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// Normalize reapplies the live input formatting the checkout page performs
// on every keystroke, so a draft submitted raw ends up in the same shape.
func (d *CheckoutDraft) Normalize() {
	d.CardNumber = domain.FormatCardNumber(d.CardNumber)
	d.Expiry = domain.FormatExpiry(d.Expiry)
}

// fields enumerates the draft in the fixed order validation reports in.
func (d *CheckoutDraft) fields() []struct{ Name, Value string } {
	return []struct{ Name, Value string }{
		{"firstName", d.FirstName},
		{"lastName", d.LastName},
		{"email", d.Email},
		{"phone", d.Phone},
		{"address", d.Address},
		{"city", d.City},
		{"state", d.State},
		{"zip", d.Zip},
		{"cardName", d.CardName},
		{"cardNumber", d.CardNumber},
		{"expiry", d.Expiry},
		{"cvv", d.CVV},
	}
}

// CheckoutService turns a non-empty cart into a simulated order.
type CheckoutService interface {
	// Summary returns the read-only line list and totals, or ErrEmptyCart
	// so the caller can redirect to the cart page.
	Summary(ctx context.Context, cartID string) (domain.Cart, domain.Summary, error)

	// PlaceOrder validates the draft and, on success, clears the cart and
	// returns the confirmed order. Validation failures come back as field
	// errors with the cart untouched.
	PlaceOrder(ctx context.Context, cartID string, draft CheckoutDraft) (*domain.Order, FieldErrors, error)
}

type checkoutService struct {
	repo      repository.CartRepository
	validator *domain.Validation
	eventBus  *events.EventBus[any]
	logger    hclog.Logger
	now       func() time.Time
}

func NewCheckoutService(
	repo repository.CartRepository,
	validator *domain.Validation,
	eventBus *events.EventBus[any],
	logger hclog.Logger) CheckoutService {
	return &checkoutService{
		repo:      repo,
		validator: validator,
		eventBus:  eventBus,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *checkoutService) Summary(ctx context.Context, cartID string) (domain.Cart, domain.Summary, error) {
	cart, err := s.repo.Load(ctx, cartID)
	if err != nil {
		s.logger.Error("Unable to load cart for checkout", "cart_id", cartID, "error", err)
		return nil, domain.Summary{}, err
	}

	if cart.IsEmpty() {
		return nil, domain.Summary{}, domain.ErrEmptyCart
	}

	return cart, domain.Summarize(cart), nil
}

func (s *checkoutService) PlaceOrder(ctx context.Context, cartID string, draft CheckoutDraft) (*domain.Order, FieldErrors, error) {
	cart, summary, err := s.Summary(ctx, cartID)
	if err != nil {
		return nil, nil, err
	}

	draft.Normalize()
	if fieldErrs := s.validateDraft(draft); len(fieldErrs) > 0 {
		s.logger.Debug("Checkout validation failed", "cart_id", cartID, "fields", len(fieldErrs))
		return nil, fieldErrs, nil
	}

	order := &domain.Order{
		Reference: domain.NewOrderReference(s.now()),
		Items:     cart,
		Summary:   summary,
		PlacedAt:  s.now(),
	}

	if err := s.repo.Clear(ctx, cartID); err != nil {
		s.logger.Error("Unable to clear cart after checkout", "cart_id", cartID, "error", err)
		return nil, nil, err
	}

	s.logger.Info("Order placed", "cart_id", cartID, "reference", order.Reference)
	s.eventBus.Publish(events.OrderPlaced{CartID: cartID, Reference: order.Reference})
	s.eventBus.Publish(events.CartUpdated{CartID: cartID, Count: 0})

	return order, nil, nil
}

// validateDraft checks every field regardless of earlier failures so one
// pass reports every invalid field. Required wins over the shape checks,
// which only run on non-empty values.
func (s *checkoutService) validateDraft(draft CheckoutDraft) FieldErrors {
	fieldErrs := FieldErrors{}

	for _, f := range draft.fields() {
		if strings.TrimSpace(f.Value) == "" {
			fieldErrs[f.Name] = "This field is required"
		}
	}

	if draft.Email != "" && !s.validator.Var(draft.Email, "email_shape") {
		fieldErrs["email"] = "Please enter a valid email"
	}

	if digits := domain.DigitsOnly(draft.CardNumber); digits != "" && len(digits) < domain.MinCardDigits {
		fieldErrs["cardNumber"] = "Please enter a valid card number"
	}

	return fieldErrs
}
