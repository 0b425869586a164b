package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
	"github.com/pawpals/storefront/internal/service"
)

// CheckoutResponse is the checkout page payload: a read-only line list plus
// the order summary
//
// swagger:model
type CheckoutResponse struct {
	Items   []lineItemResponse `json:"items"`
	Summary summaryResponse    `json:"summary"`
}

// OrderResponse confirms a placed order
//
// swagger:model
type OrderResponse struct {
	// The order reference, always starting with "PP"
	//
	// example: PP56789012
	Reference string `json:"reference"`

	Items    []lineItemResponse `json:"items"`
	Summary  summaryResponse    `json:"summary"`
	PlacedAt time.Time          `json:"placed_at"`
}

// FieldErrorResponse reports per-field validation messages
//
// swagger:model
type FieldErrorResponse struct {
	Errors service.FieldErrors `json:"errors"`
}

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	logger          hclog.Logger
}

func NewCheckoutHandler(cs service.CheckoutService, log hclog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: cs,
		logger:          log,
	}
}

// GetCheckout handles GET /checkout
//
// swagger:route GET /checkout checkout getCheckout
//
// Returns the checkout summary, or redirects to the cart page when the cart
// is empty.
//
// Responses:
//
//	200: checkoutResponse
//	303: description:Redirect to /cart
//	500: errorResponse
func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	cartID := CartIDFromContext(r.Context())

	cart, summary, err := h.checkoutService.Summary(r.Context(), cartID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			// checkout requires a non-empty cart
			http.Redirect(w, r, "/cart", http.StatusSeeOther)
			return
		}
		h.logger.Error("Error building checkout summary", "error", err)
		http.Error(w, "Error building checkout summary", http.StatusInternalServerError)
		return
	}

	items := make([]lineItemResponse, 0, len(cart))
	for _, item := range cart {
		items = append(items, newLineItemResponse(item))
	}

	json.NewEncoder(w).Encode(CheckoutResponse{
		Items:   items,
		Summary: newSummaryResponse(summary),
	})
}

// PlaceOrder handles POST /checkout
//
// swagger:route POST /checkout checkout placeOrder
//
// Validates the checkout draft and places the order, clearing the cart.
//
// Responses:
//
//	201: orderResponse
//	400: errorResponse
//	409: errorResponse
//	422: fieldErrorResponse
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var draft service.CheckoutDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "Invalid checkout data", http.StatusBadRequest)
		return
	}

	cartID := CartIDFromContext(r.Context())

	order, fieldErrs, err := h.checkoutService.PlaceOrder(r.Context(), cartID, draft)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Cart is empty"})
			return
		}
		h.logger.Error("Error placing order", "error", err)
		http.Error(w, "Error placing order", http.StatusInternalServerError)
		return
	}

	if len(fieldErrs) > 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(FieldErrorResponse{Errors: fieldErrs})
		return
	}

	items := make([]lineItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, newLineItemResponse(item))
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(OrderResponse{
		Reference: order.Reference,
		Items:     items,
		Summary:   newSummaryResponse(order.Summary),
		PlacedAt:  order.PlacedAt,
	})
}
