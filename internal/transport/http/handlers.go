package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
	"github.com/pawpals/storefront/internal/service"
)

// AddItemRequest is the body of POST /cart/items
//
// swagger:model
type AddItemRequest struct {
	// The product to add
	//
	// required: true
	Product domain.Product `json:"product"`

	// Units to add; defaults to 1
	//
	// min: 1
	// example: 2
	Quantity int `json:"quantity"`
}

// UpdateQuantityRequest is the body of PUT /cart/items/{id}
//
// swagger:model
type UpdateQuantityRequest struct {
	// The new quantity, clamped to [1,10]
	//
	// required: true
	Quantity int `json:"quantity"`
}

// lineItemResponse is a cart row with its display-rounded figures
type lineItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal int    `json:"line_total"`
}

// summaryResponse carries the totals rounded for display; shipping renders
// as "FREE" once the subtotal passes the threshold.
type summaryResponse struct {
	Subtotal        int    `json:"subtotal"`
	Shipping        int    `json:"shipping"`
	ShippingDisplay string `json:"shipping_display"`
	Tax             int    `json:"tax"`
	Total           int    `json:"total"`
}

// CartResponse is the full cart view
//
// swagger:model
type CartResponse struct {
	Items   []lineItemResponse `json:"items"`
	Summary summaryResponse    `json:"summary"`
	Count   int                `json:"count"`
}

func newLineItemResponse(item domain.LineItem) lineItemResponse {
	return lineItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Image:     item.Image,
		Price:     domain.DisplayAmount(item.Price),
		Quantity:  item.Quantity,
		LineTotal: domain.DisplayAmount(item.Price * float64(item.Quantity)),
	}
}

func newSummaryResponse(s domain.Summary) summaryResponse {
	display := fmt.Sprintf("%d THB", domain.DisplayAmount(s.Shipping))
	if s.FreeShipping() {
		display = "FREE"
	}

	return summaryResponse{
		Subtotal:        domain.DisplayAmount(s.Subtotal),
		Shipping:        domain.DisplayAmount(s.Shipping),
		ShippingDisplay: display,
		Tax:             domain.DisplayAmount(s.Tax),
		Total:           domain.DisplayAmount(s.Total),
	}
}

func newCartResponse(cart domain.Cart) CartResponse {
	items := make([]lineItemResponse, 0, len(cart))
	for _, item := range cart {
		items = append(items, newLineItemResponse(item))
	}

	resp := CartResponse{
		Items: items,
		Count: cart.Count(),
	}

	// an empty cart renders the empty state, not a summary
	if !cart.IsEmpty() {
		resp.Summary = newSummaryResponse(domain.Summarize(cart))
	}

	return resp
}

type CartHandler struct {
	cartService service.CartService
	logger      hclog.Logger
}

func NewCartHandler(cs service.CartService, log hclog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cs,
		logger:      log,
	}
}

// GetCart handles GET /cart
//
// swagger:route GET /cart cart getCart
//
// Returns the caller's cart with its order summary.
//
// Responses:
//
//	200: cartResponse
//	500: errorResponse
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := CartIDFromContext(r.Context())

	cart, err := h.cartService.GetCart(r.Context(), cartID)
	if err != nil {
		h.logger.Error("Error loading cart", "error", err)
		http.Error(w, "Error loading cart", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(newCartResponse(cart))
}

// AddItem handles POST /cart/items
//
// swagger:route POST /cart/items cart addCartItem
//
// Adds a product to the cart, merging quantity into an existing row.
//
// Responses:
//
//	201: cartResponse
//	400: errorResponse
//	422: validationErrorResponse
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ContextKeyAddItem).(*AddItemRequest)
	if !ok {
		http.Error(w, "Invalid cart item data", http.StatusBadRequest)
		return
	}

	cartID := CartIDFromContext(r.Context())

	cart, err := h.cartService.AddItem(r.Context(), cartID, req.Product, req.Quantity)
	if err != nil {
		h.logger.Error("Error adding item", "error", err)
		http.Error(w, "Error adding item", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(newCartResponse(cart))
}

// UpdateQuantity handles PUT /cart/items/{id}
//
// swagger:route PUT /cart/items/{id} cart updateCartItem
//
// Sets a row's quantity, clamped to [1,10].
//
// Responses:
//
//	200: cartResponse
//	400: errorResponse
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid quantity data", http.StatusBadRequest)
		return
	}

	cartID := CartIDFromContext(r.Context())

	cart, err := h.cartService.SetItemQuantity(r.Context(), cartID, productID, req.Quantity)
	if err != nil {
		h.logger.Error("Error updating quantity", "error", err)
		http.Error(w, "Error updating quantity", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(newCartResponse(cart))
}

// RemoveItem handles DELETE /cart/items/{id}
//
// swagger:route DELETE /cart/items/{id} cart removeCartItem
//
// Removes a row; removing an absent id is a no-op.
//
// Responses:
//
//	200: cartResponse
//	500: errorResponse
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]
	cartID := CartIDFromContext(r.Context())

	cart, err := h.cartService.RemoveItem(r.Context(), cartID, productID)
	if err != nil {
		h.logger.Error("Error removing item", "error", err)
		http.Error(w, "Error removing item", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(newCartResponse(cart))
}

// ClearCart handles DELETE /cart
//
// swagger:route DELETE /cart cart clearCart
//
// Empties the cart.
//
// Responses:
//
//	204: noContentResponse
//	500: errorResponse
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cartID := CartIDFromContext(r.Context())

	if err := h.cartService.Clear(r.Context(), cartID); err != nil {
		h.logger.Error("Error clearing cart", "error", err)
		http.Error(w, "Error clearing cart", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetCount handles GET /cart/count
//
// swagger:route GET /cart/count cart getCartCount
//
// Returns the badge count: the sum of all line quantities.
//
// Responses:
//
//	200: countResponse
//	500: errorResponse
func (h *CartHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	cartID := CartIDFromContext(r.Context())

	count, err := h.cartService.Count(r.Context(), cartID)
	if err != nil {
		h.logger.Error("Error counting cart", "error", err)
		http.Error(w, "Error counting cart", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]int{"count": count})
}
