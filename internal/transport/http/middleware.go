package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
)

type contextKey string

const (
	// ContextKeyCartID carries the caller's cart identity through a request
	ContextKeyCartID contextKey = "cartID"

	// ContextKeyAddItem carries a validated add-to-cart payload
	ContextKeyAddItem contextKey = "addItem"
)

// CartCookieName identifies the cookie holding a browser's cart ID. One
// cookie maps to one persisted slot, the way the storefront kept one
// localStorage entry per browser.
const CartCookieName = "pawpals_cart"

// Middleware struct holds dependencies for middleware functions
type Middleware struct {
	Logger     hclog.Logger
	Validator  *domain.Validation
	corsConfig *CORSConfig
}

// CORSConfig holds configuration for CORS middleware
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	MaxAge           int  // Cache preflight requests
	AllowCredentials bool // Allow credentials like cookies
}

func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		MaxAge:           86400, // 24 hours
		AllowCredentials: true,  // the cart cookie must survive CORS
	}
}

// NewMiddleware creates a new Middleware instance
func NewMiddleware(logger hclog.Logger, validator *domain.Validation, corsConfig *CORSConfig) *Middleware {
	if corsConfig == nil {
		corsConfig = DefaultCORSConfig()
	}
	return &Middleware{
		Logger:     logger,
		Validator:  validator,
		corsConfig: corsConfig,
	}
}

// CartSessionMiddleware resolves the caller's cart ID from the cart cookie,
// issuing a fresh one on first contact, and stores it in the request
// context.
func (m *Middleware) CartSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cartID string

		if cookie, err := r.Cookie(CartCookieName); err == nil && cookie.Value != "" {
			cartID = cookie.Value
		} else {
			cartID = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     CartCookieName,
				Value:    cartID,
				Path:     "/",
				MaxAge:   int((90 * 24 * time.Hour).Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), ContextKeyCartID, cartID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CartIDFromContext returns the cart ID the session middleware resolved.
func CartIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyCartID).(string)
	return id
}

// CartIDFromRequest is CartIDFromContext for callers holding the request,
// such as the WebSocket handler resolving the upgrading caller's cart.
func CartIDFromRequest(r *http.Request) string {
	return CartIDFromContext(r.Context())
}

func (m *Middleware) CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Check if the origin is allowed
		allowed := false
		for _, allowedOrigin := range m.corsConfig.AllowedOrigins {
			if allowedOrigin == "*" || allowedOrigin == origin {
				allowed = true
				// Set the specific origin instead of wildcard for better security
				w.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}

		if !allowed {
			// If origin is not allowed, still process the request but don't set CORS headers
			next.ServeHTTP(w, r)
			return
		}

		// Set standard CORS headers
		w.Header().Set("Access-Control-Allow-Methods", strings.Join(m.corsConfig.AllowedMethods, ","))
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(m.corsConfig.AllowedHeaders, ","))

		if m.corsConfig.AllowCredentials {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			// Set max age for preflight cache
			if m.corsConfig.MaxAge > 0 {
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(m.corsConfig.MaxAge))
			}
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ContentTypeMiddleware sets the Content-Type header to application/json
func (m *Middleware) ContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		// Add the request ID to the response header
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		duration := time.Since(start)
		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", duration,
		)
	})
}

// AddItemValidationMiddleware validates an add-to-cart payload and stores it
// in the request context for the handler.
func (m *Middleware) AddItemValidationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AddItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			m.Logger.Error("Error decoding add-to-cart payload", "error", err)
			http.Error(w, "Invalid cart item data", http.StatusBadRequest)
			return
		}

		// an absent quantity defaults to 1; anything out of range clamps
		// to the stepper bounds before it can reach the cart
		req.Quantity = domain.ClampQuantity(req.Quantity)

		errs := m.Validator.Validate(&req.Product)
		if len(errs) > 0 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			messages := make([]string, 0, len(errs))
			for _, e := range errs {
				messages = append(messages, e.Error())
			}
			json.NewEncoder(w).Encode(ValidationError{Messages: messages})
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyAddItem, &req)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
