package http

import (
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
	websocketTransport "github.com/pawpals/storefront/internal/transport/websocket"
)

func NewRouter(
	ch *CartHandler,
	co *CheckoutHandler,
	fh *FormHandler,
	validator *domain.Validation,
	logger hclog.Logger,
	wsh *websocketTransport.Handler,
) *mux.Router {
	router := mux.NewRouter()

	// Create a middleware instance
	mw := NewMiddleware(logger, validator, nil) // nil for default CORS config

	// Apply global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.CORSMiddleware)
	router.Use(mw.ContentTypeMiddleware)
	router.Use(mw.CartSessionMiddleware)

	// Cart
	router.HandleFunc("/cart", ch.GetCart).Methods("GET")
	router.HandleFunc("/cart", ch.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/count", ch.GetCount).Methods("GET")
	router.HandleFunc("/cart/items/{id}", ch.UpdateQuantity).Methods("PUT")
	router.HandleFunc("/cart/items/{id}", ch.RemoveItem).Methods("DELETE")

	// Adding to the cart validates the product payload first
	router.Handle("/cart/items",
		mw.AddItemValidationMiddleware(http.HandlerFunc(ch.AddItem))).Methods("POST")

	// Checkout
	router.HandleFunc("/checkout", co.GetCheckout).Methods("GET")
	router.HandleFunc("/checkout", co.PlaceOrder).Methods("POST")

	// Forms
	router.HandleFunc("/forms/contact", fh.SubmitContact).Methods("POST")
	router.HandleFunc("/forms/login", fh.SubmitLogin).Methods("POST")
	router.HandleFunc("/forms/signup", fh.SubmitSignup).Methods("POST")

	// Live cart-count updates
	router.HandleFunc("/ws", wsh.HandleWebSocket).Methods("GET")

	// Swagger UI and specification routes
	// Determine the absolute path to the swagger.yaml file
	_, filename, _, _ := runtime.Caller(0)
	// filename is the path to this file (router.go)
	// Navigate to the root directory from the current file's location
	basePath := filepath.Dir(filename)                        // .../internal/transport/http
	rootDir := filepath.Join(basePath, "..", "..", "..")      // Navigate up to the root
	swaggerFilePath := filepath.Join(rootDir, "swagger.yaml") // .../swagger.yaml

	// Serve the swagger.yaml file
	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerFilePath)
	}).Methods("GET")

	// Configure the Redoc middleware to point to the correct SpecURL
	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	swaggerHandler := middleware.Redoc(swaggerOpts, nil)
	router.Handle("/docs", swaggerHandler).Methods("GET")

	// Return the configured router
	return router
}
