package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/handlers"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/nicholasjackson/env"
	"github.com/pawpals/storefront/internal/domain"
	"github.com/pawpals/storefront/internal/events"
	"github.com/pawpals/storefront/internal/repository"
	"github.com/pawpals/storefront/internal/service"
	httpTransport "github.com/pawpals/storefront/internal/transport/http"
	websocketTransport "github.com/pawpals/storefront/internal/transport/websocket"
	"github.com/redis/go-redis/v9"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	redisAddress = env.String("REDIS_ADDR", false,
		"", "Address of the Redis cart store; empty runs with the in-memory store")
	cartTTL = env.String("CART_TTL", false,
		"", "How long an untouched cart is kept, e.g. 168h")
)

func main() {
	// Load a local .env first so env.Parse can pick its values up
	godotenv.Load()
	env.Parse()

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "storefront",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Initialize the event bus - shared by the services and the WebSocket fanout
	eventBus := events.NewEventBus[any]()
	defer eventBus.Close()

	// Pick the cart store: Redis when configured, in-memory otherwise
	var cartRepo repository.CartRepository
	if *redisAddress != "" {
		client := redis.NewClient(&redis.Options{Addr: *redisAddress})
		defer client.Close()

		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Error("Redis is not available", "addr", *redisAddress, "error", err)
			os.Exit(1)
		}

		ttl := repository.DefaultCartTTL
		if *cartTTL != "" {
			parsed, err := time.ParseDuration(*cartTTL)
			if err != nil {
				logger.Error("Invalid CART_TTL", "value", *cartTTL, "error", err)
				os.Exit(1)
			}
			ttl = parsed
		}

		cartRepo = repository.NewRedisCartRepository(client, logger.Named("cart-store"), ttl)
		logger.Info("Using Redis cart store", "addr", *redisAddress, "ttl", ttl)
	} else {
		cartRepo = repository.NewMemoryCartRepository()
		logger.Info("Using in-memory cart store; carts will not survive a restart")
	}

	// Initialize the validator
	validator := domain.NewValidation()

	// Initialize the services
	cartService := service.NewCartService(cartRepo, eventBus, logger.Named("cart-service"))
	checkoutService := service.NewCheckoutService(cartRepo, validator, eventBus, logger.Named("checkout-service"))
	formService := service.NewFormService(validator, logger.Named("form-service"))

	// Initialize HTTP handlers
	ch := httpTransport.NewCartHandler(cartService, logger.Named("http-handler"))
	co := httpTransport.NewCheckoutHandler(checkoutService, logger.Named("http-handler"))
	fh := httpTransport.NewFormHandler(formService, logger.Named("http-handler"))

	// Initialize the WebSocket handler with the event bus
	wsh := websocketTransport.NewHandler(
		logger.Named("websocket-handler"),
		eventBus,
		cartService,
		httpTransport.CartIDFromRequest,
	)

	// Initialize the router
	router := httpTransport.NewRouter(ch, co, fh, validator, logger, wsh)

	// Create the HTTP Server
	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(router),
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	// Context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	server.Shutdown(shutdownCtx)
}
