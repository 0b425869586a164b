package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	// cartKeyPrefix namespaces cart snapshots: cart:{cart_id}
	cartKeyPrefix = "cart:"

	// DefaultCartTTL is how long an untouched cart survives.
	DefaultCartTTL = 7 * 24 * time.Hour
)

// redisCartRepository stores each cart as one key holding the JSON snapshot
// of its line-item sequence. Every Save overwrites the whole document, which
// mirrors how the storefront always persists the full cart.
type redisCartRepository struct {
	client *redis.Client
	log    hclog.Logger
	ttl    time.Duration
}

// NewRedisCartRepository creates a Redis-backed CartRepository. A zero ttl
// falls back to DefaultCartTTL.
func NewRedisCartRepository(client *redis.Client, log hclog.Logger, ttl time.Duration) CartRepository {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &redisCartRepository{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (r *redisCartRepository) cartKey(cartID string) string {
	return cartKeyPrefix + cartID
}

// Load returns the stored cart. A missing key or a snapshot that no longer
// parses both load as an empty cart; corruption is logged, never surfaced.
func (r *redisCartRepository) Load(ctx context.Context, cartID string) (domain.Cart, error) {
	data, err := r.client.Get(ctx, r.cartKey(cartID)).Result()
	if err == redis.Nil {
		return domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", cartID, err)
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		r.log.Warn("Discarding unreadable cart snapshot", "cart_id", cartID, "error", err)
		return domain.Cart{}, nil
	}

	return cart, nil
}

func (r *redisCartRepository) Save(ctx context.Context, cartID string, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", cartID, err)
	}

	if err := r.client.Set(ctx, r.cartKey(cartID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", cartID, err)
	}

	return nil
}

func (r *redisCartRepository) Clear(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, r.cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart %s: %w", cartID, err)
	}
	return nil
}
