package repository

import (
	"context"
	"sync"

	"github.com/pawpals/storefront/internal/domain"
)

// CartRepository is the persistent slot a cart lives in. Every mutation goes
// through Load then Save with the full snapshot; there is no partial update.
// Implementations must treat absent or unreadable data as an empty cart
// rather than an error.
type CartRepository interface {
	Load(ctx context.Context, cartID string) (domain.Cart, error)
	Save(ctx context.Context, cartID string, cart domain.Cart) error
	Clear(ctx context.Context, cartID string) error
}

type memoryCartRepository struct {
	carts map[string]domain.Cart
	mutex sync.RWMutex
}

// NewMemoryCartRepository returns an in-memory CartRepository, used by tests
// and when the server runs without a Redis address configured.
func NewMemoryCartRepository() CartRepository {
	return &memoryCartRepository{
		carts: make(map[string]domain.Cart),
	}
}

func (r *memoryCartRepository) Load(ctx context.Context, cartID string) (domain.Cart, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	cart, ok := r.carts[cartID]
	if !ok {
		return domain.Cart{}, nil
	}

	// copy so callers never alias the stored slice
	snapshot := make(domain.Cart, len(cart))
	copy(snapshot, cart)
	return snapshot, nil
}

func (r *memoryCartRepository) Save(ctx context.Context, cartID string, cart domain.Cart) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	snapshot := make(domain.Cart, len(cart))
	copy(snapshot, cart)
	r.carts[cartID] = snapshot
	return nil
}

func (r *memoryCartRepository) Clear(ctx context.Context, cartID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.carts, cartID)
	return nil
}
