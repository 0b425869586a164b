package repository

import (
	"context"
	"testing"

	"github.com/pawpals/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryCartRepository()
	ctx := context.Background()

	cart, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	cart = cart.Add(domain.Product{ID: "p1", Price: 100}, 2)
	require.NoError(t, repo.Save(ctx, "c1", cart))

	loaded, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, cart, loaded)

	require.NoError(t, repo.Clear(ctx, "c1"))
	loaded, err = repo.Load(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryCartRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "c1", domain.Cart{{ID: "p1", Quantity: 2}}))

	loaded, _ := repo.Load(ctx, "c1")
	loaded[0].Quantity = 9

	again, _ := repo.Load(ctx, "c1")
	assert.Equal(t, 2, again[0].Quantity, "mutating a loaded cart must not touch the stored one")
}
