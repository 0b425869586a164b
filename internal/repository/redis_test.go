package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisRepo(t *testing.T) (CartRepository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCartRepository(client, hclog.NewNullLogger(), time.Hour), mr
}

func TestRedisSaveLoadRoundTrip(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	cart := domain.Cart{
		{ID: "p1", Name: "Dog Food", Price: 500, Image: "dog.jpg", Quantity: 2},
		{ID: "p2", Name: "Cat Tree", Price: 899.5, Quantity: 1},
	}
	require.NoError(t, repo.Save(ctx, "c1", cart))

	loaded, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, cart, loaded)
}

func TestRedisLoadMissingKeyIsEmptyCart(t *testing.T) {
	repo, _ := setupRedisRepo(t)

	cart, err := repo.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRedisLoadMalformedSnapshotIsEmptyCart(t *testing.T) {
	repo, mr := setupRedisRepo(t)

	require.NoError(t, mr.Set("cart:c1", "{not json"))

	cart, err := repo.Load(context.Background(), "c1")
	require.NoError(t, err, "corruption must not surface as an error")
	assert.True(t, cart.IsEmpty())
}

func TestRedisClear(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "c1", domain.Cart{{ID: "p1", Quantity: 1}}))
	require.NoError(t, repo.Clear(ctx, "c1"))

	cart, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRedisCartsAreIsolatedByID(t *testing.T) {
	repo, _ := setupRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "c1", domain.Cart{{ID: "p1", Quantity: 1}}))
	require.NoError(t, repo.Save(ctx, "c2", domain.Cart{{ID: "p2", Quantity: 3}}))

	c1, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	c2, err := repo.Load(ctx, "c2")
	require.NoError(t, err)

	assert.Equal(t, "p1", c1[0].ID)
	assert.Equal(t, "p2", c2[0].ID)
}
