package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/pkg/cache"
	"github.com/Althaj-p/Ecom-Backend/repository"
)

func newWishlistService(db *gorm.DB, store cache.Store) *WishlistService {
	return NewWishlistService(repository.NewWishlistRepository(db), repository.NewProductRepository(db), store)
}

func TestWishlistAddAndGet(t *testing.T) {
	db := newTestDB(t)
	store := cache.NewMemory()
	wishlists := newWishlistService(db, store)

	user := seedUser(t, db, "buyer@example.com")
	shirt := seedVariant(t, db, "red-shirt", "100.00")

	// No wishlist until the first add.
	_, err := wishlists.Get(user.ID)
	assert.ErrorIs(t, err, ErrWishlistNotFound)

	require.NoError(t, wishlists.Add(user.ID, shirt.ProductID))

	w, err := wishlists.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, w.Products, 1)
	assert.Equal(t, shirt.ProductID, w.Products[0].ID)

	_, ok := store.Get(cache.WishlistKey(user.ID))
	assert.True(t, ok, "wishlist view should be cached after a read")
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	wishlists := newWishlistService(db, cache.NewMemory())

	user := seedUser(t, db, "buyer@example.com")
	assert.ErrorIs(t, wishlists.Add(user.ID, 9999), ErrProductNotFound)
}

func TestWishlistRemoveInvalidatesCache(t *testing.T) {
	db := newTestDB(t)
	store := cache.NewMemory()
	wishlists := newWishlistService(db, store)

	user := seedUser(t, db, "buyer@example.com")
	shirt := seedVariant(t, db, "red-shirt", "100.00")
	hat := seedVariant(t, db, "blue-cap", "50.00")

	require.NoError(t, wishlists.Add(user.ID, shirt.ProductID))
	require.NoError(t, wishlists.Add(user.ID, hat.ProductID))

	_, err := wishlists.Get(user.ID)
	require.NoError(t, err)

	require.NoError(t, wishlists.Remove(user.ID, shirt.ProductID))

	_, ok := store.Get(cache.WishlistKey(user.ID))
	require.False(t, ok, "remove must drop the cached view")

	w, err := wishlists.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, w.Products, 1)
	assert.Equal(t, hat.ProductID, w.Products[0].ID)
}
