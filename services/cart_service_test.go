package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Althaj-p/Ecom-Backend/entity"
	"github.com/Althaj-p/Ecom-Backend/pkg/cache"
)

func TestAddCreatesCartLazily(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db, cache.NewMemory())

	user := seedUser(t, db, "buyer@example.com")
	shirt := seedVariant(t, db, "red-shirt", "100.00")

	var count int64
	require.NoError(t, db.Model(&entity.Cart{}).Count(&count).Error)
	require.Zero(t, count)

	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: shirt.ID}))

	view, err := carts.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity, "quantity defaults to 1")
	assert.True(t, view.Items[0].Price.Equal(d(t, "100.00")))
}

func TestAddUnknownVariant(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db, cache.NewMemory())

	user := seedUser(t, db, "buyer@example.com")
	err := carts.Add(user.ID, &AddToCartIn{VariantID: 9999})
	assert.ErrorIs(t, err, ErrVariantNotFound)
}

func TestRepeatAddIncrementsAndReprices(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db, cache.NewMemory())

	user := seedUser(t, db, "buyer@example.com")
	shirt := seedVariant(t, db, "red-shirt", "100.00")

	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: shirt.ID, Quantity: 2}))

	require.NoError(t, db.Model(&entity.ProductVariant{}).
		Where("id = ?", shirt.ID).
		Update("price", d(t, "90.00")).Error)

	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: shirt.ID, Quantity: 1}))

	var item entity.CartItem
	require.NoError(t, db.Where("variant_id = ?", shirt.ID).First(&item).Error)
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, item.Price.Equal(d(t, "90.00")), "price refreshed from the live variant")
	assert.True(t, item.CartTotal.Equal(d(t, "270.00")), "got %s", item.CartTotal)
}

func TestUpdateQuantityIsAbsolute(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db, cache.NewMemory())

	user := seedUser(t, db, "buyer@example.com")
	shirt := seedVariant(t, db, "red-shirt", "100.00")
	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: shirt.ID, Quantity: 5}))

	var item entity.CartItem
	require.NoError(t, db.Where("variant_id = ?", shirt.ID).First(&item).Error)

	require.NoError(t, carts.UpdateQuantity(user.ID, item.ID, 2))

	require.NoError(t, db.First(&item, item.ID).Error)
	assert.Equal(t, 2, item.Quantity)
}

func TestUpdateQuantityValidation(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db, cache.NewMemory())

	user := seedUser(t, db, "buyer@example.com")

	assert.ErrorIs(t, carts.UpdateQuantity(user.ID, 1, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, carts.UpdateQuantity(user.ID, 9999, 2), ErrCartItemNotFound)
}

func TestRemoveScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db, cache.NewMemory())

	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")
	shirt := seedVariant(t, db, "red-shirt", "100.00")
	require.NoError(t, carts.Add(owner.ID, &AddToCartIn{VariantID: shirt.ID}))

	var item entity.CartItem
	require.NoError(t, db.Where("variant_id = ?", shirt.ID).First(&item).Error)

	// Someone else's item id is indistinguishable from a missing one.
	assert.ErrorIs(t, carts.Remove(stranger.ID, item.ID), ErrCartItemNotFound)

	require.NoError(t, carts.Remove(owner.ID, item.ID))
	var count int64
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCartViewIsCached(t *testing.T) {
	db := newTestDB(t)
	store := cache.NewMemory()
	carts := newCartService(db, store)

	user := seedUser(t, db, "buyer@example.com")
	shirt := seedVariant(t, db, "red-shirt", "100.00")
	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: shirt.ID, Quantity: 2}))

	view, err := carts.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	_, ok := store.Get(cache.CartKey(user.ID))
	require.True(t, ok, "view should be cached after a read")

	// A write that bypasses the service is invisible until invalidation.
	require.NoError(t, db.Model(&entity.CartItem{}).
		Where("cart_id = ?", view.ID).
		Update("quantity", 7).Error)

	stale, err := carts.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stale.Items[0].Quantity)

	// Any service-side mutation drops the key.
	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: shirt.ID, Quantity: 1}))
	fresh, err := carts.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, fresh.Items[0].Quantity)
}

func TestClearEmptiesCart(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db, cache.NewMemory())

	user := seedUser(t, db, "buyer@example.com")
	shirt := seedVariant(t, db, "red-shirt", "100.00")
	hat := seedVariant(t, db, "blue-cap", "50.00")
	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: shirt.ID}))
	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: hat.ID}))

	require.NoError(t, carts.Clear(user.ID))

	view, err := carts.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}
