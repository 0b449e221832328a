package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Althaj-p/Ecom-Backend/entity"
	"github.com/Althaj-p/Ecom-Backend/pkg/cache"
)

func TestCheckoutCreatesOrderFromCart(t *testing.T) {
	db := newTestDB(t)
	store := cache.NewMemory()
	carts := newCartService(db, store)
	checkout := newCheckoutService(db, store)

	user := seedUser(t, db, "buyer@example.com")
	address := seedAddress(t, db, user.ID)
	shirt := seedVariant(t, db, "red-shirt", "100.00")
	hat := seedVariant(t, db, "blue-cap", "50.00")

	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: shirt.ID, Quantity: 2}))
	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: hat.ID, Quantity: 1}))

	// Prime the cached cart view so checkout has something to invalidate.
	_, err := carts.Get(user.ID)
	require.NoError(t, err)

	out, err := checkout.Checkout(user.ID, &CheckoutIn{ShippingAddressID: address.ID, PaymentMethod: "card"})
	require.NoError(t, err)

	var order entity.Order
	require.NoError(t, db.Preload("Items").First(&order, out.OrderID).Error)
	assert.True(t, order.TotalPrice.Equal(d(t, "250.00")), "got total %s", order.TotalPrice)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Len(t, order.Items, 2)
	require.NotNil(t, order.ShippingAddressID)
	assert.Equal(t, address.ID, *order.ShippingAddressID)

	// The cart row survives, its items do not.
	var cart entity.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", user.ID).First(&cart).Error)
	assert.Empty(t, cart.Items)

	_, ok := store.Get(cache.CartKey(user.ID))
	assert.False(t, ok, "cached cart view should be dropped")
}

func TestCheckoutSnapshotsLivePrice(t *testing.T) {
	db := newTestDB(t)
	store := cache.NewMemory()
	carts := newCartService(db, store)
	checkout := newCheckoutService(db, store)

	user := seedUser(t, db, "buyer@example.com")
	address := seedAddress(t, db, user.ID)
	shirt := seedVariant(t, db, "red-shirt", "100.00")

	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: shirt.ID, Quantity: 2}))

	// A price change between add and checkout must win over the cart copy.
	require.NoError(t, db.Model(&entity.ProductVariant{}).
		Where("id = ?", shirt.ID).
		Update("price", d(t, "120.00")).Error)

	out, err := checkout.Checkout(user.ID, &CheckoutIn{ShippingAddressID: address.ID})
	require.NoError(t, err)

	var order entity.Order
	require.NoError(t, db.Preload("Items").First(&order, out.OrderID).Error)
	assert.True(t, order.TotalPrice.Equal(d(t, "240.00")), "got total %s", order.TotalPrice)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].Price.Equal(d(t, "120.00")))
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	store := cache.NewMemory()
	checkout := newCheckoutService(db, store)

	user := seedUser(t, db, "buyer@example.com")
	address := seedAddress(t, db, user.ID)
	require.NoError(t, db.Create(&entity.Cart{UserID: user.ID}).Error)

	_, err := checkout.Checkout(user.ID, &CheckoutIn{ShippingAddressID: address.ID})
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutWithoutCart(t *testing.T) {
	db := newTestDB(t)
	checkout := newCheckoutService(db, cache.NewMemory())

	user := seedUser(t, db, "buyer@example.com")
	address := seedAddress(t, db, user.ID)

	_, err := checkout.Checkout(user.ID, &CheckoutIn{ShippingAddressID: address.ID})
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCheckoutRejectsForeignAddress(t *testing.T) {
	db := newTestDB(t)
	store := cache.NewMemory()
	carts := newCartService(db, store)
	checkout := newCheckoutService(db, store)

	buyer := seedUser(t, db, "buyer@example.com")
	other := seedUser(t, db, "other@example.com")
	foreign := seedAddress(t, db, other.ID)
	shirt := seedVariant(t, db, "red-shirt", "100.00")

	require.NoError(t, carts.Add(buyer.ID, &AddToCartIn{VariantID: shirt.ID}))

	_, err := checkout.Checkout(buyer.ID, &CheckoutIn{ShippingAddressID: foreign.ID})
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestCheckoutRollsBackOnMissingVariant(t *testing.T) {
	db := newTestDB(t)
	store := cache.NewMemory()
	carts := newCartService(db, store)
	checkout := newCheckoutService(db, store)

	user := seedUser(t, db, "buyer@example.com")
	address := seedAddress(t, db, user.ID)
	shirt := seedVariant(t, db, "red-shirt", "100.00")
	hat := seedVariant(t, db, "blue-cap", "50.00")

	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: shirt.ID}))
	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: hat.ID}))

	// Variant removed from the catalog while it sits in the cart.
	require.NoError(t, db.Delete(&entity.ProductVariant{}, hat.ID).Error)

	_, err := checkout.Checkout(user.ID, &CheckoutIn{ShippingAddressID: address.ID})
	assert.ErrorIs(t, err, ErrVariantNotFound)

	// Nothing committed: no orders, no order items, cart untouched.
	var orders, items, cartItems int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&cartItems).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
	assert.EqualValues(t, 2, cartItems)
}

func TestCheckoutTwiceNeedsANewCart(t *testing.T) {
	db := newTestDB(t)
	store := cache.NewMemory()
	carts := newCartService(db, store)
	checkout := newCheckoutService(db, store)

	user := seedUser(t, db, "buyer@example.com")
	address := seedAddress(t, db, user.ID)
	shirt := seedVariant(t, db, "red-shirt", "100.00")

	require.NoError(t, carts.Add(user.ID, &AddToCartIn{VariantID: shirt.ID}))

	_, err := checkout.Checkout(user.ID, &CheckoutIn{ShippingAddressID: address.ID})
	require.NoError(t, err)

	_, err = checkout.Checkout(user.ID, &CheckoutIn{ShippingAddressID: address.ID})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestListOrdersFallsBackPastLastPage(t *testing.T) {
	db := newTestDB(t)
	checkout := newCheckoutService(db, cache.NewMemory())

	user := seedUser(t, db, "buyer@example.com")
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&entity.Order{UserID: user.ID, TotalPrice: d(t, "10.00")}).Error)
	}

	history, err := checkout.ListOrders(user.ID, 99)
	require.NoError(t, err)
	assert.Equal(t, 1, history.Page)
	assert.Equal(t, 1, history.TotalPages)
	assert.Len(t, history.Orders, 3)
}

func TestOrderDetailScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	checkout := newCheckoutService(db, cache.NewMemory())

	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")
	order := entity.Order{UserID: owner.ID, TotalPrice: d(t, "99.00")}
	require.NoError(t, db.Create(&order).Error)

	_, err := checkout.OrderDetail(stranger.ID, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	detail, err := checkout.OrderDetail(owner.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, detail.OrderID)
}
