package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Althaj-p/Ecom-Backend/pkg/cache"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := cache.NewMemory()

	_, ok := m.Get("cart_1")
	assert.False(t, ok)

	m.Set("cart_1", []byte(`{"items":[]}`), cache.DefaultTTL)
	b, ok := m.Get("cart_1")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"items":[]}`), b)

	m.Delete("cart_1")
	_, ok = m.Get("cart_1")
	assert.False(t, ok)
}

func TestMemoryExpiry(t *testing.T) {
	m := cache.NewMemory()
	m.Set("product_detail_red-shirt", []byte("x"), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	_, ok := m.Get("product_detail_red-shirt")
	assert.False(t, ok)
}

func TestMemoryDeleteMany(t *testing.T) {
	m := cache.NewMemory()
	m.Set("a", []byte("1"), cache.DefaultTTL)
	m.Set("b", []byte("2"), cache.DefaultTTL)

	m.Delete("a", "b", "missing")

	_, ok := m.Get("a")
	assert.False(t, ok)
	_, ok = m.Get("b")
	assert.False(t, ok)
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "cart_7", cache.CartKey(7))
	assert.Equal(t, "wishlist_7", cache.WishlistKey(7))
	assert.Equal(t, "product_detail_red-shirt", cache.ProductDetailKey("red-shirt"))
	assert.Equal(t, "variant_detail_red-shirt-xl", cache.VariantDetailKey("red-shirt-xl"))
	assert.Equal(t, "variant_list_2", cache.VariantListKey(2))
}
