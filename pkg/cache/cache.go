package cache

import (
	"fmt"
	"time"
)

// DefaultTTL matches the read views: entries live for minutes, not hours.
const DefaultTTL = 15 * time.Minute

// Store is a read-through TTL cache. It is strictly an optimization: a
// missing or failing store must never change correctness, only latency,
// so none of the methods return errors.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(keys ...string)
}

// Key builders. Every read endpoint derives its key from the request's
// identifying parameters; the matching write deletes the same key.

func CartKey(userID uint) string {
	return fmt.Sprintf("cart_%d", userID)
}

func WishlistKey(userID uint) string {
	return fmt.Sprintf("wishlist_%d", userID)
}

func ProductDetailKey(slug string) string {
	return fmt.Sprintf("product_detail_%s", slug)
}

func VariantDetailKey(slug string) string {
	return fmt.Sprintf("variant_detail_%s", slug)
}

func VariantListKey(page int) string {
	return fmt.Sprintf("variant_list_%d", page)
}

func CategoriesKey() string { return "categories" }

func BannersKey() string { return "banners" }
