package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Althaj-p/Ecom-Backend/entity"
	"github.com/Althaj-p/Ecom-Backend/pkg/cache"
	"github.com/Althaj-p/Ecom-Backend/repository"
)

var (
	testDBSeq  atomic.Int64
	testSKUSeq atomic.Int64
)

// newTestDB opens one isolated in-memory sqlite database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Category{}, &entity.Banner{},
		&entity.VariantType{}, &entity.VariantValue{},
		&entity.Product{}, &entity.ProductVariant{}, &entity.VariantImage{},
		&entity.Warehouse{}, &entity.Stock{},
		&entity.Review{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Wishlist{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Payment{},
		&entity.ShippingMethod{},
		&entity.ChatRoom{}, &entity.Message{},
	))
	return db
}

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", FirstName: "Test", Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) *entity.Address {
	t.Helper()
	a := &entity.Address{
		UserID:       userID,
		AddressLine1: "12 High Street",
		City:         "Kochi",
		State:        "Kerala",
		Country:      "India",
		PostalCode:   "682001",
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

// seedVariant creates a category, a product and one variant priced at the
// given amount. Slugs and SKUs are made unique per call.
func seedVariant(t *testing.T, db *gorm.DB, name, price string) *entity.ProductVariant {
	t.Helper()

	n := testSKUSeq.Add(1)
	cat := &entity.Category{Name: "Apparel", Slug: fmt.Sprintf("apparel-%d", n), Active: true}
	require.NoError(t, db.Create(cat).Error)

	p := &entity.Product{
		Name:       name,
		Price:      d(t, price),
		SKU:        fmt.Sprintf("P-%d", n),
		Slug:       fmt.Sprintf("%s-%d", name, n),
		Status:     "Active",
		CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(p).Error)

	v := &entity.ProductVariant{
		ProductID:   p.ID,
		VariantName: name + " / default",
		Price:       d(t, price),
		SKU:         fmt.Sprintf("V-%d", n),
		Slug:        fmt.Sprintf("%s-v-%d", name, n),
		TotalStock:  10,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func newCartService(db *gorm.DB, store cache.Store) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db), store)
}

func newCheckoutService(db *gorm.DB, store cache.Store) *CheckoutService {
	return NewCheckoutService(
		db,
		repository.NewCartRepository(db),
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		store,
	)
}

func newPaymentService(db *gorm.DB, links PaymentLinkClient) *PaymentService {
	return NewPaymentService(db, repository.NewOrderRepository(db), links, "https://shop.test/success", "https://shop.test/cancel")
}
