package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is created lazily on the first add; one per user. The row survives
// checkout, only its items are deleted.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cart_id"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"product_id"`
	Product   Product `json:"-"`

	// Nullable so a deleted variant keeps the line readable in the cart.
	VariantID *uint           `json:"variant_id"`
	Variant   *ProductVariant `json:"-"`

	Quantity int `json:"quantity"`

	// Price and CartTotal are informational copies refreshed on every add;
	// checkout ignores them and re-reads the live variant price.
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	CartTotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"cart_total"`
}
