package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	DiscountPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_price"`
	SKU           string          `gorm:"uniqueIndex" json:"sku"`
	TotalStock    int             `json:"total_stock"`
	Status        string          `gorm:"default:Active" json:"status"`
	Slug          string          `gorm:"uniqueIndex" json:"slug"`

	CategoryID uint     `gorm:"index" json:"category_id"`
	Category   Category `json:"-"`

	Variants []ProductVariant `json:"variants,omitempty"`
	Reviews  []Review         `json:"-"`
}

type VariantType struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	Values []VariantValue `json:"values,omitempty"`
}

type VariantValue struct {
	gorm.Model
	VariantTypeID uint        `gorm:"index" json:"variant_type_id"`
	VariantType   VariantType `json:"-"`
	Value         string      `gorm:"not null" json:"value"`
}

// ProductVariant carries the authoritative current price. The cart stores a
// copy for display, but checkout always re-reads the price from here.
type ProductVariant struct {
	gorm.Model
	ProductID uint    `gorm:"index" json:"product_id"`
	Product   Product `json:"-"`

	PrimaryValueID   *uint         `json:"primary_value_id"`
	PrimaryValue     *VariantValue `gorm:"foreignKey:PrimaryValueID" json:"-"`
	SecondaryValueID *uint         `json:"secondary_value_id"`
	SecondaryValue   *VariantValue `gorm:"foreignKey:SecondaryValueID" json:"-"`

	VariantName   string          `gorm:"not null" json:"variant_name"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	DiscountPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_price"`
	SKU           string          `gorm:"uniqueIndex" json:"sku"`
	TotalStock    int             `gorm:"default:1" json:"total_stock"`
	Slug          string          `gorm:"uniqueIndex" json:"slug"`

	Images []VariantImage `gorm:"foreignKey:VariantID" json:"images,omitempty"`
}

type VariantImage struct {
	gorm.Model
	VariantID uint           `gorm:"index" json:"variant_id"`
	Variant   ProductVariant `json:"-"`
	Image     string         `gorm:"not null" json:"image"`
	AltText   string         `json:"alt_text"`
}
