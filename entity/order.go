package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"

	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
)

// Order is immutable after checkout except for the status fields.
// TotalPrice is computed once at creation and never recomputed from items.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"user_id"`
	User   User `json:"-"`

	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`
	Status     string          `gorm:"default:Pending" json:"status"`

	// Nullable so deleting an address later leaves past orders intact.
	ShippingAddressID *uint    `json:"shipping_address_id"`
	ShippingAddress   *Address `json:"-"`

	PaymentStatus string `gorm:"default:Pending" json:"payment_status"`
	PaymentMethod string `json:"payment_method"`

	Items    []OrderItem `json:"items,omitempty"`
	Payments []Payment   `json:"payments,omitempty"`
}

// OrderItem snapshots product, variant, quantity and unit price at order
// time, independent of later catalog changes.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"order_id"`
	Order   Order `json:"-"`

	ProductID uint    `json:"product_id"`
	Product   Product `json:"-"`

	VariantID *uint           `json:"variant_id"`
	Variant   *ProductVariant `json:"-"`

	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
}
