package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ShippingMethod struct {
	gorm.Model
	Name                  string          `gorm:"not null" json:"name"`
	Price                 decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	EstimatedDeliveryDays int             `json:"estimated_delivery_days"`
}
