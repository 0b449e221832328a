package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"order_id"`
	Order   Order `json:"-"`

	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Status        string          `gorm:"default:Pending" json:"status"`
	PaymentDate   time.Time       `json:"payment_date"`
	TransactionID string          `gorm:"uniqueIndex;not null" json:"transaction_id"`
}
