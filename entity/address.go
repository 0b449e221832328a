package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UserID uint `gorm:"index" json:"user_id"`
	User   User `json:"-"`

	AddressLine1 string `gorm:"not null" json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
	IsDefault    bool   `json:"is_default"`
}
