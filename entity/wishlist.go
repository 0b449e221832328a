package entity

import (
	"gorm.io/gorm"
)

type Wishlist struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `json:"-"`

	Products []Product `gorm:"many2many:wishlist_products;" json:"products"`
}
