package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	Addresses []Address `json:"-"`
	Orders    []Order   `json:"-"`
	Reviews   []Review  `json:"-"`
	Wishlist  *Wishlist `json:"-"`
}
