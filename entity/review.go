package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID    uint    `gorm:"index" json:"user_id"`
	User      User    `json:"-"`
	ProductID uint    `gorm:"index" json:"product_id"`
	Product   Product `json:"-"`

	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
