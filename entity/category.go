package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name   string `gorm:"not null" json:"name"`
	Image  string `json:"image"`
	Slug   string `gorm:"uniqueIndex" json:"slug"`
	Active bool   `gorm:"default:true" json:"active"`

	Products []Product `json:"-"`
}

type Banner struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Image       string `json:"image"`
	LinkURL     string `json:"link_url"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}
