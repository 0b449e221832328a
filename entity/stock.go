package entity

import (
	"gorm.io/gorm"
)

type Warehouse struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Location string `json:"location"`
}

type Stock struct {
	gorm.Model
	ProductID   uint      `gorm:"index" json:"product_id"`
	Product     Product   `json:"-"`
	WarehouseID uint      `gorm:"index" json:"warehouse_id"`
	Warehouse   Warehouse `json:"-"`
	Quantity    int       `json:"quantity"`
}
