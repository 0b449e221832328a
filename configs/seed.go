package configs

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/Althaj-p/Ecom-Backend/entity"
)

// SeedAdmin creates the support/admin account on first boot.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Support",
		LastName:  "Admin",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups fills the static tables the read endpoints serve.
func SeedLookups() error {
	methods := []entity.ShippingMethod{
		{Name: "Standard", Price: decimal.NewFromInt(0), EstimatedDeliveryDays: 7},
		{Name: "Express", Price: decimal.RequireFromString("9.99"), EstimatedDeliveryDays: 3},
		{Name: "Next Day", Price: decimal.RequireFromString("19.99"), EstimatedDeliveryDays: 1},
	}
	for _, m := range methods {
		if err := db.FirstOrCreate(&entity.ShippingMethod{}, entity.ShippingMethod{Name: m.Name}).Error; err != nil {
			return err
		}
		if err := db.Model(&entity.ShippingMethod{}).
			Where("name = ?", m.Name).
			Updates(map[string]any{"price": m.Price, "estimated_delivery_days": m.EstimatedDeliveryDays}).Error; err != nil {
			return err
		}
	}

	log.Println("lookup tables seeded")
	return nil
}
