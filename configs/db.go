package configs

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	// TranslateError maps driver unique-violation errors onto
	// gorm.ErrDuplicatedKey, which the payment path relies on.
	gormCfg := &gorm.Config{TranslateError: true}
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), gormCfg)
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), gormCfg)
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Category{}, &entity.Banner{},
		&entity.VariantType{}, &entity.VariantValue{},
		&entity.Product{}, &entity.ProductVariant{}, &entity.VariantImage{},
		&entity.Warehouse{}, &entity.Stock{},
		&entity.Review{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Wishlist{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Payment{},
		&entity.ShippingMethod{},
		&entity.ChatRoom{}, &entity.Message{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
