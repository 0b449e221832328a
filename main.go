package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"

	"github.com/Althaj-p/Ecom-Backend/configs"
	"github.com/Althaj-p/Ecom-Backend/middlewares"
	"github.com/Althaj-p/Ecom-Backend/pkg/cache"
	"github.com/Althaj-p/Ecom-Backend/routes"
	"github.com/Althaj-p/Ecom-Backend/services"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// Cache: redis when configured, in-process otherwise.
	var store cache.Store
	if cfg.RedisAddr != "" {
		store = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, 0)
		log.Println("cache: redis at", cfg.RedisAddr)
	} else {
		store = cache.NewMemory()
		log.Println("cache: in-memory")
	}

	// Payment provider
	var links services.PaymentLinkClient
	if cfg.RazorpayKeyID != "" {
		links = razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret).PaymentLink
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg, store, links)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
