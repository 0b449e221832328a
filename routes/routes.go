package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Althaj-p/Ecom-Backend/configs"
	"github.com/Althaj-p/Ecom-Backend/controllers"
	"github.com/Althaj-p/Ecom-Backend/middlewares"
	"github.com/Althaj-p/Ecom-Backend/pkg/cache"
	"github.com/Althaj-p/Ecom-Backend/repository"
	"github.com/Althaj-p/Ecom-Backend/services"
	"github.com/Althaj-p/Ecom-Backend/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, store cache.Store, links services.PaymentLinkClient) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(productRepo, store)
	cartSvc := services.NewCartService(db, cartRepo, productRepo, store)
	wishlistSvc := services.NewWishlistService(wishlistRepo, productRepo, store)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo, userRepo, store)
	paymentSvc := services.NewPaymentService(db, orderRepo, links, cfg.PaymentSuccessURL, cfg.PaymentCancelURL)
	chatSvc := services.NewChatService(chatRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	addressCtrl := controllers.NewAddressController(authSvc)
	productCtrl := controllers.NewProductController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	wishlistCtrl := controllers.NewWishlistController(wishlistSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, paymentSvc)
	chatCtrl := controllers.NewChatController(chatSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Accounts
	a := r.Group("/auth")
	{
		a.POST("/register/", authCtrl.Register)
		a.POST("/login/", authCtrl.Login)
	}
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/profile/", authCtrl.Profile)
		aAuth.PATCH("/profile/", authCtrl.UpdateProfile)
	}

	// Catalog (public reads)
	p := r.Group("/products")
	{
		p.GET("/categories", productCtrl.Categories)
		p.GET("/banners", productCtrl.Banners)
		p.GET("/products", productCtrl.Variants)
		p.GET("/products/:slug/", productCtrl.ProductDetail)
		p.GET("/variants/:slug/", productCtrl.VariantDetail)
		p.GET("/popular-variants", productCtrl.PopularVariants)
		p.GET("/reviews/:product_id", productCtrl.Reviews)
	}
	r.POST("/products/reviews", auth(), productCtrl.CreateReview)

	// Cart + wishlist
	cart := r.Group("/cart", auth())
	{
		cart.GET("/", cartCtrl.View)
		cart.POST("/add/", cartCtrl.Add)
		cart.PATCH("/update-quantity/", cartCtrl.UpdateQuantity)
		cart.DELETE("/delete/:item_id/", cartCtrl.Remove)
		cart.DELETE("/clear/", cartCtrl.Clear)

		cart.GET("/wishlist/", wishlistCtrl.View)
		cart.POST("/wishlist/add", wishlistCtrl.Add)
		cart.POST("/wishlist/delete", wishlistCtrl.Remove)
	}

	// Checkout, payment and order history
	checkout := r.Group("/checkout", auth())
	{
		checkout.POST("/", checkoutCtrl.Checkout)
		checkout.POST("/payment/", checkoutCtrl.ProcessPayment)
		checkout.POST("/payment-session/", checkoutCtrl.CreatePaymentSession)
		checkout.GET("/order-view/:order_id/", checkoutCtrl.OrderDetail)
		checkout.GET("/orders/", checkoutCtrl.Orders)

		checkout.GET("/shipping-addresses/", addressCtrl.List)
		checkout.POST("/shipping-addresses/", addressCtrl.Create)
		checkout.GET("/shipping-addresses/:id/", addressCtrl.Get)
		checkout.PUT("/shipping-addresses/:id/", addressCtrl.Update)
		checkout.DELETE("/shipping-addresses/:id/", addressCtrl.Delete)
	}
	r.GET("/checkout/shipping-methods/", checkoutCtrl.ShippingMethods)

	// Support chat
	chat := r.Group("/chat", auth())
	{
		chat.GET("/rooms/", chatCtrl.Rooms)
		chat.GET("/messages/:room_id", chatCtrl.Messages)
	}

	hub := ws.NewChatHub(chatSvc)
	go hub.Run()
	r.GET("/ws/chat/:room_id", auth(), hub.HandleWebSocket)

	// Admin catalog writes
	admin := r.Group("/admin", auth("admin"))
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.POST("/variants", productCtrl.CreateVariant)
		admin.PATCH("/variants/:id", productCtrl.UpdateVariant)
		admin.POST("/categories", productCtrl.CreateCategory)
		admin.POST("/banners", productCtrl.CreateBanner)
	}
}
