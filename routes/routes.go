package routes

import (
	"context"
	"log"

	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()
	rdb := configs.ConnectRedis(cfg.RedisAddr)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	catalogRepo := repository.NewCatalogRepository(db, rdb)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	designRepo := repository.NewDesignRequestRepository(db)
	customRepo := repository.NewCustomizationRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	pricingSvc := services.NewPricingService(catalogRepo, cfg.INRPerUSD)
	customSvc := services.NewCustomizationService(customRepo, productRepo, pricingSvc)
	designSvc := services.NewDesignRequestService(designRepo)
	quoteSvc := services.NewQuoteService(db, designRepo)
	orderSvc := services.NewOrderService(db, orderRepo, productRepo, designRepo)
	paypalSvc, err := services.NewPayPalService(db, cfg.PayPalClientID, cfg.PayPalSecret, cfg.PayPalLive, paymentRepo, orderSvc)
	if err != nil {
		log.Fatalf("paypal client init failed: %v", err)
	}
	contentSvc, err := services.NewContentService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, productRepo)
	if err != nil {
		log.Fatalf("content generator init failed: %v", err)
	}

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productRepo, pricingSvc)
	catalogCtrl := controllers.NewCatalogController(catalogRepo)
	customCtrl := controllers.NewCustomizationController(customSvc, customRepo)
	designCtrl := controllers.NewDesignRequestController(designSvc, quoteSvc, designRepo)
	orderCtrl := controllers.NewOrderController(orderSvc, paymentRepo)
	paymentCtrl := controllers.NewPaymentController(paypalSvc)
	galleryCtrl := controllers.NewGalleryController(galleryRepo)
	contentCtrl := controllers.NewContentController(contentSvc)
	adminCtrl := controllers.NewAdminController(db)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public storefront
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Detail)
	r.GET("/products/:id/image", productCtrl.Image)
	r.POST("/products/:id/estimate", productCtrl.Estimate)
	r.GET("/catalog/metals", catalogCtrl.Metals)
	r.GET("/catalog/stones", catalogCtrl.Stones)
	r.GET("/gallery", galleryCtrl.List)
	r.GET("/gallery/:id/image", galleryCtrl.Image)

	// Customer
	u := r.Group("/", auth())
	{
		u.POST("/customization-requests", customCtrl.Submit)
		u.GET("/customization-requests", customCtrl.ListMine)

		u.POST("/design-requests", designCtrl.Submit)
		u.GET("/design-requests", designCtrl.ListMine)
		u.GET("/design-requests/:id", designCtrl.Detail)
		u.POST("/design-requests/:id/quote/accept", designCtrl.AcceptQuote)
		u.POST("/design-requests/:id/quote/decline", designCtrl.DeclineQuote)

		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListMine)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/payments/paypal", paymentCtrl.CreatePayPalOrder)
		u.POST("/orders/:id/payments/paypal/capture", paymentCtrl.CapturePayPalOrder)
	}

	// Admin (admin only)
	admin := r.Group("/admin", auth("admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.POST("/products", productCtrl.Create)
		admin.PATCH("/products/:id", productCtrl.Update)
		admin.PUT("/products/:id/image", productCtrl.UploadImage)
		admin.DELETE("/products/:id", productCtrl.Delete)
		admin.POST("/products/:id/generate-content", contentCtrl.Generate)

		admin.POST("/metals", catalogCtrl.CreateMetal)
		admin.PATCH("/metals/:id", catalogCtrl.UpdateMetal)
		admin.POST("/stones", catalogCtrl.CreateStone)
		admin.PATCH("/stones/:id", catalogCtrl.UpdateStone)

		admin.GET("/design-requests", designCtrl.AdminList)
		admin.POST("/design-requests/:id/quote", designCtrl.AdminQuote)
		admin.PATCH("/design-requests/:id/reject", designCtrl.AdminReject)

		admin.GET("/customization-requests", customCtrl.AdminList)
		admin.PATCH("/customization-requests/:id", customCtrl.AdminUpdateStatus)

		admin.GET("/orders", orderCtrl.AdminList)
		admin.PATCH("/orders/:id/status", orderCtrl.AdminUpdateStatus)

		admin.POST("/gallery", galleryCtrl.Upload)
		admin.DELETE("/gallery/:id", galleryCtrl.Delete)
	}
}
