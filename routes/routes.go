package routes

import (
	"gift-shop/config"
	"gift-shop/controllers"
	"gift-shop/middleware"
	"gift-shop/models"
	"gift-shop/repositories"
	"gift-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	productRepo := repositories.NewProductRepository(models.DB)
	inquiryRepo := repositories.NewInquiryRepository(models.DB)

	catalog := services.NewCatalogService(productRepo, models.RedisClient)
	carts := services.NewCartManager()

	var notifier services.InquiryNotifier
	if emailService, err := models.NewEmailService(); err == nil {
		notifier = emailService
	}
	inquiries := services.NewInquiryService(inquiryRepo, notifier, config.AppConfig.WhatsAppNumber)

	authCtrl := &controllers.AuthController{}
	productCtrl := controllers.NewProductController(catalog)
	inquiryCtrl := controllers.NewInquiryController(inquiries)
	cartCtrl := controllers.NewCartController(carts, catalog, inquiries)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/admin/login", authCtrl.AdminLogin)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/categories", productCtrl.GetAllCategories)

	router.POST("/inquiries", inquiryCtrl.SubmitInquiry)

	cart := router.Group("/cart")
	{
		cart.GET("", cartCtrl.GetCart)
		cart.DELETE("", cartCtrl.ClearCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PUT("/items/:productId", cartCtrl.UpdateItem)
		cart.DELETE("/items/:productId", cartCtrl.RemoveItem)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	admin := router.Group("/")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
	}
}
