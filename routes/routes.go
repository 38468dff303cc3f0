package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/controllers"
	"storefront/middleware"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController()
	cartCtrl := controllers.NewCartController()
	checkoutCtrl := controllers.NewCheckoutController()
	orderCtrl := controllers.NewOrderController()
	chatCtrl := controllers.NewChatController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)

		api.GET("/products", productCtrl.GetAllProducts)
		api.GET("/products/search", productCtrl.SearchProducts)
		api.GET("/products/:id", productCtrl.GetProductByID)
		api.POST("/products/import", productCtrl.ImportProducts)

		api.POST("/chat", chatCtrl.Chat)
	}

	auth := router.Group("/api")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart", cartCtrl.AddToCart)
		auth.PUT("/cart/:id", cartCtrl.UpdateCartItem)
		auth.DELETE("/cart/:id", cartCtrl.RemoveCartItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.POST("/checkout", checkoutCtrl.Checkout)
		auth.GET("/orders/history", orderCtrl.GetOrderHistory)
	}
}
