package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"storefront/config"
	_ "storefront/docs"
	"storefront/events"
	"storefront/mailer"
	"storefront/middleware"
	"storefront/routes"
)

// @title Storefront API
// @version 1.0
// @description Catalog, cart, checkout, and chat API for the storefront.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	mailer.Init()
	events.Init()
	if events.Default != nil {
		defer events.Default.Close()
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
