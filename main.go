package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopline/shopline-api/config"
	"github.com/shopline/shopline-api/controllers"
	"github.com/shopline/shopline-api/initializers"
	"github.com/shopline/shopline-api/payments"
	"github.com/shopline/shopline-api/repository"
	"github.com/shopline/shopline-api/routes"
	"github.com/shopline/shopline-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	initializers.ConnectToDB(cfg.DatabaseDSN)
	initializers.SyncDatabase()

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Domain, "http://localhost:7000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	stripeClient := payments.NewStripeClient(cfg.StripeAPIKey, cfg.StripeBaseURL, cfg.Domain)
	productRepo := repository.NewGormProductRepository(initializers.DB)
	orderRepo := repository.NewGormOrderRepository(initializers.DB)
	checkoutService := services.NewCheckoutService(stripeClient, orderRepo)

	productController := controllers.NewProductController(productRepo, cfg.S3Bucket)
	orderController := controllers.NewOrderController(orderRepo)
	checkoutController := controllers.NewCheckoutController(checkoutService)

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, productController)
	routes.OrderRoutes(server, orderController)
	routes.CheckoutRoutes(server, checkoutController)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
