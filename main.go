package main

import (
	"log"

	"hbs/config"
	"hbs/routes"
	"hbs/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	validator.RegisterCustomValidators()

	stripeClient := config.ConnectStripe()

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, stripeClient)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	port := config.GetEnvDefault("PORT", "8083")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
