package main

import (
	"log"
	"os"
	"time"

	"tableswift/controllers"
	"tableswift/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// hydrate the in-memory state from storage (seed data on first run)
	controllers.LoadMenuState()
	controllers.LoadSettingsState()
	controllers.InitNotifier(os.Getenv("TELEGRAM_API_BASE"))

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.UserRoutes(router)
	routes.MenuRoutes(router)
	routes.CartRoutes(router)
	routes.OrderRoutes(router)
	routes.KitchenRoutes(router)
	routes.SettingsRoutes(router)

	log.Println("listening on port " + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
