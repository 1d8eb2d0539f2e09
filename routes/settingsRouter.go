package routes

import (
	controller "tableswift/controllers"
	"tableswift/middleware"

	"github.com/gin-gonic/gin"
)

func SettingsRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/restaurant", controller.GetRestaurantInfo())
	incomingRoutes.GET("/settings", middleware.Authentication(), controller.GetSettings())
	incomingRoutes.PUT("/settings", middleware.Authentication(), controller.UpdateSettings())
}
