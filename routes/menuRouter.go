package routes

import (
	controller "tableswift/controllers"
	"tableswift/middleware"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/menu-items", controller.GetMenuItems())
	incomingRoutes.GET("/menu-items/:menu_item_id", controller.GetMenuItem())
	incomingRoutes.POST("/menu-items", middleware.Authentication(), controller.CreateMenuItem())
	incomingRoutes.PATCH("/menu-items/:menu_item_id", middleware.Authentication(), controller.UpdateMenuItem())
	incomingRoutes.DELETE("/menu-items/:menu_item_id", middleware.Authentication(), controller.DeleteMenuItem())

	incomingRoutes.GET("/categories", controller.GetCategories())
	incomingRoutes.POST("/categories", middleware.Authentication(), controller.CreateCategory())
	incomingRoutes.DELETE("/categories/:category_id", middleware.Authentication(), controller.DeleteCategory())
}
