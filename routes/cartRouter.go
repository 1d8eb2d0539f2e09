package routes

import (
	controller "tableswift/controllers"

	"github.com/gin-gonic/gin"
)

func CartRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/carts/:table_id", controller.GetCart())
	incomingRoutes.POST("/carts/:table_id/items", controller.AddCartItem())
	incomingRoutes.PATCH("/carts/:table_id/items", controller.UpdateCartItem())
	incomingRoutes.DELETE("/carts/:table_id", controller.ClearCart())
}
