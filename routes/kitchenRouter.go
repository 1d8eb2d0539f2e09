package routes

import (
	controller "tableswift/controllers"

	"github.com/gin-gonic/gin"
)

func KitchenRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/kitchen/tables", controller.GetKitchenTables())
	incomingRoutes.POST("/kitchen/tables/:table_id/advance", controller.AdvanceTableOrders())
	incomingRoutes.POST("/kitchen/tables/:table_id/close", controller.CloseTable())
	incomingRoutes.GET("/kitchen/qrcodes", controller.GetTableQRCodes())
	incomingRoutes.GET("/ws", controller.HandleWebSocket())
}
