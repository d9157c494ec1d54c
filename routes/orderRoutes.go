package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/controllers"
	"github.com/melodias-store/melodias-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/checkout", middlewares.RequireAuth(), controllers.Checkout)

	ordersGroup := server.Group("/orders", middlewares.RequireAuth())
	{
		ordersGroup.GET("", controllers.GetMyOrders)
		ordersGroup.GET("/:orderId", controllers.GetOrderById)
		ordersGroup.POST("/:orderId/cancel", controllers.CancelOrder)
	}
}
