package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/controllers"
	"github.com/melodias-store/melodias-api/middlewares"
)

func PaymentRoutes(server *gin.Engine) {
	payments := server.Group("/payment-methods", middlewares.RequireAuth())
	{
		payments.GET("", controllers.GetPaymentMethods)
		payments.POST("", controllers.AddPaymentMethod)
		payments.DELETE("/:id", controllers.DeletePaymentMethod)
	}
}
