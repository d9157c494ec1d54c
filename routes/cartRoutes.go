package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/controllers"
)

func CartRoutes(server *gin.Engine) {
	server.GET("/cart", controllers.GetCart)
	server.POST("/cart/:productId", controllers.AddToCart)
	server.DELETE("/cart/:productId", controllers.RemoveFromCart)
}
