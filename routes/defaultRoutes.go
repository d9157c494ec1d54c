package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
