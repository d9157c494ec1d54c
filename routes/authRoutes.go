package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/controllers"
	"github.com/melodias-store/melodias-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
	}

	profile := server.Group("/profile", middlewares.RequireAuth())
	{
		profile.GET("", controllers.GetProfile)
		profile.PUT("", controllers.UpdateProfile)
		profile.POST("/deactivate", controllers.DeactivateAccount)
	}
}
