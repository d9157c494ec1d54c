package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/controllers"
	"github.com/melodias-store/melodias-api/middlewares"
	"github.com/melodias-store/melodias-api/models"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)

	staff := server.Group("/product",
		middlewares.RequireAuth(),
		middlewares.RequireRole(models.RoleEmployee, models.RoleAdmin))
	{
		staff.POST("", controllers.CreateProduct)
		staff.PUT("/:id", controllers.UpdateProduct)
		staff.DELETE("/:id", controllers.DeleteProduct)
		staff.POST("/:id/image", controllers.UploadProductImage)
	}
}
