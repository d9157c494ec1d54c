package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/controllers"
	"github.com/melodias-store/melodias-api/middlewares"
	"github.com/melodias-store/melodias-api/models"
)

func AdminRoutes(server *gin.Engine) {
	staff := server.Group("/admin",
		middlewares.RequireAuth(),
		middlewares.RequireRole(models.RoleEmployee, models.RoleAdmin))
	{
		staff.GET("/orders", controllers.GetOrders)
		staff.PATCH("/orders/:orderId", controllers.UpdateOrderStatus)
		staff.GET("/report", controllers.ExportSalesReport)
	}

	admin := server.Group("/admin/users",
		middlewares.RequireAuth(),
		middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("", controllers.GetUsers)
		admin.POST("", controllers.CreateEmployee)
		admin.PATCH("/:id/active", controllers.ToggleUserActive)
	}
}
