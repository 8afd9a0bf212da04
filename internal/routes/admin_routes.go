package routes

import (
	"github.com/gin-gonic/gin"

	"mybusnow/internal/controllers"
	"mybusnow/internal/middleware"
	"mybusnow/internal/models"
)

func AdminRoutes(r *gin.Engine, ctrl *controllers.Controller, auth *middleware.Auth) {
	r.POST("/admin/login", ctrl.LoginAdmin)

	admin := r.Group("/admin")
	admin.Use(auth.RequireAuthWithRole(models.RoleAdmin))
	{
		admin.POST("/routes", ctrl.CreateRoute)
		admin.PUT("/routes/:id/stops", ctrl.ReplaceRouteStops)
		admin.DELETE("/routes/:id", ctrl.DeleteRoute)

		admin.POST("/buses", ctrl.CreateBus)
		admin.PATCH("/buses/:id", ctrl.UpdateBus)
		admin.DELETE("/buses/:id", ctrl.DeleteBus)
	}
}
