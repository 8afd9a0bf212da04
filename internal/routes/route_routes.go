package routes

import (
	"github.com/gin-gonic/gin"

	"mybusnow/internal/controllers"
)

func RouteRoutes(api *gin.RouterGroup, ctrl *controllers.Controller) {
	routes := api.Group("/routes")
	{
		routes.GET("", ctrl.ListRoutes)
		routes.GET("/:id", ctrl.GetRoute)
		routes.GET("/:id/shape", ctrl.GetRouteShape)
	}
	api.POST("/search", ctrl.Search)
}
