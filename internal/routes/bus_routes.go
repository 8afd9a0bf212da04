package routes

import (
	"github.com/gin-gonic/gin"

	"mybusnow/internal/controllers"
)

func BusRoutes(api *gin.RouterGroup, ctrl *controllers.Controller) {
	buses := api.Group("/buses")
	{
		buses.GET("", ctrl.ListBuses)
		buses.POST("/refresh", ctrl.RefreshBuses)
	}
	api.GET("/occupancy", ctrl.Occupancy)
}
