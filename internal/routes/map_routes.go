package routes

import (
	"github.com/gin-gonic/gin"

	"mybusnow/internal/controllers"
)

func MapRoutes(api *gin.RouterGroup, ctrl *controllers.Controller) {
	api.POST("/map/focus", ctrl.Focus)
	api.GET("/stops/nearby", ctrl.NearbyStops)
}
