package routes

import (
	"github.com/gin-gonic/gin"

	"mybusnow/internal/controllers"
	"mybusnow/internal/middleware"
)

// AssistantRoutes mounts the chat endpoints behind the per-client limiter.
func AssistantRoutes(api *gin.RouterGroup, ctrl *controllers.Controller, limiter *middleware.RateLimiter) {
	assistant := api.Group("/assistant")
	if limiter != nil {
		assistant.Use(limiter.Middleware())
	}
	{
		assistant.GET("/greeting", ctrl.Greeting)
		assistant.POST("/chat", ctrl.Chat)
	}
}
