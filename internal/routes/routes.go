package routes

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"mybusnow/internal/controllers"
	"mybusnow/internal/logger"
	"mybusnow/internal/metrics"
	"mybusnow/internal/middleware"
)

// Options carries everything the router needs besides the controller.
type Options struct {
	Auth      *middleware.Auth
	Limiter   *middleware.RateLimiter
	Metrics   *metrics.Metrics
	LogWriter io.Writer
}

// SetupRouter builds the gin engine with every route group mounted.
func SetupRouter(ctrl *controllers.Controller, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if opts.LogWriter != nil {
		r.Use(logger.RequestLogger(opts.LogWriter))
	}

	r.GET("/healthz", ctrl.Healthz)
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	api := r.Group("/api")
	RouteRoutes(api, ctrl)
	BusRoutes(api, ctrl)
	MapRoutes(api, ctrl)
	AssistantRoutes(api, ctrl, opts.Limiter)

	AdminRoutes(r, ctrl, opts.Auth)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return r
}
