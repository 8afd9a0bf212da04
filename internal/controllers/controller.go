package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mybusnow/internal/assistant"
	"mybusnow/internal/metrics"
	"mybusnow/internal/middleware"
	"mybusnow/internal/models"
	"mybusnow/internal/repository"
)

// Invalidator drops a cached snapshot.
type Invalidator interface {
	Invalidate()
}

// RefreshableBusStore is a bus store with a manual refresh trigger.
type RefreshableBusStore interface {
	repository.BusStore
	Invalidator
}

// Controller serves the HTTP API on top of injected collaborators.
type Controller struct {
	routes    repository.RouteStore
	buses     RefreshableBusStore
	users     repository.UserRepository
	assistant *assistant.Assistant
	auth      *middleware.Auth
	metrics   *metrics.Metrics
}

// Deps lists the collaborators of a Controller.
type Deps struct {
	Routes    repository.RouteStore
	Buses     RefreshableBusStore
	Users     repository.UserRepository
	Assistant *assistant.Assistant
	Auth      *middleware.Auth
	Metrics   *metrics.Metrics
}

func New(deps Deps) *Controller {
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	return &Controller{
		routes:    deps.Routes,
		buses:     deps.Buses,
		users:     deps.Users,
		assistant: deps.Assistant,
		auth:      deps.Auth,
		metrics:   deps.Metrics,
	}
}

// snapshot loads routes and buses for one request.
func (h *Controller) snapshot(ctx context.Context) ([]models.Route, []models.Bus, error) {
	routes, err := h.routes.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	buses, err := h.buses.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return routes, buses, nil
}

// respondStoreError maps repository errors onto HTTP responses.
func respondStoreError(c *gin.Context, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
		return
	}
	logrus.WithError(err).WithField("request_id", c.GetString("request_id")).Errorf("%s: store error", op)
	c.JSON(http.StatusInternalServerError, gin.H{"error": op + " failed"})
}
