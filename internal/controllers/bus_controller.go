package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mybusnow/internal/models"
	"mybusnow/internal/repository"
	"mybusnow/internal/transit"
)

// RouteSummary is the route context shown on a bus card.
type RouteSummary struct {
	RouteName       string  `json:"route_name"`
	RouteNameTelugu string  `json:"route_name_telugu,omitempty"`
	StartPoint      string  `json:"start_point"`
	EndPoint        string  `json:"end_point"`
	Fare            float64 `json:"fare"`
}

// BusResponse is a bus with its occupancy display values and, when a route
// with the same number exists, that route's context.
type BusResponse struct {
	models.Bus
	OccupancyLabel string        `json:"occupancy_label,omitempty"`
	OccupancyColor string        `json:"occupancy_color,omitempty"`
	Route          *RouteSummary `json:"route,omitempty"`
}

func toBusResponse(bus models.Bus, routes []models.Route) BusResponse {
	resp := BusResponse{
		Bus:            bus,
		OccupancyLabel: bus.Occupancy.Label(),
		OccupancyColor: bus.Occupancy.Color(),
	}
	if route, ok := transit.RouteForBus(routes, bus); ok {
		resp.Route = &RouteSummary{
			RouteName:       route.RouteName,
			RouteNameTelugu: route.RouteNameTelugu,
			StartPoint:      route.StartPoint,
			EndPoint:        route.EndPoint,
			Fare:            route.Fare,
		}
	}
	return resp
}

func toBusResponses(buses []models.Bus, routes []models.Route) []BusResponse {
	out := make([]BusResponse, 0, len(buses))
	for _, b := range buses {
		out = append(out, toBusResponse(b, routes))
	}
	return out
}

// ListBuses returns every live bus with optional route context.
func (h *Controller) ListBuses(c *gin.Context) {
	routes, buses, err := h.snapshot(c.Request.Context())
	if err != nil {
		respondStoreError(c, "List buses", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buses": toBusResponses(buses, routes)})
}

// RefreshBuses drops the cached bus snapshot and returns a fresh one.
func (h *Controller) RefreshBuses(c *gin.Context) {
	h.buses.Invalidate()
	h.ListBuses(c)
}

// CreateBus registers a bus; occupancy defaults to low.
func (h *Controller) CreateBus(c *gin.Context) {
	var input struct {
		BusNumber   string           `json:"bus_number" binding:"required"`
		RouteNumber string           `json:"route_number" binding:"required"`
		CurrentLat  float64          `json:"current_lat" binding:"gte=-90,lte=90"`
		CurrentLng  float64          `json:"current_lng" binding:"gte=-180,lte=180"`
		NextStop    string           `json:"next_stop"`
		EtaMinutes  int              `json:"eta_minutes" binding:"gte=0"`
		Occupancy   models.Occupancy `json:"occupancy" binding:"omitempty,oneof=low medium high"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bus input: " + err.Error()})
		return
	}

	bus := models.Bus{
		BusNumber:   input.BusNumber,
		RouteNumber: input.RouteNumber,
		CurrentLat:  input.CurrentLat,
		CurrentLng:  input.CurrentLng,
		NextStop:    input.NextStop,
		EtaMinutes:  input.EtaMinutes,
		Occupancy:   input.Occupancy,
	}
	if err := h.buses.Create(c.Request.Context(), &bus); err != nil {
		respondStoreError(c, "Create bus", err)
		return
	}

	logrus.WithFields(logrus.Fields{"bus_id": bus.ID, "bus_number": bus.BusNumber}).Info("Bus created")
	c.JSON(http.StatusCreated, gin.H{"bus": bus})
}

// UpdateBus records a new snapshot (position, eta, occupancy...) for a bus.
func (h *Controller) UpdateBus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update repository.BusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}
	if msg := validateBusUpdate(update); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	bus, err := h.buses.Update(c.Request.Context(), id, update)
	if err != nil {
		respondStoreError(c, "Update bus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus": bus})
}

func validateBusUpdate(u repository.BusUpdate) string {
	switch {
	case u.CurrentLat != nil && (*u.CurrentLat < -90 || *u.CurrentLat > 90):
		return "current_lat out of range"
	case u.CurrentLng != nil && (*u.CurrentLng < -180 || *u.CurrentLng > 180):
		return "current_lng out of range"
	case u.EtaMinutes != nil && *u.EtaMinutes < 0:
		return "eta_minutes must not be negative"
	case u.Occupancy != nil && !u.Occupancy.Valid():
		return "occupancy must be one of low, medium, high"
	}
	return ""
}

func (h *Controller) DeleteBus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.buses.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, "Delete bus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bus deleted"})
}
