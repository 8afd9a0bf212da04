package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mybusnow/internal/models"
	"mybusnow/internal/transit"
)

const (
	defaultNearbyRadius = 1000.0
	defaultNearbyLimit  = 5
	maxNearbyRadius     = 20000.0
)

type focusRequest struct {
	Map   *transit.MapView `json:"map"`
	Event struct {
		Kind    string `json:"kind" binding:"required,oneof=route bus stop"`
		RouteID uint   `json:"route_id"`
		BusID   uint   `json:"bus_id"`
		StopID  uint   `json:"stop_id"`
	} `json:"event" binding:"required"`
}

// Focus applies one selection (route, bus or stop) to the caller's map view.
func (h *Controller) Focus(c *gin.Context) {
	var req focusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid focus event: " + err.Error()})
		return
	}

	routes, buses, err := h.snapshot(c.Request.Context())
	if err != nil {
		respondStoreError(c, "Focus", err)
		return
	}

	view := transit.DefaultMapView
	if req.Map != nil {
		view = *req.Map
	}
	session := transit.NewSession(view)

	switch req.Event.Kind {
	case "route":
		route, ok := transit.RouteByID(routes, req.Event.RouteID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
			return
		}
		session.SelectRoute(route)
	case "bus":
		bus, ok := transit.BusByID(buses, req.Event.BusID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found"})
			return
		}
		session.SelectBus(bus)
	case "stop":
		stop, ok := findStop(routes, req.Event.StopID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stop not found"})
			return
		}
		session.SelectStop(stop)
	}
	h.metrics.ObserveFocus(req.Event.Kind)

	c.JSON(http.StatusOK, gin.H{"map": session.MapView(), "nearby_stops": session.NearbyStops()})
}

func findStop(routes []models.Route, id uint) (models.Stop, bool) {
	for _, route := range routes {
		for _, stop := range route.Stops {
			if stop.ID == id {
				return stop, true
			}
		}
	}
	return models.Stop{}, false
}

// NearbyStops lists stops around a point, closest first.
func (h *Controller) NearbyStops(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lat"})
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lng"})
		return
	}
	radius := defaultNearbyRadius
	if v := c.Query("radius"); v != "" {
		radius, err = strconv.ParseFloat(v, 64)
		if err != nil || radius <= 0 || radius > maxNearbyRadius {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radius"})
			return
		}
	}
	limit := defaultNearbyLimit
	if v := c.Query("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
	}

	routes, err := h.routes.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, "Nearby stops", err)
		return
	}

	stops := transit.NewStopIndex(routes).Near(lat, lng, radius, limit)
	c.JSON(http.StatusOK, gin.H{"stops": stops})
}

type occupancyResponse struct {
	Value models.Occupancy `json:"value"`
	Label string           `json:"label"`
	Color string           `json:"color"`
}

// Occupancy lists the crowding vocabulary with display values.
func (h *Controller) Occupancy(c *gin.Context) {
	out := make([]occupancyResponse, 0, 3)
	for _, o := range models.Occupancies() {
		out = append(out, occupancyResponse{Value: o, Label: o.Label(), Color: o.Color()})
	}
	c.JSON(http.StatusOK, gin.H{"occupancy": out})
}
