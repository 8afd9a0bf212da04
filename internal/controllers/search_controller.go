package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mybusnow/internal/models"
	"mybusnow/internal/transit"
)

type searchRequest struct {
	From string           `json:"from" binding:"required"`
	To   string           `json:"to" binding:"required"`
	Map  *transit.MapView `json:"map"`
}

// SearchResponse is what the rider sees after submitting a search.
type SearchResponse struct {
	State         transit.State   `json:"state"`
	Routes        []RouteResponse `json:"routes"`
	Buses         []BusResponse   `json:"buses"`
	SelectedRoute *RouteResponse  `json:"selected_route,omitempty"`
	NearbyStops   []models.Stop   `json:"nearby_stops"`
	Map           transit.MapView `json:"map"`
}

// Search finds routes serving both endpoints and the buses on them, and
// moves the map to the first matching route. The caller may send its current
// map view; an empty result leaves it unchanged.
func (h *Controller) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both from and to are required"})
		return
	}

	routes, buses, err := h.snapshot(c.Request.Context())
	if err != nil {
		respondStoreError(c, "Search", err)
		return
	}

	view := transit.DefaultMapView
	if req.Map != nil {
		view = *req.Map
	}
	session := transit.NewSession(view)
	result := session.Submit(routes, buses, transit.SearchQuery{From: req.From, To: req.To})
	h.metrics.ObserveSearch(!result.Empty())

	resp := SearchResponse{
		State:       session.State(),
		Routes:      toRouteResponses(result.Routes),
		Buses:       toBusResponses(result.Buses, routes),
		NearbyStops: session.NearbyStops(),
		Map:         session.MapView(),
	}
	if selected, ok := session.SelectedRoute(); ok {
		r := toRouteResponse(selected)
		resp.SelectedRoute = &r
	}

	logrus.WithFields(logrus.Fields{
		"from":   req.From,
		"to":     req.To,
		"routes": len(result.Routes),
		"buses":  len(result.Buses),
	}).Debug("Search served")
	c.JSON(http.StatusOK, resp)
}
