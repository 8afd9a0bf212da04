package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"

	"mybusnow/internal/models"
	"mybusnow/internal/transit"
)

// RouteResponse mirrors models.Route with the stored geometry rendered as
// a GeoJSON string and the effective line color.
type RouteResponse struct {
	ID              uint          `json:"id"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	RouteNumber     string        `json:"route_number"`
	RouteName       string        `json:"route_name"`
	RouteNameTelugu string        `json:"route_name_telugu,omitempty"`
	StartPoint      string        `json:"start_point"`
	EndPoint        string        `json:"end_point"`
	Fare            float64       `json:"fare"`
	Frequency       string        `json:"frequency"`
	Color           string        `json:"color"`
	Geometry        string        `json:"geometry,omitempty"`
	Stops           []models.Stop `json:"stops"`
}

// toRouteResponse converts a models.Route to a RouteResponse
func toRouteResponse(route models.Route) RouteResponse {
	jsonGeom, err := convertWKBToGeoJSON(route.Geometry)
	if err != nil {
		logrus.WithError(err).WithField("route_id", route.ID).Warn("Stored route geometry is unreadable")
	}
	stops := route.Stops
	if stops == nil {
		stops = []models.Stop{}
	}
	return RouteResponse{
		ID:              route.ID,
		CreatedAt:       route.CreatedAt,
		UpdatedAt:       route.UpdatedAt,
		RouteNumber:     route.RouteNumber,
		RouteName:       route.RouteName,
		RouteNameTelugu: route.RouteNameTelugu,
		StartPoint:      route.StartPoint,
		EndPoint:        route.EndPoint,
		Fare:            route.Fare,
		Frequency:       route.Frequency,
		Color:           transit.RouteColor(route),
		Geometry:        jsonGeom,
		Stops:           stops,
	}
}

func toRouteResponses(routes []models.Route) []RouteResponse {
	out := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, toRouteResponse(r))
	}
	return out
}

// convertWKBToGeoJSON converts WKB bytes into a GeoJSON string
func convertWKBToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListRoutes returns every route with its ordered stops.
func (h *Controller) ListRoutes(c *gin.Context) {
	routes, err := h.routes.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, "List routes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": toRouteResponses(routes)})
}

// GetRoute returns a single route.
func (h *Controller) GetRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	routes, err := h.routes.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, "Get route", err)
		return
	}
	route, found := transit.RouteByID(routes, id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": toRouteResponse(route)})
}

// GetRouteShape returns the line to draw for a route as GeoJSON and as an
// encoded polyline.
func (h *Controller) GetRouteShape(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	routes, err := h.routes.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, "Get route shape", err)
		return
	}
	route, found := transit.RouteByID(routes, id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	feature, err := transit.RouteGeoJSON(route)
	if errors.Is(err, transit.ErrTooFewStops) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("route_id", id).Error("GetRouteShape: encode geojson")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build route shape"})
		return
	}
	encoded, err := transit.EncodeRoutePolyline(route)
	if err != nil {
		logrus.WithError(err).WithField("route_id", id).Error("GetRouteShape: encode polyline")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build route shape"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"route_id": route.ID,
		"color":    transit.RouteColor(route),
		"geojson":  json.RawMessage(feature),
		"polyline": encoded,
	})
}

type stopInput struct {
	Name        string  `json:"name" binding:"required"`
	NameTelugu  string  `json:"name_telugu"`
	Seq         int     `json:"seq"`
	Lat         float64 `json:"lat" binding:"gte=-90,lte=90"`
	Lng         float64 `json:"lng" binding:"gte=-180,lte=180"`
	ArrivalTime string  `json:"arrival_time"`
	Distance    string  `json:"distance"`
}

func toStops(in []stopInput) []models.Stop {
	stops := make([]models.Stop, 0, len(in))
	for _, s := range in {
		stops = append(stops, models.Stop{
			Name:        s.Name,
			NameTelugu:  s.NameTelugu,
			Seq:         s.Seq,
			Lat:         s.Lat,
			Lng:         s.Lng,
			ArrivalTime: s.ArrivalTime,
			Distance:    s.Distance,
		})
	}
	return stops
}

// CreateRoute lets an operator add a route with its stops.
func (h *Controller) CreateRoute(c *gin.Context) {
	var input struct {
		RouteNumber     string      `json:"route_number" binding:"required"`
		RouteName       string      `json:"route_name" binding:"required"`
		RouteNameTelugu string      `json:"route_name_telugu"`
		StartPoint      string      `json:"start_point"`
		EndPoint        string      `json:"end_point"`
		Fare            float64     `json:"fare" binding:"gte=0"`
		Frequency       string      `json:"frequency"`
		Color           string      `json:"color" binding:"omitempty,hexcolor"`
		Stops           []stopInput `json:"stops" binding:"dive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	route := models.Route{
		RouteNumber:     input.RouteNumber,
		RouteName:       input.RouteName,
		RouteNameTelugu: input.RouteNameTelugu,
		StartPoint:      input.StartPoint,
		EndPoint:        input.EndPoint,
		Fare:            input.Fare,
		Frequency:       input.Frequency,
		Color:           input.Color,
		Stops:           toStops(input.Stops),
	}
	if err := h.routes.Create(c.Request.Context(), &route); err != nil {
		respondStoreError(c, "Create route", err)
		return
	}

	logrus.WithFields(logrus.Fields{"route_id": route.ID, "route_number": route.RouteNumber}).Info("Route created")
	c.JSON(http.StatusCreated, gin.H{"route": toRouteResponse(route)})
}

// ReplaceRouteStops swaps the stop list of a route.
func (h *Controller) ReplaceRouteStops(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		Stops []stopInput `json:"stops" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := h.routes.ReplaceStops(c.Request.Context(), id, toStops(input.Stops))
	if err != nil {
		respondStoreError(c, "Replace stops", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": toRouteResponse(route)})
}

// DeleteRoute removes a route and its stops.
func (h *Controller) DeleteRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.routes.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, "Delete route", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Route deleted successfully"})
}
