package transit

import (
	"encoding/binary"
	"errors"
	"strconv"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-polyline"

	"mybusnow/internal/models"
)

// DefaultRouteColor is used when a route has no color of its own.
const DefaultRouteColor = "#0EA5E9"

// ErrTooFewStops is returned for routes that cannot form a line.
var ErrTooFewStops = errors.New("route needs at least two stops to form a line")

// RouteColor returns the route's color or the default.
func RouteColor(route models.Route) string {
	if route.Color != "" {
		return route.Color
	}
	return DefaultRouteColor
}

// RouteLineString builds the route line from its stops in order.
// Coordinates are (lng, lat) as GeoJSON expects.
func RouteLineString(route models.Route) (*geom.LineString, error) {
	if len(route.Stops) < 2 {
		return nil, ErrTooFewStops
	}
	coords := make([]geom.Coord, 0, len(route.Stops))
	for _, stop := range route.Stops {
		coords = append(coords, geom.Coord{stop.Lng, stop.Lat})
	}
	return geom.NewLineString(geom.XY).SetCoords(coords)
}

// RouteGeoJSON returns the route line as a GeoJSON feature carrying the
// route number and color.
func RouteGeoJSON(route models.Route) ([]byte, error) {
	line, err := RouteLineString(route)
	if err != nil {
		return nil, err
	}
	feature := &geojson.Feature{
		ID:       strconv.FormatUint(uint64(route.ID), 10),
		Geometry: line,
		Properties: map[string]interface{}{
			"route_number": route.RouteNumber,
			"color":        RouteColor(route),
		},
	}
	return feature.MarshalJSON()
}

// RouteWKB encodes the route line for storage. Routes with fewer than two
// stops have no geometry and yield nil.
func RouteWKB(route models.Route) ([]byte, error) {
	line, err := RouteLineString(route)
	if errors.Is(err, ErrTooFewStops) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return wkb.Marshal(line, binary.LittleEndian)
}

// EncodeRoutePolyline returns the stops as a Google encoded polyline.
func EncodeRoutePolyline(route models.Route) (string, error) {
	if len(route.Stops) < 2 {
		return "", ErrTooFewStops
	}
	coords := make([][]float64, 0, len(route.Stops))
	for _, stop := range route.Stops {
		coords = append(coords, []float64{stop.Lat, stop.Lng})
	}
	return string(polyline.EncodeCoords(coords)), nil
}
