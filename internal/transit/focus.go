package transit

import (
	"mybusnow/internal/models"
)

const (
	RouteZoom = 14
	BusZoom   = 15
	StopZoom  = 16
)

// LatLng is a [lat, lng] pair, serialized as a two element array.
type LatLng [2]float64

// MapView is the center and zoom the map should display.
type MapView struct {
	Center LatLng `json:"center"`
	Zoom   int    `json:"zoom"`
}

// DefaultMapView frames Vijayawada before the rider interacts with the map.
var DefaultMapView = MapView{Center: LatLng{16.5062, 80.6480}, Zoom: 12}

// FocusEvent is a rider selection that moves the map.
type FocusEvent interface {
	focus(current MapView) MapView
}

// RouteSelected centers on the first stop of the route.
type RouteSelected struct {
	Route models.Route
}

// BusSelected centers on the bus position.
type BusSelected struct {
	Bus models.Bus
}

// StopSelected centers on the stop.
type StopSelected struct {
	Stop models.Stop
}

func (e RouteSelected) focus(current MapView) MapView {
	if len(e.Route.Stops) == 0 {
		return current
	}
	first := e.Route.Stops[0]
	return MapView{Center: LatLng{first.Lat, first.Lng}, Zoom: RouteZoom}
}

func (e BusSelected) focus(MapView) MapView {
	return MapView{Center: LatLng{e.Bus.CurrentLat, e.Bus.CurrentLng}, Zoom: BusZoom}
}

func (e StopSelected) focus(MapView) MapView {
	return MapView{Center: LatLng{e.Stop.Lat, e.Stop.Lng}, Zoom: StopZoom}
}

// Focus returns the view after ev. The result replaces current entirely;
// a route without stops leaves current as it was.
func Focus(current MapView, ev FocusEvent) MapView {
	if ev == nil {
		return current
	}
	return ev.focus(current)
}
