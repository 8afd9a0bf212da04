package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mybusnow/internal/models"
)

func TestFocus(t *testing.T) {
	start := MapView{Center: LatLng{1, 2}, Zoom: 9}

	tests := []struct {
		name     string
		event    FocusEvent
		expected MapView
	}{
		{
			name:     "bus selected",
			event:    BusSelected{Bus: models.Bus{CurrentLat: 17.4, CurrentLng: 78.5}},
			expected: MapView{Center: LatLng{17.4, 78.5}, Zoom: 15},
		},
		{
			name:     "stop selected",
			event:    StopSelected{Stop: models.Stop{Lat: 16.5, Lng: 80.6}},
			expected: MapView{Center: LatLng{16.5, 80.6}, Zoom: 16},
		},
		{
			name:     "route selected uses first stop",
			event:    RouteSelected{Route: secunderabadRoute()},
			expected: MapView{Center: LatLng{17.4399, 78.4983}, Zoom: 14},
		},
		{
			name:     "route without stops keeps view",
			event:    RouteSelected{Route: models.Route{RouteNumber: "0"}},
			expected: start,
		},
		{
			name:     "nil event keeps view",
			event:    nil,
			expected: start,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Focus(start, tt.event))
		})
	}
}

func TestFocusLastEventWins(t *testing.T) {
	view := DefaultMapView
	view = Focus(view, StopSelected{Stop: models.Stop{Lat: 1, Lng: 1}})
	view = Focus(view, BusSelected{Bus: models.Bus{CurrentLat: 2, CurrentLng: 2}})
	assert.Equal(t, MapView{Center: LatLng{2, 2}, Zoom: BusZoom}, view)
}
