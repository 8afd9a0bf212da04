package transit

import (
	"mybusnow/internal/models"
)

// State is the search lifecycle of a Session.
type State string

const (
	StateIdle     State = "idle"
	StateSearched State = "searched"
)

const nearbyStopCount = 5

// Session carries the rider's current search result, selected route and map
// view. It is owned by a single caller and is not safe for concurrent use.
type Session struct {
	state    State
	result   SearchResult
	selected *models.Route
	view     MapView
}

// NewSession starts an idle session showing view.
func NewSession(view MapView) *Session {
	return &Session{state: StateIdle, view: view}
}

// Submit runs a search and replaces the previous result. When a route
// matched, the first one becomes the selected route and the map moves to it.
// An empty result keeps both the previous selection and the map view.
func (s *Session) Submit(routes []models.Route, buses []models.Bus, q SearchQuery) SearchResult {
	s.result = Search(routes, buses, q)
	s.state = StateSearched
	if s.result.Selected != nil {
		s.SelectRoute(*s.result.Selected)
	}
	return s.result
}

// SelectRoute marks route as selected and frames it.
func (s *Session) SelectRoute(route models.Route) MapView {
	s.selected = &route
	s.view = Focus(s.view, RouteSelected{Route: route})
	return s.view
}

// SelectBus frames the bus.
func (s *Session) SelectBus(bus models.Bus) MapView {
	s.view = Focus(s.view, BusSelected{Bus: bus})
	return s.view
}

// SelectStop frames the stop.
func (s *Session) SelectStop(stop models.Stop) MapView {
	s.view = Focus(s.view, StopSelected{Stop: stop})
	return s.view
}

func (s *Session) State() State {
	return s.state
}

// Result returns the last search result and whether a search has run.
func (s *Session) Result() (SearchResult, bool) {
	return s.result, s.state == StateSearched
}

func (s *Session) MapView() MapView {
	return s.view
}

// SelectedRoute returns the selected route, if any.
func (s *Session) SelectedRoute() (models.Route, bool) {
	if s.selected == nil {
		return models.Route{}, false
	}
	return *s.selected, true
}

// NearbyStops returns the first stops of the selected route, shown while the
// session is idle.
func (s *Session) NearbyStops() []models.Stop {
	if s.selected == nil {
		return []models.Stop{}
	}
	stops := s.selected.Stops
	if len(stops) > nearbyStopCount {
		stops = stops[:nearbyStopCount]
	}
	out := make([]models.Stop, len(stops))
	copy(out, stops)
	return out
}
