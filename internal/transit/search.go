package transit

import (
	"mybusnow/internal/models"
)

// SearchQuery is a free-text pair of endpoints typed by the rider.
type SearchQuery struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SearchResult is the outcome of one search. Selected is the first matched
// route, or nil when nothing matched.
type SearchResult struct {
	Routes   []models.Route `json:"routes"`
	Buses    []models.Bus   `json:"buses"`
	Selected *models.Route  `json:"selected_route,omitempty"`
}

// Empty reports whether no route matched.
func (r SearchResult) Empty() bool {
	return len(r.Routes) == 0
}

// FindRoutes keeps the routes that have a stop matching q.From and a stop
// matching q.To. The order of those stops along the route is not checked.
// Input order is preserved.
func FindRoutes(routes []models.Route, q SearchQuery) []models.Route {
	matched := make([]models.Route, 0)
	for _, route := range routes {
		if hasMatchingStop(route.Stops, q.From) && hasMatchingStop(route.Stops, q.To) {
			matched = append(matched, route)
		}
	}
	return matched
}

func hasMatchingStop(stops []models.Stop, query string) bool {
	for _, stop := range stops {
		if MatchesStop(stop.Name, query) {
			return true
		}
	}
	return false
}

// FindBuses keeps the buses whose route number equals the route number of
// one of the matched routes. Input order is preserved.
func FindBuses(buses []models.Bus, matched []models.Route) []models.Bus {
	numbers := make(map[string]struct{}, len(matched))
	for _, route := range matched {
		numbers[route.RouteNumber] = struct{}{}
	}

	found := make([]models.Bus, 0)
	for _, bus := range buses {
		if _, ok := numbers[bus.RouteNumber]; ok {
			found = append(found, bus)
		}
	}
	return found
}

// Search matches routes for q and collects the buses serving them.
func Search(routes []models.Route, buses []models.Bus, q SearchQuery) SearchResult {
	matched := FindRoutes(routes, q)
	if len(matched) == 0 {
		return SearchResult{Routes: []models.Route{}, Buses: []models.Bus{}}
	}

	selected := matched[0]
	return SearchResult{
		Routes:   matched,
		Buses:    FindBuses(buses, matched),
		Selected: &selected,
	}
}

// RouteForBus returns the first route serving the bus's route number.
func RouteForBus(routes []models.Route, bus models.Bus) (models.Route, bool) {
	for _, route := range routes {
		if route.RouteNumber == bus.RouteNumber {
			return route, true
		}
	}
	return models.Route{}, false
}

// RouteByID returns the route with the given id.
func RouteByID(routes []models.Route, id uint) (models.Route, bool) {
	for _, route := range routes {
		if route.ID == id {
			return route, true
		}
	}
	return models.Route{}, false
}

// BusByID returns the bus with the given id.
func BusByID(buses []models.Bus, id uint) (models.Bus, bool) {
	for _, bus := range buses {
		if bus.ID == id {
			return bus, true
		}
	}
	return models.Bus{}, false
}
