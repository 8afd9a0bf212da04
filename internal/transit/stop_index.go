package transit

import (
	"math"
	"sort"

	"github.com/tidwall/rtree"

	"mybusnow/internal/models"
)

const metersPerDegreeLat = 111320.0

// NearbyStop is a stop found near a point, with the route that serves it.
type NearbyStop struct {
	models.Stop
	RouteNumber    string  `json:"route_number"`
	DistanceMeters float64 `json:"distance_meters"`
}

// StopIndex is an R-tree over the stops of a route snapshot.
type StopIndex struct {
	tree *rtree.RTree
}

type indexedStop struct {
	stop        models.Stop
	routeNumber string
}

// NewStopIndex indexes every stop of routes by [lat, lng].
func NewStopIndex(routes []models.Route) *StopIndex {
	tree := &rtree.RTree{}
	for _, route := range routes {
		for _, stop := range route.Stops {
			point := [2]float64{stop.Lat, stop.Lng}
			tree.Insert(point, point, indexedStop{stop: stop, routeNumber: route.RouteNumber})
		}
	}
	return &StopIndex{tree: tree}
}

// Len is the number of indexed stops.
func (idx *StopIndex) Len() int {
	return idx.tree.Len()
}

// Near returns stops within radiusMeters of (lat, lng), closest first.
// A limit of zero or less returns every stop in range.
func (idx *StopIndex) Near(lat, lng, radiusMeters float64, limit int) []NearbyStop {
	dLat := radiusMeters / metersPerDegreeLat
	dLng := radiusMeters / (metersPerDegreeLat * math.Max(math.Cos(toRadians(lat)), 1e-6))

	results := make([]NearbyStop, 0)
	idx.tree.Search(
		[2]float64{lat - dLat, lng - dLng},
		[2]float64{lat + dLat, lng + dLng},
		func(min, max [2]float64, data interface{}) bool {
			entry, ok := data.(indexedStop)
			if !ok {
				return true
			}
			d := DistanceMeters(lat, lng, entry.stop.Lat, entry.stop.Lng)
			if d > radiusMeters {
				return true
			}
			stop := entry.stop
			stop.Distance = FormatDistance(d)
			results = append(results, NearbyStop{Stop: stop, RouteNumber: entry.routeNumber, DistanceMeters: d})
			return true
		},
	)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
