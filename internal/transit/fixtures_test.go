package transit

import (
	"mybusnow/internal/models"
)

func stop(name string, lat, lng float64) models.Stop {
	return models.Stop{Name: name, Lat: lat, Lng: lng}
}

func secunderabadRoute() models.Route {
	return models.Route{
		ID:          1,
		RouteNumber: "10",
		RouteName:   "Secunderabad - Jubilee Hills",
		Fare:        20,
		Stops: []models.Stop{
			stop("Secunderabad", 17.4399, 78.4983),
			stop("Jubilee Hills", 17.4326, 78.4071),
		},
	}
}

func testRoutes() []models.Route {
	return []models.Route{
		secunderabadRoute(),
		{
			ID:          2,
			RouteNumber: "5K",
			RouteName:   "Benz Circle - Pandit Nehru Bus Station",
			Fare:        15,
			Stops: []models.Stop{
				stop("Benz Circle", 16.4995, 80.6559),
				stop("Governorpet", 16.5129, 80.6297),
				stop("Pandit Nehru Bus Station", 16.5095, 80.6187),
			},
		},
		{
			ID:          3,
			RouteNumber: "47",
			RouteName:   "Jubilee Hills - Secunderabad Express",
			Fare:        25,
			Stops: []models.Stop{
				stop("Jubilee Hills Checkpost", 17.4300, 78.4100),
				stop("Paradise", 17.4435, 78.4867),
				stop("Secunderabad Station", 17.4344, 78.5013),
			},
		},
	}
}

func testBuses() []models.Bus {
	return []models.Bus{
		{ID: 1, BusNumber: "AP16Z1001", RouteNumber: "10", CurrentLat: 17.4, CurrentLng: 78.5, Occupancy: models.OccupancyLow},
		{ID: 2, BusNumber: "AP16Z1002", RouteNumber: "5K", CurrentLat: 16.5, CurrentLng: 80.64, Occupancy: models.OccupancyHigh},
		{ID: 3, BusNumber: "AP16Z1003", RouteNumber: "47", CurrentLat: 17.44, CurrentLng: 78.48, Occupancy: models.OccupancyMedium},
		{ID: 4, BusNumber: "AP16Z1004", RouteNumber: "100", CurrentLat: 17.41, CurrentLng: 78.45},
		{ID: 5, BusNumber: "AP16Z1005", RouteNumber: "10", CurrentLat: 17.42, CurrentLng: 78.44},
	}
}
