package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"mybusnow/internal/assistant"
	"mybusnow/internal/metrics"
	"mybusnow/internal/middleware"
	"mybusnow/internal/models"
	"mybusnow/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRoutes struct {
	routes  []models.Route
	err     error
	created []models.Route
}

func (f *fakeRoutes) List(context.Context) ([]models.Route, error) {
	return f.routes, f.err
}

func (f *fakeRoutes) Create(_ context.Context, route *models.Route) error {
	if f.err != nil {
		return f.err
	}
	route.ID = uint(len(f.routes) + 1)
	f.routes = append(f.routes, *route)
	f.created = append(f.created, *route)
	return nil
}

func (f *fakeRoutes) ReplaceStops(_ context.Context, routeID uint, stops []models.Stop) (models.Route, error) {
	for i := range f.routes {
		if f.routes[i].ID == routeID {
			f.routes[i].Stops = stops
			return f.routes[i], nil
		}
	}
	return models.Route{}, repository.ErrNotFound
}

func (f *fakeRoutes) Delete(_ context.Context, routeID uint) error {
	for i := range f.routes {
		if f.routes[i].ID == routeID {
			f.routes = append(f.routes[:i], f.routes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeBuses struct {
	buses       []models.Bus
	err         error
	invalidated int
}

func (f *fakeBuses) List(context.Context) ([]models.Bus, error) {
	return f.buses, f.err
}

func (f *fakeBuses) Create(_ context.Context, bus *models.Bus) error {
	if f.err != nil {
		return f.err
	}
	bus.ID = uint(len(f.buses) + 1)
	f.buses = append(f.buses, *bus)
	return nil
}

func (f *fakeBuses) Update(_ context.Context, busID uint, update repository.BusUpdate) (models.Bus, error) {
	for i := range f.buses {
		if f.buses[i].ID == busID {
			repository.ApplyBusUpdate(&f.buses[i], update)
			return f.buses[i], nil
		}
	}
	return models.Bus{}, repository.ErrNotFound
}

func (f *fakeBuses) Delete(_ context.Context, busID uint) error {
	for i := range f.buses {
		if f.buses[i].ID == busID {
			f.buses = append(f.buses[:i], f.buses[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeBuses) Invalidate() {
	f.invalidated++
}

type fakeUsers struct {
	users map[string]models.User
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

type fakeLLM struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeLLM) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type testEnv struct {
	routes *fakeRoutes
	buses  *fakeBuses
	users  *fakeUsers
	llm    *fakeLLM
	auth   *middleware.Auth
	ctrl   *Controller
}

func newTestEnv() *testEnv {
	env := &testEnv{
		routes: &fakeRoutes{routes: testRoutes()},
		buses:  &fakeBuses{buses: testBuses()},
		users:  &fakeUsers{users: map[string]models.User{}},
		llm:    &fakeLLM{reply: "Take route 5K."},
		auth:   middleware.NewAuth("test-secret"),
	}
	m := metrics.New()
	env.ctrl = New(Deps{
		Routes:    env.routes,
		Buses:     env.buses,
		Users:     env.users,
		Assistant: assistant.New(env.llm, m.ObserveAssistant),
		Auth:      env.auth,
		Metrics:   m,
	})
	return env
}

func (env *testEnv) router() *gin.Engine {
	r := gin.New()
	c := env.ctrl
	r.GET("/healthz", c.Healthz)
	r.GET("/routes", c.ListRoutes)
	r.GET("/routes/:id", c.GetRoute)
	r.GET("/routes/:id/shape", c.GetRouteShape)
	r.GET("/buses", c.ListBuses)
	r.POST("/buses/refresh", c.RefreshBuses)
	r.POST("/search", c.Search)
	r.POST("/map/focus", c.Focus)
	r.GET("/stops/nearby", c.NearbyStops)
	r.GET("/occupancy", c.Occupancy)
	r.GET("/assistant/greeting", c.Greeting)
	r.POST("/assistant/chat", c.Chat)
	r.POST("/admin/login", c.LoginAdmin)
	r.POST("/admin/routes", c.CreateRoute)
	r.PUT("/admin/routes/:id/stops", c.ReplaceRouteStops)
	r.DELETE("/admin/routes/:id", c.DeleteRoute)
	r.POST("/admin/buses", c.CreateBus)
	r.PATCH("/admin/buses/:id", c.UpdateBus)
	r.DELETE("/admin/buses/:id", c.DeleteBus)
	return r
}

func (env *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.router().ServeHTTP(rec, req)
	return rec
}

func testRoutes() []models.Route {
	return []models.Route{
		{
			ID:          1,
			RouteNumber: "10",
			RouteName:   "Secunderabad - Jubilee Hills",
			StartPoint:  "Secunderabad",
			EndPoint:    "Jubilee Hills",
			Fare:        20,
			Stops: []models.Stop{
				{ID: 11, RouteID: 1, Seq: 1, Name: "Secunderabad", Lat: 17.4399, Lng: 78.4983},
				{ID: 12, RouteID: 1, Seq: 2, Name: "Jubilee Hills", Lat: 17.4326, Lng: 78.4071},
			},
		},
		{
			ID:              2,
			RouteNumber:     "5K",
			RouteName:       "Benz Circle - Pandit Nehru Bus Station",
			RouteNameTelugu: "బెంజ్ సర్కిల్ - పండిట్ నెహ్రూ బస్ స్టేషన్",
			StartPoint:      "Benz Circle",
			EndPoint:        "Pandit Nehru Bus Station",
			Fare:            15,
			Color:           "#F97316",
			Stops: []models.Stop{
				{ID: 21, RouteID: 2, Seq: 1, Name: "Benz Circle", Lat: 16.4995, Lng: 80.6559},
				{ID: 22, RouteID: 2, Seq: 2, Name: "Governorpet", Lat: 16.5129, Lng: 80.6297},
				{ID: 23, RouteID: 2, Seq: 3, Name: "Pandit Nehru Bus Station", Lat: 16.5095, Lng: 80.6187},
			},
		},
		{
			ID:          3,
			RouteNumber: "99",
			RouteName:   "Depot shuttle",
			Stops: []models.Stop{
				{ID: 31, RouteID: 3, Seq: 1, Name: "Depot", Lat: 16.52, Lng: 80.63},
			},
		},
	}
}

func testBuses() []models.Bus {
	return []models.Bus{
		{ID: 1, BusNumber: "AP16Z1234", RouteNumber: "5K", CurrentLat: 16.505, CurrentLng: 80.64, NextStop: "Governorpet", EtaMinutes: 4, Occupancy: models.OccupancyMedium},
		{ID: 2, BusNumber: "TS09A1111", RouteNumber: "10", CurrentLat: 17.436, CurrentLng: 78.45, EtaMinutes: 7, Occupancy: models.OccupancyLow},
		{ID: 3, BusNumber: "AP16X0001", RouteNumber: "300", CurrentLat: 16.51, CurrentLng: 80.62, Occupancy: models.OccupancyHigh},
	}
}
