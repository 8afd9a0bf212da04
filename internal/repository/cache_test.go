package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mybusnow/internal/models"
)

type countingRouteStore struct {
	routes []models.Route
	lists  int
	err    error
}

func (s *countingRouteStore) List(context.Context) ([]models.Route, error) {
	s.lists++
	if s.err != nil {
		return nil, s.err
	}
	return s.routes, nil
}

func (s *countingRouteStore) Create(_ context.Context, route *models.Route) error {
	route.ID = uint(len(s.routes) + 1)
	s.routes = append(s.routes, *route)
	return nil
}

func (s *countingRouteStore) ReplaceStops(_ context.Context, routeID uint, stops []models.Stop) (models.Route, error) {
	for i := range s.routes {
		if s.routes[i].ID == routeID {
			s.routes[i].Stops = stops
			return s.routes[i], nil
		}
	}
	return models.Route{}, ErrNotFound
}

func (s *countingRouteStore) Delete(context.Context, uint) error {
	return ErrNotFound
}

type countingBusStore struct {
	buses []models.Bus
	lists int
}

func (s *countingBusStore) List(context.Context) ([]models.Bus, error) {
	s.lists++
	return s.buses, nil
}

func (s *countingBusStore) Create(_ context.Context, bus *models.Bus) error {
	s.buses = append(s.buses, *bus)
	return nil
}

func (s *countingBusStore) Update(_ context.Context, busID uint, update BusUpdate) (models.Bus, error) {
	for i := range s.buses {
		if s.buses[i].ID == busID {
			ApplyBusUpdate(&s.buses[i], update)
			return s.buses[i], nil
		}
	}
	return models.Bus{}, ErrNotFound
}

func (s *countingBusStore) Delete(context.Context, uint) error {
	return nil
}

func TestCachedRoutesServesFromCache(t *testing.T) {
	store := &countingRouteStore{routes: []models.Route{{ID: 1, RouteNumber: "10"}}}
	cached := NewCachedRoutes(store, time.Minute)
	ctx := context.Background()

	first, err := cached.List(ctx)
	require.NoError(t, err)
	second, err := cached.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.lists)
}

func TestCachedRoutesWritesInvalidate(t *testing.T) {
	store := &countingRouteStore{}
	cached := NewCachedRoutes(store, time.Minute)
	ctx := context.Background()

	routes, err := cached.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, routes)

	require.NoError(t, cached.Create(ctx, &models.Route{RouteNumber: "5K"}))

	routes, err = cached.List(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "5K", routes[0].RouteNumber)
	assert.Equal(t, 2, store.lists)

	_, err = cached.ReplaceStops(ctx, 99, nil)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = cached.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, store.lists)
}

func TestCachedRoutesDoesNotCacheErrors(t *testing.T) {
	store := &countingRouteStore{err: errors.New("db down")}
	cached := NewCachedRoutes(store, time.Minute)

	_, err := cached.List(context.Background())
	assert.Error(t, err)

	store.err = nil
	_, err = cached.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, store.lists)
}

func TestCachedBusesRefresh(t *testing.T) {
	store := &countingBusStore{buses: []models.Bus{{ID: 1, BusNumber: "AP16Z1001", RouteNumber: "10"}}}
	cached := NewCachedBuses(store, time.Minute)
	ctx := context.Background()

	_, err := cached.List(ctx)
	require.NoError(t, err)
	_, err = cached.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.lists)

	cached.Invalidate()
	_, err = cached.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, store.lists)
}

func TestCachedBusesUpdate(t *testing.T) {
	store := &countingBusStore{buses: []models.Bus{{ID: 1, BusNumber: "AP16Z1001", RouteNumber: "10"}}}
	cached := NewCachedBuses(store, time.Minute)
	ctx := context.Background()

	_, err := cached.List(ctx)
	require.NoError(t, err)

	eta := 7
	high := models.OccupancyHigh
	bus, err := cached.Update(ctx, 1, BusUpdate{EtaMinutes: &eta, Occupancy: &high})
	require.NoError(t, err)
	assert.Equal(t, 7, bus.EtaMinutes)

	buses, err := cached.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.OccupancyHigh, buses[0].Occupancy)
	assert.Equal(t, 2, store.lists)
}

func TestApplyBusUpdateLeavesNilFields(t *testing.T) {
	bus := models.Bus{RouteNumber: "10", CurrentLat: 1, CurrentLng: 2, NextStop: "Paradise", EtaMinutes: 3}
	lat := 17.4
	ApplyBusUpdate(&bus, BusUpdate{CurrentLat: &lat})

	assert.Equal(t, 17.4, bus.CurrentLat)
	assert.Equal(t, 2.0, bus.CurrentLng)
	assert.Equal(t, "10", bus.RouteNumber)
	assert.Equal(t, "Paradise", bus.NextStop)
	assert.Equal(t, 3, bus.EtaMinutes)
}

func TestNumberStops(t *testing.T) {
	stops := []models.Stop{{Name: "a"}, {Name: "b", Seq: 7}, {Name: "c"}}
	numberStops(stops)
	assert.Equal(t, []int{1, 7, 3}, []int{stops[0].Seq, stops[1].Seq, stops[2].Seq})
}
