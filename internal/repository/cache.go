package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"mybusnow/internal/models"
)

const (
	routesCacheKey = "routes"
	busesCacheKey  = "buses"
)

// CachedRoutes serves route snapshots from a TTL cache in front of a store.
// Writes go straight to the store and drop the cached snapshot.
type CachedRoutes struct {
	store RouteStore
	cache *cache.Cache
}

func NewCachedRoutes(store RouteStore, ttl time.Duration) *CachedRoutes {
	return &CachedRoutes{store: store, cache: cache.New(ttl, 2*ttl)}
}

func (c *CachedRoutes) List(ctx context.Context) ([]models.Route, error) {
	if cached, ok := c.cache.Get(routesCacheKey); ok {
		return cached.([]models.Route), nil
	}
	routes, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(routesCacheKey, routes)
	logrus.WithField("count", len(routes)).Debug("Route snapshot refreshed")
	return routes, nil
}

func (c *CachedRoutes) Create(ctx context.Context, route *models.Route) error {
	defer c.Invalidate()
	return c.store.Create(ctx, route)
}

func (c *CachedRoutes) ReplaceStops(ctx context.Context, routeID uint, stops []models.Stop) (models.Route, error) {
	defer c.Invalidate()
	return c.store.ReplaceStops(ctx, routeID, stops)
}

func (c *CachedRoutes) Delete(ctx context.Context, routeID uint) error {
	defer c.Invalidate()
	return c.store.Delete(ctx, routeID)
}

// Invalidate drops the cached snapshot so the next List reads the store.
func (c *CachedRoutes) Invalidate() {
	c.cache.Delete(routesCacheKey)
}

// CachedBuses serves bus snapshots from a TTL cache in front of a store.
type CachedBuses struct {
	store BusStore
	cache *cache.Cache
}

func NewCachedBuses(store BusStore, ttl time.Duration) *CachedBuses {
	return &CachedBuses{store: store, cache: cache.New(ttl, 2*ttl)}
}

func (c *CachedBuses) List(ctx context.Context) ([]models.Bus, error) {
	if cached, ok := c.cache.Get(busesCacheKey); ok {
		return cached.([]models.Bus), nil
	}
	buses, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(busesCacheKey, buses)
	logrus.WithField("count", len(buses)).Debug("Bus snapshot refreshed")
	return buses, nil
}

func (c *CachedBuses) Create(ctx context.Context, bus *models.Bus) error {
	defer c.Invalidate()
	return c.store.Create(ctx, bus)
}

func (c *CachedBuses) Update(ctx context.Context, busID uint, update BusUpdate) (models.Bus, error) {
	defer c.Invalidate()
	return c.store.Update(ctx, busID, update)
}

func (c *CachedBuses) Delete(ctx context.Context, busID uint) error {
	defer c.Invalidate()
	return c.store.Delete(ctx, busID)
}

// Invalidate drops the cached snapshot; it backs the manual refresh trigger.
func (c *CachedBuses) Invalidate() {
	c.cache.Delete(busesCacheKey)
}
