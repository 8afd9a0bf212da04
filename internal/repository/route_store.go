package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"mybusnow/internal/models"
	"mybusnow/internal/transit"
)

// GormRouteStore keeps routes and their stops in postgres.
type GormRouteStore struct {
	db *gorm.DB
}

func NewGormRouteStore(db *gorm.DB) *GormRouteStore {
	return &GormRouteStore{db: db}
}

func preloadOrderedStops(db *gorm.DB) *gorm.DB {
	return db.Order("stops.seq ASC, stops.id ASC")
}

// List returns every route ordered by id, with stops ordered by seq.
func (s *GormRouteStore) List(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	err := s.db.WithContext(ctx).
		Preload("Stops", preloadOrderedStops).
		Order("id ASC").
		Find(&routes).Error
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return routes, nil
}

// Create inserts a route with its stops and stores the stop line geometry.
func (s *GormRouteStore) Create(ctx context.Context, route *models.Route) error {
	orderStops(route.Stops)
	geometry, err := transit.RouteWKB(*route)
	if err != nil {
		return fmt.Errorf("encode route geometry: %w", err)
	}
	route.Geometry = geometry

	if err := s.db.WithContext(ctx).Create(route).Error; err != nil {
		return fmt.Errorf("create route: %w", err)
	}
	return nil
}

// ReplaceStops swaps the stops of a route in one transaction.
func (s *GormRouteStore) ReplaceStops(ctx context.Context, routeID uint, stops []models.Stop) (models.Route, error) {
	var route models.Route
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&route, routeID).Error; err != nil {
			return err
		}
		if err := tx.Where("route_id = ?", route.ID).Delete(&models.Stop{}).Error; err != nil {
			return fmt.Errorf("delete stops: %w", err)
		}

		for i := range stops {
			stops[i].ID = 0
			stops[i].RouteID = route.ID
		}
		orderStops(stops)
		if len(stops) > 0 {
			if err := tx.Create(&stops).Error; err != nil {
				return fmt.Errorf("create stops: %w", err)
			}
		}

		route.Stops = stops
		geometry, err := transit.RouteWKB(route)
		if err != nil {
			return fmt.Errorf("encode route geometry: %w", err)
		}
		route.Geometry = geometry
		return tx.Model(&models.Route{ID: route.ID}).Update("geometry", geometry).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Route{}, ErrNotFound
	}
	if err != nil {
		return models.Route{}, err
	}
	return route, nil
}

// Delete removes a route and its stops.
func (s *GormRouteStore) Delete(ctx context.Context, routeID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("route_id = ?", routeID).Delete(&models.Stop{}).Error; err != nil {
			return fmt.Errorf("delete stops: %w", err)
		}
		res := tx.Delete(&models.Route{}, routeID)
		if res.Error != nil {
			return fmt.Errorf("delete route: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// orderStops numbers the stops and sorts them by seq so the stored line runs
// in stop order.
func orderStops(stops []models.Stop) {
	numberStops(stops)
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Seq < stops[j].Seq })
}

// numberStops fills in missing sequence numbers from slice order.
func numberStops(stops []models.Stop) {
	for i := range stops {
		if stops[i].Seq == 0 {
			stops[i].Seq = i + 1
		}
	}
}
