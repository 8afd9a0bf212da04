// Package repository loads and stores route, bus and operator snapshots.
package repository

import (
	"context"
	"errors"

	"mybusnow/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// RouteRepository lists the current route snapshot, stops ordered by seq.
type RouteRepository interface {
	List(ctx context.Context) ([]models.Route, error)
}

// BusRepository lists the current bus snapshot.
type BusRepository interface {
	List(ctx context.Context) ([]models.Bus, error)
}

// RouteStore is the write side used by operators.
type RouteStore interface {
	RouteRepository
	Create(ctx context.Context, route *models.Route) error
	ReplaceStops(ctx context.Context, routeID uint, stops []models.Stop) (models.Route, error)
	Delete(ctx context.Context, routeID uint) error
}

// BusUpdate carries the fields of a bus snapshot an operator may change.
// Nil fields are left untouched.
type BusUpdate struct {
	RouteNumber *string           `json:"route_number"`
	CurrentLat  *float64          `json:"current_lat"`
	CurrentLng  *float64          `json:"current_lng"`
	NextStop    *string           `json:"next_stop"`
	EtaMinutes  *int              `json:"eta_minutes"`
	Occupancy   *models.Occupancy `json:"occupancy"`
}

// BusStore is the write side used by operators.
type BusStore interface {
	BusRepository
	Create(ctx context.Context, bus *models.Bus) error
	Update(ctx context.Context, busID uint, update BusUpdate) (models.Bus, error)
	Delete(ctx context.Context, busID uint) error
}

// UserRepository finds operator accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}
