package models

import (
	"time"
)

// Bus is a live vehicle snapshot. RouteNumber is a soft key into Route;
// a bus whose route is unknown is still valid.
type Bus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	BusNumber   string    `gorm:"uniqueIndex;not null" json:"bus_number"`
	RouteNumber string    `gorm:"index" json:"route_number"`
	CurrentLat  float64   `json:"current_lat"`
	CurrentLng  float64   `json:"current_lng"`
	NextStop    string    `json:"next_stop"`
	EtaMinutes  int       `json:"eta_minutes"`
	Occupancy   Occupancy `gorm:"type:varchar(16);default:low" json:"occupancy"`
}
