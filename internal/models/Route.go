package models

import (
	"time"
)

// Route is a fixed bus line with an ordered stop sequence.
// RouteNumber is indexed but not unique; lookups by number take the first
// route in collection order.
type Route struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RouteNumber     string  `gorm:"index;not null" json:"route_number"`
	RouteName       string  `json:"route_name"`
	RouteNameTelugu string  `json:"route_name_telugu,omitempty"`
	StartPoint      string  `json:"start_point"`
	EndPoint        string  `json:"end_point"`
	Fare            float64 `json:"fare"`
	Frequency       string  `json:"frequency"`
	Color           string  `json:"color,omitempty"`

	// Geometry is the stop line stored as WKB, rebuilt whenever stops change.
	Geometry []byte `gorm:"type:bytea" json:"-"`

	Stops []Stop `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"stops"`
}
