package models

// Stop is a named point along a route. Seq orders stops within their route
// and the ordered stops define the line drawn for that route.
type Stop struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	RouteID uint `gorm:"index" json:"route_id"`
	Seq     int  `json:"seq"`

	Name        string  `json:"name"`
	NameTelugu  string  `json:"name_telugu,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	ArrivalTime string  `json:"arrival_time,omitempty"`
	Distance    string  `json:"distance,omitempty"`
}
