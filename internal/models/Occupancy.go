package models

// Occupancy is the coarse crowding level of a bus.
type Occupancy string

const (
	OccupancyLow    Occupancy = "low"
	OccupancyMedium Occupancy = "medium"
	OccupancyHigh   Occupancy = "high"
)

var occupancyLabels = map[Occupancy]string{
	OccupancyLow:    "Available",
	OccupancyMedium: "Moderate",
	OccupancyHigh:   "Crowded",
}

var occupancyColors = map[Occupancy]string{
	OccupancyLow:    "#22C55E",
	OccupancyMedium: "#EAB308",
	OccupancyHigh:   "#EF4444",
}

// Occupancies lists the vocabulary in display order.
func Occupancies() []Occupancy {
	return []Occupancy{OccupancyLow, OccupancyMedium, OccupancyHigh}
}

// Label returns the display label, or "" for values outside the vocabulary.
func (o Occupancy) Label() string {
	return occupancyLabels[o]
}

// Color returns the display color, or "" for values outside the vocabulary.
func (o Occupancy) Color() string {
	return occupancyColors[o]
}

func (o Occupancy) Valid() bool {
	_, ok := occupancyLabels[o]
	return ok
}
