package models

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// IsZero reports whether no coordinates were provided
func (l Location) IsZero() bool {
	return l.Latitude == 0 && l.Longitude == 0
}

// Place is a free-text address with optional coordinates
type Place struct {
	Address  string   `json:"address"`
	Location Location `json:"location"`
}
