package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusActive    TripStatus = "ACTIVO"
	TripStatusCompleted TripStatus = "COMPLETADO"
	TripStatusCancelled TripStatus = "CANCELADO"
)

// PackagePolicy describes whether and which packages a trip carries
type PackagePolicy struct {
	Accepts     bool    `json:"accepts"`
	MaxWeightKg float64 `json:"max_weight_kg"`
	MaxVolumeL  float64 `json:"max_volume_l"`
	BasePrice   float64 `json:"base_price"`
}

// Trip represents a driver-published ride offer (viajes)
type Trip struct {
	ID             uuid.UUID     `json:"id"`
	DriverID       uuid.UUID     `json:"driver_id"`
	VehicleID      uuid.UUID     `json:"vehicle_id"`
	Origin         Place         `json:"origin"`
	Destination    Place         `json:"destination"`
	OriginGeohash  string        `json:"origin_geohash,omitempty"`
	DepartureAt    time.Time     `json:"departure_at"`
	SeatsTotal     int           `json:"seats_total"`
	SeatsAvailable int           `json:"seats_available"`
	PricePerSeat   float64       `json:"price_per_seat"`
	Packages       PackagePolicy `json:"packages"`
	Status         TripStatus    `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// TripRequest is the payload to publish a trip
type TripRequest struct {
	VehicleID    string        `json:"vehicle_id"`
	Origin       Place         `json:"origin"`
	Destination  Place         `json:"destination"`
	DepartureAt  time.Time     `json:"departure_at"`
	Seats        int           `json:"seats"`
	PricePerSeat float64       `json:"price_per_seat"`
	Packages     PackagePolicy `json:"packages"`
	Notes        string        `json:"notes"`
}

// TripDTO is used for database operations to flatten the nested structs
type TripDTO struct {
	ID                   uuid.UUID  `db:"id"`
	DriverID             uuid.UUID  `db:"driver_id"`
	VehicleID            uuid.UUID  `db:"vehicle_id"`
	OriginAddress        string     `db:"origin_address"`
	OriginLatitude       float64    `db:"origin_latitude"`
	OriginLongitude      float64    `db:"origin_longitude"`
	DestinationAddress   string     `db:"destination_address"`
	DestinationLatitude  float64    `db:"destination_latitude"`
	DestinationLongitude float64    `db:"destination_longitude"`
	OriginGeohash        string     `db:"origin_geohash"`
	DepartureAt          time.Time  `db:"departure_at"`
	SeatsTotal           int        `db:"seats_total"`
	SeatsAvailable       int        `db:"seats_available"`
	PricePerSeat         float64    `db:"price_per_seat"`
	AcceptsPackages      bool       `db:"accepts_packages"`
	MaxPackageWeightKg   float64    `db:"max_package_weight_kg"`
	MaxPackageVolumeL    float64    `db:"max_package_volume_l"`
	PackageBasePrice     float64    `db:"package_base_price"`
	Status               TripStatus `db:"status"`
	Notes                string     `db:"notes"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

// ToDTO converts a Trip to a TripDTO
func (t *Trip) ToDTO() *TripDTO {
	return &TripDTO{
		ID:                   t.ID,
		DriverID:             t.DriverID,
		VehicleID:            t.VehicleID,
		OriginAddress:        t.Origin.Address,
		OriginLatitude:       t.Origin.Location.Latitude,
		OriginLongitude:      t.Origin.Location.Longitude,
		DestinationAddress:   t.Destination.Address,
		DestinationLatitude:  t.Destination.Location.Latitude,
		DestinationLongitude: t.Destination.Location.Longitude,
		OriginGeohash:        t.OriginGeohash,
		DepartureAt:          t.DepartureAt,
		SeatsTotal:           t.SeatsTotal,
		SeatsAvailable:       t.SeatsAvailable,
		PricePerSeat:         t.PricePerSeat,
		AcceptsPackages:      t.Packages.Accepts,
		MaxPackageWeightKg:   t.Packages.MaxWeightKg,
		MaxPackageVolumeL:    t.Packages.MaxVolumeL,
		PackageBasePrice:     t.Packages.BasePrice,
		Status:               t.Status,
		Notes:                t.Notes,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

// ToTrip converts a TripDTO to a Trip
func (d *TripDTO) ToTrip() *Trip {
	return &Trip{
		ID:        d.ID,
		DriverID:  d.DriverID,
		VehicleID: d.VehicleID,
		Origin: Place{
			Address:  d.OriginAddress,
			Location: Location{Latitude: d.OriginLatitude, Longitude: d.OriginLongitude},
		},
		Destination: Place{
			Address:  d.DestinationAddress,
			Location: Location{Latitude: d.DestinationLatitude, Longitude: d.DestinationLongitude},
		},
		OriginGeohash:  d.OriginGeohash,
		DepartureAt:    d.DepartureAt,
		SeatsTotal:     d.SeatsTotal,
		SeatsAvailable: d.SeatsAvailable,
		PricePerSeat:   d.PricePerSeat,
		Packages: PackagePolicy{
			Accepts:     d.AcceptsPackages,
			MaxWeightKg: d.MaxPackageWeightKg,
			MaxVolumeL:  d.MaxPackageVolumeL,
			BasePrice:   d.PackageBasePrice,
		},
		Status:    d.Status,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
