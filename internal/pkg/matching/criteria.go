// Package matching filters published trips against a traveller's or a
// sender's search criteria. Every function here is pure: callers fetch the
// candidates and the package only decides which of them qualify.
package matching

import (
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// Proximity restricts results to trips leaving within RadiusKm of a point.
type Proximity struct {
	Location models.Location `json:"location"`
	RadiusKm float64         `json:"radius_km"`
}

// Criteria is a conjunction of optional predicates. A zero field is inactive.
type Criteria struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	// Date is a calendar day, YYYY-MM-DD, in the search timezone.
	Date      string `json:"date,omitempty"`
	Seats     int    `json:"seats,omitempty"`
	TimeOfDay Bucket `json:"time_of_day,omitempty"`

	// Packages asks only for trips that carry parcels. Setting any of the
	// package dimensions below implies it.
	Packages        bool    `json:"packages,omitempty"`
	PackageWeightKg float64 `json:"package_weight_kg,omitempty"`
	PackageVolumeL  float64 `json:"package_volume_l,omitempty"`
	MaxPackagePrice float64 `json:"max_package_price,omitempty"`

	Near *Proximity `json:"near,omitempty"`
}

// IsEmpty reports whether no predicate is active.
func (c Criteria) IsEmpty() bool {
	return c.Origin == "" &&
		c.Destination == "" &&
		c.Date == "" &&
		c.Seats <= 0 &&
		c.TimeOfDay == "" &&
		!c.wantsPackages() &&
		!c.hasProximity()
}

func (c Criteria) wantsPackages() bool {
	return c.Packages || c.PackageWeightKg > 0 || c.PackageVolumeL > 0 || c.MaxPackagePrice > 0
}

func (c Criteria) hasProximity() bool {
	return c.Near != nil && c.Near.RadiusKm > 0
}
