package matching

import (
	"time"

	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/utils"
)

type predicate func(t *models.Trip) bool

// Filter returns the trips matching every active predicate of c, in input
// order. Dates and hours are evaluated in loc (UTC when nil). Empty criteria
// return trips unchanged.
func Filter(trips []models.Trip, c Criteria, loc *time.Location) []models.Trip {
	if c.IsEmpty() {
		return trips
	}

	preds := c.predicates(loc)
	out := make([]models.Trip, 0, len(trips))
	for i := range trips {
		if all(preds, &trips[i]) {
			out = append(out, trips[i])
		}
	}
	return out
}

// Matches reports whether a single trip satisfies c.
func Matches(t models.Trip, c Criteria, loc *time.Location) bool {
	return all(c.predicates(loc), &t)
}

func all(preds []predicate, t *models.Trip) bool {
	for _, p := range preds {
		if !p(t) {
			return false
		}
	}
	return true
}

func (c Criteria) predicates(loc *time.Location) []predicate {
	if loc == nil {
		loc = time.UTC
	}

	var preds []predicate

	if c.Origin != "" {
		needle := utils.FoldText(c.Origin)
		preds = append(preds, func(t *models.Trip) bool {
			return containsFolded(t.Origin.Address, needle)
		})
	}
	if c.Destination != "" {
		needle := utils.FoldText(c.Destination)
		preds = append(preds, func(t *models.Trip) bool {
			return containsFolded(t.Destination.Address, needle)
		})
	}
	if c.Date != "" {
		preds = append(preds, dateIs(c.Date, loc))
	}
	if c.Seats > 0 {
		seats := c.Seats
		preds = append(preds, func(t *models.Trip) bool {
			return t.SeatsAvailable >= seats
		})
	}
	if c.TimeOfDay != "" {
		bucket := c.TimeOfDay
		preds = append(preds, func(t *models.Trip) bool {
			return bucket.Contains(t.DepartureAt.In(loc).Hour())
		})
	}
	if c.wantsPackages() {
		preds = append(preds, c.carriesPackage)
	}
	if c.hasProximity() {
		near := *c.Near
		preds = append(preds, func(t *models.Trip) bool {
			if t.Origin.Location.IsZero() {
				return false
			}
			return utils.DistanceKm(near.Location, t.Origin.Location) <= near.RadiusKm
		})
	}

	return preds
}

func containsFolded(haystack, foldedNeedle string) bool {
	return foldedNeedle == "" || utils.ContainsFolded(haystack, foldedNeedle)
}

// dateIs compares calendar days in loc. A date that does not parse matches
// nothing rather than everything.
func dateIs(date string, loc *time.Location) predicate {
	day, err := time.ParseInLocation(models.DateLayout, date, loc)
	if err != nil {
		return func(*models.Trip) bool { return false }
	}
	y, m, d := day.Date()
	return func(t *models.Trip) bool {
		ty, tm, td := t.DepartureAt.In(loc).Date()
		return ty == y && tm == m && td == d
	}
}

// carriesPackage checks the parcel policy. A trip limit of zero means the
// driver declared no limit for that dimension.
func (c Criteria) carriesPackage(t *models.Trip) bool {
	p := t.Packages
	if !p.Accepts {
		return false
	}
	if c.PackageWeightKg > 0 && p.MaxWeightKg > 0 && c.PackageWeightKg > p.MaxWeightKg {
		return false
	}
	if c.PackageVolumeL > 0 && p.MaxVolumeL > 0 && c.PackageVolumeL > p.MaxVolumeL {
		return false
	}
	if c.MaxPackagePrice > 0 && p.BasePrice > c.MaxPackagePrice {
		return false
	}
	return true
}
