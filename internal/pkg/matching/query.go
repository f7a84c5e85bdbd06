package matching

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names understood by FromValues.
const (
	ParamOrigin      = "origin"
	ParamDestination = "destination"
	ParamDate        = "date"
	ParamSeats       = "seats"
	ParamTimeOfDay   = "time_of_day"
	ParamPackages    = "packages"
	ParamWeight      = "package_weight_kg"
	ParamVolume      = "package_volume_l"
	ParamMaxPrice    = "max_package_price"
	ParamLat         = "lat"
	ParamLng         = "lng"
	ParamRadius      = "radius_km"
)

// FromValues reads criteria from a query string. Numeric values that do not
// parse, or are negative, leave their predicate inactive.
func FromValues(v url.Values) Criteria {
	c := Criteria{
		Origin:          strings.TrimSpace(v.Get(ParamOrigin)),
		Destination:     strings.TrimSpace(v.Get(ParamDestination)),
		Date:            strings.TrimSpace(v.Get(ParamDate)),
		Seats:           atoi(v.Get(ParamSeats)),
		TimeOfDay:       Bucket(strings.ToLower(strings.TrimSpace(v.Get(ParamTimeOfDay)))),
		PackageWeightKg: atof(v.Get(ParamWeight)),
		PackageVolumeL:  atof(v.Get(ParamVolume)),
		MaxPackagePrice: atof(v.Get(ParamMaxPrice)),
	}
	c.Packages, _ = strconv.ParseBool(v.Get(ParamPackages))

	if radius := atof(v.Get(ParamRadius)); radius > 0 {
		lat, latErr := strconv.ParseFloat(v.Get(ParamLat), 64)
		lng, lngErr := strconv.ParseFloat(v.Get(ParamLng), 64)
		if latErr == nil && lngErr == nil {
			c.Near = &Proximity{RadiusKm: radius}
			c.Near.Location.Latitude = lat
			c.Near.Location.Longitude = lng
		}
	}
	return c
}

// Values encodes c as query parameters, omitting inactive predicates.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	setString(v, ParamOrigin, c.Origin)
	setString(v, ParamDestination, c.Destination)
	setString(v, ParamDate, c.Date)
	if c.Seats > 0 {
		v.Set(ParamSeats, strconv.Itoa(c.Seats))
	}
	setString(v, ParamTimeOfDay, string(c.TimeOfDay))
	if c.Packages {
		v.Set(ParamPackages, "true")
	}
	setFloat(v, ParamWeight, c.PackageWeightKg)
	setFloat(v, ParamVolume, c.PackageVolumeL)
	setFloat(v, ParamMaxPrice, c.MaxPackagePrice)
	if c.hasProximity() {
		v.Set(ParamLat, strconv.FormatFloat(c.Near.Location.Latitude, 'f', -1, 64))
		v.Set(ParamLng, strconv.FormatFloat(c.Near.Location.Longitude, 'f', -1, 64))
		setFloat(v, ParamRadius, c.Near.RadiusKm)
	}
	return v
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func atof(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func setString(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setFloat(v url.Values, key string, val float64) {
	if val > 0 {
		v.Set(key, strconv.FormatFloat(val, 'f', -1, 64))
	}
}
