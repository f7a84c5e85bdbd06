package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

const earthRadiusKm = 6371.0

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	if precision == 0 || precision > 12 {
		precision = 6
	}
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash returns the center of the geohash cell
func DecodeGeohash(hash string) models.Location {
	lat, lng := geohash.DecodeCenter(hash)
	return models.Location{Latitude: lat, Longitude: lng}
}

// DistanceKm is the great-circle distance between two points (haversine)
func DistanceKm(a, b models.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// CoveringHashes returns the cell containing location and its eight
// neighbours, which together cover any point within one cell width.
func CoveringHashes(location models.Location, precision uint) []string {
	center := EncodeLocation(location, precision)
	return append([]string{center}, geohash.Neighbors(center)...)
}
