package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// DefaultGeohashPrecision gives ~5 km cells, enough for region bucketing
const DefaultGeohashPrecision uint = 5

// EncodeLocation converts a location to a geohash string
func EncodeLocation(loc models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(loc.Latitude, loc.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// CalculateDistance returns the distance between two points in kilometers
// using the Haversine formula
func CalculateDistance(a, b models.Location) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
