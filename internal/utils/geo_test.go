package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	chicago := models.Location{Latitude: 41.8781, Longitude: -87.6298}
	detroit := models.Location{Latitude: 42.3314, Longitude: -83.0458}

	distance := CalculateDistance(chicago, detroit)

	// Great-circle distance Chicago-Detroit is ~382 km
	assert.InDelta(t, 382.0, distance, 10.0)

	// Distance to self is zero
	assert.InDelta(t, 0.0, CalculateDistance(chicago, chicago), 0.001)

	// Symmetric
	assert.InDelta(t, distance, CalculateDistance(detroit, chicago), 0.001)
}

func TestEncodeLocation(t *testing.T) {
	loc := models.Location{Latitude: 41.8781, Longitude: -87.6298}

	hash := EncodeLocation(loc, DefaultGeohashPrecision)
	assert.Len(t, hash, int(DefaultGeohashPrecision))

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, loc.Latitude, lat, 0.1)
	assert.InDelta(t, loc.Longitude, lng, 0.1)
}
