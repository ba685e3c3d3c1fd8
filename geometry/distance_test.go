package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearingDegrees(t *testing.T) {
	origin := GeoPoint{Lat: 0, Lon: 0}
	tests := []struct {
		name string
		to   GeoPoint
		want float64
	}{
		{"north", GeoPoint{Lat: 1, Lon: 0}, 0},
		{"east", GeoPoint{Lat: 0, Lon: 1}, 90},
		{"south", GeoPoint{Lat: -1, Lon: 0}, 180},
		{"west", GeoPoint{Lat: 0, Lon: -1}, 270},
		{"same point", origin, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BearingDegrees(origin, tt.to), 1e-6)
		})
	}
}

func TestNormalizeBearing(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeBearing(360))
	assert.Equal(t, 270.0, NormalizeBearing(-90))
	assert.Equal(t, 45.0, NormalizeBearing(765))
}

func TestDestination_RoundTrip(t *testing.T) {
	start := GeoPoint{Lat: 45, Lon: -93}
	end := Destination(start, 30, 10000)

	assert.InDelta(t, 10000, DistanceMeters(start, end), 1)
	assert.InDelta(t, 30, BearingDegrees(start, end), 0.1)
}

func TestProjectOntoSegment(t *testing.T) {
	a := GeoPoint{Lat: 0, Lon: 0}
	b := GeoPoint{Lat: 0, Lon: 0.002}

	mid := ProjectOntoSegment(GeoPoint{Lat: 0.0005, Lon: 0.001}, a, b)
	assert.InDelta(t, 0.5, mid.Fraction, 1e-6)
	assert.InDelta(t, 0.001, mid.Point.Lon, 1e-9)
	assert.InDelta(t, 55.6, mid.DistanceMeters, 0.5)

	before := ProjectOntoSegment(GeoPoint{Lat: 0, Lon: -0.001}, a, b)
	assert.Equal(t, 0.0, before.Fraction)
	assert.Equal(t, a, before.Point)

	degenerate := ProjectOntoSegment(GeoPoint{Lat: 0.001, Lon: 0}, a, a)
	assert.Equal(t, 0.0, degenerate.Fraction)
}
