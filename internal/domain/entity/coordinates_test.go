package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinates_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		c     Coordinates
		valid bool
	}{
		{"origin", Coordinates{}, true},
		{"san francisco", Coordinates{Lat: 37.7749, Lng: -122.4194}, true},
		{"poles and antimeridian", Coordinates{Lat: -90, Lng: 180}, true},
		{"lat too high", Coordinates{Lat: 90.01, Lng: 0}, false},
		{"lng too low", Coordinates{Lat: 0, Lng: -180.5}, false},
		{"nan", Coordinates{Lat: math.NaN(), Lng: 0}, false},
		{"inf", Coordinates{Lat: 0, Lng: math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, tt.c.Valid())
		})
	}
}

func TestCoordinates_Point(t *testing.T) {
	t.Parallel()

	p := Coordinates{Lat: 25.03, Lng: 121.56}.Point()
	assert.InDelta(t, 121.56, p.Lon(), 1e-9)
	assert.InDelta(t, 25.03, p.Lat(), 1e-9)
}
