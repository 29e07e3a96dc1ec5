package geo

import (
	"math"
	"testing"

	"moodmap/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     entity.Coordinates
		expected float64
		delta    float64
	}{
		{
			name:     "same point",
			a:        entity.Coordinates{Lat: 37.7749, Lng: -122.4194},
			b:        entity.Coordinates{Lat: 37.7749, Lng: -122.4194},
			expected: 0,
			delta:    1e-9,
		},
		{
			name:     "one degree of latitude",
			a:        entity.Coordinates{Lat: 10, Lng: 20},
			b:        entity.Coordinates{Lat: 11, Lng: 20},
			expected: 111320,
			delta:    111320 * 0.005,
		},
		{
			name:     "San Francisco to Los Angeles",
			a:        entity.Coordinates{Lat: 37.7749, Lng: -122.4194},
			b:        entity.Coordinates{Lat: 34.0522, Lng: -118.2437},
			expected: 559120,
			delta:    2000,
		},
		{
			name:     "antimeridian crossing",
			a:        entity.Coordinates{Lat: 0, Lng: 179.5},
			b:        entity.Coordinates{Lat: 0, Lng: -179.5},
			expected: 111195,
			delta:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, Haversine(tt.a, tt.b), tt.delta)
		})
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	t.Parallel()

	points := []entity.Coordinates{
		{Lat: 37.7749, Lng: -122.4194},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 51.5074, Lng: -0.1278},
		{Lat: 89.9, Lng: 0},
		{Lat: -89.9, Lng: 180},
	}

	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-6)
		}
	}
}

func TestHaversine_Antipodal(t *testing.T) {
	t.Parallel()

	halfCircumference := math.Pi * EarthRadiusMeters
	pairs := [][2]entity.Coordinates{
		{{Lat: 18.8389, Lng: 158.5833}, {Lat: -18.8389, Lng: -21.4167}},
		{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 180}},
		{{Lat: 90, Lng: 0}, {Lat: -90, Lng: 0}},
		{{Lat: -45.5, Lng: -100.25}, {Lat: 45.5, Lng: 79.75}},
	}
	for lat := -89.0; lat <= 89; lat += 7.3 {
		for lng := -180.0; lng < 0; lng += 11.7 {
			pairs = append(pairs, [2]entity.Coordinates{{Lat: lat, Lng: lng}, {Lat: -lat, Lng: lng + 180}})
		}
	}

	for _, pair := range pairs {
		forward := Haversine(pair[0], pair[1])
		backward := Haversine(pair[1], pair[0])

		require.False(t, math.IsNaN(forward), "distance %v -> %v", pair[0], pair[1])
		require.False(t, math.IsNaN(backward), "distance %v -> %v", pair[1], pair[0])
		assert.InDelta(t, halfCircumference, forward, 1)
		assert.InDelta(t, forward, backward, 1e-6)
	}
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	origin := entity.Coordinates{Lat: 37.7749, Lng: -122.4194}
	near := &entity.Place{PlaceID: "near", Geometry: entity.Geometry{Location: entity.Coordinates{Lat: 37.7750, Lng: -122.4194}}}
	far := &entity.Place{PlaceID: "far", Geometry: entity.Geometry{Location: entity.Coordinates{Lat: 37.8049, Lng: -122.4194}}}

	annotated := Annotate(origin, []*entity.Place{near, nil, far})

	require.Len(t, annotated, 2)
	require.NotNil(t, annotated[0].Distance)
	require.NotNil(t, annotated[1].Distance)
	assert.InDelta(t, 11.1, *annotated[0].Distance, 0.5)
	assert.InDelta(t, 3336, *annotated[1].Distance, 5)

	// originals stay unannotated
	assert.Nil(t, near.Distance)
	assert.Nil(t, far.Distance)
}
