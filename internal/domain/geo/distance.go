// Package geo holds the great-circle math used to annotate places with their distance from the user.
package geo

import (
	"math"

	"moodmap/internal/domain/entity"
)

// EarthRadiusMeters is the mean Earth radius.
const EarthRadiusMeters = 6371000.0

// Haversine returns the great-circle distance between a and b in meters.
func Haversine(a, b entity.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	// Rounding can push h just outside [0, 1] for antipodal pairs.
	h = math.Min(1, math.Max(0, h))

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Annotate returns copies of places with Distance set relative to origin.
// The input slice is left untouched.
func Annotate(origin entity.Coordinates, places []*entity.Place) []*entity.Place {
	annotated := make([]*entity.Place, 0, len(places))
	for _, place := range places {
		if place == nil {
			continue
		}
		annotated = append(annotated, place.WithDistance(Haversine(origin, place.Geometry.Location)))
	}

	return annotated
}
