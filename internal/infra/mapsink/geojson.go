// Package mapsink renders discovery sessions for map widgets.
package mapsink

import (
	"moodmap/internal/domain/entity"
	"moodmap/internal/domain/service"
	"moodmap/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const (
	geoJSONContentType = "application/geo+json"

	kindUser  = "user"
	kindPlace = "place"

	// userColor marks the user's own position.
	userColor = "#3b82f6"
)

type geoJSONRenderer struct{}

// NewGeoJSONRenderer returns a renderer producing a GeoJSON FeatureCollection.
func NewGeoJSONRenderer() service.MapRenderer {
	return geoJSONRenderer{}
}

func (geoJSONRenderer) ContentType() string {
	return geoJSONContentType
}

// Render emits one point feature per place, plus one for the user when known.
// The collection's bbox covers every emitted point.
func (geoJSONRenderer) Render(view service.MapView) ([]byte, error) {
	fc := FeatureCollection(view)

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal feature collection")
	}

	return data, nil
}

// FeatureCollection builds the collection Render serializes.
func FeatureCollection(view service.MapView) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	color := entity.MoodColor(view.Mood)

	var points orb.MultiPoint

	if view.User != nil {
		point := view.User.Point()
		feature := geojson.NewFeature(point)
		feature.ID = kindUser
		feature.Properties["kind"] = kindUser
		feature.Properties["color"] = userColor
		fc.Append(feature)
		points = append(points, point)
	}

	for _, place := range view.Places {
		if place == nil {
			continue
		}

		point := place.Geometry.Location.Point()
		feature := geojson.NewFeature(point)
		feature.ID = place.PlaceID
		feature.Properties["kind"] = kindPlace
		feature.Properties["placeId"] = place.PlaceID
		feature.Properties["name"] = place.Name
		feature.Properties["rating"] = place.Rating
		feature.Properties["color"] = color
		feature.Properties["selected"] = place.PlaceID == view.SelectedPlaceID
		if place.Distance != nil {
			feature.Properties["distance"] = *place.Distance
		}
		fc.Append(feature)
		points = append(points, point)
	}

	if len(points) > 0 {
		fc.BBox = geojson.NewBBox(points.Bound())
	}

	return fc
}
