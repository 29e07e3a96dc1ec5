package mapsink

import (
	"testing"

	"moodmap/internal/domain/entity"
	"moodmap/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureCollection(t *testing.T) {
	t.Parallel()

	distance := 120.5
	view := service.MapView{
		User: &entity.Coordinates{Lat: 37.7749, Lng: -122.4194},
		Mood: entity.MoodDate,
		Places: []*entity.Place{
			{PlaceID: "a", Name: "Alpha", Rating: 4.5, Distance: &distance,
				Geometry: entity.Geometry{Location: entity.Coordinates{Lat: 37.7760, Lng: -122.4170}}},
			nil,
			{PlaceID: "b", Name: "Beta",
				Geometry: entity.Geometry{Location: entity.Coordinates{Lat: 37.7849, Lng: -122.4094}}},
		},
		SelectedPlaceID: "b",
	}

	fc := FeatureCollection(view)
	require.Len(t, fc.Features, 3)

	user := fc.Features[0]
	assert.Equal(t, "user", user.ID)
	assert.Equal(t, orb.Point{-122.4194, 37.7749}, user.Geometry)

	alpha := fc.Features[1]
	assert.Equal(t, "a", alpha.ID)
	assert.Equal(t, "#ff1493", alpha.Properties["color"])
	assert.Equal(t, false, alpha.Properties["selected"])
	assert.Equal(t, 120.5, alpha.Properties["distance"])

	beta := fc.Features[2]
	assert.Equal(t, true, beta.Properties["selected"])
	assert.NotContains(t, beta.Properties, "distance")

	bound := fc.BBox.Bound()
	assert.Equal(t, orb.Point{-122.4194, 37.7749}, bound.Min)
	assert.Equal(t, orb.Point{-122.4094, 37.7849}, bound.Max)
}

func TestFeatureCollection_UnknownMoodAndNoUser(t *testing.T) {
	t.Parallel()

	fc := FeatureCollection(service.MapView{
		Places: []*entity.Place{{PlaceID: "a"}},
	})

	require.Len(t, fc.Features, 1)
	assert.Equal(t, entity.FallbackMoodColor, fc.Features[0].Properties["color"])
}

func TestFeatureCollection_Empty(t *testing.T) {
	t.Parallel()

	fc := FeatureCollection(service.MapView{})
	assert.Empty(t, fc.Features)
	assert.Nil(t, fc.BBox)
}

func TestGeoJSONRenderer_Render(t *testing.T) {
	t.Parallel()

	renderer := NewGeoJSONRenderer()
	assert.Equal(t, "application/geo+json", renderer.ContentType())

	data, err := renderer.Render(service.MapView{
		User: &entity.Coordinates{Lat: 1, Lng: 2},
	})
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "user", fc.Features[0].Properties["kind"])
}
