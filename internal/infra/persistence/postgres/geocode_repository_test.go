package postgres

import (
	"context"
	"testing"

	"moodmap/internal/domain/entity"
	"moodmap/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateKey(t *testing.T) {
	tests := []struct {
		name   string
		coords entity.Coordinates
		lat    int64
		lng    int64
	}{
		{"positive", entity.Coordinates{Lat: 37.774929, Lng: 122.419416}, 3777493, 12241942},
		{"negative", entity.Coordinates{Lat: -33.868820, Lng: -151.209296}, -3386882, -15120930},
		{"origin", entity.Coordinates{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng := coordinateKey(tt.coords)
			assert.Equal(t, tt.lat, lat)
			assert.Equal(t, tt.lng, lng)
		})
	}
}

func TestNewGeocodeRepository_NilDB(t *testing.T) {
	repo := NewGeocodeRepository(nil)
	ctx := context.Background()

	_, err := repo.FindLabel(ctx, entity.Coordinates{Lat: 1, Lng: 2})
	require.ErrorIs(t, err, repository.ErrGeocodeNotFound)
	assert.NoError(t, repo.SaveLabel(ctx, entity.Coordinates{Lat: 1, Lng: 2}, "label"))
}
