package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"
	mockUsecase "moodmap/internal/mocks/usecase"
	"moodmap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDiscoverOptions_Request(t *testing.T) {
	t.Parallel()

	valid := discoverOptions{lat: 37.7749, lng: -122.4194, mood: "work", sortBy: "rating", maxDistance: 2000, minRating: 4}

	tests := []struct {
		name    string
		mutate  func(o *discoverOptions)
		wantErr string
	}{
		{name: "valid", mutate: func(*discoverOptions) {}},
		{name: "latitude out of range", mutate: func(o *discoverOptions) { o.lat = 91 }, wantErr: "invalid coordinates"},
		{name: "unknown mood", mutate: func(o *discoverOptions) { o.mood = "brunch" }, wantErr: `unknown mood "brunch"`},
		{name: "unknown sort", mutate: func(o *discoverOptions) { o.sortBy = "price" }, wantErr: `unknown sort key "price"`},
		{name: "rating above five", mutate: func(o *discoverOptions) { o.minRating = 6 }, wantErr: "min-rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := valid
			tt.mutate(&opts)

			req, err := opts.request()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.MoodWork, req.Mood)
			assert.Equal(t, entity.FilterState{SortBy: entity.SortByRating, MaxDistance: 2000, MinRating: 4}, req.Filters)
		})
	}
}

func TestRunDiscover(t *testing.T) {
	t.Parallel()

	distance := 1300.0
	price := 2
	req := usecase.DiscoverRequest{
		Coordinates: entity.Coordinates{Lat: 37.7749, Lng: -122.4194},
		Mood:        entity.MoodDate,
		Filters:     entity.DefaultFilterState(),
	}

	t.Run("prints a table", func(t *testing.T) {
		t.Parallel()

		discoveryUC := mockUsecase.NewMockDiscoveryUsecase(t)
		discoveryUC.EXPECT().Discover(mock.Anything, req).Return(&usecase.DiscoverResult{
			Places: []*entity.Place{{
				PlaceID:          "a",
				Name:             "A Very Long Restaurant Name That Keeps Going",
				Rating:           4.56,
				UserRatingsTotal: 1234,
				PriceLevel:       &price,
				OpeningHours:     &entity.OpeningHours{OpenNow: true},
				Distance:         &distance,
			}},
			Total:   5,
			Filters: req.Filters,
		}, nil)

		var out bytes.Buffer
		require.NoError(t, runDiscover(context.Background(), &out, discoveryUC, req))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "#"))
		assert.Contains(t, lines[1], "A Very Long Restaurant Name T...")
		assert.Contains(t, lines[1], "4.6")
		assert.Contains(t, lines[1], "1.2k")
		assert.Contains(t, lines[1], "$$")
		assert.Contains(t, lines[1], "1.3 km")
		assert.Contains(t, lines[1], "true")
		assert.Equal(t, "Showing 1 of 5 places, sorted by distance.", lines[3])
	})

	t.Run("empty result", func(t *testing.T) {
		t.Parallel()

		discoveryUC := mockUsecase.NewMockDiscoveryUsecase(t)
		discoveryUC.EXPECT().Discover(mock.Anything, req).Return(&usecase.DiscoverResult{Total: 3, Filters: req.Filters}, nil)

		var out bytes.Buffer
		require.NoError(t, runDiscover(context.Background(), &out, discoveryUC, req))
		assert.Contains(t, out.String(), "No places match the current filters (3 found before filtering).")
	})

	t.Run("upstream failure", func(t *testing.T) {
		t.Parallel()

		discoveryUC := mockUsecase.NewMockDiscoveryUsecase(t)
		discoveryUC.EXPECT().Discover(mock.Anything, req).
			Return(nil, domainerrors.NewUpstreamError("OVER_QUERY_LIMIT", "", "Failed to fetch places"))

		err := runDiscover(context.Background(), &bytes.Buffer{}, discoveryUC, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Failed to fetch places")
	})
}

func TestRenderMoods(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, renderMoods(&out, entity.Moods()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "DESCRIPTION")
	assert.True(t, strings.HasPrefix(lines[1], "work"))
	assert.Contains(t, out.String(), "quick-bite")
}
