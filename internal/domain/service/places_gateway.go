package service

import (
	"context"

	"moodmap/internal/domain/entity"
)

// DefaultSearchRadius is the nearby-search radius in meters when none is given.
const DefaultSearchRadius = 5000

// DefaultPhotoMaxWidth is the photo width in pixels when none is given.
const DefaultPhotoMaxWidth = 400

// NearbyQuery describes one nearby search.
type NearbyQuery struct {
	Coordinates entity.Coordinates
	Category    string
	Radius      int // meters; zero means DefaultSearchRadius
	Keyword     string
	MinPrice    *int
	MaxPrice    *int
}

// PlacesGateway translates between the internal place schema and the upstream
// places/geocoding API. Implementations return domainerrors.ErrUpstreamNotConfigured
// when no credential is configured and *domainerrors.UpstreamError for non-OK statuses.
type PlacesGateway interface {
	// SearchNearby returns places around the query coordinates. ZERO_RESULTS yields an empty slice.
	SearchNearby(ctx context.Context, query NearbyQuery) ([]*entity.Place, error)

	// GetDetails returns the full record for one place.
	GetDetails(ctx context.Context, placeID string) (*entity.PlaceDetails, error)

	// ReverseGeocode returns a short display label for the coordinates, or "" when nothing matched.
	ReverseGeocode(ctx context.Context, coords entity.Coordinates) (string, error)

	// FetchPhoto downloads a photo, passing the upstream content type through.
	FetchPhoto(ctx context.Context, photoReference string, maxWidth int) (*entity.PhotoImage, error)
}
