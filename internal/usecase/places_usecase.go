package usecase

import (
	"context"

	"moodmap/internal/domain/entity"
	"moodmap/internal/domain/service"
)

// PlacesUsecase serves upstream place data with input validation and caching applied.
type PlacesUsecase interface {
	// SearchNearby returns places around the query coordinates. Radius defaults to 5000 m.
	SearchNearby(ctx context.Context, query service.NearbyQuery) ([]*entity.Place, error)

	// GetDetails returns the full record of a place
	GetDetails(ctx context.Context, placeID string) (*entity.PlaceDetails, error)

	// ReverseGeocode returns a short human label for coords
	ReverseGeocode(ctx context.Context, coords entity.Coordinates) (string, error)

	// FetchPhoto returns the photo bytes for a reference. maxWidth defaults to 400.
	FetchPhoto(ctx context.Context, photoReference string, maxWidth int) (*entity.PhotoImage, error)
}
