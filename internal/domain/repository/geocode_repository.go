package repository

import (
	"context"

	"moodmap/internal/domain/entity"
	"moodmap/internal/errors"
)

// ErrGeocodeNotFound is returned when no label is stored for the coordinates.
var ErrGeocodeNotFound = errors.New("geocode label not found")

// GeocodeRepository persists reverse-geocode labels keyed by rounded coordinates.
type GeocodeRepository interface {
	// FindLabel returns the stored label or ErrGeocodeNotFound.
	FindLabel(ctx context.Context, coords entity.Coordinates) (string, error)

	// SaveLabel inserts or replaces the label for the coordinates.
	SaveLabel(ctx context.Context, coords entity.Coordinates, label string) error
}
