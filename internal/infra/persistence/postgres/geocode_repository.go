// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"math"

	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/domain/repository"
	"moodmap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const coordinateScale = 1e5

// geocodeRepository implements repository.GeocodeRepository.
type geocodeRepository struct {
	db *gorm.DB
}

// noopGeocodeRepository is used when postgres is not configured.
type noopGeocodeRepository struct{}

func (noopGeocodeRepository) FindLabel(context.Context, entity.Coordinates) (string, error) {
	return "", repository.ErrGeocodeNotFound
}

func (noopGeocodeRepository) SaveLabel(context.Context, entity.Coordinates, string) error {
	return nil
}

// NewGeocodeRepository is the constructor for geocodeRepository. A nil db yields a store that never hits.
func NewGeocodeRepository(db *gorm.DB) repository.GeocodeRepository {
	if db == nil {
		return noopGeocodeRepository{}
	}

	return &geocodeRepository{db: db}
}

// FindLabel retrieves the label stored for the rounded coordinates.
func (repo *geocodeRepository) FindLabel(ctx context.Context, coords entity.Coordinates) (string, error) {
	latE5, lngE5 := coordinateKey(coords)

	var labelM model.GeocodeLabelModel
	err := repo.db.WithContext(ctx).
		Where("lat_e5 = ? AND lng_e5 = ?", latE5, lngE5).
		Take(&labelM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrGeocodeNotFound
		}

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to find geocode label")
	}

	return labelM.Label, nil
}

// SaveLabel upserts the label for the rounded coordinates.
func (repo *geocodeRepository) SaveLabel(ctx context.Context, coords entity.Coordinates, label string) error {
	latE5, lngE5 := coordinateKey(coords)

	labelM := &model.GeocodeLabelModel{
		LatE5: latE5,
		LngE5: lngE5,
		Label: label,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lat_e5"}, {Name: "lng_e5"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "updated_at"}),
		}).
		Create(labelM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save geocode label")
	}

	return nil
}

// coordinateKey rounds to five decimals so nearby lookups share a row.
func coordinateKey(coords entity.Coordinates) (latE5, lngE5 int64) {
	return int64(math.Round(coords.Lat * coordinateScale)), int64(math.Round(coords.Lng * coordinateScale))
}
