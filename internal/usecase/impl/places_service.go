package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"moodmap/config"
	deliverycontext "moodmap/internal/delivery/context"
	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/domain/repository"
	"moodmap/internal/domain/service"
	"moodmap/internal/errors"
	"moodmap/internal/usecase"

	"go.uber.org/fx"
)

type placesService struct {
	gateway     service.PlacesGateway
	cache       repository.ResponseCache
	geocodeRepo repository.GeocodeRepository
	ttl         config.CacheTTL
	logger      *slog.Logger
}

// PlacesServiceParams holds dependencies for PlacesService, injected by Fx.
type PlacesServiceParams struct {
	fx.In

	Gateway     service.PlacesGateway
	Cache       repository.ResponseCache
	GeocodeRepo repository.GeocodeRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// cachedPhoto is the cache encoding of a photo.
type cachedPhoto struct {
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// NewPlacesService creates a new places service instance
func NewPlacesService(params PlacesServiceParams) usecase.PlacesUsecase {
	return &placesService{
		gateway:     params.Gateway,
		cache:       params.Cache,
		geocodeRepo: params.GeocodeRepo,
		ttl:         params.Config.Cache.TTL,
		logger:      params.Logger,
	}
}

// SearchNearby returns places around the query coordinates
func (s *placesService) SearchNearby(ctx context.Context, query service.NearbyQuery) ([]*entity.Place, error) {
	if !query.Coordinates.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if query.Radius <= 0 {
		query.Radius = service.DefaultSearchRadius
	}

	key := nearbyCacheKey(query)
	var places []*entity.Place
	if s.cacheGet(ctx, key, &places) {
		return places, nil
	}

	places, err := s.gateway.SearchNearby(ctx, query)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.cacheSet(ctx, key, places, s.ttl.Nearby)

	return places, nil
}

// GetDetails returns the full record of a place
func (s *placesService) GetDetails(ctx context.Context, placeID string) (*entity.PlaceDetails, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return nil, domainerrors.ErrMissingPlaceID
	}

	key := "details:" + placeID
	var details entity.PlaceDetails
	if s.cacheGet(ctx, key, &details) {
		return &details, nil
	}

	fetched, err := s.gateway.GetDetails(ctx, placeID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.cacheSet(ctx, key, fetched, s.ttl.Details)

	return fetched, nil
}

// ReverseGeocode resolves a label through the cache, then the durable store, then the upstream
func (s *placesService) ReverseGeocode(ctx context.Context, coords entity.Coordinates) (string, error) {
	if !coords.Valid() {
		return "", domainerrors.ErrInvalidCoordinates
	}

	key := "geocode:" + formatCoordinates(coords)
	var label string
	if s.cacheGet(ctx, key, &label) {
		return label, nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	stored, err := s.geocodeRepo.FindLabel(ctx, coords)
	switch {
	case err == nil:
		s.cacheSet(ctx, key, stored, s.ttl.Geocode)

		return stored, nil
	case !errors.Is(err, repository.ErrGeocodeNotFound):
		logger.Warn("Geocode store lookup failed", slog.Any("error", err))
	}

	label, err = s.gateway.ReverseGeocode(ctx, coords)
	if err != nil {
		return "", errors.WithStack(err)
	}

	// Empty labels stay out of the durable store; the upstream may learn the area later.
	if label != "" {
		if err := s.geocodeRepo.SaveLabel(ctx, coords, label); err != nil {
			logger.Warn("Failed to persist geocode label", slog.Any("error", err))
		}
	}
	s.cacheSet(ctx, key, label, s.ttl.Geocode)

	return label, nil
}

// FetchPhoto returns the photo bytes for a reference
func (s *placesService) FetchPhoto(ctx context.Context, photoReference string, maxWidth int) (*entity.PhotoImage, error) {
	if strings.TrimSpace(photoReference) == "" {
		return nil, domainerrors.ErrMissingPhotoReference
	}
	if maxWidth <= 0 {
		maxWidth = service.DefaultPhotoMaxWidth
	}

	key := fmt.Sprintf("photo:%d:%s", maxWidth, photoReference)
	var cached cachedPhoto
	if s.cacheGet(ctx, key, &cached) {
		return &entity.PhotoImage{ContentType: cached.ContentType, Data: cached.Data}, nil
	}

	photo, err := s.gateway.FetchPhoto(ctx, photoReference, maxWidth)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.cacheSet(ctx, key, cachedPhoto{ContentType: photo.ContentType, Data: photo.Data}, s.ttl.Photo)

	return photo, nil
}

// cacheGet decodes a hit into out. Misses and cache failures both report false.
func (s *placesService) cacheGet(ctx context.Context, key string, out any) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Response cache read failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Discarding undecodable cache entry",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

func (s *placesService) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	raw, err := json.Marshal(value)
	if err == nil {
		err = s.cache.Set(ctx, key, raw, ttl)
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Response cache write failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func nearbyCacheKey(query service.NearbyQuery) string {
	var b strings.Builder
	b.WriteString("nearby:")
	b.WriteString(formatCoordinates(query.Coordinates))
	fmt.Fprintf(&b, ":%d:%s:%s", query.Radius, query.Category, query.Keyword)
	if query.MinPrice != nil {
		fmt.Fprintf(&b, ":min%d", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		fmt.Fprintf(&b, ":max%d", *query.MaxPrice)
	}

	return b.String()
}

func formatCoordinates(coords entity.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f", coords.Lat, coords.Lng)
}
