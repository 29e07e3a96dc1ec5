package handler

import (
	"strconv"
	"strings"

	"moodmap/internal/delivery/api/validator"
	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// coordinatesFromQuery reads the required lat/lng pair. Presence is checked
// before parsing so a missing pair and a malformed pair map to different codes.
func coordinatesFromQuery(c echo.Context) (entity.Coordinates, error) {
	latRaw := strings.TrimSpace(c.QueryParam("lat"))
	lngRaw := strings.TrimSpace(c.QueryParam("lng"))
	if latRaw == "" || lngRaw == "" {
		return entity.Coordinates{}, domainerrors.ErrMissingCoordinates
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return entity.Coordinates{}, domainerrors.ErrInvalidCoordinates.WithDetails("lat: " + latRaw)
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return entity.Coordinates{}, domainerrors.ErrInvalidCoordinates.WithDetails("lng: " + lngRaw)
	}

	coords := entity.Coordinates{Lat: lat, Lng: lng}
	if !coords.Valid() {
		return entity.Coordinates{}, domainerrors.ErrInvalidCoordinates
	}

	return coords, nil
}

// optionalInt parses an integer query parameter, returning nil when it is absent.
func optionalInt(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + ": not an integer")
	}

	return &value, nil
}

// validate runs the echo validator and maps a failure onto VALIDATION_FAILED.
func validate(c echo.Context, req any) error {
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	return nil
}

// FilterRequest is the wire form of the session filters. Fields missing from
// the body keep their default value.
type FilterRequest struct {
	SortBy      string  `json:"sortBy" query:"sortBy" validate:"required,sortby"`
	MaxDistance float64 `json:"maxDistance" query:"maxDistance" validate:"gte=0"`
	MinRating   float64 `json:"minRating" query:"minRating" validate:"gte=0,lte=5"`
	OpenNow     bool    `json:"openNow" query:"openNow"`
}

func defaultFilterRequest() FilterRequest {
	defaults := entity.DefaultFilterState()

	return FilterRequest{
		SortBy:      string(defaults.SortBy),
		MaxDistance: defaults.MaxDistance,
		MinRating:   defaults.MinRating,
		OpenNow:     defaults.OpenNow,
	}
}

func (r FilterRequest) toEntity() entity.FilterState {
	return entity.FilterState{
		SortBy:      entity.SortBy(r.SortBy),
		MaxDistance: r.MaxDistance,
		MinRating:   r.MinRating,
		OpenNow:     r.OpenNow,
	}
}

// waitRequested reports whether the caller asked to block until the session settles.
func waitRequested(c echo.Context) bool {
	wait, err := strconv.ParseBool(c.QueryParam("wait"))

	return err == nil && wait
}
