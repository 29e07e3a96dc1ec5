package response

import (
	"net/http"

	deliverycontext "moodmap/internal/delivery/context"
	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/errors"

	"github.com/labstack/echo/v4"
)

// StatusOK is the status field of every successful place-data response.
const StatusOK = "OK"

// Cache-Control values per resource freshness.
const (
	CacheNearby  = "public, s-maxage=300, stale-while-revalidate=600"
	CacheDetails = "public, s-maxage=3600, stale-while-revalidate=7200"
	CacheGeocode = "public, s-maxage=86400, stale-while-revalidate=604800"
	CachePhoto   = "public, max-age=86400, s-maxage=604800, immutable"
	CacheCatalog = "public, max-age=3600"
	CacheNone    = "no-store"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// ErrorResponse defines the structure for error responses.
// Error carries the user-facing message so clients can display it directly.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Status    string `json:"status,omitempty"`  // upstream status, for upstream failures
	Details   string `json:"details,omitempty"` // only for 4xx errors
	RequestID string `json:"request_id"`
}

// PlacesResponse is the body of a nearby search.
type PlacesResponse struct {
	Places []*entity.Place `json:"places"`
	Status string          `json:"status"`
}

// PlaceResponse is the body of a details lookup.
type PlaceResponse struct {
	Place  *entity.PlaceDetails `json:"place"`
	Status string               `json:"status"`
}

// AddressResponse is the body of a reverse geocode.
type AddressResponse struct {
	Address string `json:"address"`
	Status  string `json:"status"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Places writes a nearby result set
func Places(c echo.Context, places []*entity.Place) error {
	if places == nil {
		places = []*entity.Place{}
	}
	SetCacheControl(c, CacheNearby)

	return c.JSON(http.StatusOK, PlacesResponse{Places: places, Status: StatusOK})
}

// Place writes a details record
func Place(c echo.Context, place *entity.PlaceDetails) error {
	SetCacheControl(c, CacheDetails)

	return c.JSON(http.StatusOK, PlaceResponse{Place: place, Status: StatusOK})
}

// Address writes a reverse-geocode label
func Address(c echo.Context, address string) error {
	SetCacheControl(c, CacheGeocode)

	return c.JSON(http.StatusOK, AddressResponse{Address: address, Status: StatusOK})
}

// SetCacheControl sets the Cache-Control header on the response
func SetCacheControl(c echo.Context, value string) {
	c.Response().Header().Set(echo.HeaderCacheControl, value)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, message, upstreamStatus, details string) error {
	// Details should not be included for 5xx errors
	if statusCode >= http.StatusInternalServerError {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Error:     message,
		Code:      errorCode,
		Status:    upstreamStatus,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "", "")
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "", "")
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "", "")
}

// AppError renders a domain error. Upstream failures carry the upstream status.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var upstreamStatus string
	var upstreamErr *domainerrors.UpstreamError
	if errors.As(appErr, &upstreamErr) {
		upstreamStatus = upstreamErr.Status
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), upstreamStatus, appErr.Details())
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Anything else is returned for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
