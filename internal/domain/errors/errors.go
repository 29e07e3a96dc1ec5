package errors

import (
	"fmt"
	"net/http"

	"moodmap/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. Is still matches the original.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the error code so copies made by WithDetails still compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Input validation
	ErrMissingCoordinates = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PARAMETERS",
		"Missing required parameters: lat, lng",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Invalid coordinates",
		"",
	)

	ErrMissingPlaceID = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PLACE_ID",
		"Missing required parameter: placeId",
		"",
	)

	ErrMissingPhotoReference = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PHOTO_REFERENCE",
		"Missing required parameter: photoRef",
		"",
	)

	ErrUnknownMood = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_MOOD",
		"Unknown mood",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request parameters",
		"",
	)

	// Discovery sessions
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Session not found",
		"",
	)

	ErrSessionLimitReached = NewBaseError(
		http.StatusServiceUnavailable,
		"SESSION_LIMIT_REACHED",
		"Too many active sessions",
		"",
	)

	ErrDiscoveryInputsMissing = NewBaseError(
		http.StatusConflict,
		"DISCOVERY_INPUTS_MISSING",
		"Coordinates and mood are required",
		"",
	)

	ErrPlaceNotInResults = NewBaseError(
		http.StatusNotFound,
		"PLACE_NOT_IN_RESULTS",
		"Place is not part of the current results",
		"",
	)

	// Configuration
	ErrUpstreamNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_ERROR",
		"Server configuration error",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// UpstreamError is a non-OK status reported by the places upstream.
type UpstreamError struct {
	Status  string // upstream status, e.g. REQUEST_DENIED
	message string
}

// NewUpstreamError falls back to fallbackMessage when the upstream sent no message.
func NewUpstreamError(status, message, fallbackMessage string) *UpstreamError {
	if message == "" {
		message = fallbackMessage
	}

	return &UpstreamError{Status: status, message: message}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %s: %s", e.Status, e.message)
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_ERROR"
}

// Message returns the upstream message or its fallback
func (e *UpstreamError) Message() string {
	return e.message
}

// Details returns the upstream status
func (e *UpstreamError) Details() string {
	return e.Status
}

// PhotoFetchError carries the non-2xx HTTP status of a failed photo download.
type PhotoFetchError struct {
	StatusCode int
}

// NewPhotoFetchError creates a photo error for the given upstream HTTP status.
func NewPhotoFetchError(statusCode int) *PhotoFetchError {
	return &PhotoFetchError{StatusCode: statusCode}
}

// Error implements the error interface
func (e *PhotoFetchError) Error() string {
	return fmt.Sprintf("photo upstream responded with HTTP %d", e.StatusCode)
}

// HTTPCode propagates the upstream status
func (e *PhotoFetchError) HTTPCode() int {
	return e.StatusCode
}

// ErrorCode returns the business error code
func (e *PhotoFetchError) ErrorCode() string {
	return "PHOTO_FETCH_FAILED"
}

// Message returns the user-facing error message
func (e *PhotoFetchError) Message() string {
	return "Failed to fetch photo"
}

// Details returns detailed error information
func (e *PhotoFetchError) Details() string {
	return ""
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
