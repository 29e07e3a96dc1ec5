package errors

import (
	"net/http"
	"testing"

	"moodmap/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrInvalidCoordinates.WithDetails("lat out of range")

	assert.True(t, errors.Is(detailed, ErrInvalidCoordinates))
	assert.False(t, errors.Is(detailed, ErrMissingCoordinates))
	assert.Equal(t, "Invalid coordinates: lat out of range", detailed.Error())
	assert.Equal(t, "Invalid coordinates", detailed.Message())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrSessionNotFound.WrapMessage("lookup")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "SESSION_NOT_FOUND", appErr.ErrorCode())
}

func TestUpstreamError(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		fallback string
		expected string
	}{
		{"upstream message", "The provided API key is invalid.", "Failed to fetch places", "The provided API key is invalid."},
		{"fallback", "", "Failed to fetch places", "Failed to fetch places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUpstreamError("REQUEST_DENIED", tt.message, tt.fallback)

			assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
			assert.Equal(t, tt.expected, err.Message())
			assert.Equal(t, "REQUEST_DENIED", err.Details())
			assert.Contains(t, err.Error(), "REQUEST_DENIED")
		})
	}
}

func TestPhotoFetchError(t *testing.T) {
	err := NewPhotoFetchError(http.StatusNotFound)

	var appErr AppError
	require.True(t, errors.As(errors.Wrap(err, "fetch photo"), &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Failed to fetch photo", appErr.Message())
}
