package middleware

import (
	"log/slog"
	"net/http"

	"moodmap/internal/delivery/api/response"
	deliverycontext "moodmap/internal/delivery/context"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, message := echoErrorText(httpErr)
		_ = response.Error(c, httpErr.Code, code, message, "", "")

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	// For 500 errors, do not expose internal error details to the client
	_ = response.AppError(c, domainerrors.ErrInternalError)
}

func echoErrorText(httpErr *echo.HTTPError) (code, message string) {
	switch httpErr.Code {
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED", "Method not allowed"
	case http.StatusNotFound:
		return "NOT_FOUND", "Not found"
	case http.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE", "Request body too large"
	}

	message = http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}

	return "HTTP_ERROR", message
}
