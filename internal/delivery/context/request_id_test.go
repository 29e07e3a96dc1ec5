package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDOnEchoContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestDetach(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	src, cancel := context.WithCancel(context.Background())
	src = WithLogger(WithRequestID(src, "req-7"), logger)
	cancel()

	detached := Detach(context.Background(), src)

	assert.NoError(t, detached.Err())
	assert.Equal(t, "req-7", GetRequestIDFromContext(detached))
	assert.Same(t, logger, GetLogger(detached))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
