package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moodmap/config"
	deliverycontext "moodmap/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{name: "client id kept", header: "abc-123", wantKeep: true},
		{name: "missing id generated", header: ""},
		{name: "id with spaces replaced", header: "abc 123"},
		{name: "oversized id replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			if tt.wantKeep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		debug     bool
		handler   echo.HandlerFunc
		wantLevel string
	}{
		{
			name:  "disabled without debug",
			debug: false,
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
		},
		{
			name:  "success logs info",
			debug: true,
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			wantLevel: "level=INFO",
		},
		{
			name:  "handler error is rendered before logging",
			debug: true,
			handler: func(echo.Context) error {
				return echo.NewHTTPError(http.StatusBadGateway, "upstream down")
			},
			wantLevel: "level=ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/places/nearby?lat=1&lng=2", nil), rec)

			err := NewLoggerMiddleware(logger, cfg).Handle(tt.handler)(c)
			if !tt.debug {
				require.NoError(t, err)
				assert.Empty(t, buf.String())

				return
			}

			require.NoError(t, err)
			assert.Contains(t, buf.String(), "HTTP Request")
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), "query=\"lat=1&lng=2\"")
		})
	}
}
