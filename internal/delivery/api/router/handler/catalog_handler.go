package handler

import (
	"net/http"

	"moodmap/config"
	"moodmap/internal/delivery/api/response"
	"moodmap/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Browser geolocation options handed to clients.
const (
	geolocationTimeoutMs    = 10000
	geolocationMaximumAgeMs = 300000
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	Config *config.Config
}

// CatalogHandler serves the static mood catalog and client runtime config
type CatalogHandler struct {
	config *config.Config
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{config: params.Config}
}

// GeolocationOptions mirrors the browser PositionOptions a client should use
type GeolocationOptions struct {
	TimeoutMs    int `json:"timeoutMs"`
	MaximumAgeMs int `json:"maximumAgeMs"`
}

// ClientConfigResponse is the runtime configuration for browser clients.
// MapsAPIKey is the browser-scoped key, never the upstream server key.
type ClientConfigResponse struct {
	MapsAPIKey     string             `json:"mapsApiKey"`
	DefaultFilters entity.FilterState `json:"defaultFilters"`
	Geolocation    GeolocationOptions `json:"geolocation"`
}

// ListMoods handles GET /moods
func (h *CatalogHandler) ListMoods(c echo.Context) error {
	response.SetCacheControl(c, response.CacheCatalog)

	return response.Success(c, http.StatusOK, entity.Moods())
}

// ClientConfig handles GET /config/client
func (h *CatalogHandler) ClientConfig(c echo.Context) error {
	response.SetCacheControl(c, response.CacheNone)

	return response.Success(c, http.StatusOK, ClientConfigResponse{
		MapsAPIKey:     h.config.Maps.BrowserAPIKey,
		DefaultFilters: entity.DefaultFilterState(),
		Geolocation: GeolocationOptions{
			TimeoutMs:    geolocationTimeoutMs,
			MaximumAgeMs: geolocationMaximumAgeMs,
		},
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
