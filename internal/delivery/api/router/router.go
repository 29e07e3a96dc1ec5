// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"moodmap/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlacesHandler    *handler.PlacesHandler
	GeocodeHandler   *handler.GeocodeHandler
	CatalogHandler   *handler.CatalogHandler
	DiscoveryHandler *handler.DiscoveryHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	placesHandler    *handler.PlacesHandler
	geocodeHandler   *handler.GeocodeHandler
	catalogHandler   *handler.CatalogHandler
	discoveryHandler *handler.DiscoveryHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		placesHandler:    params.PlacesHandler,
		geocodeHandler:   params.GeocodeHandler,
		catalogHandler:   params.CatalogHandler,
		discoveryHandler: params.DiscoveryHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Other methods on a registered path are answered by echo with 405 and an Allow header.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Place data proxied from the upstream
	placesGroup := e.Group("/places")
	{
		placesGroup.GET("/nearby", r.placesHandler.Nearby)
		placesGroup.GET("/details", r.placesHandler.MissingPlaceID)
		placesGroup.GET("/details/", r.placesHandler.MissingPlaceID)
		placesGroup.GET("/details/:placeId", r.placesHandler.Details)
		placesGroup.GET("/details/:placeId/qr", r.placesHandler.DetailsQR)
		placesGroup.GET("/photos", r.placesHandler.MissingPhotoReference)
		placesGroup.GET("/photos/", r.placesHandler.MissingPhotoReference)
		placesGroup.GET("/photos/:photoRef", r.placesHandler.Photo)
	}

	geocodeGroup := e.Group("/geocode")
	{
		geocodeGroup.GET("/reverse", r.geocodeHandler.Reverse)
	}

	// Static catalog and client runtime config
	e.GET("/moods", r.catalogHandler.ListMoods)
	e.GET("/config/client", r.catalogHandler.ClientConfig)

	// Discovery sessions
	sessionsGroup := e.Group("/sessions")
	{
		sessionsGroup.POST("", r.discoveryHandler.CreateSession)
		sessionsGroup.GET("/:id", r.discoveryHandler.GetSession)
		sessionsGroup.DELETE("/:id", r.discoveryHandler.DeleteSession)
		sessionsGroup.PUT("/:id/location", r.discoveryHandler.SetLocation)
		sessionsGroup.PUT("/:id/mood", r.discoveryHandler.SetMood)
		sessionsGroup.PUT("/:id/filters", r.discoveryHandler.SetFilters)
		sessionsGroup.PUT("/:id/selection", r.discoveryHandler.Select)
		sessionsGroup.POST("/:id/refresh", r.discoveryHandler.Refresh)
		sessionsGroup.GET("/:id/map", r.discoveryHandler.Map)
	}

	e.GET("/discover", r.discoveryHandler.Discover)
}
