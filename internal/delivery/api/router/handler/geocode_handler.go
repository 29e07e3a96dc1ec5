package handler

import (
	"moodmap/internal/delivery/api/response"
	"moodmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	PlacesUC usecase.PlacesUsecase
}

// GeocodeHandler serves reverse geocoding
type GeocodeHandler struct {
	placesUC usecase.PlacesUsecase
}

// NewGeocodeHandler is the constructor for GeocodeHandler
func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{placesUC: params.PlacesUC}
}

// Reverse handles GET /geocode/reverse
func (h *GeocodeHandler) Reverse(c echo.Context) error {
	coords, err := coordinatesFromQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.placesUC.ReverseGeocode(c.Request().Context(), coords)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Address(c, address)
}
