package handler

import (
	"log/slog"
	"net/http"

	"moodmap/internal/delivery/api/response"
	deliverycontext "moodmap/internal/delivery/context"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/domain/service"
	"moodmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultPhotoMaxWidth = 400

// PlacesHandlerParams holds dependencies for PlacesHandler, injected by Fx.
type PlacesHandlerParams struct {
	fx.In

	PlacesUC usecase.PlacesUsecase
	QRCode   service.QRCodeService
	Logger   *slog.Logger
}

// PlacesHandler serves the place search, details and photo proxy endpoints
type PlacesHandler struct {
	placesUC usecase.PlacesUsecase
	qrCode   service.QRCodeService
	logger   *slog.Logger
}

// NewPlacesHandler is the constructor for PlacesHandler
func NewPlacesHandler(params PlacesHandlerParams) *PlacesHandler {
	return &PlacesHandler{
		placesUC: params.PlacesUC,
		qrCode:   params.QRCode,
		logger:   params.Logger,
	}
}

// NearbyRequest carries the optional nearby search parameters
type NearbyRequest struct {
	Type     string `query:"type"`
	Radius   int    `query:"radius" validate:"omitempty,min=1,max=50000"`
	Keyword  string `query:"keyword"`
	MinPrice *int   `query:"minprice" validate:"omitempty,min=0,max=4"`
	MaxPrice *int   `query:"maxprice" validate:"omitempty,min=0,max=4"`
}

// Nearby handles GET /places/nearby
func (h *PlacesHandler) Nearby(c echo.Context) error {
	coords, err := coordinatesFromQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req NearbyRequest
	if err := echo.QueryParamsBinder(c).
		String("type", &req.Type).
		Int("radius", &req.Radius).
		String("keyword", &req.Keyword).
		BindError(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}
	if req.MinPrice, err = optionalInt(c, "minprice"); err != nil {
		return response.HandleAppError(c, err)
	}
	if req.MaxPrice, err = optionalInt(c, "maxprice"); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := validate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	places, err := h.placesUC.SearchNearby(c.Request().Context(), service.NearbyQuery{
		Coordinates: coords,
		Category:    req.Type,
		Radius:      req.Radius,
		Keyword:     req.Keyword,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Places(c, places)
}

// Details handles GET /places/details/:placeId
func (h *PlacesHandler) Details(c echo.Context) error {
	place, err := h.placesUC.GetDetails(c.Request().Context(), c.Param("placeId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Place(c, place)
}

// MissingPlaceID answers detail routes reached without a place id.
func (h *PlacesHandler) MissingPlaceID(c echo.Context) error {
	return response.HandleAppError(c, domainerrors.ErrMissingPlaceID)
}

// MissingPhotoReference answers photo routes reached without a reference.
func (h *PlacesHandler) MissingPhotoReference(c echo.Context) error {
	return response.HandleAppError(c, domainerrors.ErrMissingPhotoReference)
}

// Photo handles GET /places/photos/:photoRef, passing the upstream bytes through
func (h *PlacesHandler) Photo(c echo.Context) error {
	maxWidth := defaultPhotoMaxWidth
	if err := echo.QueryParamsBinder(c).Int("maxwidth", &maxWidth).BindError(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("maxwidth: not an integer"))
	}
	if maxWidth <= 0 {
		maxWidth = defaultPhotoMaxWidth
	}

	photo, err := h.placesUC.FetchPhoto(c.Request().Context(), c.Param("photoRef"), maxWidth)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	response.SetCacheControl(c, response.CachePhoto)

	return c.Blob(http.StatusOK, photo.ContentType, photo.Data)
}

// DetailsQR handles GET /places/details/:placeId/qr
func (h *PlacesHandler) DetailsQR(c echo.Context) error {
	placeID := c.Param("placeId")

	png, err := h.qrCode.GeneratePlaceQR(placeID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Failed to generate place QR", slog.String("place_id", placeID), slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	response.SetCacheControl(c, response.CacheCatalog)

	return c.Blob(http.StatusOK, "image/png", png)
}
