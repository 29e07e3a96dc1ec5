package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"moodmap/internal/delivery/api/response"
	deliverycontext "moodmap/internal/delivery/context"
	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/domain/service"
	"moodmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Renderer    service.MapRenderer
	Logger      *slog.Logger
}

// DiscoveryHandler serves discovery sessions and one-shot discovery
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	renderer    service.MapRenderer
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		renderer:    params.Renderer,
		logger:      params.Logger,
	}
}

// LocationRequest sets the session location. Omitting both fields clears it.
type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required_with=Lng"`
	Lng *float64 `json:"lng" validate:"required_with=Lat"`
}

// MoodRequest selects a mood. The empty mood clears it.
type MoodRequest struct {
	Mood string `json:"mood"`
}

// SelectionRequest marks a place. The empty id clears the selection.
type SelectionRequest struct {
	PlaceID string `json:"placeId"`
}

// CreateSession handles POST /sessions
func (h *DiscoveryHandler) CreateSession(c echo.Context) error {
	snap, err := h.discoveryUC.CreateSession(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Debug("Discovery session created", slog.String("session_id", snap.ID))

	return h.snapshot(c, http.StatusCreated, snap)
}

// GetSession handles GET /sessions/:id
func (h *DiscoveryHandler) GetSession(c echo.Context) error {
	snap, err := h.discoveryUC.GetSession(c.Request().Context(), c.Param("id"), waitRequested(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.snapshot(c, http.StatusOK, snap)
}

// SetLocation handles PUT /sessions/:id/location
func (h *DiscoveryHandler) SetLocation(c echo.Context) error {
	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid location body"))
	}
	if err := validate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	var coords *entity.Coordinates
	if req.Lat != nil && req.Lng != nil {
		coords = &entity.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
	}

	snap, err := h.discoveryUC.SetLocation(c.Request().Context(), c.Param("id"), coords)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.snapshot(c, http.StatusOK, snap)
}

// SetMood handles PUT /sessions/:id/mood
func (h *DiscoveryHandler) SetMood(c echo.Context) error {
	var req MoodRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid mood body"))
	}

	mood := entity.MoodID(strings.TrimSpace(req.Mood))
	snap, err := h.discoveryUC.SetMood(c.Request().Context(), c.Param("id"), mood)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.snapshot(c, http.StatusOK, snap)
}

// SetFilters handles PUT /sessions/:id/filters
func (h *DiscoveryHandler) SetFilters(c echo.Context) error {
	req := defaultFilterRequest()
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid filters body"))
	}
	if err := validate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	snap, err := h.discoveryUC.SetFilters(c.Request().Context(), c.Param("id"), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.snapshot(c, http.StatusOK, snap)
}

// Select handles PUT /sessions/:id/selection
func (h *DiscoveryHandler) Select(c echo.Context) error {
	var req SelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid selection body"))
	}

	snap, err := h.discoveryUC.Select(c.Request().Context(), c.Param("id"), req.PlaceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.snapshot(c, http.StatusOK, snap)
}

// Refresh handles POST /sessions/:id/refresh
func (h *DiscoveryHandler) Refresh(c echo.Context) error {
	snap, err := h.discoveryUC.Refresh(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.snapshot(c, http.StatusAccepted, snap)
}

// DeleteSession handles DELETE /sessions/:id
func (h *DiscoveryHandler) DeleteSession(c echo.Context) error {
	if err := h.discoveryUC.DeleteSession(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Map handles GET /sessions/:id/map
func (h *DiscoveryHandler) Map(c echo.Context) error {
	snap, err := h.discoveryUC.GetSession(c.Request().Context(), c.Param("id"), waitRequested(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	doc, err := h.renderer.Render(service.MapView{
		User:            snap.Coordinates,
		Mood:            snap.Mood,
		Places:          snap.Places,
		SelectedPlaceID: snap.SelectedPlaceID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	response.SetCacheControl(c, response.CacheNone)

	return c.Blob(http.StatusOK, h.renderer.ContentType(), doc)
}

// Discover handles GET /discover, running the pipeline once for the query inputs
func (h *DiscoveryHandler) Discover(c echo.Context) error {
	coords, err := coordinatesFromQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	mood := entity.MoodID(strings.TrimSpace(c.QueryParam("mood")))
	if mood == "" {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("mood: required"))
	}
	if !mood.IsValid() {
		return response.HandleAppError(c, domainerrors.ErrUnknownMood.WithDetails(string(mood)))
	}

	filters := defaultFilterRequest()
	if err := echo.QueryParamsBinder(c).
		String("sortBy", &filters.SortBy).
		Float64("maxDistance", &filters.MaxDistance).
		Float64("minRating", &filters.MinRating).
		Bool("openNow", &filters.OpenNow).
		BindError(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}
	if err := validate(c, &filters); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.discoveryUC.Discover(c.Request().Context(), usecase.DiscoverRequest{
		Coordinates: coords,
		Mood:        mood,
		Filters:     filters.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if result.Places == nil {
		result.Places = []*entity.Place{}
	}

	response.SetCacheControl(c, response.CacheNone)

	return response.Success(c, http.StatusOK, result)
}

func (h *DiscoveryHandler) snapshot(c echo.Context, status int, snap *usecase.SessionSnapshot) error {
	if snap.Places == nil {
		snap.Places = []*entity.Place{}
	}
	response.SetCacheControl(c, response.CacheNone)

	return response.Success(c, status, snap)
}
