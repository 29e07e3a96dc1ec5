package google

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/domain/service"
)

const (
	nearbySearchPath = "/place/nearbysearch/json"
	placeDetailsPath = "/place/details/json"

	nearbyFallbackMessage  = "Failed to fetch places"
	detailsFallbackMessage = "Failed to fetch place details"
)

// detailsFields is the fixed field mask requested for place details.
var detailsFields = []string{
	"place_id",
	"name",
	"formatted_address",
	"formatted_phone_number",
	"website",
	"url",
	"rating",
	"user_ratings_total",
	"price_level",
	"types",
	"photos",
	"opening_hours",
	"geometry",
	"reviews",
}

// SearchNearby implements service.PlacesGateway.
func (c *Client) SearchNearby(ctx context.Context, query service.NearbyQuery) ([]*entity.Place, error) {
	if err := c.checkConfigured(ctx, "searchNearby"); err != nil {
		return nil, err
	}
	if !query.Coordinates.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	radius := query.Radius
	if radius <= 0 {
		radius = service.DefaultSearchRadius
	}

	values := url.Values{}
	values.Set("location", formatLatLng(query.Coordinates))
	values.Set("radius", strconv.Itoa(radius))
	if query.Category != "" {
		values.Set("type", query.Category)
	}
	if query.Keyword != "" {
		values.Set("keyword", query.Keyword)
	}
	if query.MinPrice != nil {
		values.Set("minprice", strconv.Itoa(*query.MinPrice))
	}
	if query.MaxPrice != nil {
		values.Set("maxprice", strconv.Itoa(*query.MaxPrice))
	}

	var body nearbySearchResponse
	if err := c.getJSON(ctx, nearbySearchPath, values, nearbyFallbackMessage, &body); err != nil {
		return nil, err
	}

	switch body.Status {
	case statusOK:
	case statusZeroResults:
		return []*entity.Place{}, nil
	default:
		return nil, c.upstreamFailure(ctx, "searchNearby", body.Status, body.ErrorMessage, nearbyFallbackMessage)
	}

	places := make([]*entity.Place, 0, len(body.Results))
	for _, result := range body.Results {
		places = append(places, toPlace(result))
	}

	return places, nil
}

// GetDetails implements service.PlacesGateway.
func (c *Client) GetDetails(ctx context.Context, placeID string) (*entity.PlaceDetails, error) {
	if err := c.checkConfigured(ctx, "getDetails"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(placeID) == "" {
		return nil, domainerrors.ErrMissingPlaceID
	}

	values := url.Values{}
	values.Set("place_id", placeID)
	values.Set("fields", strings.Join(detailsFields, ","))

	var body placeDetailsResponse
	if err := c.getJSON(ctx, placeDetailsPath, values, detailsFallbackMessage, &body); err != nil {
		return nil, err
	}

	if body.Status != statusOK {
		return nil, c.upstreamFailure(ctx, "getDetails", body.Status, body.ErrorMessage, detailsFallbackMessage)
	}

	return toPlaceDetails(body.Result), nil
}

func formatLatLng(c entity.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}
