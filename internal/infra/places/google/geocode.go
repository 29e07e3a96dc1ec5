package google

import (
	"context"
	"net/url"

	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"
)

const (
	reverseGeocodePath            = "/geocode/json"
	reverseGeocodeFallbackMessage = "Failed to reverse geocode"
)

// ReverseGeocode implements service.PlacesGateway.
func (c *Client) ReverseGeocode(ctx context.Context, coords entity.Coordinates) (string, error) {
	if err := c.checkConfigured(ctx, "reverseGeocode"); err != nil {
		return "", err
	}
	if !coords.Valid() {
		return "", domainerrors.ErrInvalidCoordinates
	}

	values := url.Values{}
	values.Set("latlng", formatLatLng(coords))

	var body geocodeResponse
	if err := c.getJSON(ctx, reverseGeocodePath, values, reverseGeocodeFallbackMessage, &body); err != nil {
		return "", err
	}

	if body.Status != statusOK {
		return "", c.upstreamFailure(ctx, "reverseGeocode", body.Status, body.ErrorMessage, reverseGeocodeFallbackMessage)
	}

	return addressLabel(body.Results), nil
}
