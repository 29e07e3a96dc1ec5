package google

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	deliverycontext "moodmap/internal/delivery/context"
	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/domain/service"
	"moodmap/internal/errors"
)

const (
	photoPath          = "/place/photo"
	defaultContentType = "image/jpeg"
)

// FetchPhoto implements service.PlacesGateway. The upstream answers with a
// redirect to the image, which the HTTP client follows.
func (c *Client) FetchPhoto(ctx context.Context, photoReference string, maxWidth int) (*entity.PhotoImage, error) {
	if err := c.checkConfigured(ctx, "fetchPhoto"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(photoReference) == "" {
		return nil, domainerrors.ErrMissingPhotoReference
	}
	if maxWidth <= 0 {
		maxWidth = service.DefaultPhotoMaxWidth
	}

	values := url.Values{}
	values.Set("maxwidth", strconv.Itoa(maxWidth))
	values.Set("photoreference", photoReference)

	req, err := c.newRequest(ctx, photoPath, values)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		var statusErr *httpStatusError
		if errors.As(err, &statusErr) {
			deliverycontext.GetLoggerOrDefault(ctx, c.logger).Warn("Upstream photo failure",
				slog.Int("status", statusErr.Code),
			)

			return nil, domainerrors.NewPhotoFetchError(statusErr.Code)
		}

		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.photoMaxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read upstream photo")
	}
	if int64(len(data)) > c.photoMaxBytes {
		return nil, errors.Errorf("upstream photo exceeds %d bytes", c.photoMaxBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	return &entity.PhotoImage{
		ContentType: contentType,
		Data:        data,
	}, nil
}
