// Package google implements the places gateway against the Google Places and Geocoding web services.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"moodmap/config"
	deliverycontext "moodmap/internal/delivery/context"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/domain/service"
	"moodmap/internal/errors"

	"go.uber.org/fx"
)

const (
	errorBodyLimit       = 4 << 10
	defaultPhotoMaxBytes = 10 << 20
)

// httpStatusError is a non-2xx answer from the upstream.
type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("upstream HTTP %d: %s", e.Code, e.Body)
}

// ClientParams holds dependencies for Client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	// HTTPClient is optional; tests inject one bound to an httptest server.
	HTTPClient *http.Client `optional:"true"`
}

// Client talks to the upstream web services. It is safe for concurrent use.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	photoMaxBytes int64
	logger        *slog.Logger
}

// NewClient builds the gateway. A missing API key is not an error here: every
// call reports ErrUpstreamNotConfigured instead, so the process still serves
// health and config routes.
func NewClient(params ClientParams) service.PlacesGateway {
	return newClient(params)
}

func newClient(params ClientParams) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: params.Config.Upstream.Timeout}
	}

	photoMaxBytes := params.Config.Upstream.PhotoMaxBytes
	if photoMaxBytes <= 0 {
		photoMaxBytes = defaultPhotoMaxBytes
	}

	return &Client{
		httpClient:    httpClient,
		baseURL:       strings.TrimRight(params.Config.Upstream.BaseURL, "/"),
		apiKey:        params.Config.Upstream.APIKey,
		photoMaxBytes: photoMaxBytes,
		logger:        params.Logger,
	}
}

func (c *Client) checkConfigured(ctx context.Context, operation string) error {
	if c.apiKey != "" {
		return nil
	}

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Error("Upstream API key not configured",
		slog.String("operation", operation),
	)

	return domainerrors.ErrUpstreamNotConfigured
}

func (c *Client) endpoint(path string, params url.Values) string {
	params.Set("key", c.apiKey)

	return c.baseURL + path + "?" + params.Encode()
}

func (c *Client) newRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, params), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create upstream request")
	}

	return req, nil
}

// do sends req and turns non-2xx answers into httpStatusError.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "upstream %s", req.URL.Path)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		_ = resp.Body.Close()

		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		}
	}

	return resp, nil
}

// getJSON issues a GET and decodes the JSON body into out. Non-2xx answers are
// reported as upstream errors using fallbackMessage.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, fallbackMessage string, out any) error {
	req, err := c.newRequest(ctx, path, params)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		var statusErr *httpStatusError
		if errors.As(err, &statusErr) {
			deliverycontext.GetLoggerOrDefault(ctx, c.logger).Warn("Upstream HTTP failure",
				slog.String("path", path),
				slog.Int("status", statusErr.Code),
				slog.String("body", statusErr.Body),
			)

			return domainerrors.NewUpstreamError(fmt.Sprintf("HTTP_%d", statusErr.Code), "", fallbackMessage)
		}

		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode upstream %s response", path)
	}

	return nil
}

// upstreamFailure logs and builds the error for a non-OK upstream status.
func (c *Client) upstreamFailure(ctx context.Context, operation, status, message, fallback string) error {
	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Warn("Upstream API error",
		slog.String("operation", operation),
		slog.String("status", status),
		slog.String("error_message", message),
	)

	return domainerrors.NewUpstreamError(status, message, fallback)
}
