package google

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"moodmap/config"
	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/domain/service"
	"moodmap/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, apiKey string, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = server.URL + "/maps/api"
	cfg.Upstream.APIKey = apiKey

	return newClient(ClientParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		HTTPClient: server.Client(),
	})
}

func TestClient_SearchNearby(t *testing.T) {
	client := newTestClient(t, "server-key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/place/nearbysearch/json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "37.7749,-122.4194", q.Get("location"))
		assert.Equal(t, "5000", q.Get("radius"))
		assert.Equal(t, "restaurant", q.Get("type"))
		assert.Equal(t, "fast", q.Get("keyword"))
		assert.Equal(t, "server-key", q.Get("key"))
		assert.Empty(t, q.Get("minprice"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"status": "OK",
			"results": [
				{
					"place_id": "p1",
					"name": "Burger Spot",
					"vicinity": "1 Market St",
					"rating": 4.4,
					"user_ratings_total": 210,
					"price_level": 0,
					"types": ["restaurant", "food"],
					"photos": [{"photo_reference": "ref-1", "width": 800, "height": 600}],
					"opening_hours": {"open_now": true},
					"geometry": {"location": {"lat": 37.775, "lng": -122.418}}
				},
				{
					"place_id": "p2",
					"name": "Taco Cart",
					"vicinity": "2 Mission St",
					"types": ["meal_takeaway"],
					"geometry": {"location": {"lat": 37.78, "lng": -122.41}}
				}
			]
		}`)
	})

	places, err := client.SearchNearby(context.Background(), service.NearbyQuery{
		Coordinates: entity.Coordinates{Lat: 37.7749, Lng: -122.4194},
		Category:    "restaurant",
		Keyword:     "fast",
	})
	require.NoError(t, err)
	require.Len(t, places, 2)

	first := places[0]
	assert.Equal(t, "p1", first.PlaceID)
	assert.Equal(t, "1 Market St", first.Address)
	assert.InDelta(t, 4.4, first.Rating, 1e-9)
	assert.Equal(t, 210, first.UserRatingsTotal)
	require.NotNil(t, first.PriceLevel)
	assert.Equal(t, 0, *first.PriceLevel)
	require.Len(t, first.Photos, 1)
	assert.Equal(t, entity.PlacePhoto{PhotoReference: "ref-1", Width: 800, Height: 600}, first.Photos[0])
	assert.True(t, first.IsOpenNow())
	assert.Nil(t, first.Distance)

	second := places[1]
	assert.Zero(t, second.Rating)
	assert.Zero(t, second.UserRatingsTotal)
	assert.Nil(t, second.PriceLevel)
	assert.Nil(t, second.OpeningHours)
	assert.Nil(t, second.Photos)
}

func TestClient_SearchNearby_PriceRangeAndRadius(t *testing.T) {
	client := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1200", q.Get("radius"))
		assert.Equal(t, "1", q.Get("minprice"))
		assert.Equal(t, "2", q.Get("maxprice"))
		_, _ = io.WriteString(w, `{"status":"ZERO_RESULTS","results":[]}`)
	})

	minPrice, maxPrice := 1, 2
	places, err := client.SearchNearby(context.Background(), service.NearbyQuery{
		Coordinates: entity.Coordinates{Lat: 1, Lng: 2},
		Radius:      1200,
		MinPrice:    &minPrice,
		MaxPrice:    &maxPrice,
	})
	require.NoError(t, err)
	assert.NotNil(t, places)
	assert.Empty(t, places)
}

func TestClient_SearchNearby_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		status      int
		wantStatus  string
		wantMessage string
	}{
		{
			name:        "denied with message",
			body:        `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid.","results":[]}`,
			status:      http.StatusOK,
			wantStatus:  "REQUEST_DENIED",
			wantMessage: "The provided API key is invalid.",
		},
		{
			name:        "over limit without message",
			body:        `{"status":"OVER_QUERY_LIMIT","results":[]}`,
			status:      http.StatusOK,
			wantStatus:  "OVER_QUERY_LIMIT",
			wantMessage: "Failed to fetch places",
		},
		{
			name:        "http failure",
			body:        `bad gateway`,
			status:      http.StatusBadGateway,
			wantStatus:  "HTTP_502",
			wantMessage: "Failed to fetch places",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, "k", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.SearchNearby(context.Background(), service.NearbyQuery{
				Coordinates: entity.Coordinates{Lat: 1, Lng: 2},
			})

			var upstreamErr *domainerrors.UpstreamError
			require.True(t, errors.As(err, &upstreamErr))
			assert.Equal(t, tt.wantStatus, upstreamErr.Status)
			assert.Equal(t, tt.wantMessage, upstreamErr.Message())
		})
	}
}

func TestClient_NotConfigured(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, "", func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	})
	ctx := context.Background()

	_, err := client.SearchNearby(ctx, service.NearbyQuery{Coordinates: entity.Coordinates{Lat: 1, Lng: 1}})
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamNotConfigured)

	_, err = client.GetDetails(ctx, "p1")
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamNotConfigured)

	_, err = client.ReverseGeocode(ctx, entity.Coordinates{Lat: 1, Lng: 1})
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamNotConfigured)

	_, err = client.FetchPhoto(ctx, "ref", 0)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamNotConfigured)

	assert.Zero(t, calls.Load())
}

func TestClient_GetDetails(t *testing.T) {
	client := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/place/details/json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "p1", q.Get("place_id"))
		assert.Equal(t, "place_id,name,formatted_address,formatted_phone_number,website,url,rating,user_ratings_total,price_level,types,photos,opening_hours,geometry,reviews", q.Get("fields"))

		_, _ = io.WriteString(w, `{
			"status": "OK",
			"result": {
				"place_id": "p1",
				"name": "Cafe Luna",
				"formatted_address": "10 Valencia St, San Francisco, CA",
				"formatted_phone_number": "(415) 555-0100",
				"website": "https://cafeluna.example",
				"url": "https://maps.google.com/?cid=1",
				"rating": 4.7,
				"user_ratings_total": 1534,
				"types": ["cafe"],
				"opening_hours": {"open_now": false, "weekday_text": ["Monday: 8AM-5PM"]},
				"geometry": {"location": {"lat": 37.77, "lng": -122.42}},
				"reviews": [
					{"author_name": "Sam", "rating": 5, "text": "Great flat white", "relative_time_description": "a week ago"}
				]
			}
		}`)
	})

	details, err := client.GetDetails(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "10 Valencia St, San Francisco, CA", details.Address)
	assert.Equal(t, "(415) 555-0100", details.FormattedPhoneNumber)
	assert.Equal(t, "https://maps.google.com/?cid=1", details.URL)
	require.NotNil(t, details.OpeningHours)
	assert.False(t, details.OpeningHours.OpenNow)
	assert.Equal(t, []string{"Monday: 8AM-5PM"}, details.OpeningHours.WeekdayText)
	require.Len(t, details.Reviews, 1)
	assert.Equal(t, entity.Review{AuthorName: "Sam", Rating: 5, Text: "Great flat white", RelativeTimeDescription: "a week ago"}, details.Reviews[0])
}

func TestClient_GetDetails_NotFound(t *testing.T) {
	client := newTestClient(t, "k", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"NOT_FOUND"}`)
	})

	_, err := client.GetDetails(context.Background(), "missing")

	var upstreamErr *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, "NOT_FOUND", upstreamErr.Status)
	assert.Equal(t, "Failed to fetch place details", upstreamErr.Message())
}

func TestClient_GetDetails_EmptyID(t *testing.T) {
	client := newTestClient(t, "k", func(http.ResponseWriter, *http.Request) {
		t.Fatal("upstream must not be called")
	})

	_, err := client.GetDetails(context.Background(), "  ")
	assert.ErrorIs(t, err, domainerrors.ErrMissingPlaceID)
}

func TestClient_ReverseGeocode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name: "neighborhood and locality",
			body: `{"status":"OK","results":[{"formatted_address":"Full, Address","address_components":[
				{"long_name":"Mission District","types":["neighborhood","political"]},
				{"long_name":"San Francisco","types":["locality","political"]}]}]}`,
			expected: "Mission District, San Francisco",
		},
		{
			name: "sublocality and locality",
			body: `{"status":"OK","results":[{"formatted_address":"Full, Address","address_components":[
				{"long_name":"Brooklyn","types":["sublocality","political"]},
				{"long_name":"New York","types":["locality","political"]}]}]}`,
			expected: "Brooklyn, New York",
		},
		{
			name: "neighborhood wins over sublocality",
			body: `{"status":"OK","results":[{"formatted_address":"Full","address_components":[
				{"long_name":"Williamsburg","types":["neighborhood"]},
				{"long_name":"Brooklyn","types":["sublocality"]},
				{"long_name":"New York","types":["locality"]}]}]}`,
			expected: "Williamsburg, New York",
		},
		{
			name: "locality only",
			body: `{"status":"OK","results":[{"formatted_address":"Full","address_components":[
				{"long_name":"Reno","types":["locality"]}]}]}`,
			expected: "Reno",
		},
		{
			name:     "formatted address fallback",
			body:     `{"status":"OK","results":[{"formatted_address":"Route 66, USA","address_components":[{"long_name":"USA","types":["country"]}]}]}`,
			expected: "Route 66, USA",
		},
		{
			name:     "no results",
			body:     `{"status":"OK","results":[]}`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
				assert.Equal(t, "37.7749,-122.4194", r.URL.Query().Get("latlng"))
				_, _ = io.WriteString(w, tt.body)
			})

			label, err := client.ReverseGeocode(context.Background(), entity.Coordinates{Lat: 37.7749, Lng: -122.4194})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestClient_ReverseGeocode_UpstreamError(t *testing.T) {
	client := newTestClient(t, "k", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"ZERO_RESULTS","results":[]}`)
	})

	_, err := client.ReverseGeocode(context.Background(), entity.Coordinates{Lat: 0, Lng: 0})

	var upstreamErr *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, "Failed to reverse geocode", upstreamErr.Message())
}

func TestClient_FetchPhoto(t *testing.T) {
	client := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/maps/api/place/photo":
			assert.Equal(t, "400", r.URL.Query().Get("maxwidth"))
			assert.Equal(t, "ref-1", r.URL.Query().Get("photoreference"))
			http.Redirect(w, r, "/images/ref-1.png", http.StatusFound)
		case "/images/ref-1.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
		default:
			http.NotFound(w, r)
		}
	})

	photo, err := client.FetchPhoto(context.Background(), "ref-1", 0)
	require.NoError(t, err)
	assert.Equal(t, "image/png", photo.ContentType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, photo.Data)
}

func TestClient_FetchPhoto_PropagatesStatus(t *testing.T) {
	client := newTestClient(t, "k", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.FetchPhoto(context.Background(), "ref-1", 800)

	var photoErr *domainerrors.PhotoFetchError
	require.True(t, errors.As(err, &photoErr))
	assert.Equal(t, http.StatusForbidden, photoErr.HTTPCode())
}

func TestClient_FetchPhoto_TooLarge(t *testing.T) {
	client := newTestClient(t, "k", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(make([]byte, 64))
	})
	client.photoMaxBytes = 16

	_, err := client.FetchPhoto(context.Background(), "ref-1", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}
