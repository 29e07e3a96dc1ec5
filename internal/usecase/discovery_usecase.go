package usecase

import (
	"context"

	"moodmap/internal/domain/entity"
)

// SessionSnapshot is a consistent view of a discovery session at one generation.
type SessionSnapshot struct {
	ID              string                `json:"id"`
	State           entity.DiscoveryState `json:"state"`
	Error           string                `json:"error,omitempty"`
	Mood            entity.MoodID         `json:"mood,omitempty"`
	Coordinates     *entity.Coordinates   `json:"coordinates,omitempty"`
	Filters         entity.FilterState    `json:"filters"`
	Places          []*entity.Place       `json:"places"`
	Total           int                   `json:"total"`
	SelectedPlaceID string                `json:"selectedPlaceId,omitempty"`
	Generation      uint64                `json:"generation"`
}

// DiscoverRequest describes a one-shot discovery run.
type DiscoverRequest struct {
	Coordinates entity.Coordinates
	Mood        entity.MoodID
	Filters     entity.FilterState
}

// DiscoverResult is the filtered outcome of a one-shot run.
type DiscoverResult struct {
	Places  []*entity.Place    `json:"places"`
	Total   int                `json:"total"`
	Filters entity.FilterState `json:"filters"`
}

// DiscoveryUsecase manages discovery sessions.
//
// Places in snapshots are the filtered, sorted view; Total counts the raw result set.
type DiscoveryUsecase interface {
	// CreateSession starts an idle session with default filters
	CreateSession(ctx context.Context) (*SessionSnapshot, error)

	// GetSession returns the session. With wait set it blocks until no fetch is outstanding or ctx ends.
	GetSession(ctx context.Context, id string, wait bool) (*SessionSnapshot, error)

	// SetLocation sets the user coordinates. A nil value clears them.
	SetLocation(ctx context.Context, id string, coords *entity.Coordinates) (*SessionSnapshot, error)

	// SetMood selects a mood. The empty id clears it.
	SetMood(ctx context.Context, id string, mood entity.MoodID) (*SessionSnapshot, error)

	// SetFilters replaces the session's filter state
	SetFilters(ctx context.Context, id string, filters entity.FilterState) (*SessionSnapshot, error)

	// Select marks a place from the current results. The empty id clears the selection.
	Select(ctx context.Context, id string, placeID string) (*SessionSnapshot, error)

	// Refresh re-runs the fetch for the current inputs
	Refresh(ctx context.Context, id string) (*SessionSnapshot, error)

	// DeleteSession drops the session and cancels any outstanding fetch
	DeleteSession(ctx context.Context, id string) error

	// Discover runs the whole pipeline once and waits for the result
	Discover(ctx context.Context, req DiscoverRequest) (*DiscoverResult, error)
}
