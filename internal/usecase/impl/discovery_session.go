package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "moodmap/internal/delivery/context"
	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/domain/geo"
	"moodmap/internal/domain/service"
	"moodmap/internal/errors"
	"moodmap/internal/usecase"
)

const (
	msgLocationUnavailable = "Location unavailable"
	msgMoodUnavailable     = "No mood selected"
	msgFetchPlacesFailed   = "Failed to fetch places"
)

var errSessionClosed = errors.New("Session closed")

// nearbyFetcher is the one upstream call a session makes per generation.
type nearbyFetcher func(ctx context.Context, query service.NearbyQuery) ([]*entity.Place, error)

// discoverySession is the state machine behind one discovery pipeline.
//
// Every fetch is tagged with the generation current when it started. A result
// is applied only while that generation is still current; starting a new fetch,
// clearing an input or closing the session bumps the generation and cancels the
// outstanding fetch context.
type discoverySession struct {
	id      string
	fetch   nearbyFetcher
	root    context.Context
	release context.CancelFunc
	logger  *slog.Logger

	mu         sync.Mutex
	state      entity.DiscoveryState
	err        error
	errMessage string
	coords     *entity.Coordinates
	mood       entity.MoodID
	filters    entity.FilterState
	places     []*entity.Place
	selected   string
	generation uint64
	cancel     context.CancelFunc
	settled    chan struct{}
	lastSeen   time.Time
}

func newDiscoverySession(parent context.Context, id string, fetch nearbyFetcher, logger *slog.Logger, now time.Time) *discoverySession {
	root, cancel := context.WithCancel(parent)

	return &discoverySession{
		id:       id,
		fetch:    fetch,
		root:     root,
		release:  cancel,
		logger:   logger,
		state:    entity.DiscoveryIdle,
		filters:  entity.DefaultFilterState(),
		lastSeen: now,
	}
}

// setCoordinates replaces the user location. nil clears it.
func (s *discoverySession) setCoordinates(ctx context.Context, coords *entity.Coordinates) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sameCoordinates(s.coords, coords) && s.state != entity.DiscoveryIdle {
		return
	}
	if coords != nil {
		c := *coords
		coords = &c
	}
	s.coords = coords
	s.reconcileLocked(ctx)
}

// setMood replaces the selected mood. The empty id clears it.
func (s *discoverySession) setMood(ctx context.Context, mood entity.MoodID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mood == mood && s.state != entity.DiscoveryIdle {
		return
	}
	s.mood = mood
	s.reconcileLocked(ctx)
}

func (s *discoverySession) setFilters(filters entity.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = filters
}

// selectPlace marks a place from the raw result set. The empty id clears the selection.
func (s *discoverySession) selectPlace(placeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if placeID == "" {
		s.selected = ""

		return nil
	}

	for _, place := range s.places {
		if place.PlaceID == placeID {
			s.selected = placeID

			return nil
		}
	}

	return domainerrors.ErrPlaceNotInResults.WithDetails(placeID)
}

// refresh re-enters loading for the current inputs.
func (s *discoverySession) refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coords == nil || s.mood == "" {
		return domainerrors.ErrDiscoveryInputsMissing
	}
	s.startFetchLocked(ctx)

	return nil
}

// wait blocks until no fetch is outstanding or ctx ends.
func (s *discoverySession) wait(ctx context.Context) error {
	s.mu.Lock()
	if s.state.Settled() {
		s.mu.Unlock()

		return nil
	}
	settled := s.settled
	s.mu.Unlock()
	if settled == nil {
		return nil
	}

	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// failure returns the error that moved the session into the error state, if any.
func (s *discoverySession) failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entity.DiscoveryError {
		return nil
	}
	if s.err != nil {
		return s.err
	}

	return errors.New(s.errMessage)
}

func (s *discoverySession) snapshot() *usecase.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &usecase.SessionSnapshot{
		ID:              s.id,
		State:           s.state,
		Error:           s.errMessage,
		Mood:            s.mood,
		Filters:         s.filters,
		Places:          s.filters.Apply(s.places),
		Total:           len(s.places),
		SelectedPlaceID: s.selected,
		Generation:      s.generation,
	}
	if s.coords != nil {
		c := *s.coords
		snap.Coordinates = &c
	}

	return snap
}

func (s *discoverySession) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *discoverySession) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSeen
}

// close invalidates any outstanding fetch and releases the session context.
func (s *discoverySession) close() {
	s.mu.Lock()
	s.generation++
	if s.state == entity.DiscoveryLoading {
		s.settleLocked(nil, errSessionClosed, errSessionClosed.Error())
	}
	s.mu.Unlock()

	s.release()
}

// reconcileLocked starts a fetch when both inputs are present. Losing an input
// outside idle fails the session.
func (s *discoverySession) reconcileLocked(ctx context.Context) {
	if s.coords != nil && s.mood != "" {
		s.startFetchLocked(ctx)

		return
	}
	if s.state == entity.DiscoveryIdle {
		return
	}

	message := msgLocationUnavailable
	if s.coords != nil {
		message = msgMoodUnavailable
	}
	s.generation++
	s.settleLocked(nil, nil, message)
}

func (s *discoverySession) startFetchLocked(ctx context.Context) {
	if s.cancel != nil {
		s.cancel()
	}

	s.generation++
	generation := s.generation
	origin := *s.coords
	mood, _ := entity.LookupMood(s.mood)
	query := nearbyQueryFor(origin, mood)

	s.state = entity.DiscoveryLoading
	s.err = nil
	s.errMessage = ""
	s.places = nil
	s.selected = ""
	if s.settled == nil {
		s.settled = make(chan struct{})
	}

	fetchCtx, cancel := context.WithCancel(deliverycontext.Detach(s.root, ctx))
	s.cancel = cancel

	go s.run(fetchCtx, generation, origin, query)
}

func (s *discoverySession) run(ctx context.Context, generation uint64, origin entity.Coordinates, query service.NearbyQuery) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("session_id", s.id))

	places, err := s.fetch(ctx, query)
	if err == nil {
		places = geo.Annotate(origin, places)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		logger.Debug("Discarding superseded discovery result",
			slog.Uint64("generation", generation),
			slog.Uint64("current_generation", s.generation),
		)

		return
	}

	if err != nil {
		logger.Warn("Discovery fetch failed", slog.Any("error", err))
		s.settleLocked(nil, err, fetchErrorMessage(err))

		return
	}

	logger.Debug("Discovery fetch completed", slog.Int("places", len(places)))
	s.settleLocked(places, nil, "")
}

// settleLocked leaves loading. A non-empty message means the error state.
func (s *discoverySession) settleLocked(places []*entity.Place, err error, message string) {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if message != "" {
		s.state = entity.DiscoveryError
		s.err = err
		s.errMessage = message
		s.places = nil
		s.selected = ""
	} else {
		s.state = entity.DiscoveryLoaded
		s.err = nil
		s.errMessage = ""
		s.places = places
	}

	if s.settled != nil {
		close(s.settled)
		s.settled = nil
	}
}

func nearbyQueryFor(coords entity.Coordinates, mood entity.Mood) service.NearbyQuery {
	query := service.NearbyQuery{
		Coordinates: coords,
		Category:    mood.PrimaryType(),
		Radius:      service.DefaultSearchRadius,
		Keyword:     mood.PrimaryKeyword(),
	}
	if mood.PriceRange != nil {
		minPrice, maxPrice := mood.PriceRange.Min, mood.PriceRange.Max
		query.MinPrice = &minPrice
		query.MaxPrice = &maxPrice
	}

	return query
}

func fetchErrorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Message() != "" {
		return appErr.Message()
	}

	return msgFetchPlacesFailed
}

func sameCoordinates(a, b *entity.Coordinates) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
