package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"moodmap/config"
	"moodmap/internal/domain/entity"
	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type discoveryService struct {
	places usecase.PlacesUsecase
	cfg    config.DiscoveryConfig
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	base    context.Context
	stopAll context.CancelFunc
	sweeper sync.WaitGroup

	mu       sync.Mutex
	sessions map[string]*discoverySession
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	Lc     fx.Lifecycle
	Places usecase.PlacesUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NewDiscoveryService creates the session store and registers its sweeper with the lifecycle
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	svc := newDiscoveryService(params.Places, params.Config.Discovery, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			svc.startSweeper()

			return nil
		},
		OnStop: func(context.Context) error {
			svc.shutdown()

			return nil
		},
	})

	return svc
}

func newDiscoveryService(places usecase.PlacesUsecase, cfg config.DiscoveryConfig, logger *slog.Logger) *discoveryService {
	base, cancel := context.WithCancel(context.Background())

	return &discoveryService{
		places:   places,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
		base:     base,
		stopAll:  cancel,
		sessions: make(map[string]*discoverySession),
	}
}

// CreateSession starts an idle session with default filters
func (s *discoveryService) CreateSession(ctx context.Context) (*usecase.SessionSnapshot, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		s.sweepLocked(now)
		if len(s.sessions) >= s.cfg.MaxSessions {
			return nil, domainerrors.ErrSessionLimitReached
		}
	}

	session := newDiscoverySession(s.base, s.newID(), s.places.SearchNearby, s.logger, now)
	s.sessions[session.id] = session

	return session.snapshot(), nil
}

// GetSession returns the session, optionally after its outstanding fetch settles
func (s *discoveryService) GetSession(ctx context.Context, id string, wait bool) (*usecase.SessionSnapshot, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	if wait {
		if err := session.wait(ctx); err != nil {
			return nil, err
		}
	}

	return session.snapshot(), nil
}

// SetLocation sets or clears the user coordinates
func (s *discoveryService) SetLocation(ctx context.Context, id string, coords *entity.Coordinates) (*usecase.SessionSnapshot, error) {
	if coords != nil && !coords.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	session.setCoordinates(ctx, coords)

	return session.snapshot(), nil
}

// SetMood selects or clears the mood
func (s *discoveryService) SetMood(ctx context.Context, id string, mood entity.MoodID) (*usecase.SessionSnapshot, error) {
	if mood != "" && !mood.IsValid() {
		return nil, domainerrors.ErrUnknownMood.WithDetails(string(mood))
	}

	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	session.setMood(ctx, mood)

	return session.snapshot(), nil
}

// SetFilters replaces the session's filter state
func (s *discoveryService) SetFilters(ctx context.Context, id string, filters entity.FilterState) (*usecase.SessionSnapshot, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	session.setFilters(filters)

	return session.snapshot(), nil
}

// Select marks a place of the current results
func (s *discoveryService) Select(ctx context.Context, id string, placeID string) (*usecase.SessionSnapshot, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := session.selectPlace(placeID); err != nil {
		return nil, err
	}

	return session.snapshot(), nil
}

// Refresh re-runs the fetch for the current inputs
func (s *discoveryService) Refresh(ctx context.Context, id string) (*usecase.SessionSnapshot, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := session.refresh(ctx); err != nil {
		return nil, err
	}

	return session.snapshot(), nil
}

// DeleteSession drops the session and cancels any outstanding fetch
func (s *discoveryService) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return domainerrors.ErrSessionNotFound
	}
	session.close()

	return nil
}

// Discover runs an ephemeral session tied to ctx and returns its filtered results
func (s *discoveryService) Discover(ctx context.Context, req usecase.DiscoverRequest) (*usecase.DiscoverResult, error) {
	if !req.Coordinates.Valid() {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if !req.Mood.IsValid() {
		return nil, domainerrors.ErrUnknownMood.WithDetails(string(req.Mood))
	}

	session := newDiscoverySession(ctx, s.newID(), s.places.SearchNearby, s.logger, s.now())
	defer session.close()

	session.setFilters(req.Filters)
	session.setMood(ctx, req.Mood)
	session.setCoordinates(ctx, &req.Coordinates)

	if err := session.wait(ctx); err != nil {
		return nil, err
	}
	if err := session.failure(); err != nil {
		return nil, err
	}

	snap := session.snapshot()

	return &usecase.DiscoverResult{
		Places:  snap.Places,
		Total:   snap.Total,
		Filters: snap.Filters,
	}, nil
}

// lookup returns a live session and refreshes its idle timer.
func (s *discoveryService) lookup(id string) (*discoverySession, error) {
	now := s.now()

	s.mu.Lock()
	session, ok := s.sessions[id]
	if ok && s.expired(session, now) {
		delete(s.sessions, id)
		s.mu.Unlock()
		session.close()

		return nil, domainerrors.ErrSessionNotFound
	}
	s.mu.Unlock()

	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	session.touch(now)

	return session, nil
}

func (s *discoveryService) expired(session *discoverySession, now time.Time) bool {
	return s.cfg.SessionTTL > 0 && now.Sub(session.idleSince()) > s.cfg.SessionTTL
}

// sweepLocked removes expired sessions and reports how many were dropped.
func (s *discoveryService) sweepLocked(now time.Time) int {
	removed := 0
	for id, session := range s.sessions {
		if s.expired(session, now) {
			delete(s.sessions, id)
			session.close()
			removed++
		}
	}

	return removed
}

func (s *discoveryService) sweep() {
	s.mu.Lock()
	removed := s.sweepLocked(s.now())
	remaining := len(s.sessions)
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Debug("Expired discovery sessions",
			slog.Int("removed", removed),
			slog.Int("remaining", remaining),
		)
	}
}

func (s *discoveryService) startSweeper() {
	if s.cfg.SweepInterval <= 0 {
		return
	}

	s.sweeper.Add(1)
	go func() {
		defer s.sweeper.Done()

		ticker := time.NewTicker(s.cfg.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.base.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

// shutdown stops the sweeper and closes every session.
func (s *discoveryService) shutdown() {
	s.stopAll()
	s.sweeper.Wait()

	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*discoverySession)
	s.mu.Unlock()

	for _, session := range sessions {
		session.close()
	}

	s.logger.Info("Discovery sessions closed", slog.Int("count", len(sessions)))
}
