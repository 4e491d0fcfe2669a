package refresh

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/logger"
)

// ErrPairChanged is returned when the active pair changed while a refresh was in flight
var ErrPairChanged = errors.New("active pair changed during refresh")

// Pair identifies whose view is being refreshed
type Pair struct {
	Network  domain.NetworkID `json:"network"`
	Contract string           `json:"contract"`
	Account  string           `json:"account,omitempty"`
}

// Equal compares pairs ignoring address casing
func (p Pair) Equal(o Pair) bool {
	return p.Network == o.Network &&
		strings.EqualFold(p.Contract, o.Contract) &&
		strings.EqualFold(p.Account, o.Account)
}

// Loader reads the data shown for a pair
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/refresh.go -package=mocks -mock_names=Loader=MockRefreshLoader,Scheduler=MockRefreshScheduler
type Loader interface {
	LoadStats(ctx context.Context, pair Pair) (domain.SupplyStats, error)
	LoadOwned(ctx context.Context, pair Pair) ([]domain.TokenID, error)
}

// View is the last applied refresh for the active pair
type View struct {
	Pair  Pair                `json:"pair"`
	Stats *domain.SupplyStats `json:"stats"`
	// Stale is set when the latest stats load failed and Stats holds the last known values
	Stale      bool             `json:"stale"`
	StatsError domain.ErrorKind `json:"stats_error,omitempty"`
	Owned      []domain.TokenID `json:"owned"`
	OwnedStale bool             `json:"owned_stale"`
	// RequestedAt is when the applied refresh was requested
	RequestedAt time.Time `json:"requested_at"`
}

// Scheduler keeps the view of the active pair current
type Scheduler interface {
	// Run refreshes periodically until ctx is done
	Run(ctx context.Context) error
	// RefreshNow refreshes immediately, resets the periodic timer and returns the resulting view.
	// The error is the stats failure, or ErrPairChanged when the result was discarded.
	RefreshNow(ctx context.Context) (View, error)
	// SetPair switches the active pair, clears the view and triggers a refresh
	SetPair(pair Pair)
	// View returns a copy of the current view
	View() View
}

// Config holds configuration for the scheduler
type Config struct {
	// Interval is the period between refreshes
	Interval time.Duration
	// Timeout bounds a single refresh
	Timeout time.Duration
}

type scheduler struct {
	loader Loader
	config Config
	clock  adapter.Clock

	running atomic.Bool
	ticking atomic.Bool
	kick    chan struct{}
	reset   chan struct{}
	wg      sync.WaitGroup

	mu           sync.Mutex
	pair         Pair
	generation   uint64
	requests     uint64
	applied      uint64
	view         View
	lastStatsErr error
}

// NewScheduler creates a scheduler for the given loader
func NewScheduler(loader Loader, config Config, clock adapter.Clock) Scheduler {
	return &scheduler{
		loader: loader,
		config: config,
		clock:  clock,
		kick:   make(chan struct{}, 1),
		reset:  make(chan struct{}, 1),
	}
}

func (s *scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already running")
	}
	defer s.running.Store(false)

	logger.InfoCtx(ctx, "Starting refresh scheduler", zap.Duration("interval", s.config.Interval))

	timer := s.clock.NewTimer(s.config.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Refresh scheduler stopping", zap.Error(ctx.Err()))
			s.wg.Wait()
			return nil
		case <-timer.C():
			s.tick(ctx)
			timer.Reset(s.config.Interval)
		case <-s.kick:
			s.background(ctx, "pair_changed")
			s.restart(timer)
		case <-s.reset:
			s.restart(timer)
		}
	}
}

// restart stops the timer, drains a pending fire and starts a full interval
func (s *scheduler) restart(timer adapter.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C():
		default:
		}
	}
	timer.Reset(s.config.Interval)
}

// tick starts a periodic refresh unless the previous one is still running
func (s *scheduler) tick(ctx context.Context) {
	if !s.ticking.CompareAndSwap(false, true) {
		logger.DebugCtx(ctx, "Periodic refresh still in flight, skipping tick")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.ticking.Store(false)
		_, _ = s.refresh(ctx, "periodic")
	}()
}

func (s *scheduler) background(ctx context.Context, reason string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_, _ = s.refresh(ctx, reason)
	}()
}

func (s *scheduler) RefreshNow(ctx context.Context) (View, error) {
	view, err := s.refresh(ctx, "on_demand")

	select {
	case s.reset <- struct{}{}:
	default:
	}

	return view, err
}

func (s *scheduler) SetPair(pair Pair) {
	s.mu.Lock()
	if s.pair.Equal(pair) {
		s.mu.Unlock()
		return
	}
	s.pair = pair
	s.generation++
	s.view = View{Pair: pair}
	s.lastStatsErr = nil
	s.mu.Unlock()

	logger.Info("Active pair changed",
		zap.String("network", string(pair.Network)),
		zap.String("contract", pair.Contract),
		zap.String("account", pair.Account))

	select {
	case s.kick <- struct{}{}:
	default:
	}
}

func (s *scheduler) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot copies the view; callers hold s.mu
func (s *scheduler) snapshot() View {
	v := s.view
	if s.view.Stats != nil {
		stats := *s.view.Stats
		v.Stats = &stats
	}
	v.Owned = append([]domain.TokenID(nil), s.view.Owned...)
	return v
}

func (s *scheduler) refresh(ctx context.Context, reason string) (View, error) {
	s.mu.Lock()
	pair := s.pair
	generation := s.generation
	s.requests++
	request := s.requests
	requestedAt := s.clock.Now()
	s.mu.Unlock()

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	logger.DebugCtx(ctx, "Refreshing view",
		zap.String("reason", reason),
		zap.String("network", string(pair.Network)),
		zap.Uint64("request", request))

	var (
		stats    domain.SupplyStats
		statsErr error
		owned    []domain.TokenID
		ownedErr error
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		stats, statsErr = s.loader.LoadStats(ctx, pair)
		return nil
	})
	g.Go(func() error {
		owned, ownedErr = s.loader.LoadOwned(ctx, pair)
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		logger.DebugCtx(ctx, "Discarding refresh for inactive pair", zap.Uint64("request", request))
		return s.snapshot(), ErrPairChanged
	}
	if request < s.applied {
		// A newer request already landed; its view supersedes this one
		logger.DebugCtx(ctx, "Discarding superseded refresh", zap.Uint64("request", request))
		return s.snapshot(), s.lastStatsErr
	}

	s.applied = request
	s.view.Pair = pair
	s.view.RequestedAt = requestedAt

	if statsErr != nil {
		logger.WarnCtx(ctx, "Stats refresh failed, keeping last known values", zap.Error(statsErr))
		s.view.Stale = true
		s.view.StatsError = domain.KindOf(statsErr)
		s.lastStatsErr = statsErr
	} else {
		s.view.Stats = &stats
		s.view.Stale = false
		s.view.StatsError = domain.ErrorKindNone
		s.lastStatsErr = nil
	}

	if ownedErr != nil {
		logger.WarnCtx(ctx, "Holdings refresh failed, keeping last known set", zap.Error(ownedErr))
		s.view.OwnedStale = true
	} else {
		s.view.Owned = owned
		s.view.OwnedStale = false
	}

	return s.snapshot(), statsErr
}
