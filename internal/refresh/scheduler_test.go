package refresh_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/mocks"
	"github.com/feral-file/ff-fragment/internal/refresh"
)

var (
	testPair = refresh.Pair{
		Network:  domain.NetworkTest,
		Contract: "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0",
		Account:  "0x70997970C51812dc3A010C7d01b50e20d6dc79C8",
	}
	otherPair = refresh.Pair{
		Network:  domain.NetworkPrimary,
		Contract: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Account:  "0x70997970C51812dc3A010C7d01b50e20d6dc79C8",
	}
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

type testSchedulerMocks struct {
	ctrl      *gomock.Controller
	loader    *mocks.MockRefreshLoader
	clock     *mocks.MockClock
	scheduler refresh.Scheduler
}

func setupTest(t *testing.T) *testSchedulerMocks {
	ctrl := gomock.NewController(t)
	tm := &testSchedulerMocks{
		ctrl:   ctrl,
		loader: mocks.NewMockRefreshLoader(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()
	tm.scheduler = refresh.NewScheduler(tm.loader, refresh.Config{Interval: time.Minute, Timeout: 5 * time.Second}, tm.clock)
	return tm
}

func tearDownTest(tm *testSchedulerMocks) {
	tm.ctrl.Finish()
}

func statsWithLive(live int64) domain.SupplyStats {
	return domain.SupplyStats{NetworkID: domain.NetworkTest, SupplyLive: live, MaxSupply: 1000}
}

func TestPair_Equal(t *testing.T) {
	lower := testPair
	lower.Contract = "0x9fe46736679d2d9a65f0992f2272de9f3c7fa6e0"
	assert.True(t, testPair.Equal(lower))
	assert.False(t, testPair.Equal(otherPair))
}

func TestScheduler_RefreshNow(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.scheduler.SetPair(testPair)
	tm.loader.EXPECT().LoadStats(gomock.Any(), testPair).Return(statsWithLive(7), nil)
	tm.loader.EXPECT().LoadOwned(gomock.Any(), testPair).Return([]domain.TokenID{3, 9}, nil)

	view, err := tm.scheduler.RefreshNow(context.Background())
	require.NoError(t, err)
	require.NotNil(t, view.Stats)
	assert.Equal(t, int64(7), view.Stats.SupplyLive)
	assert.Equal(t, []domain.TokenID{3, 9}, view.Owned)
	assert.False(t, view.Stale)
	assert.True(t, view.Pair.Equal(testPair))
	assert.Equal(t, view, tm.scheduler.View())
}

func TestScheduler_FailuresKeepLastKnownValues(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.scheduler.SetPair(testPair)
	gomock.InOrder(
		tm.loader.EXPECT().LoadStats(gomock.Any(), testPair).Return(statsWithLive(7), nil),
		tm.loader.EXPECT().LoadStats(gomock.Any(), testPair).Return(domain.SupplyStats{}, fmt.Errorf("%w: connection reset", domain.ErrLedgerUnavailable)),
	)
	gomock.InOrder(
		tm.loader.EXPECT().LoadOwned(gomock.Any(), testPair).Return([]domain.TokenID{3}, nil),
		tm.loader.EXPECT().LoadOwned(gomock.Any(), testPair).Return(nil, errors.New("rpc timeout")),
	)

	_, err := tm.scheduler.RefreshNow(context.Background())
	require.NoError(t, err)

	view, err := tm.scheduler.RefreshNow(context.Background())
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	require.NotNil(t, view.Stats)
	assert.Equal(t, int64(7), view.Stats.SupplyLive, "last known stats are kept")
	assert.True(t, view.Stale)
	assert.Equal(t, domain.ErrorKindLedgerUnavailable, view.StatsError)
	assert.Equal(t, []domain.TokenID{3}, view.Owned, "last known set is kept")
	assert.True(t, view.OwnedStale)
}

func TestScheduler_DiscardsResultForInactivePair(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.scheduler.SetPair(testPair)

	started := make(chan struct{})
	release := make(chan struct{})
	tm.loader.EXPECT().LoadStats(gomock.Any(), testPair).DoAndReturn(func(context.Context, refresh.Pair) (domain.SupplyStats, error) {
		close(started)
		<-release
		return statsWithLive(7), nil
	})
	tm.loader.EXPECT().LoadOwned(gomock.Any(), testPair).Return([]domain.TokenID{3}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := tm.scheduler.RefreshNow(context.Background())
		done <- err
	}()

	<-started
	tm.scheduler.SetPair(otherPair)
	close(release)

	assert.ErrorIs(t, <-done, refresh.ErrPairChanged)
	view := tm.scheduler.View()
	assert.True(t, view.Pair.Equal(otherPair))
	assert.Nil(t, view.Stats, "the old pair's stats never reach the new view")
	assert.Empty(t, view.Owned)
}

func TestScheduler_OlderRequestDoesNotOverwriteNewer(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.scheduler.SetPair(testPair)

	started := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		tm.loader.EXPECT().LoadStats(gomock.Any(), testPair).DoAndReturn(func(context.Context, refresh.Pair) (domain.SupplyStats, error) {
			close(started)
			<-release
			return statsWithLive(5), nil
		}),
		tm.loader.EXPECT().LoadStats(gomock.Any(), testPair).Return(statsWithLive(6), nil),
	)
	tm.loader.EXPECT().LoadOwned(gomock.Any(), testPair).Return([]domain.TokenID{}, nil).Times(2)

	older := make(chan refresh.View, 1)
	go func() {
		v, _ := tm.scheduler.RefreshNow(context.Background())
		older <- v
	}()
	<-started

	newer, err := tm.scheduler.RefreshNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), newer.Stats.SupplyLive)

	close(release)
	v := <-older
	assert.Equal(t, int64(6), v.Stats.SupplyLive)
	assert.Equal(t, int64(6), tm.scheduler.View().Stats.SupplyLive)
}

func TestScheduler_SetPairSameIsNoop(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.scheduler.SetPair(testPair)
	tm.loader.EXPECT().LoadStats(gomock.Any(), testPair).Return(statsWithLive(7), nil)
	tm.loader.EXPECT().LoadOwned(gomock.Any(), testPair).Return(nil, nil)
	_, err := tm.scheduler.RefreshNow(context.Background())
	require.NoError(t, err)

	same := testPair
	same.Account = "0x70997970c51812dc3a010c7d01b50e20d6dc79c8"
	tm.scheduler.SetPair(same)
	assert.NotNil(t, tm.scheduler.View().Stats, "view survives an equal pair")
}

type testRunMocks struct {
	*testSchedulerMocks
	timer  *mocks.MockTimer
	timerC chan time.Time
}

func setupRunTest(t *testing.T) *testRunMocks {
	tm := &testRunMocks{
		testSchedulerMocks: setupTest(t),
		timerC:             make(chan time.Time),
	}
	tm.timer = mocks.NewMockTimer(tm.ctrl)
	tm.timer.EXPECT().C().Return((<-chan time.Time)(tm.timerC)).AnyTimes()
	tm.timer.EXPECT().Reset(time.Minute).Return(true).AnyTimes()
	tm.timer.EXPECT().Stop().Return(true).AnyTimes()
	tm.clock.EXPECT().NewTimer(time.Minute).Return(tm.timer)
	return tm
}

func TestScheduler_RunSkipsOverlappingTicks(t *testing.T) {
	tm := setupRunTest(t)
	defer tearDownTest(tm.testSchedulerMocks)

	var calls atomic.Int32
	release := make(chan struct{})
	tm.loader.EXPECT().LoadStats(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, refresh.Pair) (domain.SupplyStats, error) {
		calls.Add(1)
		<-release
		return statsWithLive(1), nil
	}).AnyTimes()
	tm.loader.EXPECT().LoadOwned(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tm.scheduler.Run(ctx) }()

	tm.timerC <- time.Now()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	// Both ticks arrive while the first refresh is blocked
	tm.timerC <- time.Now()
	tm.timerC <- time.Now()
	assert.Equal(t, int32(1), calls.Load())

	close(release)
	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), calls.Load())
}

func TestScheduler_RunRefreshesOnPairChange(t *testing.T) {
	tm := setupRunTest(t)
	defer tearDownTest(tm.testSchedulerMocks)

	tm.loader.EXPECT().LoadStats(gomock.Any(), testPair).Return(statsWithLive(4), nil)
	tm.loader.EXPECT().LoadOwned(gomock.Any(), testPair).Return([]domain.TokenID{1}, nil)

	tm.scheduler.SetPair(testPair)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tm.scheduler.Run(ctx) }()

	require.Eventually(t, func() bool { return tm.scheduler.View().Stats != nil }, time.Second, time.Millisecond)
	assert.Equal(t, []domain.TokenID{1}, tm.scheduler.View().Owned)

	cancel()
	require.NoError(t, <-done)
}

func TestScheduler_RefreshNowRestartsTimer(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	var stops, resets atomic.Int32
	timer := mocks.NewMockTimer(tm.ctrl)
	timer.EXPECT().C().Return((<-chan time.Time)(make(chan time.Time))).AnyTimes()
	timer.EXPECT().Stop().DoAndReturn(func() bool {
		stops.Add(1)
		return true
	}).AnyTimes()
	timer.EXPECT().Reset(time.Minute).DoAndReturn(func(time.Duration) bool {
		resets.Add(1)
		return true
	}).AnyTimes()
	tm.clock.EXPECT().NewTimer(time.Minute).Return(timer)

	tm.scheduler.SetPair(testPair)
	tm.loader.EXPECT().LoadStats(gomock.Any(), testPair).Return(statsWithLive(7), nil).AnyTimes()
	tm.loader.EXPECT().LoadOwned(gomock.Any(), testPair).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tm.scheduler.Run(ctx) }()

	// The pair change kick restarts the timer once
	require.Eventually(t, func() bool { return resets.Load() == 1 }, time.Second, time.Millisecond)

	_, err := tm.scheduler.RefreshNow(context.Background())
	require.NoError(t, err)

	require.Eventually(t, func() bool { return resets.Load() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, int32(2), stops.Load(), "the pending tick is stopped before the full interval restarts")

	cancel()
	require.NoError(t, <-done)
}
