package session_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/ledger"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/mocks"
	"github.com/feral-file/ff-fragment/internal/netconfig"
	"github.com/feral-file/ff-fragment/internal/refresh"
	"github.com/feral-file/ff-fragment/internal/session"
	"github.com/feral-file/ff-fragment/internal/wallet"
)

var (
	testContract   = common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0")
	mainContract   = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	testAccount    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e20d6dc79C8")
	testNow        = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testPair       = refresh.Pair{Network: domain.NetworkTest, Contract: testContract.Hex(), Account: testAccount.Hex()}
	primaryPair    = refresh.Pair{Network: domain.NetworkPrimary, Contract: mainContract.Hex(), Account: testAccount.Hex()}
	errUnreachable = errors.New("connection refused")
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

type testSessionMocks struct {
	ctrl       *gomock.Controller
	provider   *mocks.MockWalletProvider
	backend    *mocks.MockEthClient
	contract   *mocks.MockLedgerClient
	reconciler *mocks.MockStatsReconciler
	holdings   *mocks.MockHoldingsEnumerator
	publisher  *mocks.MockPublisher
	scheduler  *mocks.MockRefreshScheduler
	clock      *mocks.MockClock
	session    session.Session
	built      []common.Address
	chainID    domain.ChainID
	accounts   []common.Address
}

func setupTest(t *testing.T) *testSessionMocks {
	ctrl := gomock.NewController(t)
	tm := &testSessionMocks{
		ctrl:       ctrl,
		provider:   mocks.NewMockWalletProvider(ctrl),
		backend:    mocks.NewMockEthClient(ctrl),
		contract:   mocks.NewMockLedgerClient(ctrl),
		reconciler: mocks.NewMockStatsReconciler(ctrl),
		holdings:   mocks.NewMockHoldingsEnumerator(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		scheduler:  mocks.NewMockRefreshScheduler(ctrl),
		clock:      mocks.NewMockClock(ctrl),
		chainID:    domain.ChainIDTest,
		accounts:   []common.Address{testAccount},
	}

	resolver := netconfig.NewResolver(netconfig.Settings{
		Primary: netconfig.Network{ChainID: domain.ChainIDPrimary, Name: "Ethereum", ContractAddress: mainContract.Hex()},
		Test:    netconfig.Network{ChainID: domain.ChainIDTest, Name: "Sepolia", ContractAddress: testContract.Hex()},
	})

	tm.provider.EXPECT().ChainID(gomock.Any()).DoAndReturn(func(context.Context) (domain.ChainID, error) {
		return tm.chainID, nil
	}).AnyTimes()
	tm.provider.EXPECT().Accounts(gomock.Any()).DoAndReturn(func(context.Context) ([]common.Address, error) {
		return tm.accounts, nil
	}).AnyTimes()
	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()

	tm.session = session.New(session.Config{
		NewLedger: func(address common.Address, _ adapter.EthClient) ledger.Client {
			tm.built = append(tm.built, address)
			return tm.contract
		},
	}, resolver, tm.provider, tm.reconciler, tm.holdings, tm.publisher, tm.clock)
	return tm
}

func tearDownTest(tm *testSessionMocks) {
	tm.ctrl.Finish()
}

func TestSession_StartFollowsWalletChanges(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	changes := make(chan wallet.Change, 1)
	unsubscribed := false
	tm.provider.EXPECT().Subscribe().Return((<-chan wallet.Change)(changes), func() {
		unsubscribed = true
		close(changes)
	})

	switched := make(chan struct{})
	gomock.InOrder(
		tm.scheduler.EXPECT().SetPair(testPair),
		tm.scheduler.EXPECT().SetPair(primaryPair).Do(func(refresh.Pair) { close(switched) }),
	)
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.LifecycleEvent) error {
		assert.Equal(t, domain.EventTypeSessionChanged, e.Type)
		assert.Equal(t, domain.NetworkPrimary, e.Network)
		assert.Equal(t, testNow, e.Timestamp)
		return nil
	})

	require.NoError(t, tm.session.Start(context.Background(), tm.scheduler))
	assert.Error(t, tm.session.Start(context.Background(), tm.scheduler), "second start is rejected")

	tm.chainID = domain.ChainIDPrimary
	changes <- wallet.Change{ChainID: domain.ChainIDPrimary, Accounts: tm.accounts}

	select {
	case <-switched:
	case <-time.After(time.Second):
		t.Fatal("scheduler was not moved to the new pair")
	}

	tm.session.Close()
	assert.True(t, unsubscribed)
}

func TestSession_SetOverride(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	changes := make(chan wallet.Change)
	tm.provider.EXPECT().Subscribe().Return((<-chan wallet.Change)(changes), func() { close(changes) })
	tm.scheduler.EXPECT().SetPair(testPair)
	require.NoError(t, tm.session.Start(context.Background(), tm.scheduler))
	defer tm.session.Close()

	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	tm.scheduler.EXPECT().SetPair(primaryPair)

	tm.session.SetOverride(context.Background(), domain.NetworkPrimary)
	assert.Equal(t, domain.NetworkPrimary, tm.session.Override())
	assert.Equal(t, mainContract.Hex(), tm.session.Target(context.Background()).ContractAddress)

	// Same override is a no-op
	tm.session.SetOverride(context.Background(), domain.NetworkPrimary)

	info := tm.session.Info(context.Background())
	assert.Equal(t, domain.ChainIDTest, info.ChainID)
	assert.Equal(t, "Sepolia", info.NetworkName)
	assert.Equal(t, []string{testAccount.Hex()}, info.Accounts)
	assert.Equal(t, domain.NetworkPrimary, info.Override)
	assert.Equal(t, domain.NetworkPrimary, info.Target.NetworkID)
}

func TestSession_LoadStats(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.provider.EXPECT().Backend(gomock.Any()).Return(tm.backend, nil)
	snapshot := domain.SupplyStats{NetworkID: domain.NetworkTest, SupplyLive: 4}
	tm.reconciler.EXPECT().Reconcile(gomock.Any(), tm.contract, domain.ChainIDTest, domain.NetworkID("")).Return(snapshot, nil)
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.LifecycleEvent) error {
		assert.Equal(t, domain.EventTypeStatsReconciled, e.Type)
		return nil
	})

	got, err := tm.session.LoadStats(context.Background(), testPair)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
	assert.Equal(t, []common.Address{testContract}, tm.built)
}

func TestSession_LoadStatsFailures(t *testing.T) {
	t.Run("no contract", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		_, err := tm.session.LoadStats(context.Background(), refresh.Pair{Network: domain.NetworkTest})
		assert.ErrorIs(t, err, domain.ErrNoContractConfigured)
	})

	t.Run("backend unreachable", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		tm.provider.EXPECT().Backend(gomock.Any()).Return(nil, fmt.Errorf("%w: %w", domain.ErrNoProvider, errUnreachable))

		_, err := tm.session.LoadStats(context.Background(), testPair)
		assert.ErrorIs(t, err, domain.ErrNoProvider)
	})

	t.Run("reconcile failure", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		tm.provider.EXPECT().Backend(gomock.Any()).Return(tm.backend, nil)
		tm.reconciler.EXPECT().Reconcile(gomock.Any(), tm.contract, gomock.Any(), gomock.Any()).
			Return(domain.SupplyStats{}, domain.ErrLedgerUnavailable)

		_, err := tm.session.LoadStats(context.Background(), testPair)
		assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	})
}

func TestSession_LoadOwned(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	owned, err := tm.session.LoadOwned(context.Background(), refresh.Pair{Network: domain.NetworkTest, Contract: testContract.Hex()})
	require.NoError(t, err)
	assert.Empty(t, owned, "no account means nothing owned")

	tm.provider.EXPECT().Backend(gomock.Any()).Return(tm.backend, nil)
	tm.holdings.EXPECT().Owned(gomock.Any(), tm.contract, testAccount).Return([]domain.TokenID{2, 5}, nil)

	owned, err = tm.session.LoadOwned(context.Background(), testPair)
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{2, 5}, owned)
}

func TestSession_Account(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	account, err := tm.session.Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAccount, account)

	tm.accounts = nil
	_, err = tm.session.Account(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoAccount)
	assert.Equal(t, refresh.Pair{Network: domain.NetworkTest, Contract: testContract.Hex()}, tm.session.Active(context.Background()))

	assert.Equal(t, "Ethereum", tm.session.NetworkName(domain.NetworkPrimary))
	assert.Equal(t, "Sepolia", tm.session.NetworkName(domain.NetworkTest))
}

func TestSession_WithoutProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := netconfig.NewResolver(netconfig.Settings{
		Test: netconfig.Network{ChainID: domain.ChainIDTest, Name: "Sepolia", ContractAddress: testContract.Hex()},
	})
	scheduler := mocks.NewMockRefreshScheduler(ctrl)
	s := session.New(session.Config{}, resolver, nil, nil, nil, mocks.NewMockPublisher(ctrl), mocks.NewMockClock(ctrl))

	scheduler.EXPECT().SetPair(refresh.Pair{Network: domain.NetworkTest, Contract: testContract.Hex()})
	require.NoError(t, s.Start(context.Background(), scheduler))

	_, err := s.Account(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoProvider)
	_, err = s.Ledger(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoProvider)

	assert.NotPanics(t, s.Close)
}
