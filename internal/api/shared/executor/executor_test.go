package executor_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-fragment/internal/adapter"
	apierrors "github.com/feral-file/ff-fragment/internal/api/shared/errors"
	"github.com/feral-file/ff-fragment/internal/api/shared/executor"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/mocks"
	"github.com/feral-file/ff-fragment/internal/orchestrator"
	"github.com/feral-file/ff-fragment/internal/presenter"
	"github.com/feral-file/ff-fragment/internal/refresh"
	"github.com/feral-file/ff-fragment/internal/session"
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

type testExecutorMocks struct {
	ctrl         *gomock.Controller
	session      *mocks.MockSession
	scheduler    *mocks.MockRefreshScheduler
	orchestrator *mocks.MockOrchestrator
	desk         *mocks.MockDesk
	uris         *mocks.MockURIResolver
	media        *mocks.MockMediaResolver
	contract     *mocks.MockLedgerClient
	executor     executor.Executor
}

func setupTest(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:         ctrl,
		session:      mocks.NewMockSession(ctrl),
		scheduler:    mocks.NewMockRefreshScheduler(ctrl),
		orchestrator: mocks.NewMockOrchestrator(ctrl),
		desk:         mocks.NewMockDesk(ctrl),
		uris:         mocks.NewMockURIResolver(ctrl),
		media:        mocks.NewMockMediaResolver(ctrl),
		contract:     mocks.NewMockLedgerClient(ctrl),
	}
	tm.executor = executor.NewExecutor(tm.session, tm.scheduler, tm.orchestrator, tm.desk, tm.uris, tm.media, adapter.NewJSON(), adapter.NewJCS())
	return tm
}

func tearDownTest(tm *testExecutorMocks) {
	tm.ctrl.Finish()
}

func asAPIError(t *testing.T, err error) *apierrors.APIError {
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	return apiErr
}

func TestGetStats(t *testing.T) {
	snapshot := &domain.SupplyStats{MaxSupply: 1000, SupplyLive: 9, MintedHistoric: 10, Burned: 1}

	t.Run("serves the cached view", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		tm.desk.EXPECT().Heartbeat()
		tm.scheduler.EXPECT().View().Return(refresh.View{Stats: snapshot})

		resp, tag, err := tm.executor.GetStats(context.Background())
		require.NoError(t, err)
		assert.Same(t, snapshot, resp.Stats)
		assert.False(t, resp.Stale)
		assert.True(t, strings.HasPrefix(tag, `"`) && strings.HasSuffix(tag, `"`))
		assert.NotContains(t, tag, "stale")
	})

	t.Run("stale view changes the tag", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		tm.desk.EXPECT().Heartbeat().Times(2)
		tm.scheduler.EXPECT().View().Return(refresh.View{Stats: snapshot})
		tm.scheduler.EXPECT().View().Return(refresh.View{Stats: snapshot, Stale: true, StatsError: domain.ErrorKindLedgerUnavailable})

		_, fresh, err := tm.executor.GetStats(context.Background())
		require.NoError(t, err)
		resp, stale, err := tm.executor.GetStats(context.Background())
		require.NoError(t, err)

		assert.True(t, resp.Stale)
		assert.Equal(t, domain.ErrorKindLedgerUnavailable, resp.StatsError)
		assert.NotEqual(t, fresh, stale)
		assert.True(t, strings.HasSuffix(stale, `-stale"`))
	})

	t.Run("loads on first request", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		tm.desk.EXPECT().Heartbeat()
		tm.scheduler.EXPECT().View().Return(refresh.View{})
		tm.scheduler.EXPECT().RefreshNow(gomock.Any()).Return(refresh.View{Stats: snapshot}, nil)

		resp, _, err := tm.executor.GetStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.Stats.SupplyLive)
	})

	t.Run("first load fails", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		tm.desk.EXPECT().Heartbeat()
		tm.scheduler.EXPECT().View().Return(refresh.View{})
		tm.scheduler.EXPECT().RefreshNow(gomock.Any()).Return(refresh.View{Stale: true}, domain.ErrNoContractConfigured)

		_, _, err := tm.executor.GetStats(context.Background())
		apiErr := asAPIError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status())
		assert.Equal(t, domain.ErrorKindNoContractConfigured, apiErr.Kind)
	})

	t.Run("failed before and nothing cached", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		tm.desk.EXPECT().Heartbeat()
		tm.scheduler.EXPECT().View().Return(refresh.View{Stale: true, StatsError: domain.ErrorKindLedgerUnavailable})

		_, _, err := tm.executor.GetStats(context.Background())
		assert.Equal(t, http.StatusServiceUnavailable, asAPIError(t, err).Status())
	})
}

func TestGetOwned(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	account := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e20d6dc79C8")
	tm.scheduler.EXPECT().View().Return(refresh.View{Owned: []domain.TokenID{3, 7}, OwnedStale: true})
	tm.session.EXPECT().Account(gomock.Any()).Return(account, nil)

	resp, err := tm.executor.GetOwned(context.Background())
	require.NoError(t, err)
	assert.Equal(t, account.Hex(), resp.Account)
	assert.Equal(t, []domain.TokenID{3, 7}, resp.TokenIDs)
	assert.True(t, resp.Stale)

	tm.scheduler.EXPECT().View().Return(refresh.View{})
	tm.session.EXPECT().Account(gomock.Any()).Return(common.Address{}, domain.ErrNoAccount)

	resp, err = tm.executor.GetOwned(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Account)
	assert.NotNil(t, resp.TokenIDs)
}

func TestGetTokenURI(t *testing.T) {
	t.Run("resolves through a gateway", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		tm.session.EXPECT().Ledger(gomock.Any()).Return(tm.contract, nil)
		tm.contract.EXPECT().TokenMetadataURI(gomock.Any(), domain.TokenID(7)).Return("ipfs://QmMeta/7.json", nil)
		tm.uris.EXPECT().GatewayURL("ipfs://QmMeta/7.json").Return("https://ipfs.io/ipfs/QmMeta/7.json")

		resp, err := tm.executor.GetTokenURI(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "https://ipfs.io/ipfs/QmMeta/7.json", resp.GatewayURL)
	})

	t.Run("nonexistent token", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		tm.session.EXPECT().Ledger(gomock.Any()).Return(tm.contract, nil)
		tm.contract.EXPECT().TokenMetadataURI(gomock.Any(), domain.TokenID(8)).Return("", domain.ErrNotExposed)

		_, err := tm.executor.GetTokenURI(context.Background(), 8)
		assert.Equal(t, http.StatusNotFound, asAPIError(t, err).Status())
	})

	t.Run("no contract", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		tm.session.EXPECT().Ledger(gomock.Any()).Return(nil, domain.ErrNoContractConfigured)

		_, err := tm.executor.GetTokenURI(context.Background(), 8)
		assert.Equal(t, domain.ErrorKindNoContractConfigured, asAPIError(t, err).Kind)
	})
}

func TestOperations(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.orchestrator.EXPECT().Status().Return(map[orchestrator.Slot]domain.PendingTransaction{
		orchestrator.SlotMint:     {State: domain.TxStateAwaitingSettlement},
		orchestrator.SlotBurn:     {State: domain.TxStateIdle},
		orchestrator.SlotWithdraw: {State: domain.TxStateIdle},
	})
	resp := tm.executor.GetOperations()
	assert.Len(t, resp.Operations, 3)
	assert.Equal(t, domain.TxStateAwaitingSettlement, resp.Operations["mint"].State)

	tm.orchestrator.EXPECT().StartMint(gomock.Any(), "").Return(domain.PendingTransaction{}, domain.ErrOperationInFlight)
	_, err := tm.executor.Mint(context.Background(), "")
	apiErr := asAPIError(t, err)
	assert.Equal(t, http.StatusConflict, apiErr.Status())
	assert.Equal(t, domain.ErrorKindOperationInFlight, apiErr.Kind)

	tm.orchestrator.EXPECT().StartBurn(gomock.Any(), domain.TokenID(42)).Return(domain.PendingTransaction{
		Kind: domain.OperationBurn, State: domain.TxStateAwaitingConfirmation, TokenID: 42,
	}, nil)
	tx, err := tm.executor.Burn(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, domain.TxStateAwaitingConfirmation, tx.State)

	amount, _ := domain.ParseEther("0.5")
	tm.orchestrator.EXPECT().StartWithdraw(gomock.Any(), &amount).Return(domain.PendingTransaction{Kind: domain.OperationWithdrawPartial}, nil)
	tx, err = tm.executor.Withdraw(context.Background(), &amount)
	require.NoError(t, err)
	assert.Equal(t, domain.OperationWithdrawPartial, tx.Kind)
}

func TestDesk(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	prompts := []presenter.Prompt{{ID: "p-1", Kind: "retire_confirmation", CreatedAt: time.Now()}}
	tm.desk.EXPECT().Heartbeat().Times(2)
	tm.desk.EXPECT().Prompts().Return(prompts)
	tm.desk.EXPECT().Notifications("01HX").Return(nil)

	assert.Equal(t, prompts, tm.executor.GetPrompts().Prompts)
	assert.Empty(t, tm.executor.GetNotifications("01HX").Notifications)

	tm.desk.EXPECT().Decide("p-1", presenter.DecisionConfirm).Return(nil)
	require.NoError(t, tm.executor.DecidePrompt("p-1", true))

	tm.desk.EXPECT().Decide("p-2", presenter.DecisionCancel).Return(domain.ErrPromptNotFound)
	err := tm.executor.DecidePrompt("p-2", false)
	assert.Equal(t, http.StatusNotFound, asAPIError(t, err).Status())
}

func TestSessionAndMedia(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	gomock.InOrder(
		tm.session.EXPECT().SetOverride(gomock.Any(), domain.NetworkPrimary),
		tm.session.EXPECT().Info(gomock.Any()).Return(session.Info{Override: domain.NetworkPrimary, NetworkName: "Ethereum"}),
	)

	info := tm.executor.SetNetwork(context.Background(), domain.NetworkPrimary)
	assert.Equal(t, domain.NetworkPrimary, info.Override)

	tm.media.EXPECT().HeroVideo(gomock.Any()).Return("https://ipfs.io/ipfs/QmHero")
	tm.media.EXPECT().AssetImage().Return("https://ipfs.io/ipfs/QmImage")
	hero := tm.executor.GetHeroMedia(context.Background())
	assert.Equal(t, "https://ipfs.io/ipfs/QmHero", hero.VideoURL)
	assert.Equal(t, "https://ipfs.io/ipfs/QmImage", hero.ImageURL)
}
