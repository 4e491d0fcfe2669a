package executor

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-fragment/internal/api/shared/errors"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/media"
	"github.com/feral-file/ff-fragment/internal/orchestrator"
	"github.com/feral-file/ff-fragment/internal/presenter"
	"github.com/feral-file/ff-fragment/internal/refresh"
	"github.com/feral-file/ff-fragment/internal/session"
	"github.com/feral-file/ff-fragment/internal/stats"
	"github.com/feral-file/ff-fragment/internal/uri"
)

// Desk is the polled side of the presenter
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor,Desk=MockDesk
type Desk interface {
	Heartbeat()
	Prompts() []presenter.Prompt
	Decide(id string, decision presenter.Decision) error
	Notifications(after string) []presenter.Notification
}

// Executor is the interface for the API executor
type Executor interface {
	// GetStats returns the last reconciled snapshot and its entity tag
	GetStats(ctx context.Context) (*dto.StatsResponse, string, error)

	// GetOwned returns the units held by the connected account
	GetOwned(ctx context.Context) (*dto.OwnedResponse, error)

	// GetTokenURI returns the metadata location of a unit
	GetTokenURI(ctx context.Context, id domain.TokenID) (*dto.TokenURIResponse, error)

	// GetSession returns the wallet and network state
	GetSession(ctx context.Context) *session.Info

	// SetNetwork sets or clears the explicit network override
	SetNetwork(ctx context.Context, network domain.NetworkID) *session.Info

	// GetOperations returns the state of every operation slot
	GetOperations() *dto.OperationsResponse

	// Mint, Burn and Withdraw start an operation and return its reserved state
	Mint(ctx context.Context, metadataRef string) (*domain.PendingTransaction, error)
	Burn(ctx context.Context, id domain.TokenID) (*domain.PendingTransaction, error)
	Withdraw(ctx context.Context, amount *domain.Amount) (*domain.PendingTransaction, error)

	// GetPrompts returns the pending confirmation prompts
	GetPrompts() *dto.PromptsResponse

	// DecidePrompt answers a confirmation prompt
	DecidePrompt(id string, confirm bool) error

	// GetNotifications returns notifications issued after the given id
	GetNotifications(after string) *dto.NotificationsResponse

	// GetHeroMedia returns the resolved collection media
	GetHeroMedia(ctx context.Context) *dto.HeroMediaResponse
}

type executor struct {
	session      session.Session
	scheduler    refresh.Scheduler
	orchestrator orchestrator.Orchestrator
	desk         Desk
	uris         uri.Resolver
	media        media.Resolver
	json         adapter.JSON
	jcs          adapter.JCS
}

func NewExecutor(
	sess session.Session,
	scheduler refresh.Scheduler,
	orch orchestrator.Orchestrator,
	desk Desk,
	uris uri.Resolver,
	mediaResolver media.Resolver,
	json adapter.JSON,
	jcs adapter.JCS,
) Executor {
	return &executor{
		session:      sess,
		scheduler:    scheduler,
		orchestrator: orch,
		desk:         desk,
		uris:         uris,
		media:        mediaResolver,
		json:         json,
		jcs:          jcs,
	}
}

func (e *executor) GetStats(ctx context.Context) (*dto.StatsResponse, string, error) {
	e.desk.Heartbeat()

	view := e.scheduler.View()
	if view.Stats == nil && view.StatsError == domain.ErrorKindNone {
		// Nothing loaded yet for this pair
		v, err := e.scheduler.RefreshNow(ctx)
		if err != nil && v.Stats == nil {
			return nil, "", apierrors.FromError("Failed to reconcile stats", err)
		}
		view = v
	}
	if view.Stats == nil {
		return nil, "", apierrors.NewServiceError("Stats unavailable", string(view.StatsError))
	}

	tag, err := stats.ETag(e.json, e.jcs, *view.Stats)
	if err != nil {
		return nil, "", apierrors.NewInternalError("Failed to compute entity tag", err.Error())
	}
	if view.Stale {
		tag = strings.TrimSuffix(tag, `"`) + `-stale"`
	}

	return &dto.StatsResponse{
		Stats:       view.Stats,
		Stale:       view.Stale,
		StatsError:  view.StatsError,
		RequestedAt: view.RequestedAt,
	}, tag, nil
}

func (e *executor) GetOwned(ctx context.Context) (*dto.OwnedResponse, error) {
	view := e.scheduler.View()
	resp := &dto.OwnedResponse{
		TokenIDs: view.Owned,
		Stale:    view.OwnedStale,
	}
	if resp.TokenIDs == nil {
		resp.TokenIDs = []domain.TokenID{}
	}
	if account, err := e.session.Account(ctx); err == nil {
		resp.Account = account.Hex()
	}
	return resp, nil
}

func (e *executor) GetTokenURI(ctx context.Context, id domain.TokenID) (*dto.TokenURIResponse, error) {
	contract, err := e.session.Ledger(ctx)
	if err != nil {
		return nil, apierrors.FromError("Ledger unavailable", err)
	}

	tokenURI, err := contract.TokenMetadataURI(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotExposed) {
			return nil, apierrors.NewNotFoundError("Token not found", id.String())
		}
		return nil, apierrors.FromError("Failed to read token URI", err)
	}

	return &dto.TokenURIResponse{
		TokenID:    id,
		URI:        tokenURI,
		GatewayURL: e.uris.GatewayURL(tokenURI),
	}, nil
}

func (e *executor) GetSession(ctx context.Context) *session.Info {
	info := e.session.Info(ctx)
	return &info
}

func (e *executor) SetNetwork(ctx context.Context, network domain.NetworkID) *session.Info {
	e.session.SetOverride(ctx, network)
	logger.InfoCtx(ctx, "Network override set", zap.String("network", string(network)))
	return e.GetSession(ctx)
}

func (e *executor) GetOperations() *dto.OperationsResponse {
	status := e.orchestrator.Status()
	ops := make(map[string]domain.PendingTransaction, len(status))
	for slot, tx := range status {
		ops[string(slot)] = tx
	}
	return &dto.OperationsResponse{Operations: ops}
}

func (e *executor) Mint(ctx context.Context, metadataRef string) (*domain.PendingTransaction, error) {
	tx, err := e.orchestrator.StartMint(ctx, metadataRef)
	if err != nil {
		return nil, apierrors.FromError("Failed to start mint", err)
	}
	return &tx, nil
}

func (e *executor) Burn(ctx context.Context, id domain.TokenID) (*domain.PendingTransaction, error) {
	tx, err := e.orchestrator.StartBurn(ctx, id)
	if err != nil {
		return nil, apierrors.FromError("Failed to start burn", err)
	}
	return &tx, nil
}

func (e *executor) Withdraw(ctx context.Context, amount *domain.Amount) (*domain.PendingTransaction, error) {
	tx, err := e.orchestrator.StartWithdraw(ctx, amount)
	if err != nil {
		return nil, apierrors.FromError("Failed to start withdraw", err)
	}
	return &tx, nil
}

func (e *executor) GetPrompts() *dto.PromptsResponse {
	e.desk.Heartbeat()
	return &dto.PromptsResponse{Prompts: e.desk.Prompts()}
}

func (e *executor) DecidePrompt(id string, confirm bool) error {
	decision := presenter.DecisionCancel
	if confirm {
		decision = presenter.DecisionConfirm
	}

	if err := e.desk.Decide(id, decision); err != nil {
		return apierrors.FromError("Prompt not found", err)
	}
	return nil
}

func (e *executor) GetNotifications(after string) *dto.NotificationsResponse {
	e.desk.Heartbeat()
	return &dto.NotificationsResponse{Notifications: e.desk.Notifications(after)}
}

func (e *executor) GetHeroMedia(ctx context.Context) *dto.HeroMediaResponse {
	return &dto.HeroMediaResponse{
		VideoURL: e.media.HeroVideo(ctx),
		ImageURL: e.media.AssetImage(),
	}
}
