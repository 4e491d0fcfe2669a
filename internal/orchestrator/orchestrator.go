package orchestrator

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/media"
	"github.com/feral-file/ff-fragment/internal/messaging"
	"github.com/feral-file/ff-fragment/internal/netconfig"
	"github.com/feral-file/ff-fragment/internal/presenter"
	"github.com/feral-file/ff-fragment/internal/refresh"
	"github.com/feral-file/ff-fragment/internal/session"
	"github.com/feral-file/ff-fragment/internal/wallet"
)

// Slot is the concurrency unit; one operation per slot may be in flight
type Slot string

const (
	SlotMint     Slot = "mint"
	SlotBurn     Slot = "burn"
	SlotWithdraw Slot = "withdraw"
)

// Slots lists every slot in display order
var Slots = []Slot{SlotMint, SlotBurn, SlotWithdraw}

// Config holds configuration for the orchestrator
type Config struct {
	// MetadataRef is passed to mintFragment when the caller gives none
	MetadataRef string
	// ReadyAttempts and ReadyInterval bound the wait for the presenter after a mint
	ReadyAttempts int
	ReadyInterval time.Duration
}

// Orchestrator drives the state-changing ledger operations of the session
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/orchestrator.go -package=mocks -mock_names=Orchestrator=MockOrchestrator
type Orchestrator interface {
	// Mint issues a new unit and blocks until the flow finishes
	Mint(ctx context.Context, metadataRef string) (domain.PendingTransaction, error)
	// Burn asks for confirmation, retires id and blocks until the flow finishes
	Burn(ctx context.Context, id domain.TokenID) (domain.PendingTransaction, error)
	// WithdrawAll sends the whole surplus to the connected account
	WithdrawAll(ctx context.Context) (domain.PendingTransaction, error)
	// WithdrawPartial sends amount of the surplus to the connected account
	WithdrawPartial(ctx context.Context, amount domain.Amount) (domain.PendingTransaction, error)

	// StartMint reserves the mint slot and runs the flow in the background
	StartMint(ctx context.Context, metadataRef string) (domain.PendingTransaction, error)
	// StartBurn validates id, reserves the burn slot and runs the flow in the background
	StartBurn(ctx context.Context, id domain.TokenID) (domain.PendingTransaction, error)
	// StartWithdraw reserves the withdraw slot; a nil amount withdraws everything
	StartWithdraw(ctx context.Context, amount *domain.Amount) (domain.PendingTransaction, error)

	// Status returns the current transaction of every slot
	Status() map[Slot]domain.PendingTransaction

	// Close cancels background flows and waits for them to return
	Close()
}

type orchestrator struct {
	config    Config
	session   session.Session
	wallet    wallet.Provider
	resolver  netconfig.Resolver
	scheduler refresh.Scheduler
	presenter presenter.Presenter
	media     media.Resolver
	publisher messaging.Publisher
	clock     adapter.Clock

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	slots map[Slot]domain.PendingTransaction
}

// New creates an orchestrator. Background flows run until Close.
func New(
	config Config,
	sess session.Session,
	provider wallet.Provider,
	resolver netconfig.Resolver,
	scheduler refresh.Scheduler,
	p presenter.Presenter,
	mediaResolver media.Resolver,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Orchestrator {
	if config.MetadataRef == "" {
		config.MetadataRef = domain.DEFAULT_METADATA_REF
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &orchestrator{
		config:    config,
		session:   sess,
		wallet:    provider,
		resolver:  resolver,
		scheduler: scheduler,
		presenter: p,
		media:     mediaResolver,
		publisher: publisher,
		clock:     clock,
		ctx:       ctx,
		cancel:    cancel,
		slots:     make(map[Slot]domain.PendingTransaction),
	}
}

func (o *orchestrator) Status() map[Slot]domain.PendingTransaction {
	o.mu.Lock()
	defer o.mu.Unlock()

	status := make(map[Slot]domain.PendingTransaction, len(Slots))
	for _, slot := range Slots {
		tx, ok := o.slots[slot]
		if !ok {
			tx = domain.PendingTransaction{State: domain.TxStateIdle}
		}
		status[slot] = tx
	}
	return status
}

func (o *orchestrator) Close() {
	o.cancel()
	o.wg.Wait()
}

// background runs fn on the orchestrator context
func (o *orchestrator) background(fn func(ctx context.Context)) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		fn(o.ctx)
	}()
}

// reserve claims slot for a new transaction or fails with ErrOperationInFlight
func (o *orchestrator) reserve(slot Slot, tx domain.PendingTransaction) (domain.PendingTransaction, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if current, ok := o.slots[slot]; ok && current.State.IsActive() {
		return current, domain.ErrOperationInFlight
	}

	tx.UpdatedAt = o.clock.Now()
	o.slots[slot] = tx
	return tx, nil
}

// update applies fn to the transaction in slot and returns the result
func (o *orchestrator) update(slot Slot, fn func(tx *domain.PendingTransaction)) domain.PendingTransaction {
	o.mu.Lock()
	defer o.mu.Unlock()

	tx := o.slots[slot]
	fn(&tx)
	tx.UpdatedAt = o.clock.Now()
	o.slots[slot] = tx
	return tx
}

func (o *orchestrator) setState(slot Slot, state domain.TxState) domain.PendingTransaction {
	return o.update(slot, func(tx *domain.PendingTransaction) {
		tx.State = state
	})
}

// fail moves slot to Failed and returns the classified error
func (o *orchestrator) fail(ctx context.Context, slot Slot, target domain.NetworkConfig, err error) (domain.PendingTransaction, error) {
	err = classify(err)
	tx := o.update(slot, func(tx *domain.PendingTransaction) {
		tx.State = domain.TxStateFailed
		tx.TokenID = domain.UnknownTokenID
		tx.ErrorKind = domain.KindOf(err)
		tx.Error = err.Error()
	})

	// The flow context may already be cancelled; the Failed event must still go out
	ctx = context.WithoutCancel(ctx)
	logger.ErrorCtx(ctx, err,
		zap.String("operation", string(tx.Kind)),
		zap.String("kind", string(tx.ErrorKind)),
		zap.String("txHash", tx.TxHash))
	o.publish(ctx, domain.EventTypeFailed, target, tx)
	return tx, err
}

func (o *orchestrator) publish(ctx context.Context, eventType domain.EventType, target domain.NetworkConfig, tx domain.PendingTransaction) {
	event := &domain.LifecycleEvent{
		Type:      eventType,
		Operation: tx.Kind,
		Network:   target.NetworkID,
		Contract:  target.ContractAddress,
		TokenID:   tx.TokenID,
		TxHash:    tx.TxHash,
		Amount:    tx.Amount,
		ErrorKind: tx.ErrorKind,
		Timestamp: o.clock.Now(),
	}
	if account, err := o.session.Account(ctx); err == nil {
		event.Account = account.Hex()
	}

	if err := o.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish lifecycle event",
			zap.String("type", string(eventType)),
			zap.String("operation", string(tx.Kind)),
			zap.Error(err))
	}
}

// ensureNetwork moves the wallet onto the chain that owns the target contract
func (o *orchestrator) ensureNetwork(ctx context.Context, target domain.NetworkConfig) error {
	expected, ok := o.resolver.ExpectedNetwork(target.ContractAddress)
	if !ok {
		return nil
	}
	want := o.resolver.ChainIDFor(expected)
	if want == "" {
		return nil
	}

	current, err := o.wallet.ChainID(ctx)
	if err != nil {
		return wrongNetwork(err)
	}
	if current == want {
		return nil
	}

	logger.InfoCtx(ctx, "Requesting wallet network switch",
		zap.String("from", string(current)),
		zap.String("to", string(want)),
		zap.String("network", string(expected)))

	if err := o.wallet.SwitchChain(ctx, want); err != nil {
		return wrongNetwork(err)
	}
	return nil
}

// refresh reloads stats and holdings, returning the fresh view when stats loaded
func (o *orchestrator) refresh(ctx context.Context) (refresh.View, bool) {
	view, err := o.scheduler.RefreshNow(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Post-settlement refresh failed", zap.Error(err))
		return view, false
	}
	return view, view.Stats != nil
}
