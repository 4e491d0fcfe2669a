package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/holdings"
	"github.com/feral-file/ff-fragment/internal/ledger"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/messaging"
	"github.com/feral-file/ff-fragment/internal/netconfig"
	"github.com/feral-file/ff-fragment/internal/refresh"
	"github.com/feral-file/ff-fragment/internal/stats"
	"github.com/feral-file/ff-fragment/internal/wallet"
)

// Info is the externally visible session state
type Info struct {
	ChainID     domain.ChainID       `json:"chain_id"`
	NetworkName string               `json:"network_name"`
	Accounts    []string             `json:"accounts"`
	Override    domain.NetworkID     `json:"override,omitempty"`
	Target      domain.NetworkConfig `json:"target"`
}

// LedgerFactory builds a ledger handle for a contract on a backend
type LedgerFactory func(address common.Address, backend adapter.EthClient) ledger.Client

// Session tracks the wallet, the network override and the resolved deployment
//
//go:generate mockgen -source=session.go -destination=../mocks/session.go -package=mocks -mock_names=Session=MockSession
type Session interface {
	refresh.Loader

	// Start follows wallet changes and keeps the scheduler on the active pair
	Start(ctx context.Context, scheduler refresh.Scheduler) error
	// Close ends the wallet subscription
	Close()

	SetOverride(ctx context.Context, network domain.NetworkID)
	Override() domain.NetworkID
	ChainID(ctx context.Context) domain.ChainID
	Target(ctx context.Context) domain.NetworkConfig
	Active(ctx context.Context) refresh.Pair

	// Account returns the first connected account or ErrNoAccount
	Account(ctx context.Context) (common.Address, error)

	// NetworkName returns the display label of a network
	NetworkName(network domain.NetworkID) string

	// Ledger returns a handle on the target contract through the wallet's backend
	Ledger(ctx context.Context) (ledger.Client, error)

	Info(ctx context.Context) Info
}

// Config holds the session dependencies that have defaults
type Config struct {
	// NewLedger builds ledger handles; nil uses ledger.NewClient with DefaultOptions
	NewLedger LedgerFactory
}

type session struct {
	resolver   netconfig.Resolver
	provider   wallet.Provider
	reconciler stats.Reconciler
	holdings   holdings.Enumerator
	publisher  messaging.Publisher
	clock      adapter.Clock
	newLedger  LedgerFactory

	mu          sync.Mutex
	override    domain.NetworkID
	scheduler   refresh.Scheduler
	unsubscribe func()
	done        chan struct{}
}

// New creates a session. provider may be nil when no wallet is available.
func New(
	cfg Config,
	resolver netconfig.Resolver,
	provider wallet.Provider,
	reconciler stats.Reconciler,
	enumerator holdings.Enumerator,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Session {
	newLedger := cfg.NewLedger
	if newLedger == nil {
		newLedger = func(address common.Address, backend adapter.EthClient) ledger.Client {
			return ledger.NewClient(address, backend, ledger.DefaultOptions())
		}
	}

	return &session{
		resolver:   resolver,
		provider:   provider,
		reconciler: reconciler,
		holdings:   enumerator,
		publisher:  publisher,
		clock:      clock,
		newLedger:  newLedger,
	}
}

func (s *session) Start(ctx context.Context, scheduler refresh.Scheduler) error {
	s.mu.Lock()
	if s.done != nil {
		s.mu.Unlock()
		return fmt.Errorf("session already started")
	}
	s.scheduler = scheduler
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	if s.provider == nil {
		logger.WarnCtx(ctx, "No wallet provider, session is read-only")
		close(done)
	} else {
		changes, unsubscribe := s.provider.Subscribe()
		s.mu.Lock()
		s.unsubscribe = unsubscribe
		s.mu.Unlock()
		go s.watch(ctx, changes, done)
	}

	pair := s.Active(ctx)
	logger.InfoCtx(ctx, "Session started",
		zap.String("network", string(pair.Network)),
		zap.String("contract", pair.Contract),
		zap.String("account", pair.Account))
	scheduler.SetPair(pair)
	return nil
}

func (s *session) watch(ctx context.Context, changes <-chan wallet.Change, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			logger.InfoCtx(ctx, "Wallet changed",
				zap.String("chainID", string(change.ChainID)),
				zap.Int("accounts", len(change.Accounts)))
			s.changed(ctx)
		}
	}
}

// changed re-resolves the pair and moves the scheduler onto it
func (s *session) changed(ctx context.Context) {
	s.publish(ctx, domain.EventTypeSessionChanged)

	s.mu.Lock()
	scheduler := s.scheduler
	s.mu.Unlock()
	if scheduler != nil {
		scheduler.SetPair(s.Active(ctx))
	}
}

func (s *session) Close() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	done := s.done
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if done != nil {
		<-done
	}
}

func (s *session) SetOverride(ctx context.Context, network domain.NetworkID) {
	s.mu.Lock()
	if s.override == network {
		s.mu.Unlock()
		return
	}
	s.override = network
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Network override changed", zap.String("override", string(network)))
	s.changed(ctx)
}

func (s *session) Override() domain.NetworkID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.override
}

func (s *session) ChainID(ctx context.Context) domain.ChainID {
	if s.provider == nil {
		return ""
	}
	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read wallet chain", zap.Error(err))
		return ""
	}
	return chainID
}

func (s *session) Target(ctx context.Context) domain.NetworkConfig {
	return s.resolver.Resolve(s.ChainID(ctx), s.Override())
}

func (s *session) Active(ctx context.Context) refresh.Pair {
	target := s.Target(ctx)
	pair := refresh.Pair{Network: target.NetworkID, Contract: target.ContractAddress}
	if account, err := s.Account(ctx); err == nil {
		pair.Account = account.Hex()
	}
	return pair
}

func (s *session) accounts(ctx context.Context) []common.Address {
	if s.provider == nil {
		return nil
	}
	accounts, err := s.provider.Accounts(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read wallet accounts", zap.Error(err))
		return nil
	}
	return accounts
}

func (s *session) Account(ctx context.Context) (common.Address, error) {
	if s.provider == nil {
		return common.Address{}, domain.ErrNoProvider
	}
	accounts := s.accounts(ctx)
	if len(accounts) == 0 {
		return common.Address{}, domain.ErrNoAccount
	}
	return accounts[0], nil
}

func (s *session) NetworkName(network domain.NetworkID) string {
	return s.resolver.NetworkName(s.resolver.ChainIDFor(network))
}

func (s *session) Ledger(ctx context.Context) (ledger.Client, error) {
	return s.ledgerFor(ctx, s.Target(ctx).ContractAddress)
}

func (s *session) ledgerFor(ctx context.Context, contract string) (ledger.Client, error) {
	if !domain.IsUsableAddress(contract) {
		return nil, domain.ErrNoContractConfigured
	}
	if s.provider == nil {
		return nil, domain.ErrNoProvider
	}

	backend, err := s.provider.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return s.newLedger(common.HexToAddress(contract), backend), nil
}

func (s *session) Info(ctx context.Context) Info {
	chainID := s.ChainID(ctx)
	accounts := make([]string, 0)
	for _, a := range s.accounts(ctx) {
		accounts = append(accounts, a.Hex())
	}

	return Info{
		ChainID:     chainID,
		NetworkName: s.resolver.NetworkName(chainID),
		Accounts:    accounts,
		Override:    s.Override(),
		Target:      s.resolver.Resolve(chainID, s.Override()),
	}
}

func (s *session) LoadStats(ctx context.Context, pair refresh.Pair) (domain.SupplyStats, error) {
	contract, err := s.ledgerFor(ctx, pair.Contract)
	if err != nil {
		return domain.SupplyStats{}, err
	}

	snapshot, err := s.reconciler.Reconcile(ctx, contract, s.ChainID(ctx), s.Override())
	if err != nil {
		return domain.SupplyStats{}, err
	}

	s.publish(ctx, domain.EventTypeStatsReconciled)
	return snapshot, nil
}

func (s *session) LoadOwned(ctx context.Context, pair refresh.Pair) ([]domain.TokenID, error) {
	if pair.Account == "" {
		return []domain.TokenID{}, nil
	}

	contract, err := s.ledgerFor(ctx, pair.Contract)
	if err != nil {
		return nil, err
	}
	return s.holdings.Owned(ctx, contract, common.HexToAddress(pair.Account))
}

func (s *session) publish(ctx context.Context, eventType domain.EventType) {
	pair := s.Active(ctx)
	event := &domain.LifecycleEvent{
		Type:      eventType,
		Network:   pair.Network,
		Contract:  pair.Contract,
		Account:   pair.Account,
		Timestamp: s.clock.Now(),
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish session event", zap.String("type", string(eventType)), zap.Error(err))
	}
}
