package stats

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/ledger"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/netconfig"
)

// Reconciler computes supply snapshots from partial ledger data
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/stats_reconciler.go -package=mocks -mock_names=Reconciler=MockStatsReconciler
type Reconciler interface {
	// Reconcile reads the ledger and derives a snapshot.
	// Fails with domain.ErrLedgerUnavailable when contract is nil or a read cannot complete.
	Reconcile(ctx context.Context, contract ledger.Client, chainID domain.ChainID, override domain.NetworkID) (domain.SupplyStats, error)
}

// Inputs are the coerced ledger reads a snapshot is derived from
type Inputs struct {
	MaxSupply       int64
	HistoricRaw     int64
	Live            int64
	DisplayOffset   int64
	MintPrice       domain.Amount
	BurnRefund      domain.Amount
	RequiredReserve domain.Amount
	ContractBalance domain.Amount
	HistoricSource  domain.HistoricSource
}

type reconciler struct {
	resolver   netconfig.Resolver
	strategies []HistoricStrategy
	clock      adapter.Clock
}

// NewReconciler creates a reconciler that tries strategies in order for the historic count
func NewReconciler(resolver netconfig.Resolver, strategies []HistoricStrategy, clock adapter.Clock) Reconciler {
	return &reconciler{
		resolver:   resolver,
		strategies: strategies,
		clock:      clock,
	}
}

func (r *reconciler) Reconcile(ctx context.Context, contract ledger.Client, chainID domain.ChainID, override domain.NetworkID) (domain.SupplyStats, error) {
	if contract == nil {
		return domain.SupplyStats{}, fmt.Errorf("%w: no contract handle", domain.ErrLedgerUnavailable)
	}

	cfg := r.resolver.Resolve(chainID, override)
	in := Inputs{DisplayOffset: cfg.DisplayOffset}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := contract.TotalSupplyLive(gctx)
		in.Live, err = ledger.IntOr(v, err, 0)
		return err
	})
	g.Go(func() error {
		v, err := contract.MaxSupply(gctx)
		in.MaxSupply, err = ledger.IntOr(v, err, domain.DEFAULT_MAX_SUPPLY)
		return err
	})
	g.Go(func() error {
		v, err := contract.MintPrice(gctx)
		in.MintPrice, err = ledger.AmountOr(v, err)
		return err
	})
	g.Go(func() error {
		v, err := contract.BurnRefund(gctx)
		in.BurnRefund, err = ledger.AmountOr(v, err)
		return err
	})
	g.Go(func() error {
		v, err := contract.RequiredReserve(gctx)
		in.RequiredReserve, err = ledger.AmountOr(v, err)
		return err
	})
	g.Go(func() error {
		v, err := contract.ContractBalance(gctx)
		in.ContractBalance, err = ledger.AmountOr(v, err)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.SupplyStats{}, unavailable(err)
	}

	historic, source, err := r.historic(ctx, contract, in.Live)
	if err != nil {
		return domain.SupplyStats{}, unavailable(err)
	}
	in.HistoricRaw = historic
	in.HistoricSource = source

	s := Compute(in)
	s.NetworkID = cfg.NetworkID
	s.ContractAddress = contract.Address().Hex()
	s.ReconciledAt = r.clock.Now()

	logger.DebugCtx(ctx, "Reconciled supply stats",
		zap.String("contract", s.ContractAddress),
		zap.String("historicSource", string(s.HistoricSource)),
		zap.Int64("mintedHistoricRaw", s.MintedHistoricRaw),
		zap.Int64("supplyLive", s.SupplyLive))

	return s, nil
}

func (r *reconciler) historic(ctx context.Context, contract ledger.Client, live int64) (int64, domain.HistoricSource, error) {
	for _, strategy := range r.strategies {
		v, found, err := strategy.Count(ctx, contract, live)
		if err != nil {
			return 0, "", fmt.Errorf("%s: %w", strategy.Source, err)
		}
		if found {
			return v, strategy.Source, nil
		}
	}
	return live, domain.HistoricSourceLiveSupply, nil
}

// Compute derives a snapshot from coerced reads.
// The raw historic count is raised to the live count so live + burned always equals it.
func Compute(in Inputs) domain.SupplyStats {
	live := max(in.Live, 0)
	raw := max(in.HistoricRaw, live)
	maxSupply := max(in.MaxSupply, 0)
	displayed := raw + in.DisplayOffset

	return domain.SupplyStats{
		MaxSupply:         maxSupply,
		MintedHistoric:    max(displayed, 0),
		MintedHistoricRaw: raw,
		SupplyLive:        live,
		Burned:            raw - live,
		AvailableToMint:   max(maxSupply-displayed, 0),
		DisplayOffset:     in.DisplayOffset,
		MintPrice:         in.MintPrice,
		BurnRefund:        in.BurnRefund,
		RequiredReserve:   in.RequiredReserve,
		ContractBalance:   in.ContractBalance,
		Withdrawable:      in.ContractBalance.Sub(in.RequiredReserve),
		HistoricSource:    in.HistoricSource,
		Approximate:       in.HistoricSource == domain.HistoricSourceLiveSupply,
	}
}

func unavailable(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrLedgerUnavailable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrLedgerUnavailable, err)
}
