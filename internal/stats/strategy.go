package stats

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/ledger"
	"github.com/feral-file/ff-fragment/internal/logger"
)

// HistoricStrategy derives the raw number of units ever issued.
// Count returns found=false when the strategy cannot answer for this contract.
type HistoricStrategy struct {
	Source domain.HistoricSource
	Count  func(ctx context.Context, contract ledger.Client, live int64) (value int64, found bool, err error)
}

// DefaultStrategies returns the strategies in the order they are attempted
func DefaultStrategies(deployBlock uint64) []HistoricStrategy {
	return []HistoricStrategy{
		NextIDCounter(),
		IssuanceEvents(deployBlock),
		LiveSupply(),
	}
}

// NextIDCounter reads the 1-based next id counter
func NextIDCounter() HistoricStrategy {
	return HistoricStrategy{
		Source: domain.HistoricSourceNextIDCounter,
		Count: func(ctx context.Context, contract ledger.Client, _ int64) (int64, bool, error) {
			next, err := contract.NextIssuedID(ctx)
			if errors.Is(err, domain.ErrNotExposed) {
				return 0, false, nil
			}
			v, err := ledger.IntOr(next, err, -1)
			if err != nil {
				return 0, false, err
			}
			if v < 0 {
				return 0, false, nil
			}
			return v - 1, true, nil
		},
	}
}

// IssuanceEvents counts Transfer logs from the zero address since deployBlock.
// Log queries are often refused by public nodes, so a failure falls through to the next strategy.
func IssuanceEvents(deployBlock uint64) HistoricStrategy {
	return HistoricStrategy{
		Source: domain.HistoricSourceIssuanceEvents,
		Count: func(ctx context.Context, contract ledger.Client, _ int64) (int64, bool, error) {
			logs, err := contract.IssuanceEventsSince(ctx, deployBlock)
			if err != nil {
				if ctx.Err() != nil {
					return 0, false, ctx.Err()
				}
				logger.WarnCtx(ctx, "Failed to count issuance events",
					zap.String("contract", contract.Address().Hex()),
					zap.Uint64("fromBlock", deployBlock),
					zap.Error(err))
				return 0, false, nil
			}
			return int64(len(logs)), true, nil
		},
	}
}

// LiveSupply reports the live count, which under-counts whenever units were retired
func LiveSupply() HistoricStrategy {
	return HistoricStrategy{
		Source: domain.HistoricSourceLiveSupply,
		Count: func(_ context.Context, _ ledger.Client, live int64) (int64, bool, error) {
			return live, true, nil
		},
	}
}
