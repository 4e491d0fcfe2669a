package holdings

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/ledger"
	"github.com/feral-file/ff-fragment/internal/logger"
)

// Enumerator lists the units an account holds on a contract
//
//go:generate mockgen -source=enumerator.go -destination=../mocks/holdings_enumerator.go -package=mocks -mock_names=Enumerator=MockHoldingsEnumerator
type Enumerator interface {
	// Owned returns the ids held by owner in index order.
	// Indexes whose read fails are skipped; a failed balance read is returned as an error.
	Owned(ctx context.Context, contract ledger.Client, owner common.Address) ([]domain.TokenID, error)

	// Close stops the worker pool
	Close() error
}

// DEFAULT_MAX_BALANCE bounds the balance an enumeration accepts when none is configured
const DEFAULT_MAX_BALANCE = 10_000

// Config sizes the enumeration fan-out
type Config struct {
	Workers   int
	QueueSize int
	// RPS bounds tokenOfOwnerByIndex calls per second; zero disables the limit
	RPS   float64
	Burst int
	// MaxBalance rejects balances above it instead of enumerating them
	MaxBalance int64
}

type enumerator struct {
	pool       pond.ResultPool[domain.TokenID]
	limiter    *rate.Limiter
	maxBalance int64
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewEnumerator creates an enumerator backed by a bounded worker pool
func NewEnumerator(cfg Config) Enumerator {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	opts := []pond.Option{}
	if cfg.QueueSize > 0 {
		opts = append(opts, pond.WithQueueSize(cfg.QueueSize))
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), max(cfg.Burst, 1))
	}

	maxBalance := cfg.MaxBalance
	if maxBalance <= 0 {
		maxBalance = DEFAULT_MAX_BALANCE
	}

	return &enumerator{
		pool:       pond.NewResultPool[domain.TokenID](workers, opts...),
		limiter:    limiter,
		maxBalance: maxBalance,
	}
}

func (e *enumerator) Owned(ctx context.Context, contract ledger.Client, owner common.Address) ([]domain.TokenID, error) {
	if e.closed.Load() {
		return nil, errors.New("enumerator is closed")
	}
	if contract == nil {
		return nil, fmt.Errorf("%w: no contract handle", domain.ErrLedgerUnavailable)
	}

	balance, err := contract.BalanceOf(ctx, owner)
	count, err := ledger.IntOr(balance, err, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance of %s: %w", owner.Hex(), err)
	}
	if count == 0 {
		return []domain.TokenID{}, nil
	}
	if count > e.maxBalance {
		return nil, fmt.Errorf("%w: balance %d of %s exceeds limit %d",
			domain.ErrLedgerUnavailable, count, owner.Hex(), e.maxBalance)
	}

	tasks := make([]pond.Result[domain.TokenID], count)
	for i := range count {
		index := big.NewInt(i)
		tasks[i] = e.pool.SubmitErr(func() (domain.TokenID, error) {
			if err := e.limiter.Wait(ctx); err != nil {
				return domain.UnknownTokenID, err
			}
			v, err := contract.TokenOfOwnerByIndex(ctx, owner, index)
			if err != nil {
				return domain.UnknownTokenID, err
			}
			return domain.TokenIDFromBig(v), nil
		})
	}

	ids := make([]domain.TokenID, 0, count)
	for i, task := range tasks {
		id, err := task.Wait()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.WarnCtx(ctx, "Skipping unreadable owner index",
				zap.String("owner", owner.Hex()),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		if id.Known() {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (e *enumerator) Close() error {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		e.pool.StopAndWait()
	})
	return nil
}
