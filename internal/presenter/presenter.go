package presenter

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/feral-file/ff-fragment/internal/domain"
)

// Decision is the user's answer to a confirmation prompt
type Decision string

const (
	DecisionConfirm Decision = "confirm"
	DecisionCancel  Decision = "cancel"
)

// IssuanceDetails describes a settled mint
type IssuanceDetails struct {
	TokenID     domain.TokenID `json:"token_id"`
	TxHash      string         `json:"tx_hash"`
	NetworkName string         `json:"network_name"`
	Wallet      string         `json:"wallet"`
}

// RetireRequest asks the user to confirm a burn
type RetireRequest struct {
	TokenID     domain.TokenID `json:"token_id"`
	NetworkName string         `json:"network_name"`
}

// RetireDetails describes a settled burn
type RetireDetails struct {
	TokenID     domain.TokenID `json:"token_id"`
	TxHash      string         `json:"tx_hash"`
	NetworkName string         `json:"network_name"`
	Wallet      string         `json:"wallet"`
	Refund      domain.Amount  `json:"refund"`
}

// Presenter is the presentation layer the orchestrator reports to
//
//go:generate mockgen -source=presenter.go -destination=../mocks/presenter.go -package=mocks -mock_names=Presenter=MockPresenter
type Presenter interface {
	// Ready reports whether the presentation layer is listening
	Ready(ctx context.Context) bool

	// NotifyIssuanceSuccess shows the result of a mint
	NotifyIssuanceSuccess(ctx context.Context, details IssuanceDetails) error

	// RequestRetireConfirmation blocks until the user decides or ctx is done
	RequestRetireConfirmation(ctx context.Context, req RetireRequest) (Decision, error)

	// NotifyRetireComplete shows the result of a burn
	NotifyRetireComplete(ctx context.Context, details RetireDetails) error
}

var errNotReady = errors.New("presenter not ready")

// WaitReady polls p at a fixed interval, giving up after attempts tries
func WaitReady(ctx context.Context, p Presenter, attempts int, interval time.Duration) bool {
	if attempts <= 0 {
		return p.Ready(ctx)
	}

	operation := func() error {
		if p.Ready(ctx) {
			return nil
		}
		return errNotReady
	}

	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(attempts-1))
	return backoff.Retry(operation, backoff.WithContext(b, ctx)) == nil
}
