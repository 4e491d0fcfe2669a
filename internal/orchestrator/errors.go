package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/wallet"
)

var known = []error{
	domain.ErrNoProvider,
	domain.ErrNoAccount,
	domain.ErrWrongNetwork,
	domain.ErrLedgerUnavailable,
	domain.ErrTransactionReverted,
	domain.ErrTransactionRejected,
	domain.ErrReceiptParseFailure,
	domain.ErrNoContractConfigured,
	domain.ErrOperationInFlight,
	domain.ErrInvalidTokenID,
	domain.ErrInvalidAmount,
	context.Canceled,
	context.DeadlineExceeded,
}

// classify converts ledger and wallet errors into domain errors.
// User rejections win over everything else; unknown failures become ErrLedgerUnavailable.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if wallet.IsUserRejection(err) {
		if errors.Is(err, domain.ErrTransactionRejected) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrTransactionRejected, err)
	}

	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}

	return fmt.Errorf("%w: %w", domain.ErrLedgerUnavailable, err)
}

// wrongNetwork reports a refused or failed network switch
func wrongNetwork(err error) error {
	if errors.Is(err, domain.ErrWrongNetwork) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrWrongNetwork, err)
}
