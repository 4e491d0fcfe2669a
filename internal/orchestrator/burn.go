package orchestrator

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/ledger"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/presenter"
)

func (o *orchestrator) Burn(ctx context.Context, id domain.TokenID) (domain.PendingTransaction, error) {
	if _, err := o.reserveBurn(id); err != nil {
		return domain.PendingTransaction{}, err
	}
	return o.runBurn(ctx, id)
}

func (o *orchestrator) StartBurn(_ context.Context, id domain.TokenID) (domain.PendingTransaction, error) {
	tx, err := o.reserveBurn(id)
	if err != nil {
		return tx, err
	}

	o.background(func(ctx context.Context) {
		_, _ = o.runBurn(ctx, id)
	})
	return tx, nil
}

func (o *orchestrator) reserveBurn(id domain.TokenID) (domain.PendingTransaction, error) {
	if !id.Known() {
		return domain.PendingTransaction{}, domain.ErrInvalidTokenID
	}
	return o.reserve(SlotBurn, domain.PendingTransaction{
		Kind:    domain.OperationBurn,
		State:   domain.TxStateAwaitingConfirmation,
		TokenID: id,
	})
}

func (o *orchestrator) runBurn(ctx context.Context, id domain.TokenID) (domain.PendingTransaction, error) {
	target := o.session.Target(ctx)
	if !target.Configured() {
		return o.fail(ctx, SlotBurn, target, domain.ErrNoContractConfigured)
	}
	if o.wallet == nil {
		return o.fail(ctx, SlotBurn, target, domain.ErrNoProvider)
	}
	account, err := o.session.Account(ctx)
	if err != nil {
		return o.fail(ctx, SlotBurn, target, err)
	}
	networkName := o.session.NetworkName(target.NetworkID)

	o.publish(ctx, domain.EventTypeConfirmRequested, target, o.current(SlotBurn))

	decision, err := o.presenter.RequestRetireConfirmation(ctx, presenter.RetireRequest{
		TokenID:     id,
		NetworkName: networkName,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return o.cancelled(ctx, target, err)
		}
		return o.fail(ctx, SlotBurn, target, err)
	}
	if decision != presenter.DecisionConfirm {
		return o.cancelled(ctx, target, nil)
	}

	o.setState(SlotBurn, domain.TxStateSubmitting)

	if err := o.ensureNetwork(ctx, target); err != nil {
		return o.fail(ctx, SlotBurn, target, err)
	}

	contract, err := o.session.Ledger(ctx)
	if err != nil {
		return o.fail(ctx, SlotBurn, target, err)
	}

	// Used only when the post-settlement reconciliation fails
	refund, err := ledger.AmountOr(contract.BurnRefund(ctx))
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read burn refund before submission", zap.Error(err))
	}

	opts, err := o.wallet.Transactor(ctx)
	if err != nil {
		return o.fail(ctx, SlotBurn, target, err)
	}

	logger.InfoCtx(ctx, "Submitting burn",
		zap.String("contract", target.ContractAddress),
		zap.String("account", account.Hex()),
		zap.String("tokenID", id.String()))

	submitted, err := contract.Retire(ctx, opts, id)
	if err != nil {
		return o.fail(ctx, SlotBurn, target, err)
	}

	tx := o.update(SlotBurn, func(tx *domain.PendingTransaction) {
		tx.State = domain.TxStateAwaitingSettlement
		tx.TxHash = submitted.Hash().Hex()
	})
	o.publish(ctx, domain.EventTypeSubmitted, target, tx)

	if _, err := contract.WaitSettlement(ctx, submitted); err != nil {
		return o.fail(ctx, SlotBurn, target, err)
	}
	o.publish(ctx, domain.EventTypeSettled, target, tx)

	if view, ok := o.refresh(ctx); ok {
		refund = view.Stats.BurnRefund
	}

	details := presenter.RetireDetails{
		TokenID:     id,
		TxHash:      tx.TxHash,
		NetworkName: networkName,
		Wallet:      account.Hex(),
		Refund:      refund,
	}
	if err := o.presenter.NotifyRetireComplete(ctx, details); err != nil {
		logger.WarnCtx(ctx, "Failed to notify retire completion", zap.Error(err))
	} else {
		o.publish(ctx, domain.EventTypeRetireNotified, target, tx)
	}

	tx = o.update(SlotBurn, func(tx *domain.PendingTransaction) {
		tx.State = domain.TxStateSettled
		tx.Amount = &refund
	})
	logger.InfoCtx(ctx, "Burn settled",
		zap.String("tokenID", id.String()),
		zap.String("txHash", tx.TxHash),
		zap.String("refund", refund.Ether()))
	return tx, nil
}

// cancelled ends a burn that was declined or abandoned before submission.
// The Cancelled outcome is published and returned; the slot itself goes back to Idle.
func (o *orchestrator) cancelled(ctx context.Context, target domain.NetworkConfig, cause error) (domain.PendingTransaction, error) {
	tx := o.update(SlotBurn, func(tx *domain.PendingTransaction) {
		tx.State = domain.TxStateCancelled
		tx.TokenID = domain.UnknownTokenID
		if cause != nil {
			tx.ErrorKind = domain.ErrorKindCancelled
			tx.Error = cause.Error()
		}
	})

	logger.InfoCtx(ctx, "Burn cancelled before submission")
	o.publish(context.WithoutCancel(ctx), domain.EventTypeCancelled, target, tx)

	o.update(SlotBurn, func(slot *domain.PendingTransaction) {
		*slot = domain.PendingTransaction{Kind: domain.OperationBurn, State: domain.TxStateIdle}
	})
	return tx, cause
}

func (o *orchestrator) current(slot Slot) domain.PendingTransaction {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.slots[slot]
}
