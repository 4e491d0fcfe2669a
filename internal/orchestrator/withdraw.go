package orchestrator

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/logger"
)

func (o *orchestrator) WithdrawAll(ctx context.Context) (domain.PendingTransaction, error) {
	if _, err := o.reserveWithdraw(nil); err != nil {
		return domain.PendingTransaction{}, err
	}
	return o.runWithdraw(ctx, nil)
}

func (o *orchestrator) WithdrawPartial(ctx context.Context, amount domain.Amount) (domain.PendingTransaction, error) {
	if _, err := o.reserveWithdraw(&amount); err != nil {
		return domain.PendingTransaction{}, err
	}
	return o.runWithdraw(ctx, &amount)
}

func (o *orchestrator) StartWithdraw(_ context.Context, amount *domain.Amount) (domain.PendingTransaction, error) {
	tx, err := o.reserveWithdraw(amount)
	if err != nil {
		return tx, err
	}

	o.background(func(ctx context.Context) {
		_, _ = o.runWithdraw(ctx, amount)
	})
	return tx, nil
}

func (o *orchestrator) reserveWithdraw(amount *domain.Amount) (domain.PendingTransaction, error) {
	kind := domain.OperationWithdrawAll
	if amount != nil {
		if amount.IsZero() {
			return domain.PendingTransaction{}, domain.ErrInvalidAmount
		}
		kind = domain.OperationWithdrawPartial
	}

	return o.reserve(SlotWithdraw, domain.PendingTransaction{
		Kind:   kind,
		State:  domain.TxStateSubmitting,
		Amount: amount,
	})
}

// runWithdraw sends surplus to the connected account; a nil amount withdraws all of it
func (o *orchestrator) runWithdraw(ctx context.Context, amount *domain.Amount) (domain.PendingTransaction, error) {
	target := o.session.Target(ctx)
	if !target.Configured() {
		return o.fail(ctx, SlotWithdraw, target, domain.ErrNoContractConfigured)
	}
	if o.wallet == nil {
		return o.fail(ctx, SlotWithdraw, target, domain.ErrNoProvider)
	}

	account, err := o.session.Account(ctx)
	if err != nil {
		return o.fail(ctx, SlotWithdraw, target, err)
	}
	if err := o.ensureNetwork(ctx, target); err != nil {
		return o.fail(ctx, SlotWithdraw, target, err)
	}

	contract, err := o.session.Ledger(ctx)
	if err != nil {
		return o.fail(ctx, SlotWithdraw, target, err)
	}

	opts, err := o.wallet.Transactor(ctx)
	if err != nil {
		return o.fail(ctx, SlotWithdraw, target, err)
	}

	fields := []zap.Field{
		zap.String("contract", target.ContractAddress),
		zap.String("to", account.Hex()),
	}
	if amount != nil {
		fields = append(fields, zap.String("amount", amount.Ether()))
	}
	logger.InfoCtx(ctx, "Submitting withdraw", fields...)

	var submitted *types.Transaction
	if amount == nil {
		submitted, err = contract.WithdrawAll(ctx, opts, account)
	} else {
		submitted, err = contract.WithdrawPartial(ctx, opts, account, amount.Wei())
	}
	if err != nil {
		return o.fail(ctx, SlotWithdraw, target, err)
	}

	tx := o.update(SlotWithdraw, func(tx *domain.PendingTransaction) {
		tx.State = domain.TxStateAwaitingSettlement
		tx.TxHash = submitted.Hash().Hex()
	})
	o.publish(ctx, domain.EventTypeSubmitted, target, tx)

	if _, err := contract.WaitSettlement(ctx, submitted); err != nil {
		return o.fail(ctx, SlotWithdraw, target, err)
	}

	o.refresh(ctx)

	tx = o.setState(SlotWithdraw, domain.TxStateSettled)
	o.publish(ctx, domain.EventTypeSettled, target, tx)
	logger.InfoCtx(ctx, "Withdraw settled", zap.String("txHash", tx.TxHash))
	return tx, nil
}
