package orchestrator

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/ledger"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/presenter"
	"github.com/feral-file/ff-fragment/internal/wallet"
)

// ASSET_STANDARD is the token standard reported to wallets
const ASSET_STANDARD = "ERC721"

func (o *orchestrator) Mint(ctx context.Context, metadataRef string) (domain.PendingTransaction, error) {
	if _, err := o.reserveMint(); err != nil {
		return domain.PendingTransaction{}, err
	}
	return o.runMint(ctx, metadataRef)
}

func (o *orchestrator) StartMint(_ context.Context, metadataRef string) (domain.PendingTransaction, error) {
	tx, err := o.reserveMint()
	if err != nil {
		return tx, err
	}

	o.background(func(ctx context.Context) {
		_, _ = o.runMint(ctx, metadataRef)
	})
	return tx, nil
}

func (o *orchestrator) reserveMint() (domain.PendingTransaction, error) {
	return o.reserve(SlotMint, domain.PendingTransaction{
		Kind:  domain.OperationMint,
		State: domain.TxStateSubmitting,
	})
}

func (o *orchestrator) runMint(ctx context.Context, metadataRef string) (domain.PendingTransaction, error) {
	if metadataRef == "" {
		metadataRef = o.config.MetadataRef
	}

	target := o.session.Target(ctx)
	if !target.Configured() {
		return o.fail(ctx, SlotMint, target, domain.ErrNoContractConfigured)
	}
	if o.wallet == nil {
		return o.fail(ctx, SlotMint, target, domain.ErrNoProvider)
	}

	account, err := o.session.Account(ctx)
	if err != nil {
		return o.fail(ctx, SlotMint, target, err)
	}
	if err := o.ensureNetwork(ctx, target); err != nil {
		return o.fail(ctx, SlotMint, target, err)
	}

	contract, err := o.session.Ledger(ctx)
	if err != nil {
		return o.fail(ctx, SlotMint, target, err)
	}

	// The price can change between the stats snapshot and submission
	price, err := contract.MintPrice(ctx)
	if err != nil {
		return o.fail(ctx, SlotMint, target, err)
	}

	opts, err := o.wallet.Transactor(ctx)
	if err != nil {
		return o.fail(ctx, SlotMint, target, err)
	}

	logger.InfoCtx(ctx, "Submitting mint",
		zap.String("contract", target.ContractAddress),
		zap.String("account", account.Hex()),
		zap.String("price", domain.NewAmount(price).Ether()),
		zap.String("metadataRef", metadataRef))

	submitted, err := contract.Issue(ctx, opts, metadataRef, price)
	if err != nil {
		return o.fail(ctx, SlotMint, target, err)
	}

	tx := o.update(SlotMint, func(tx *domain.PendingTransaction) {
		tx.State = domain.TxStateAwaitingSettlement
		tx.TxHash = submitted.Hash().Hex()
	})
	o.publish(ctx, domain.EventTypeSubmitted, target, tx)

	settlement, err := contract.WaitSettlement(ctx, submitted)
	if err != nil {
		return o.fail(ctx, SlotMint, target, err)
	}

	tokenID, err := contract.IssuedTokenID(settlement)
	if err != nil {
		// The mint settled; only the id is missing
		logger.WarnCtx(ctx, "Issued token id not found in receipt",
			zap.String("txHash", tx.TxHash),
			zap.Error(err))
	}
	tx = o.update(SlotMint, func(tx *domain.PendingTransaction) {
		tx.TokenID = tokenID
	})
	o.publish(ctx, domain.EventTypeSettled, target, tx)

	o.refresh(ctx)

	details := presenter.IssuanceDetails{
		TokenID:     tokenID,
		TxHash:      tx.TxHash,
		NetworkName: o.session.NetworkName(target.NetworkID),
		Wallet:      account.Hex(),
	}
	if presenter.WaitReady(ctx, o.presenter, o.config.ReadyAttempts, o.config.ReadyInterval) {
		if err := o.presenter.NotifyIssuanceSuccess(ctx, details); err != nil {
			logger.WarnCtx(ctx, "Failed to notify issuance", zap.Error(err))
		} else {
			o.publish(ctx, domain.EventTypeIssuanceNotified, target, tx)
		}
	} else {
		logger.WarnCtx(ctx, "Presenter not ready, skipping issuance notification",
			zap.String("txHash", tx.TxHash),
			zap.Int("attempts", o.config.ReadyAttempts))
	}

	o.watchAsset(ctx, contract, tokenID)

	tx = o.setState(SlotMint, domain.TxStateSettled)
	logger.InfoCtx(ctx, "Mint settled",
		zap.String("tokenID", tokenID.String()),
		zap.String("txHash", tx.TxHash))
	return tx, nil
}

// watchAsset registers a newly issued unit with the wallet; failures are only logged
func (o *orchestrator) watchAsset(ctx context.Context, contract ledger.Client, tokenID domain.TokenID) {
	if !tokenID.Known() {
		return
	}

	asset := wallet.Asset{
		Address:  contract.Address(),
		TokenID:  tokenID,
		Standard: ASSET_STANDARD,
		Image:    o.media.AssetImage(),
	}
	if err := o.wallet.WatchAsset(ctx, asset); err != nil {
		if wallet.IsUserRejection(err) || errors.Is(err, context.Canceled) {
			logger.InfoCtx(ctx, "Wallet declined to watch asset", zap.String("tokenID", tokenID.String()))
			return
		}
		logger.WarnCtx(ctx, "Failed to register asset with wallet", zap.Error(err))
	}
}
