package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/core/types"
)

// OperationKind is the state-changing call a pending transaction performs
type OperationKind string

const (
	OperationMint            OperationKind = "mint"
	OperationBurn            OperationKind = "burn"
	OperationWithdrawAll     OperationKind = "withdraw_all"
	OperationWithdrawPartial OperationKind = "withdraw_partial"
)

// TxState is the lifecycle state of a pending transaction
type TxState string

const (
	TxStateIdle                 TxState = "idle"
	TxStateAwaitingConfirmation TxState = "awaiting_confirmation"
	TxStateSubmitting           TxState = "submitting"
	TxStateAwaitingSettlement   TxState = "awaiting_settlement"
	TxStateSettled              TxState = "settled"
	TxStateFailed               TxState = "failed"
	TxStateCancelled            TxState = "cancelled"
)

// IsActive reports whether a transaction in this state still holds its slot
func (s TxState) IsActive() bool {
	switch s {
	case TxStateAwaitingConfirmation, TxStateSubmitting, TxStateAwaitingSettlement:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the flow that produced this state has finished
func (s TxState) IsTerminal() bool {
	return s == TxStateSettled || s == TxStateFailed || s == TxStateCancelled
}

// PendingTransaction is a point-in-time view of one orchestrated operation
type PendingTransaction struct {
	Kind      OperationKind `json:"kind"`
	State     TxState       `json:"state"`
	TokenID   TokenID       `json:"token_id"`
	Amount    *Amount       `json:"amount,omitempty"`
	TxHash    string        `json:"tx_hash,omitempty"`
	ErrorKind ErrorKind     `json:"error_kind,omitempty"`
	Error     string        `json:"error,omitempty"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Settlement is the outcome of a submitted state-changing call
type Settlement struct {
	TxHash      string
	Succeeded   bool
	BlockNumber uint64
	Logs        []*types.Log
}

// NewSettlement converts a ledger receipt
func NewSettlement(receipt *types.Receipt) *Settlement {
	if receipt == nil {
		return nil
	}

	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}

	return &Settlement{
		TxHash:      receipt.TxHash.Hex(),
		Succeeded:   receipt.Status == types.ReceiptStatusSuccessful,
		BlockNumber: block,
		Logs:        receipt.Logs,
	}
}
