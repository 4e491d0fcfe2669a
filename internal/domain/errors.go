package domain

import (
	"context"
	"errors"
)

var (
	// ErrNoProvider is returned when no wallet or RPC provider is available
	ErrNoProvider = errors.New("no wallet provider")

	// ErrNoAccount is returned when the wallet exposes no account to act with
	ErrNoAccount = errors.New("no wallet account connected")

	// ErrWrongNetwork is returned when the wallet is on another chain and refused to switch
	ErrWrongNetwork = errors.New("wallet is on the wrong network")

	// ErrLedgerUnavailable is returned when a ledger read or write cannot complete
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	// ErrTransactionReverted is returned when a settled transaction reports failure
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrTransactionRejected is returned when the wallet user rejects signing
	ErrTransactionRejected = errors.New("transaction rejected by user")

	// ErrReceiptParseFailure is returned when the issued token id cannot be read from a receipt
	ErrReceiptParseFailure = errors.New("failed to parse settlement receipt")

	// ErrNoContractConfigured is returned when the resolved network has no contract address
	ErrNoContractConfigured = errors.New("no contract configured for network")

	// ErrOperationInFlight is returned when an operation of the same kind is still running
	ErrOperationInFlight = errors.New("operation already in flight")

	// ErrInvalidTokenID is returned for empty, zero or malformed token identifiers
	ErrInvalidTokenID = errors.New("invalid token id")

	// ErrInvalidAmount is returned for non-positive withdraw amounts
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotExposed is returned by optional ledger reads the contract does not implement
	ErrNotExposed = errors.New("ledger does not expose this read")

	// ErrPromptNotFound is returned when a confirmation prompt is unknown or already decided
	ErrPromptNotFound = errors.New("prompt not found")
)

// ErrorKind is the user-facing classification of a failure
type ErrorKind string

const (
	ErrorKindNone                 ErrorKind = ""
	ErrorKindNoProvider           ErrorKind = "no_provider"
	ErrorKindWrongNetwork         ErrorKind = "wrong_network"
	ErrorKindLedgerUnavailable    ErrorKind = "ledger_unavailable"
	ErrorKindTransactionReverted  ErrorKind = "transaction_reverted"
	ErrorKindTransactionRejected  ErrorKind = "transaction_rejected"
	ErrorKindReceiptParseFailure  ErrorKind = "receipt_parse_failure"
	ErrorKindNoContractConfigured ErrorKind = "no_contract_configured"
	ErrorKindOperationInFlight    ErrorKind = "operation_in_flight"
	ErrorKindInvalidInput         ErrorKind = "invalid_input"
	ErrorKindCancelled            ErrorKind = "cancelled"
	ErrorKindNotFound             ErrorKind = "not_found"
)

// KindOf classifies err. Unrecognised errors are reported as ledger unavailable.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrNoProvider), errors.Is(err, ErrNoAccount):
		return ErrorKindNoProvider
	case errors.Is(err, ErrWrongNetwork):
		return ErrorKindWrongNetwork
	case errors.Is(err, ErrTransactionReverted):
		return ErrorKindTransactionReverted
	case errors.Is(err, ErrTransactionRejected):
		return ErrorKindTransactionRejected
	case errors.Is(err, ErrReceiptParseFailure):
		return ErrorKindReceiptParseFailure
	case errors.Is(err, ErrNoContractConfigured):
		return ErrorKindNoContractConfigured
	case errors.Is(err, ErrOperationInFlight):
		return ErrorKindOperationInFlight
	case errors.Is(err, ErrInvalidTokenID), errors.Is(err, ErrInvalidAmount):
		return ErrorKindInvalidInput
	case errors.Is(err, ErrPromptNotFound):
		return ErrorKindNotFound
	case errors.Is(err, context.Canceled):
		return ErrorKindCancelled
	default:
		return ErrorKindLedgerUnavailable
	}
}
