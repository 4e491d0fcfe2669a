package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	apierrors "github.com/feral-file/ff-fragment/internal/api/shared/errors"
	"github.com/feral-file/ff-fragment/internal/domain"
)

// MAX_METADATA_REF_LENGTH bounds the metadata reference passed to the ledger
const MAX_METADATA_REF_LENGTH = 512

// MintRequest represents the request body for issuing a unit
type MintRequest struct {
	MetadataRef string `json:"metadata_ref,omitempty"`
}

// Validate validates the request body
func (r *MintRequest) Validate() error {
	r.MetadataRef = strings.TrimSpace(r.MetadataRef)
	if len(r.MetadataRef) > MAX_METADATA_REF_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("metadata_ref must be at most %d characters", MAX_METADATA_REF_LENGTH))
	}
	return nil
}

// BurnRequest represents the request body for retiring a unit.
// token_id may be sent as a number or a decimal string.
type BurnRequest struct {
	TokenID json.Number `json:"token_id"`
}

// Validate validates the request body and returns the parsed token id
func (r *BurnRequest) Validate() (domain.TokenID, error) {
	if r.TokenID == "" {
		return domain.UnknownTokenID, apierrors.NewValidationError("token_id is required")
	}

	id, err := domain.ParseTokenID(r.TokenID.String())
	if err != nil {
		return domain.UnknownTokenID, apierrors.NewValidationError(err.Error())
	}
	return id, nil
}

// WithdrawRequest represents the request body for withdrawing surplus.
// Without an amount the whole surplus is withdrawn.
type WithdrawRequest struct {
	Amount *string `json:"amount,omitempty"`
}

// Validate validates the request body and returns the parsed amount, nil for all
func (r *WithdrawRequest) Validate() (*domain.Amount, error) {
	if r.Amount == nil {
		return nil, nil
	}

	amount, err := domain.ParseEther(*r.Amount)
	if err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid amount: %v", err))
	}
	if amount.IsZero() {
		return nil, apierrors.NewValidationError("amount must be greater than zero")
	}
	return &amount, nil
}

// NetworkRequest represents the request body for setting the network override
type NetworkRequest struct {
	// Network is primary, test, or empty to follow the wallet
	Network string `json:"network"`
}

// Validate validates the request body and returns the parsed override
func (r *NetworkRequest) Validate() (domain.NetworkID, error) {
	network, err := domain.ParseNetworkID(r.Network)
	if err != nil {
		return "", apierrors.NewValidationError(err.Error())
	}
	return network, nil
}

// DecisionRequest represents the answer to a confirmation prompt
type DecisionRequest struct {
	Confirm *bool `json:"confirm"`
}

// Validate validates the request body
func (r *DecisionRequest) Validate() error {
	if r.Confirm == nil {
		return apierrors.NewValidationError("confirm is required")
	}
	return nil
}
