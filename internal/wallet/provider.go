package wallet

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/domain"
)

// userRejectedCode is the EIP-1193 error code for a request the user declined
const userRejectedCode = 4001

// Change is pushed to subscribers whenever the account or chain changes
type Change struct {
	Accounts []common.Address
	ChainID  domain.ChainID
}

// Asset is a unit the wallet should display in its own UI
type Asset struct {
	Address  common.Address `json:"address"`
	TokenID  domain.TokenID `json:"token_id"`
	Standard string         `json:"standard"`
	Image    string         `json:"image,omitempty"`
}

// Provider is the wallet the session acts through
//
//go:generate mockgen -source=provider.go -destination=../mocks/wallet_provider.go -package=mocks -mock_names=Provider=MockWalletProvider
type Provider interface {
	// Accounts returns the connected accounts, empty when none is connected
	Accounts(ctx context.Context) ([]common.Address, error)

	// ChainID returns the chain the wallet is on
	ChainID(ctx context.Context) (domain.ChainID, error)

	// SwitchChain asks the wallet to move to chainID
	SwitchChain(ctx context.Context, chainID domain.ChainID) error

	// WatchAsset registers a unit for display in the wallet
	WatchAsset(ctx context.Context, asset Asset) error

	// Subscribe returns a channel of changes and a func that ends the subscription
	Subscribe() (<-chan Change, func())

	// Backend returns the RPC client of the active chain
	Backend(ctx context.Context) (adapter.EthClient, error)

	// Transactor returns signing options for the active account and chain
	Transactor(ctx context.Context) (*bind.TransactOpts, error)
}

// IsUserRejection reports whether err means the user declined a wallet request
func IsUserRejection(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrTransactionRejected) {
		return true
	}

	var rpcErr rpc.Error
	return errors.As(err, &rpcErr) && rpcErr.ErrorCode() == userRejectedCode
}
