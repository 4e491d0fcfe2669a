package ledger

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/logger"
)

//go:embed abi/fragment.json
var fragmentABIJSON string

var fragmentABI = mustParseABI(fragmentABIJSON)

// TransferEventSignature is the keccak256 hash of Transfer(address,address,uint256)
var TransferEventSignature = fragmentABI.Events["Transfer"].ID

// nextIDCounters are the counter names deployments have used, in lookup order
var nextIDCounters = []string{"_nextId", "nextId", "mintedEver"}

const (
	// initialLogStep is the block span of the first log query before halving
	initialLogStep = uint64(1_000_000)

	// gasHeadroomPercent is added on top of the node's gas estimate
	gasHeadroomPercent = 20

	// revertErrorCode is the JSON-RPC code geth uses for execution reverted
	revertErrorCode = 3
)

// Client is the call surface of one deployment of the collection contract
//
//go:generate mockgen -source=client.go -destination=../mocks/ledger.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// Address returns the contract address this client is bound to
	Address() common.Address

	// TotalSupplyLive returns the number of units currently held
	TotalSupplyLive(ctx context.Context) (*big.Int, error)

	// MintPrice returns the price in wei attached to an issuance call
	MintPrice(ctx context.Context) (*big.Int, error)

	// BurnRefund returns the refund in wei paid when a unit is retired
	BurnRefund(ctx context.Context) (*big.Int, error)

	// MaxSupply returns the issuance cap
	MaxSupply(ctx context.Context) (*big.Int, error)

	// RequiredReserve returns the balance the contract must keep to honour refunds
	RequiredReserve(ctx context.Context) (*big.Int, error)

	// ContractBalance returns the native balance held by the contract
	ContractBalance(ctx context.Context) (*big.Int, error)

	// NextIssuedID returns the 1-based next id counter.
	// Returns domain.ErrNotExposed when the contract has no such counter.
	NextIssuedID(ctx context.Context) (*big.Int, error)

	// IssuanceEventsSince returns every Transfer from the zero address since fromBlock
	IssuanceEventsSince(ctx context.Context, fromBlock uint64) ([]types.Log, error)

	// BalanceOf returns the number of units owned by owner
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)

	// TokenOfOwnerByIndex returns the id of the index-th unit owned by owner
	TokenOfOwnerByIndex(ctx context.Context, owner common.Address, index *big.Int) (*big.Int, error)

	// TokenMetadataURI returns the metadata URI of a unit
	TokenMetadataURI(ctx context.Context, id domain.TokenID) (string, error)

	// Owner returns the contract owner
	Owner(ctx context.Context) (common.Address, error)

	// Issue submits mintFragment(metadataRef) with value attached
	Issue(ctx context.Context, opts *bind.TransactOpts, metadataRef string, value *big.Int) (*types.Transaction, error)

	// Retire submits burn(id)
	Retire(ctx context.Context, opts *bind.TransactOpts, id domain.TokenID) (*types.Transaction, error)

	// WithdrawAll submits withdrawAllSurplus(to)
	WithdrawAll(ctx context.Context, opts *bind.TransactOpts, to common.Address) (*types.Transaction, error)

	// WithdrawPartial submits withdrawSurplus(to, amount)
	WithdrawPartial(ctx context.Context, opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error)

	// WaitSettlement polls until the transaction is mined.
	// A mined transaction with failure status returns the settlement and domain.ErrTransactionReverted.
	WaitSettlement(ctx context.Context, tx *types.Transaction) (*domain.Settlement, error)

	// IssuedTokenID extracts the id minted by this contract in a settlement.
	// Returns domain.UnknownTokenID and domain.ErrReceiptParseFailure when no issuance log is present.
	IssuedTokenID(settlement *domain.Settlement) (domain.TokenID, error)
}

// Options tunes settlement polling
type Options struct {
	PollInterval      time.Duration
	MaxPollInterval   time.Duration
	SettlementTimeout time.Duration
}

// DefaultOptions returns the polling settings used outside tests
func DefaultOptions() Options {
	return Options{
		PollInterval:      2 * time.Second,
		MaxPollInterval:   15 * time.Second,
		SettlementTimeout: 10 * time.Minute,
	}
}

type client struct {
	address common.Address
	eth     adapter.EthClient
	opts    Options
}

// NewClient binds a client to the contract at address over eth
func NewClient(address common.Address, eth adapter.EthClient, opts Options) Client {
	return &client{address: address, eth: eth, opts: opts}
}

func (c *client) Address() common.Address {
	return c.address
}

func (c *client) TotalSupplyLive(ctx context.Context) (*big.Int, error) {
	return c.callUint(ctx, "totalSupply")
}

func (c *client) MintPrice(ctx context.Context) (*big.Int, error) {
	return c.callUint(ctx, "MINT_PRICE")
}

func (c *client) BurnRefund(ctx context.Context) (*big.Int, error) {
	return c.callUint(ctx, "BURN_REFUND")
}

func (c *client) MaxSupply(ctx context.Context) (*big.Int, error) {
	return c.callUint(ctx, "MAX_SUPPLY")
}

func (c *client) RequiredReserve(ctx context.Context) (*big.Int, error) {
	return c.callUint(ctx, "requiredReserve")
}

func (c *client) ContractBalance(ctx context.Context) (*big.Int, error) {
	balance, err := c.eth.BalanceAt(ctx, c.address, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: balance of %s: %w", domain.ErrLedgerUnavailable, c.address.Hex(), err)
	}
	return balance, nil
}

func (c *client) NextIssuedID(ctx context.Context) (*big.Int, error) {
	for _, name := range nextIDCounters {
		v, err := c.callUint(ctx, name)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, domain.ErrNotExposed) {
			return nil, err
		}
	}
	return nil, domain.ErrNotExposed
}

func (c *client) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	return c.callUint(ctx, "balanceOf", owner)
}

func (c *client) TokenOfOwnerByIndex(ctx context.Context, owner common.Address, index *big.Int) (*big.Int, error) {
	return c.callUint(ctx, "tokenOfOwnerByIndex", owner, index)
}

func (c *client) TokenMetadataURI(ctx context.Context, id domain.TokenID) (string, error) {
	if !id.Known() {
		return "", domain.ErrInvalidTokenID
	}

	out, err := c.call(ctx, "tokenURI", id.Big())
	if err != nil {
		return "", err
	}

	uri, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("%w: tokenURI returned %T", domain.ErrNotExposed, out[0])
	}
	return uri, nil
}

func (c *client) Owner(ctx context.Context) (common.Address, error) {
	out, err := c.call(ctx, "owner")
	if err != nil {
		return common.Address{}, err
	}

	owner, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("%w: owner returned %T", domain.ErrNotExposed, out[0])
	}
	return owner, nil
}

// IssuanceEventsSince pages through the block range, halving the span when the node caps results
func (c *client) IssuanceEventsSince(ctx context.Context, fromBlock uint64) ([]types.Log, error) {
	latest, err := c.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: latest header: %w", domain.ErrLedgerUnavailable, err)
	}
	toBlock := latest.Number.Uint64()
	if fromBlock > toBlock {
		return nil, nil
	}

	query := ethereum.FilterQuery{
		Addresses: []common.Address{c.address},
		Topics: [][]common.Hash{
			{TransferEventSignature},
			{common.Hash{}},
		},
	}

	var logs []types.Log
	step := initialLogStep
	current := fromBlock
	for current <= toBlock {
		end := current + step - 1
		if end > toBlock || end < current {
			end = toBlock
		}

		q := query
		q.FromBlock = new(big.Int).SetUint64(current)
		q.ToBlock = new(big.Int).SetUint64(end)

		chunk, err := c.eth.FilterLogs(ctx, q)
		if err == nil {
			logs = append(logs, chunk...)
			current = end + 1
			continue
		}

		if !isTooManyResultsError(err) || step == 1 {
			return nil, fmt.Errorf("%w: issuance logs %d-%d: %w", domain.ErrLedgerUnavailable, current, end, err)
		}

		step /= 2
		logger.WarnCtx(ctx, "Too many results, reducing step size",
			zap.Uint64("oldStepSize", step*2),
			zap.Uint64("newStepSize", step),
			zap.Uint64("fromBlock", current),
			zap.Uint64("toBlock", end))
	}

	return logs, nil
}

func (c *client) Issue(ctx context.Context, opts *bind.TransactOpts, metadataRef string, value *big.Int) (*types.Transaction, error) {
	return c.transact(ctx, opts, value, "mintFragment", metadataRef)
}

func (c *client) Retire(ctx context.Context, opts *bind.TransactOpts, id domain.TokenID) (*types.Transaction, error) {
	if !id.Known() {
		return nil, domain.ErrInvalidTokenID
	}
	return c.transact(ctx, opts, nil, "burn", id.Big())
}

func (c *client) WithdrawAll(ctx context.Context, opts *bind.TransactOpts, to common.Address) (*types.Transaction, error) {
	return c.transact(ctx, opts, nil, "withdrawAllSurplus", to)
}

func (c *client) WithdrawPartial(ctx context.Context, opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return c.transact(ctx, opts, nil, "withdrawSurplus", to, amount)
}

func (c *client) WaitSettlement(ctx context.Context, tx *types.Transaction) (*domain.Settlement, error) {
	hash := tx.Hash()

	var receipt *types.Receipt
	operation := func() error {
		r, err := c.eth.TransactionReceipt(ctx, hash)
		if err != nil {
			if !errors.Is(err, ethereum.NotFound) {
				logger.WarnCtx(ctx, "failed to fetch receipt, retrying", zap.String("txHash", hash.Hex()), zap.Error(err))
			}
			return err
		}
		receipt = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.opts.PollInterval
	b.MaxInterval = c.opts.MaxPollInterval
	b.MaxElapsedTime = c.opts.SettlementTimeout

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: settlement of %s: %w", domain.ErrLedgerUnavailable, hash.Hex(), err)
	}

	settlement := domain.NewSettlement(receipt)
	if !settlement.Succeeded {
		return settlement, fmt.Errorf("%w: %s", domain.ErrTransactionReverted, hash.Hex())
	}
	return settlement, nil
}

func (c *client) IssuedTokenID(settlement *domain.Settlement) (domain.TokenID, error) {
	if settlement == nil {
		return domain.UnknownTokenID, domain.ErrReceiptParseFailure
	}

	for _, l := range settlement.Logs {
		if l == nil || l.Address != c.address || len(l.Topics) != 4 {
			continue
		}
		if l.Topics[0] != TransferEventSignature || l.Topics[1] != (common.Hash{}) {
			continue
		}
		if id := domain.TokenIDFromBig(l.Topics[3].Big()); id.Known() {
			return id, nil
		}
	}

	return domain.UnknownTokenID, fmt.Errorf("%w: no issuance log in %s", domain.ErrReceiptParseFailure, settlement.TxHash)
}

func (c *client) callUint(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}

	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: %s returned %T", domain.ErrNotExposed, method, out[0])
	}
	return v, nil
}

func (c *client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := fragmentABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	result, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, classifyCallError(method, err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: %s returned no data", domain.ErrNotExposed, method)
	}

	out, err := fragmentABI.Unpack(method, result)
	if err != nil || len(out) == 0 {
		return nil, fmt.Errorf("%w: %s returned undecodable data", domain.ErrNotExposed, method)
	}
	return out, nil
}

// transact builds, signs and broadcasts a call to the contract
func (c *client) transact(ctx context.Context, opts *bind.TransactOpts, value *big.Int, method string, args ...interface{}) (*types.Transaction, error) {
	if opts == nil || opts.Signer == nil {
		return nil, domain.ErrNoAccount
	}
	if value == nil {
		value = new(big.Int)
	}

	data, err := fragmentABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	chainID, err := c.eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: chain id: %w", domain.ErrLedgerUnavailable, err)
	}

	nonce, err := c.eth.PendingNonceAt(ctx, opts.From)
	if err != nil {
		return nil, fmt.Errorf("%w: nonce: %w", domain.ErrLedgerUnavailable, err)
	}

	gas, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{From: opts.From, To: &c.address, Value: value, Data: data})
	if err != nil {
		if isRevertError(err) {
			return nil, fmt.Errorf("%w: %s would revert: %w", domain.ErrTransactionReverted, method, err)
		}
		return nil, fmt.Errorf("%w: estimate gas for %s: %w", domain.ErrLedgerUnavailable, method, err)
	}
	gas += gas * gasHeadroomPercent / 100

	head, err := c.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: latest header: %w", domain.ErrLedgerUnavailable, err)
	}

	var txData types.TxData
	if head.BaseFee != nil {
		tip, err := c.eth.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: gas tip: %w", domain.ErrLedgerUnavailable, err)
		}
		feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
		txData = &types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       gas,
			To:        &c.address,
			Value:     value,
			Data:      data,
		}
	} else {
		price, err := c.eth.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: gas price: %w", domain.ErrLedgerUnavailable, err)
		}
		txData = &types.LegacyTx{
			Nonce:    nonce,
			GasPrice: price,
			Gas:      gas,
			To:       &c.address,
			Value:    value,
			Data:     data,
		}
	}

	signed, err := opts.Signer(opts.From, types.NewTx(txData))
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s: %w", method, err)
	}

	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("%w: send %s: %w", domain.ErrLedgerUnavailable, method, err)
	}

	logger.InfoCtx(ctx, "Transaction submitted",
		zap.String("method", method),
		zap.String("contract", c.address.Hex()),
		zap.String("txHash", signed.Hash().Hex()),
		zap.Uint64("nonce", nonce))

	return signed, nil
}

// classifyCallError separates reads the contract does not implement from transport failures
func classifyCallError(method string, err error) error {
	if isRevertError(err) {
		return fmt.Errorf("%w: %s reverted: %v", domain.ErrNotExposed, method, err)
	}
	return fmt.Errorf("%w: call %s: %w", domain.ErrLedgerUnavailable, method, err)
}

// isRevertError reports whether the node executed the call and the contract reverted.
// Other JSON-RPC failures (rate limits, missing headers, backend errors) are not reverts.
func isRevertError(err error) bool {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == revertErrorCode {
		return true
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) && isRevertData(dataErr.ErrorData()) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}

// isRevertData checks for a non-empty hex payload such as an Error(string) revert reason
func isRevertData(data interface{}) bool {
	s, ok := data.(string)
	if !ok || !strings.HasPrefix(s, "0x") {
		return false
	}
	return len(s) > 2
}

// isTooManyResultsError checks if the node refused a log query for its size
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum") ||
		strings.Contains(errStr, "block range")
}

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse fragment ABI: %v", err))
	}
	return parsed
}
