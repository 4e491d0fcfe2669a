package ledger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/ledger"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/mocks"
)

var (
	contractAddr = common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0")
	walletAddr   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e20d6dc79C8")
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

type testLedgerMocks struct {
	ctrl   *gomock.Controller
	eth    *mocks.MockEthClient
	client ledger.Client
}

func setupTest(t *testing.T) *testLedgerMocks {
	ctrl := gomock.NewController(t)
	eth := mocks.NewMockEthClient(ctrl)

	return &testLedgerMocks{
		ctrl: ctrl,
		eth:  eth,
		client: ledger.NewClient(contractAddr, eth, ledger.Options{
			PollInterval:      time.Millisecond,
			MaxPollInterval:   5 * time.Millisecond,
			SettlementTimeout: time.Second,
		}),
	}
}

func tearDownTest(tm *testLedgerMocks) {
	tm.ctrl.Finish()
}

func packOutput(t *testing.T, method string, values ...interface{}) []byte {
	t.Helper()
	out, err := ledger.FragmentABI.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)
	return out
}

func selector(method string) []byte {
	return ledger.FragmentABI.Methods[method].ID
}

// callFor matches CallContract messages by method selector
func callFor(method string) gomock.Matcher {
	return callMatcher{selector: selector(method)}
}

type callMatcher struct {
	selector []byte
}

func (m callMatcher) Matches(x interface{}) bool {
	msg, ok := x.(ethereum.CallMsg)
	return ok && bytes.HasPrefix(msg.Data, m.selector)
}

func (m callMatcher) String() string {
	return "call with selector " + common.Bytes2Hex(m.selector)
}

func TestClient_Reads(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(tm *testLedgerMocks)
		read      func(c ledger.Client) (*big.Int, error)
		expected  *big.Int
		expectErr error
	}{
		{
			name: "live supply",
			setup: func(tm *testLedgerMocks) {
				tm.eth.EXPECT().CallContract(gomock.Any(), callFor("totalSupply"), nil).
					Return(packOutput(t, "totalSupply", big.NewInt(2)), nil)
			},
			read:     func(c ledger.Client) (*big.Int, error) { return c.TotalSupplyLive(context.Background()) },
			expected: big.NewInt(2),
		},
		{
			name: "revert means not exposed",
			setup: func(tm *testLedgerMocks) {
				tm.eth.EXPECT().CallContract(gomock.Any(), callFor("MAX_SUPPLY"), nil).
					Return(nil, errors.New("execution reverted"))
			},
			read:      func(c ledger.Client) (*big.Int, error) { return c.MaxSupply(context.Background()) },
			expectErr: domain.ErrNotExposed,
		},
		{
			name: "empty return data means not exposed",
			setup: func(tm *testLedgerMocks) {
				tm.eth.EXPECT().CallContract(gomock.Any(), callFor("requiredReserve"), nil).
					Return([]byte{}, nil)
			},
			read:      func(c ledger.Client) (*big.Int, error) { return c.RequiredReserve(context.Background()) },
			expectErr: domain.ErrNotExposed,
		},
		{
			name: "transport failure means unavailable",
			setup: func(tm *testLedgerMocks) {
				tm.eth.EXPECT().CallContract(gomock.Any(), callFor("MINT_PRICE"), nil).
					Return(nil, errors.New("dial tcp: connection refused"))
			},
			read:      func(c ledger.Client) (*big.Int, error) { return c.MintPrice(context.Background()) },
			expectErr: domain.ErrLedgerUnavailable,
		},
		{
			name: "balance",
			setup: func(tm *testLedgerMocks) {
				tm.eth.EXPECT().BalanceAt(gomock.Any(), contractAddr, nil).Return(big.NewInt(42), nil)
			},
			read:     func(c ledger.Client) (*big.Int, error) { return c.ContractBalance(context.Background()) },
			expected: big.NewInt(42),
		},
		{
			name: "next id falls through counters",
			setup: func(tm *testLedgerMocks) {
				gomock.InOrder(
					tm.eth.EXPECT().CallContract(gomock.Any(), callFor("_nextId"), nil).
						Return(nil, errors.New("execution reverted")),
					tm.eth.EXPECT().CallContract(gomock.Any(), callFor("nextId"), nil).
						Return(packOutput(t, "nextId", big.NewInt(6)), nil),
				)
			},
			read:     func(c ledger.Client) (*big.Int, error) { return c.NextIssuedID(context.Background()) },
			expected: big.NewInt(6),
		},
		{
			name: "no counter exposed",
			setup: func(tm *testLedgerMocks) {
				tm.eth.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).
					Return(nil, errors.New("execution reverted")).Times(3)
			},
			read:      func(c ledger.Client) (*big.Int, error) { return c.NextIssuedID(context.Background()) },
			expectErr: domain.ErrNotExposed,
		},
		{
			name: "counter transport failure stops the lookup",
			setup: func(tm *testLedgerMocks) {
				tm.eth.EXPECT().CallContract(gomock.Any(), callFor("_nextId"), nil).
					Return(nil, errors.New("i/o timeout"))
			},
			read:      func(c ledger.Client) (*big.Int, error) { return c.NextIssuedID(context.Background()) },
			expectErr: domain.ErrLedgerUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			defer tearDownTest(tm)

			tt.setup(tm)
			v, err := tt.read(tm.client)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, tt.expected.Cmp(v))
		})
	}
}

func TestClient_TokenMetadataURI(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.eth.EXPECT().CallContract(gomock.Any(), callFor("tokenURI"), nil).
		Return(packOutput(t, "tokenURI", "ipfs://QmMeta/7.json"), nil)

	uri, err := tm.client.TokenMetadataURI(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://QmMeta/7.json", uri)

	_, err = tm.client.TokenMetadataURI(context.Background(), domain.UnknownTokenID)
	assert.ErrorIs(t, err, domain.ErrInvalidTokenID)
}

func TestClient_IssuanceEventsSince_HalvesStep(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.eth.EXPECT().HeaderByNumber(gomock.Any(), nil).
		Return(&types.Header{Number: big.NewInt(2_500_000)}, nil)

	var ranges [][2]uint64
	tm.eth.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
			assert.Equal(t, []common.Address{contractAddr}, q.Addresses)
			assert.Equal(t, ledger.TransferEventSignature, q.Topics[0][0])
			assert.Equal(t, common.Hash{}, q.Topics[1][0])

			from, to := q.FromBlock.Uint64(), q.ToBlock.Uint64()
			if to-from+1 > 500_000 {
				return nil, errors.New("query returned more than 10000 results")
			}
			ranges = append(ranges, [2]uint64{from, to})
			return []types.Log{{BlockNumber: from}}, nil
		}).Times(7)

	logs, err := tm.client.IssuanceEventsSince(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, logs, 6)
	assert.Equal(t, [2]uint64{0, 499_999}, ranges[0])
	assert.Equal(t, [2]uint64{2_500_000, 2_500_000}, ranges[len(ranges)-1])
}

func TestClient_IssuanceEventsSince_Failure(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.eth.EXPECT().HeaderByNumber(gomock.Any(), nil).
		Return(&types.Header{Number: big.NewInt(100)}, nil)
	tm.eth.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("method not found"))

	_, err := tm.client.IssuanceEventsSince(context.Background(), 10)
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func transferLog(contract common.Address, from common.Address, to common.Address, id int64) *types.Log {
	return &types.Log{
		Address: contract,
		Topics: []common.Hash{
			ledger.TransferEventSignature,
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
			common.BigToHash(big.NewInt(id)),
		},
	}
}

func TestClient_IssuedTokenID(t *testing.T) {
	other := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

	tests := []struct {
		name      string
		logs      []*types.Log
		expected  domain.TokenID
		expectErr bool
	}{
		{
			name:     "issuance from this contract",
			logs:     []*types.Log{transferLog(contractAddr, common.Address{}, walletAddr, 57)},
			expected: 57,
		},
		{
			name: "ignores other contracts and plain transfers",
			logs: []*types.Log{
				transferLog(other, common.Address{}, walletAddr, 3),
				transferLog(contractAddr, walletAddr, other, 9),
				transferLog(contractAddr, common.Address{}, walletAddr, 58),
			},
			expected: 58,
		},
		{
			name:      "no matching log",
			logs:      []*types.Log{transferLog(other, common.Address{}, walletAddr, 3)},
			expected:  domain.UnknownTokenID,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			defer tearDownTest(tm)

			id, err := tm.client.IssuedTokenID(&domain.Settlement{TxHash: "0xabc", Succeeded: true, Logs: tt.logs})
			assert.Equal(t, tt.expected, id)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrReceiptParseFailure)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_WaitSettlement(t *testing.T) {
	tx := types.NewTx(&types.LegacyTx{Nonce: 1, To: &contractAddr})

	t.Run("polls until mined", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		gomock.InOrder(
			tm.eth.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).Return(nil, ethereum.NotFound).Times(2),
			tm.eth.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).Return(&types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				TxHash:      tx.Hash(),
				BlockNumber: big.NewInt(12),
			}, nil),
		)

		s, err := tm.client.WaitSettlement(context.Background(), tx)
		require.NoError(t, err)
		assert.True(t, s.Succeeded)
		assert.Equal(t, uint64(12), s.BlockNumber)
		assert.Equal(t, tx.Hash().Hex(), s.TxHash)
	})

	t.Run("failure status is reverted", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		tm.eth.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).Return(&types.Receipt{
			Status: types.ReceiptStatusFailed,
			TxHash: tx.Hash(),
		}, nil)

		s, err := tm.client.WaitSettlement(context.Background(), tx)
		assert.ErrorIs(t, err, domain.ErrTransactionReverted)
		require.NotNil(t, s)
		assert.False(t, s.Succeeded)
	})

	t.Run("cancelled context", func(t *testing.T) {
		tm := setupTest(t)
		defer tearDownTest(tm)

		ctx, cancel := context.WithCancel(context.Background())
		tm.eth.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).
			DoAndReturn(func(context.Context, common.Hash) (*types.Receipt, error) {
				cancel()
				return nil, ethereum.NotFound
			})

		_, err := tm.client.WaitSettlement(ctx, tx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func expectTxBuild(tm *testLedgerMocks, value *big.Int) {
	tm.eth.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(11155111), nil)
	tm.eth.EXPECT().PendingNonceAt(gomock.Any(), walletAddr).Return(uint64(4), nil)
	tm.eth.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg) (uint64, error) {
			if value != nil {
				if msg.Value.Cmp(value) != 0 {
					return 0, errors.New("unexpected value")
				}
			}
			return 100_000, nil
		})
	tm.eth.EXPECT().HeaderByNumber(gomock.Any(), nil).Return(&types.Header{Number: big.NewInt(10), BaseFee: big.NewInt(1_000_000_000)}, nil)
	tm.eth.EXPECT().SuggestGasTipCap(gomock.Any()).Return(big.NewInt(2_000_000_000), nil)
}

func passThroughSigner() *bind.TransactOpts {
	return &bind.TransactOpts{
		From: walletAddr,
		Signer: func(_ common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return tx, nil
		},
	}
}

func TestClient_Issue(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	price := big.NewInt(50_000_000_000_000_000)
	expectTxBuild(tm, price)

	var sent *types.Transaction
	tm.eth.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			sent = tx
			return nil
		})

	tx, err := tm.client.Issue(context.Background(), passThroughSigner(), "metadata.json", price)
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, sent.Hash(), tx.Hash())
	assert.Equal(t, 0, price.Cmp(tx.Value()))
	assert.Equal(t, uint64(4), tx.Nonce())
	assert.Equal(t, uint64(120_000), tx.Gas())
	assert.Equal(t, contractAddr, *tx.To())
	assert.True(t, bytes.HasPrefix(tx.Data(), selector("mintFragment")))
	assert.Equal(t, big.NewInt(4_000_000_000), tx.GasFeeCap())
}

func TestClient_RetireRejectedBySigner(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	expectTxBuild(tm, nil)

	opts := &bind.TransactOpts{
		From: walletAddr,
		Signer: func(common.Address, *types.Transaction) (*types.Transaction, error) {
			return nil, domain.ErrTransactionRejected
		},
	}

	_, err := tm.client.Retire(context.Background(), opts, 42)
	assert.ErrorIs(t, err, domain.ErrTransactionRejected)
}

func TestClient_WriteWouldRevert(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.eth.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	tm.eth.EXPECT().PendingNonceAt(gomock.Any(), walletAddr).Return(uint64(0), nil)
	tm.eth.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(0), errors.New("execution reverted: not owner"))

	_, err := tm.client.WithdrawAll(context.Background(), passThroughSigner(), walletAddr)
	assert.ErrorIs(t, err, domain.ErrTransactionReverted)
}

func TestClient_WriteInputValidation(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	_, err := tm.client.Retire(context.Background(), passThroughSigner(), domain.UnknownTokenID)
	assert.ErrorIs(t, err, domain.ErrInvalidTokenID)

	_, err = tm.client.WithdrawPartial(context.Background(), passThroughSigner(), walletAddr, big.NewInt(0))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = tm.client.Issue(context.Background(), nil, "metadata.json", big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrNoAccount)
}

func TestIntOr(t *testing.T) {
	v, err := ledger.IntOr(big.NewInt(7), nil, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	v, err = ledger.IntOr(nil, domain.ErrNotExposed, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v)

	v, err = ledger.IntOr(new(big.Int).Lsh(big.NewInt(1), 80), nil, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v)

	_, err = ledger.IntOr(nil, domain.ErrLedgerUnavailable, 1000)
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)

	a, err := ledger.AmountOr(nil, domain.ErrNotExposed)
	require.NoError(t, err)
	assert.True(t, a.IsZero())
}

// nodeReply is the canned answer of the test JSON-RPC node for one method
type nodeReply struct {
	result  interface{}
	code    int
	message string
	data    string
}

// dialTestNode starts a JSON-RPC node answering from replies and dials it with the real client
func dialTestNode(t *testing.T, replies map[string]nodeReply) adapter.EthClient {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		reply, ok := replies[req.Method]
		switch {
		case !ok:
			resp["error"] = map[string]interface{}{"code": -32601, "message": "method not found"}
		case reply.message != "":
			rpcErr := map[string]interface{}{"code": reply.code, "message": reply.message}
			if reply.data != "" {
				rpcErr["data"] = reply.data
			}
			resp["error"] = rpcErr
		default:
			resp["result"] = reply.result
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	eth, err := adapter.NewEthClientDialer().Dial(context.Background(), srv.URL)
	require.NoError(t, err)
	t.Cleanup(eth.Close)
	return eth
}

func TestClient_NodeErrorClassification(t *testing.T) {
	// Error(string) revert payload carrying "nope"
	revertData := "0x08c379a0" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000004" +
		"6e6f706500000000000000000000000000000000000000000000000000000000"

	tests := []struct {
		name      string
		reply     nodeReply
		expectErr error
		notErr    error
	}{
		{
			name:      "rate limited node is unavailable",
			reply:     nodeReply{code: -32005, message: "rate limit exceeded"},
			expectErr: domain.ErrLedgerUnavailable,
			notErr:    domain.ErrNotExposed,
		},
		{
			name:      "missing header is unavailable",
			reply:     nodeReply{code: -32000, message: "header not found"},
			expectErr: domain.ErrLedgerUnavailable,
			notErr:    domain.ErrNotExposed,
		},
		{
			name:      "revert code is not exposed",
			reply:     nodeReply{code: 3, message: "execution reverted: nope", data: revertData},
			expectErr: domain.ErrNotExposed,
			notErr:    domain.ErrLedgerUnavailable,
		},
		{
			name:      "bare execution reverted is not exposed",
			reply:     nodeReply{code: -32000, message: "execution reverted"},
			expectErr: domain.ErrNotExposed,
			notErr:    domain.ErrLedgerUnavailable,
		},
		{
			name:      "revert data under another code is not exposed",
			reply:     nodeReply{code: -32015, message: "vm error", data: revertData},
			expectErr: domain.ErrNotExposed,
			notErr:    domain.ErrLedgerUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eth := dialTestNode(t, map[string]nodeReply{"eth_call": tt.reply})
			client := ledger.NewClient(contractAddr, eth, ledger.DefaultOptions())

			_, err := client.TotalSupplyLive(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectErr)
			assert.NotErrorIs(t, err, tt.notErr)

			// Only a revert may fall back to a default
			v, err := client.MaxSupply(context.Background())
			def, err := ledger.IntOr(v, err, 1000)
			if tt.expectErr == domain.ErrLedgerUnavailable {
				assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1000), def)
			}
		})
	}
}

func TestClient_EstimateGasNodeErrorIsNotRevert(t *testing.T) {
	eth := dialTestNode(t, map[string]nodeReply{
		"eth_chainId":             {result: "0xaa36a7"},
		"eth_getTransactionCount": {result: "0x0"},
		"eth_estimateGas":         {code: -32000, message: "insufficient funds for gas * price + value"},
	})
	client := ledger.NewClient(contractAddr, eth, ledger.DefaultOptions())

	_, err := client.WithdrawAll(context.Background(), passThroughSigner(), walletAddr)
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	assert.NotErrorIs(t, err, domain.ErrTransactionReverted)
}
