package holdings_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/holdings"
	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/mocks"
)

var owner = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e20d6dc79C8")

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

type testEnumeratorMocks struct {
	ctrl       *gomock.Controller
	contract   *mocks.MockLedgerClient
	enumerator holdings.Enumerator
}

func setupTest(t *testing.T) *testEnumeratorMocks {
	ctrl := gomock.NewController(t)
	return &testEnumeratorMocks{
		ctrl:       ctrl,
		contract:   mocks.NewMockLedgerClient(ctrl),
		enumerator: holdings.NewEnumerator(holdings.Config{Workers: 4, RPS: 1000, Burst: 10}),
	}
}

func tearDownTest(tm *testEnumeratorMocks) {
	_ = tm.enumerator.Close()
	tm.ctrl.Finish()
}

func TestEnumerator_OwnedKeepsIndexOrder(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	held := []int64{42, 7, 57}
	tm.contract.EXPECT().BalanceOf(gomock.Any(), owner).Return(big.NewInt(3), nil)
	tm.contract.EXPECT().TokenOfOwnerByIndex(gomock.Any(), owner, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ common.Address, index *big.Int) (*big.Int, error) {
			return big.NewInt(held[index.Int64()]), nil
		}).Times(3)

	ids, err := tm.enumerator.Owned(context.Background(), tm.contract, owner)
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{42, 7, 57}, ids)
}

func TestEnumerator_SkipsFailedIndexes(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.contract.EXPECT().BalanceOf(gomock.Any(), owner).Return(big.NewInt(3), nil)
	tm.contract.EXPECT().TokenOfOwnerByIndex(gomock.Any(), owner, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ common.Address, index *big.Int) (*big.Int, error) {
			if index.Int64() == 1 {
				return nil, errors.New("execution reverted")
			}
			return big.NewInt(index.Int64() + 10), nil
		}).Times(3)

	ids, err := tm.enumerator.Owned(context.Background(), tm.contract, owner)
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{10, 12}, ids)
}

func TestEnumerator_EmptyAndUnexposedBalance(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.contract.EXPECT().BalanceOf(gomock.Any(), owner).Return(big.NewInt(0), nil)
	ids, err := tm.enumerator.Owned(context.Background(), tm.contract, owner)
	require.NoError(t, err)
	assert.Empty(t, ids)

	tm.contract.EXPECT().BalanceOf(gomock.Any(), owner).Return(nil, domain.ErrNotExposed)
	ids, err = tm.enumerator.Owned(context.Background(), tm.contract, owner)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestEnumerator_BalanceFailure(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	tm.contract.EXPECT().BalanceOf(gomock.Any(), owner).Return(nil, domain.ErrLedgerUnavailable)

	_, err := tm.enumerator.Owned(context.Background(), tm.contract, owner)
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)

	_, err = tm.enumerator.Owned(context.Background(), nil, owner)
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestEnumerator_Closed(t *testing.T) {
	tm := setupTest(t)
	defer tearDownTest(tm)

	require.NoError(t, tm.enumerator.Close())
	_, err := tm.enumerator.Owned(context.Background(), tm.contract, owner)
	assert.Error(t, err)
}

func TestEnumerator_RejectsImplausibleBalance(t *testing.T) {
	tests := []struct {
		name    string
		cfg     holdings.Config
		balance *big.Int
	}{
		{
			name:    "default limit",
			cfg:     holdings.Config{Workers: 2},
			balance: new(big.Int).Lsh(big.NewInt(1), 62),
		},
		{
			name:    "configured limit",
			cfg:     holdings.Config{Workers: 2, MaxBalance: 5},
			balance: big.NewInt(6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			enumerator := holdings.NewEnumerator(tt.cfg)
			defer func() { _ = enumerator.Close() }()

			contract := mocks.NewMockLedgerClient(ctrl)
			contract.EXPECT().BalanceOf(gomock.Any(), owner).Return(tt.balance, nil)

			ids, err := enumerator.Owned(context.Background(), contract, owner)
			assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
			assert.Nil(t, ids)
		})
	}
}
