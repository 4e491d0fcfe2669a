package ledger

import (
	"errors"
	"math/big"

	"github.com/feral-file/ff-fragment/internal/domain"
)

// IntOr converts a counter read into an int64.
// A read the contract does not expose, a nil value, a negative value or one
// that overflows int64 yields def. Any other read error is returned.
func IntOr(v *big.Int, err error, def int64) (int64, error) {
	if err != nil {
		if errors.Is(err, domain.ErrNotExposed) {
			return def, nil
		}
		return 0, err
	}
	if v == nil || v.Sign() < 0 || !v.IsInt64() {
		return def, nil
	}
	return v.Int64(), nil
}

// AmountOr converts a wei read into an Amount, zero when the read is not exposed
func AmountOr(v *big.Int, err error) (domain.Amount, error) {
	if err != nil {
		if errors.Is(err, domain.ErrNotExposed) {
			return domain.NewAmount(nil), nil
		}
		return domain.Amount{}, err
	}
	return domain.NewAmount(v), nil
}
