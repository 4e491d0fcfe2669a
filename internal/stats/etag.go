package stats

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/domain"
)

// ETag returns a strong entity tag for the snapshot.
// ReconciledAt is excluded so unchanged ledger state keeps the same tag across refreshes.
func ETag(json adapter.JSON, jcs adapter.JCS, s domain.SupplyStats) (string, error) {
	s.ReconciledAt = time.Time{}

	canonical, err := adapter.Canonical(json, jcs, s)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize stats: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return `"` + hex.EncodeToString(sum[:16]) + `"`, nil
}
