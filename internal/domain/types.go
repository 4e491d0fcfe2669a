package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// NetworkID identifies one of the two deployments the session knows about
type NetworkID string

const (
	NetworkPrimary NetworkID = "primary"
	NetworkTest    NetworkID = "test"
)

// IsValid reports whether the network id is one of the known deployments
func (n NetworkID) IsValid() bool {
	return n == NetworkPrimary || n == NetworkTest
}

// ParseNetworkID parses an explicit network override.
// An empty string means no override.
func ParseNetworkID(s string) (NetworkID, error) {
	n := NetworkID(strings.ToLower(strings.TrimSpace(s)))
	if n == "" || n.IsValid() {
		return n, nil
	}
	return "", fmt.Errorf("unknown network: %s", s)
}

// ChainID is a lower-case hex chain identifier as reported by wallets (e.g. "0x1")
type ChainID string

const (
	ChainIDPrimary ChainID = "0x1"
	ChainIDTest    ChainID = "0xaa36a7"
)

// NormalizeChainID converts decimal or hex chain ids into the lower-case hex form.
// Unparseable input is returned lower-cased so lookups simply miss.
func NormalizeChainID(raw string) ChainID {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return ChainID(s)
		}
		return ChainID("0x" + strconv.FormatUint(v, 16))
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return ChainID(s)
	}
	return ChainID("0x" + strconv.FormatUint(v, 16))
}

// ChainIDFromBig converts a chain id returned by an RPC node
func ChainIDFromBig(v *big.Int) ChainID {
	if v == nil {
		return ""
	}
	return ChainID("0x" + v.Text(16))
}

// Big returns the chain id as a big integer, or nil when it cannot be parsed
func (c ChainID) Big() *big.Int {
	hex, ok := strings.CutPrefix(string(c), "0x")
	if !ok {
		return nil
	}
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return nil
	}
	return v
}

// NetworkConfig is the resolved deployment for the current chain and override
type NetworkConfig struct {
	NetworkID       NetworkID `json:"network_id"`
	ContractAddress string    `json:"contract_address"`
	DisplayOffset   int64     `json:"display_offset"`
}

// Configured reports whether the config points at a usable contract address
func (c NetworkConfig) Configured() bool {
	return IsUsableAddress(c.ContractAddress)
}

// IsUsableAddress reports whether s is a well-formed, non-zero ledger address
func IsUsableAddress(s string) bool {
	if !common.IsHexAddress(s) {
		return false
	}
	return common.HexToAddress(s) != common.Address{}
}

// SameAddress compares two addresses ignoring checksum casing
func SameAddress(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}

// Amount is a non-negative native-unit amount held in wei
type Amount struct {
	wei *big.Int
}

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(ETHER_DECIMALS), nil)

// NewAmount copies wei into an Amount. Nil or negative values become zero.
func NewAmount(wei *big.Int) Amount {
	if wei == nil || wei.Sign() < 0 {
		return Amount{wei: new(big.Int)}
	}
	return Amount{wei: new(big.Int).Set(wei)}
}

// ParseEther parses a decimal ether string such as "0.12" into an Amount
func ParseEther(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("empty amount")
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > ETHER_DECIMALS {
		return Amount{}, fmt.Errorf("too many decimal places: %s", s)
	}
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return Amount{}, fmt.Errorf("invalid amount: %s", s)
	}

	wei, ok := new(big.Int).SetString(whole+frac+strings.Repeat("0", ETHER_DECIMALS-len(frac)), 10)
	if !ok {
		return Amount{}, fmt.Errorf("invalid amount: %s", s)
	}
	return Amount{wei: wei}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Wei returns a copy of the amount in wei
func (a Amount) Wei() *big.Int {
	if a.wei == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.wei)
}

// IsZero reports whether the amount is zero
func (a Amount) IsZero() bool {
	return a.wei == nil || a.wei.Sign() == 0
}

// Sub returns a - b clamped at zero
func (a Amount) Sub(b Amount) Amount {
	return NewAmount(new(big.Int).Sub(a.Wei(), b.Wei()))
}

// Ether formats the amount as a decimal ether string, always with a fractional part
func (a Amount) Ether() string {
	q, r := new(big.Int).QuoRem(a.Wei(), weiPerEther, new(big.Int))
	digits := r.String()
	frac := strings.TrimRight(strings.Repeat("0", ETHER_DECIMALS-len(digits))+digits, "0")
	if frac == "" {
		frac = "0"
	}
	return q.String() + "." + frac
}

func (a Amount) String() string {
	return a.Ether()
}

// MarshalJSON renders the amount as a quoted ether string
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Ether())
}

// UnmarshalJSON accepts a quoted ether string
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseEther(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// TokenID identifies a unit of the collection. Zero means unknown.
type TokenID uint64

const UnknownTokenID TokenID = 0

// ParseTokenID parses a positive decimal token identifier
func ParseTokenID(s string) (TokenID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || v == 0 {
		return UnknownTokenID, fmt.Errorf("%w: %q", ErrInvalidTokenID, s)
	}
	return TokenID(v), nil
}

// TokenIDFromBig converts a ledger token id. Values outside uint64 are unknown.
func TokenIDFromBig(v *big.Int) TokenID {
	if v == nil || v.Sign() <= 0 || !v.IsUint64() {
		return UnknownTokenID
	}
	return TokenID(v.Uint64())
}

// Known reports whether the identifier was actually determined
func (t TokenID) Known() bool {
	return t != UnknownTokenID
}

// Big returns the identifier as a ledger integer
func (t TokenID) Big() *big.Int {
	return new(big.Int).SetUint64(uint64(t))
}

func (t TokenID) String() string {
	if !t.Known() {
		return "unknown"
	}
	return strconv.FormatUint(uint64(t), 10)
}

// MarshalJSON renders unknown identifiers as null
func (t TokenID) MarshalJSON() ([]byte, error) {
	if !t.Known() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatUint(uint64(t), 10)), nil
}

// HistoricSource names the strategy that produced the historic issuance count
type HistoricSource string

const (
	HistoricSourceNextIDCounter  HistoricSource = "next_id_counter"
	HistoricSourceIssuanceEvents HistoricSource = "issuance_events"
	HistoricSourceLiveSupply     HistoricSource = "live_supply"
)

// SupplyStats is an immutable snapshot of the collection's supply and economics
type SupplyStats struct {
	NetworkID       NetworkID `json:"network_id"`
	ContractAddress string    `json:"contract_address"`

	MaxSupply         int64 `json:"max_supply"`
	MintedHistoric    int64 `json:"minted_historic"`
	MintedHistoricRaw int64 `json:"minted_historic_raw"`
	SupplyLive        int64 `json:"supply_live"`
	Burned            int64 `json:"burned"`
	AvailableToMint   int64 `json:"available_to_mint"`
	DisplayOffset     int64 `json:"display_offset"`

	MintPrice       Amount `json:"mint_price"`
	BurnRefund      Amount `json:"burn_refund"`
	RequiredReserve Amount `json:"required_reserve"`
	ContractBalance Amount `json:"contract_balance"`
	Withdrawable    Amount `json:"withdrawable"`

	// HistoricSource is the strategy that produced MintedHistoricRaw.
	// Approximate is set when it is the live supply, which under-counts burns.
	HistoricSource HistoricSource `json:"historic_source"`
	Approximate    bool           `json:"approximate"`

	ReconciledAt time.Time `json:"reconciled_at"`
}
