package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY = "https://ipfs.io"

	// Ledger constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
	ETHER_DECIMALS        = 18

	// Collection defaults
	DEFAULT_MAX_SUPPLY   = 1000
	DEFAULT_METADATA_REF = "metadata.json"
)
