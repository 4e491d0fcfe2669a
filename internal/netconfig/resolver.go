package netconfig

import (
	"github.com/feral-file/ff-fragment/internal/domain"
)

// Network is the static description of one deployment
type Network struct {
	ID              domain.NetworkID
	ChainID         domain.ChainID
	Name            string
	ContractAddress string
	DisplayOffset   int64
}

// Settings is the operator-supplied network table
type Settings struct {
	// FixedAddress, when set, is used as the contract address on every chain
	FixedAddress string
	Primary      Network
	Test         Network
}

// Resolver maps the wallet's chain and an explicit override to a deployment
//
//go:generate mockgen -source=resolver.go -destination=../mocks/netconfig_resolver.go -package=mocks -mock_names=Resolver=MockNetworkResolver
type Resolver interface {
	// Resolve returns the deployment for chainID and override.
	// It never fails; callers check NetworkConfig.Configured before use.
	Resolve(chainID domain.ChainID, override domain.NetworkID) domain.NetworkConfig

	// NetworkName returns the display label of the chain
	NetworkName(chainID domain.ChainID) string

	// ExpectedNetwork returns the network whose configured contract is address
	ExpectedNetwork(address string) (domain.NetworkID, bool)

	// ChainIDFor returns the chain id a network lives on
	ChainIDFor(network domain.NetworkID) domain.ChainID
}

type resolver struct {
	fixedAddress string
	networks     []Network
}

// NewResolver creates a resolver over the given settings
func NewResolver(settings Settings) Resolver {
	primary := settings.Primary
	primary.ID = domain.NetworkPrimary
	primary.ChainID = domain.NormalizeChainID(string(primary.ChainID))

	test := settings.Test
	test.ID = domain.NetworkTest
	test.ChainID = domain.NormalizeChainID(string(test.ChainID))

	return &resolver{
		fixedAddress: settings.FixedAddress,
		networks:     []Network{primary, test},
	}
}

func (r *resolver) Resolve(chainID domain.ChainID, override domain.NetworkID) domain.NetworkConfig {
	network := r.selectNetwork(chainID, override)

	address := network.ContractAddress
	if r.fixedAddress != "" {
		address = r.fixedAddress
	}

	// The network is the deployment that owns the address, which differs
	// from the selected network only when a fixed address points elsewhere.
	// An explicit override still picks the display offset.
	id, offset := network.ID, network.DisplayOffset
	if owner, ok := r.networkByAddress(address); ok {
		id, offset = owner.ID, owner.DisplayOffset
	}
	if n, ok := r.networkByID(override); ok && override.IsValid() {
		offset = n.DisplayOffset
	}

	return domain.NetworkConfig{
		NetworkID:       id,
		ContractAddress: address,
		DisplayOffset:   offset,
	}
}

func (r *resolver) selectNetwork(chainID domain.ChainID, override domain.NetworkID) Network {
	if override.IsValid() {
		if n, ok := r.networkByID(override); ok {
			return n
		}
	}

	if n, ok := r.networkByChain(domain.NormalizeChainID(string(chainID))); ok {
		return n
	}

	test, _ := r.networkByID(domain.NetworkTest)
	return test
}

func (r *resolver) NetworkName(chainID domain.ChainID) string {
	chainID = domain.NormalizeChainID(string(chainID))
	if n, ok := r.networkByChain(chainID); ok && n.Name != "" {
		return n.Name
	}
	if chainID == "" {
		return "unknown"
	}
	return string(chainID)
}

func (r *resolver) ExpectedNetwork(address string) (domain.NetworkID, bool) {
	n, ok := r.networkByAddress(address)
	return n.ID, ok
}

func (r *resolver) ChainIDFor(network domain.NetworkID) domain.ChainID {
	n, _ := r.networkByID(network)
	return n.ChainID
}

func (r *resolver) networkByID(id domain.NetworkID) (Network, bool) {
	for _, n := range r.networks {
		if n.ID == id {
			return n, true
		}
	}
	return Network{}, false
}

func (r *resolver) networkByChain(chainID domain.ChainID) (Network, bool) {
	if chainID == "" {
		return Network{}, false
	}
	for _, n := range r.networks {
		if n.ChainID == chainID {
			return n, true
		}
	}
	return Network{}, false
}

func (r *resolver) networkByAddress(address string) (Network, bool) {
	for _, n := range r.networks {
		if domain.SameAddress(n.ContractAddress, address) {
			return n, true
		}
	}
	return Network{}, false
}
