package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/logger"
)

// subscriberBuffer is the number of undelivered changes kept per subscriber
const subscriberBuffer = 4

// KeyConfig configures a key-backed provider
type KeyConfig struct {
	// PrivateKey is hex encoded; empty leaves the provider without an account
	PrivateKey     string
	InitialChainID domain.ChainID
	// Endpoints maps chain ids to RPC URLs
	Endpoints   map[domain.ChainID]string
	DialTimeout time.Duration
}

// KeyProvider signs with a local private key and reaches each chain through its own RPC endpoint
type KeyProvider struct {
	key         *ecdsa.PrivateKey
	endpoints   map[domain.ChainID]string
	dialer      adapter.EthClientDialer
	dialTimeout time.Duration

	mu       sync.Mutex
	chainID  domain.ChainID
	backends map[domain.ChainID]adapter.EthClient
	watched  []Asset

	subMu       sync.Mutex
	nextSubID   int
	subscribers map[int]chan Change
}

// NewKeyProvider creates a provider from a hex private key
func NewKeyProvider(cfg KeyConfig, dialer adapter.EthClientDialer) (*KeyProvider, error) {
	var key *ecdsa.PrivateKey
	if cfg.PrivateKey != "" {
		k, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid wallet private key: %w", err)
		}
		key = k
	}

	endpoints := make(map[domain.ChainID]string, len(cfg.Endpoints))
	for chain, url := range cfg.Endpoints {
		if url != "" {
			endpoints[domain.NormalizeChainID(string(chain))] = url
		}
	}

	return &KeyProvider{
		key:         key,
		endpoints:   endpoints,
		dialer:      dialer,
		dialTimeout: cfg.DialTimeout,
		chainID:     domain.NormalizeChainID(string(cfg.InitialChainID)),
		backends:    make(map[domain.ChainID]adapter.EthClient),
		subscribers: make(map[int]chan Change),
	}, nil
}

func (p *KeyProvider) Accounts(_ context.Context) ([]common.Address, error) {
	return p.accounts(), nil
}

func (p *KeyProvider) accounts() []common.Address {
	if p.key == nil {
		return []common.Address{}
	}
	return []common.Address{crypto.PubkeyToAddress(p.key.PublicKey)}
}

func (p *KeyProvider) ChainID(_ context.Context) (domain.ChainID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.chainID, nil
}

// SwitchChain succeeds only for chains with an endpoint whose node reports the same chain id
func (p *KeyProvider) SwitchChain(ctx context.Context, chainID domain.ChainID) error {
	chainID = domain.NormalizeChainID(string(chainID))

	p.mu.Lock()
	if p.chainID == chainID {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	backend, err := p.backend(ctx, chainID)
	if err != nil {
		return fmt.Errorf("%w: cannot switch to %s: %w", domain.ErrWrongNetwork, chainID, err)
	}

	reported, err := backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("%w: chain id of %s endpoint: %w", domain.ErrWrongNetwork, chainID, err)
	}
	if domain.ChainIDFromBig(reported) != chainID {
		return fmt.Errorf("%w: endpoint for %s serves %s", domain.ErrWrongNetwork, chainID, domain.ChainIDFromBig(reported))
	}

	p.mu.Lock()
	p.chainID = chainID
	p.mu.Unlock()

	logger.InfoCtx(ctx, "Wallet switched chain", zap.String("chainID", string(chainID)))
	p.notify(Change{Accounts: p.accounts(), ChainID: chainID})
	return nil
}

// WatchAsset records the asset; a key-backed wallet has no UI of its own to display it in
func (p *KeyProvider) WatchAsset(ctx context.Context, asset Asset) error {
	if !asset.TokenID.Known() {
		return domain.ErrInvalidTokenID
	}

	p.mu.Lock()
	p.watched = append(p.watched, asset)
	p.mu.Unlock()

	logger.InfoCtx(ctx, "Asset registered with wallet",
		zap.String("contract", asset.Address.Hex()),
		zap.String("tokenID", asset.TokenID.String()),
		zap.String("image", asset.Image))
	return nil
}

// WatchedAssets returns the assets registered so far
func (p *KeyProvider) WatchedAssets() []Asset {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Asset(nil), p.watched...)
}

func (p *KeyProvider) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, subscriberBuffer)

	p.subMu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = ch
	p.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.subMu.Lock()
			defer p.subMu.Unlock()
			if _, ok := p.subscribers[id]; ok {
				delete(p.subscribers, id)
				close(ch)
			}
		})
	}
}

// notify delivers c to every subscriber, dropping the oldest pending change of a full one
func (p *KeyProvider) notify(c Change) {
	p.subMu.Lock()
	defer p.subMu.Unlock()

	for _, ch := range p.subscribers {
		select {
		case ch <- c:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- c
		}
	}
}

func (p *KeyProvider) Backend(ctx context.Context) (adapter.EthClient, error) {
	chainID, _ := p.ChainID(ctx)
	return p.backend(ctx, chainID)
}

// backend returns the cached client for chainID, dialing it outside the lock on first use
func (p *KeyProvider) backend(ctx context.Context, chainID domain.ChainID) (adapter.EthClient, error) {
	p.mu.Lock()
	b, ok := p.backends[chainID]
	url, hasURL := p.endpoints[chainID]
	p.mu.Unlock()

	if ok {
		return b, nil
	}
	if !hasURL {
		return nil, fmt.Errorf("%w: no RPC endpoint for chain %s", domain.ErrNoProvider, chainID)
	}

	dialCtx := ctx
	if p.dialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, p.dialTimeout)
		defer cancel()
	}

	dialed, err := p.dialer.Dial(dialCtx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial chain %s: %w", domain.ErrNoProvider, chainID, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if existing, ok := p.backends[chainID]; ok {
		// A concurrent dial won
		dialed.Close()
		return existing, nil
	}
	p.backends[chainID] = dialed
	return dialed, nil
}

func (p *KeyProvider) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	if p.key == nil {
		return nil, domain.ErrNoAccount
	}

	chainID, _ := p.ChainID(ctx)
	id := chainID.Big()
	if id == nil {
		return nil, fmt.Errorf("%w: unusable chain id %q", domain.ErrWrongNetwork, chainID)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(p.key, id)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

// Close ends every subscription and closes the dialed backends
func (p *KeyProvider) Close() {
	p.subMu.Lock()
	for id, ch := range p.subscribers {
		delete(p.subscribers, id)
		close(ch)
	}
	p.subMu.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	for chainID, b := range p.backends {
		b.Close()
		delete(p.backends, chainID)
	}
}
