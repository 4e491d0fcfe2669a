package uri

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/logger"
)

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try, in preference order
	IPFSGateways []string
}

// Resolver defines the interface for resolving content URIs to gateway URLs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve resolves the URI to a reachable gateway URL
	// It handles ipfs:// and gateway /ipfs/ URLs by making a HEAD request to every gateway
	// Other URLs are returned unchanged
	Resolve(ctx context.Context, uri string) (string, error)

	// Candidates returns the gateway URLs for a CID or path, in preference order
	Candidates(cid string) []string

	// GatewayURL rewrites the URI onto the preferred gateway without probing
	GatewayURL(uri string) string
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     *Config
}

func NewResolver(httpClient adapter.HTTPClient, config *Config) Resolver {
	gateways := make([]string, 0, len(config.IPFSGateways))
	for _, gw := range config.IPFSGateways {
		if gw = strings.TrimRight(strings.TrimSpace(gw), "/"); gw != "" {
			gateways = append(gateways, gw)
		}
	}

	return &resolver{
		httpClient: httpClient,
		config:     &Config{IPFSGateways: gateways},
	}
}

// ExtractCID returns the CID path of an IPFS URI, or false for other URIs
func ExtractCID(uri string) (string, bool) {
	if cid, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		return strings.TrimPrefix(cid, "ipfs/"), cid != ""
	}

	// IPFS gateway URLs (e.g., https://example.com/ipfs/QmXxx)
	if parts := strings.SplitN(uri, "/ipfs/", 2); len(parts) == 2 && parts[1] != "" {
		return parts[1], true
	}

	return "", false
}

func (r *resolver) Resolve(ctx context.Context, uri string) (string, error) {
	if cid, ok := ExtractCID(uri); ok {
		return r.resolveIPFS(ctx, cid)
	}

	// Regular HTTP(S) URL
	return uri, nil
}

func (r *resolver) Candidates(cid string) []string {
	urls := make([]string, 0, len(r.config.IPFSGateways))
	for _, gw := range r.config.IPFSGateways {
		urls = append(urls, fmt.Sprintf("%s/ipfs/%s", gw, cid))
	}
	return urls
}

func (r *resolver) GatewayURL(uri string) string {
	cid, ok := ExtractCID(uri)
	if !ok || len(r.config.IPFSGateways) == 0 {
		return uri
	}
	return r.Candidates(cid)[0]
}

// resolveIPFS finds a working IPFS gateway for the given CID
func (r *resolver) resolveIPFS(ctx context.Context, cid string) (string, error) {
	if len(r.config.IPFSGateways) == 0 {
		return "", fmt.Errorf("no IPFS gateways configured")
	}

	logger.DebugCtx(ctx, "Resolving IPFS CID", zap.String("cid", cid), zap.Int("gateways", len(r.config.IPFSGateways)))

	// Try all gateways in parallel
	type result struct {
		url string
		err error
	}

	candidates := r.Candidates(cid)
	resultCh := make(chan result, len(candidates))
	var wg sync.WaitGroup

	// Test each gateway with HEAD request
	for _, url := range candidates {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()

			resp, err := r.httpClient.Head(ctx, url)
			if err != nil {
				resultCh <- result{err: err}
				return
			}
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
			}

			if resp.StatusCode == http.StatusOK {
				resultCh <- result{url: url}
			} else {
				resultCh <- result{err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
			}
		}(url)
	}

	// Wait for all goroutines in a separate goroutine
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Return the first successful result
	for res := range resultCh {
		if res.err == nil {
			logger.DebugCtx(ctx, "Found working IPFS gateway", zap.String("url", res.url))
			return res.url, nil
		}
	}

	return "", fmt.Errorf("no working IPFS gateway found for CID: %s", cid)
}
