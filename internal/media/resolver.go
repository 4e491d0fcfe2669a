package media

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/uri"
)

// Config holds the collection's media references
type Config struct {
	// HeroVideoIPFS is an ipfs:// URI or a bare CID path
	HeroVideoIPFS string
	// DefaultImageIPFS is the image registered with wallets for newly issued tokens
	DefaultImageIPFS string
}

// Resolver turns the configured media references into gateway URLs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/media_resolver.go -package=mocks -mock_names=Resolver=MockMediaResolver
type Resolver interface {
	// HeroVideo returns the first gateway URL that answers for the hero video.
	// When none answers it returns the first candidate; empty when unconfigured.
	HeroVideo(ctx context.Context) string

	// AssetImage returns the default token image on the preferred gateway without probing
	AssetImage() string
}

type resolver struct {
	uris   uri.Resolver
	config Config
}

func NewResolver(uris uri.Resolver, config Config) Resolver {
	return &resolver{
		uris: uris,
		config: Config{
			HeroVideoIPFS:    normalize(config.HeroVideoIPFS),
			DefaultImageIPFS: normalize(config.DefaultImageIPFS),
		},
	}
}

// normalize turns a bare CID into an ipfs:// URI
func normalize(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.Contains(ref, "://") {
		return ref
	}
	return "ipfs://" + strings.TrimPrefix(ref, "/")
}

func (r *resolver) HeroVideo(ctx context.Context) string {
	ref := r.config.HeroVideoIPFS
	if ref == "" {
		return ""
	}

	url, err := r.uris.Resolve(ctx, ref)
	if err == nil {
		return url
	}

	logger.WarnCtx(ctx, "No gateway answered for hero video, using first candidate",
		zap.String("ref", ref),
		zap.Error(err))

	if cid, ok := uri.ExtractCID(ref); ok {
		if candidates := r.uris.Candidates(cid); len(candidates) > 0 {
			return candidates[0]
		}
	}
	return ref
}

func (r *resolver) AssetImage() string {
	if r.config.DefaultImageIPFS == "" {
		return ""
	}
	return r.uris.GatewayURL(r.config.DefaultImageIPFS)
}
