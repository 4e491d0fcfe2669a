package media_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/media"
	"github.com/feral-file/ff-fragment/internal/mocks"
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

func TestResolver_HeroVideo(t *testing.T) {
	tests := []struct {
		name       string
		heroRef    string
		setupMocks func(*mocks.MockURIResolver)
		expected   string
	}{
		{
			name:    "first answering gateway",
			heroRef: "QmHero/hero.mp4",
			setupMocks: func(m *mocks.MockURIResolver) {
				m.EXPECT().Resolve(gomock.Any(), "ipfs://QmHero/hero.mp4").Return("https://dweb.link/ipfs/QmHero/hero.mp4", nil)
			},
			expected: "https://dweb.link/ipfs/QmHero/hero.mp4",
		},
		{
			name:    "no gateway answers falls back to first candidate",
			heroRef: "ipfs://QmHero",
			setupMocks: func(m *mocks.MockURIResolver) {
				m.EXPECT().Resolve(gomock.Any(), "ipfs://QmHero").Return("", errors.New("no working IPFS gateway found"))
				m.EXPECT().Candidates("QmHero").Return([]string{"https://ipfs.io/ipfs/QmHero", "https://dweb.link/ipfs/QmHero"})
			},
			expected: "https://ipfs.io/ipfs/QmHero",
		},
		{
			name:    "no gateways at all keeps the reference",
			heroRef: "ipfs://QmHero",
			setupMocks: func(m *mocks.MockURIResolver) {
				m.EXPECT().Resolve(gomock.Any(), "ipfs://QmHero").Return("", errors.New("no IPFS gateways configured"))
				m.EXPECT().Candidates("QmHero").Return([]string{})
			},
			expected: "ipfs://QmHero",
		},
		{
			name:     "unconfigured",
			heroRef:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uris := mocks.NewMockURIResolver(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(uris)
			}

			r := media.NewResolver(uris, media.Config{HeroVideoIPFS: tt.heroRef})
			assert.Equal(t, tt.expected, r.HeroVideo(context.Background()))
		})
	}
}

func TestResolver_AssetImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uris := mocks.NewMockURIResolver(ctrl)
	uris.EXPECT().GatewayURL("ipfs://QmImage").Return("https://ipfs.io/ipfs/QmImage")

	r := media.NewResolver(uris, media.Config{DefaultImageIPFS: "QmImage"})
	assert.Equal(t, "https://ipfs.io/ipfs/QmImage", r.AssetImage())

	assert.Empty(t, media.NewResolver(uris, media.Config{}).AssetImage())
}
