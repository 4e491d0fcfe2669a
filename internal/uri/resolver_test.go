package uri_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-fragment/internal/logger"
	"github.com/feral-file/ff-fragment/internal/mocks"
	"github.com/feral-file/ff-fragment/internal/uri"
)

const testCID = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func response(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		setupMocks  func(*mocks.MockHTTPClient)
		config      *uri.Config
		expected    string
		expectedErr string // Error message to assert, empty means no error expected
	}{
		{
			name:     "regular HTTPS URL",
			uri:      "https://example.com/path/to/resource",
			config:   &uri.Config{IPFSGateways: []string{"https://ipfs.io"}},
			expected: "https://example.com/path/to/resource",
		},
		{
			name: "IPFS URI",
			uri:  "ipfs://" + testCID,
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io", "https://gateway.pinata.cloud/"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				// First gateway fails
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID).
					Return(response(http.StatusNotFound), nil)

				// Second gateway succeeds
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://gateway.pinata.cloud/ipfs/"+testCID).
					Return(response(http.StatusOK), nil)
			},
			expected: "https://gateway.pinata.cloud/ipfs/" + testCID,
		},
		{
			name: "IPFS gateway URL is re-probed",
			uri:  "https://slow.example.com/ipfs/" + testCID + "/video.mp4",
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID+"/video.mp4").
					Return(response(http.StatusOK), nil)
			},
			expected: "https://ipfs.io/ipfs/" + testCID + "/video.mp4",
		},
		{
			name: "all gateways fail",
			uri:  "ipfs://" + testCID,
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io", "https://cloudflare-ipfs.com"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.EXPECT().Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID).Return(nil, errors.New("timeout"))
				mockHTTP.EXPECT().Head(gomock.Any(), "https://cloudflare-ipfs.com/ipfs/"+testCID).Return(response(http.StatusBadGateway), nil)
			},
			expectedErr: "no working IPFS gateway found",
		},
		{
			name:        "no gateways configured",
			uri:         "ipfs://" + testCID,
			config:      &uri.Config{},
			expectedErr: "no IPFS gateways configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTP := mocks.NewMockHTTPClient(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockHTTP)
			}

			resolver := uri.NewResolver(mockHTTP, tt.config)
			result, err := resolver.Resolve(context.Background(), tt.uri)

			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolver_GatewayURL(t *testing.T) {
	resolver := uri.NewResolver(nil, &uri.Config{IPFSGateways: []string{" https://ipfs.io/ ", "", "https://dweb.link"}})

	assert.Equal(t, []string{"https://ipfs.io/ipfs/" + testCID, "https://dweb.link/ipfs/" + testCID}, resolver.Candidates(testCID))
	assert.Equal(t, "https://ipfs.io/ipfs/"+testCID, resolver.GatewayURL("ipfs://"+testCID))
	assert.Equal(t, "https://example.com/a.png", resolver.GatewayURL("https://example.com/a.png"))

	empty := uri.NewResolver(nil, &uri.Config{})
	assert.Equal(t, "ipfs://"+testCID, empty.GatewayURL("ipfs://"+testCID))
}

func TestExtractCID(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		ok       bool
	}{
		{in: "ipfs://" + testCID, expected: testCID, ok: true},
		{in: "ipfs://ipfs/" + testCID, expected: testCID, ok: true},
		{in: "https://gw.example.com/ipfs/" + testCID + "/1.json", expected: testCID + "/1.json", ok: true},
		{in: "ipfs://", ok: false},
		{in: "https://example.com/metadata.json", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cid, ok := uri.ExtractCID(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, cid)
		})
	}
}
