package dto

import (
	"time"

	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/presenter"
)

// StatsResponse represents the last reconciled supply snapshot
type StatsResponse struct {
	Stats *domain.SupplyStats `json:"stats"`
	// Stale is set when the latest reconciliation failed and Stats is the last known value
	Stale       bool             `json:"stale"`
	StatsError  domain.ErrorKind `json:"stats_error,omitempty"`
	RequestedAt time.Time        `json:"requested_at"`
}

// OwnedResponse represents the units held by the connected account
type OwnedResponse struct {
	Account  string           `json:"account,omitempty"`
	TokenIDs []domain.TokenID `json:"token_ids"`
	Stale    bool             `json:"stale"`
}

// TokenURIResponse represents the metadata location of a unit
type TokenURIResponse struct {
	TokenID    domain.TokenID `json:"token_id"`
	URI        string         `json:"uri"`
	GatewayURL string         `json:"gateway_url,omitempty"`
}

// OperationsResponse represents the state of every operation slot
type OperationsResponse struct {
	Operations map[string]domain.PendingTransaction `json:"operations"`
}

// PromptsResponse represents the pending confirmation prompts
type PromptsResponse struct {
	Prompts []presenter.Prompt `json:"prompts"`
}

// NotificationsResponse represents the notification feed
type NotificationsResponse struct {
	Notifications []presenter.Notification `json:"notifications"`
}

// HeroMediaResponse represents the resolved media of the collection
type HeroMediaResponse struct {
	VideoURL string `json:"video_url"`
	ImageURL string `json:"image_url"`
}
