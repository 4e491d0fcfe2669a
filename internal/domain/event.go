package domain

import "time"

// EventType is the kind of lifecycle event published for an operation
type EventType string

const (
	EventTypeSubmitted        EventType = "submitted"
	EventTypeSettled          EventType = "settled"
	EventTypeFailed           EventType = "failed"
	EventTypeCancelled        EventType = "cancelled"
	EventTypeConfirmRequested EventType = "confirm_requested"
	EventTypeIssuanceNotified EventType = "issuance_notified"
	EventTypeRetireNotified   EventType = "retire_notified"
	EventTypeSessionChanged   EventType = "session_changed"
	EventTypeStatsReconciled  EventType = "stats_reconciled"
)

// LifecycleEvent describes a transition observed by the session
type LifecycleEvent struct {
	ID        string        `json:"id"`
	Type      EventType     `json:"type"`
	Operation OperationKind `json:"operation,omitempty"`
	Network   NetworkID     `json:"network"`
	Contract  string        `json:"contract,omitempty"`
	Account   string        `json:"account,omitempty"`
	TokenID   TokenID       `json:"token_id"`
	TxHash    string        `json:"tx_hash,omitempty"`
	Amount    *Amount       `json:"amount,omitempty"`
	ErrorKind ErrorKind     `json:"error_kind,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
