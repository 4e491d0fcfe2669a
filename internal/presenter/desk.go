package presenter

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-fragment/internal/adapter"
	"github.com/feral-file/ff-fragment/internal/domain"
	"github.com/feral-file/ff-fragment/internal/logger"
)

// NotificationType names the shape of a notification
type NotificationType string

const (
	NotificationIssuanceSuccess NotificationType = "issuance_success"
	NotificationRetireComplete  NotificationType = "retire_complete"
)

// Notification is one entry of the desk feed
type Notification struct {
	ID       string           `json:"id"`
	Type     NotificationType `json:"type"`
	IssuedAt time.Time        `json:"issued_at"`
	Issuance *IssuanceDetails `json:"issuance,omitempty"`
	Retire   *RetireDetails   `json:"retire,omitempty"`
}

// Prompt is a pending confirmation request
type Prompt struct {
	ID        string        `json:"id"`
	Kind      string        `json:"kind"`
	Request   RetireRequest `json:"request"`
	CreatedAt time.Time     `json:"created_at"`

	decision chan Decision
}

// DeskConfig tunes the desk
type DeskConfig struct {
	// ReadyTTL is how long a heartbeat keeps the desk ready
	ReadyTTL time.Duration
	// FeedSize bounds the number of retained notifications
	FeedSize int
}

// Desk is a Presenter the presentation layer drives over polling.
// Every poll is a heartbeat; prompts wait for a decision posted back by id.
type Desk struct {
	cfg   DeskConfig
	clock adapter.Clock

	mu            sync.Mutex
	lastHeartbeat time.Time
	prompts       map[string]*Prompt
	feed          []Notification
}

// NewDesk creates an empty desk
func NewDesk(cfg DeskConfig, clock adapter.Clock) *Desk {
	if cfg.FeedSize <= 0 {
		cfg.FeedSize = 100
	}
	return &Desk{
		cfg:     cfg,
		clock:   clock,
		prompts: make(map[string]*Prompt),
	}
}

// Heartbeat marks the presentation layer as listening
func (d *Desk) Heartbeat() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastHeartbeat = d.clock.Now()
}

func (d *Desk) Ready(_ context.Context) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.lastHeartbeat.IsZero() {
		return false
	}
	return d.clock.Since(d.lastHeartbeat) <= d.cfg.ReadyTTL
}

func (d *Desk) NotifyIssuanceSuccess(ctx context.Context, details IssuanceDetails) error {
	n := d.push(Notification{Type: NotificationIssuanceSuccess, Issuance: &details})
	logger.InfoCtx(ctx, "Issuance notification queued",
		zap.String("id", n.ID),
		zap.String("tokenID", details.TokenID.String()),
		zap.String("txHash", details.TxHash))
	return nil
}

func (d *Desk) NotifyRetireComplete(ctx context.Context, details RetireDetails) error {
	n := d.push(Notification{Type: NotificationRetireComplete, Retire: &details})
	logger.InfoCtx(ctx, "Retire notification queued",
		zap.String("id", n.ID),
		zap.String("tokenID", details.TokenID.String()),
		zap.String("refund", details.Refund.Ether()))
	return nil
}

func (d *Desk) push(n Notification) Notification {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	n.ID = ulid.MustNewDefault(now).String()
	n.IssuedAt = now

	d.feed = append(d.feed, n)
	if over := len(d.feed) - d.cfg.FeedSize; over > 0 {
		d.feed = append([]Notification(nil), d.feed[over:]...)
	}
	return n
}

// Notifications returns the retained notifications issued after the given id, oldest first
func (d *Desk) Notifications(after string) []Notification {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Notification, 0, len(d.feed))
	for _, n := range d.feed {
		if after == "" || n.ID > after {
			out = append(out, n)
		}
	}
	return out
}

func (d *Desk) RequestRetireConfirmation(ctx context.Context, req RetireRequest) (Decision, error) {
	p := &Prompt{
		ID:        uuid.NewString(),
		Kind:      "retire_confirmation",
		Request:   req,
		CreatedAt: d.clock.Now(),
		decision:  make(chan Decision, 1),
	}

	d.mu.Lock()
	d.prompts[p.ID] = p
	d.mu.Unlock()

	logger.InfoCtx(ctx, "Waiting for retire confirmation",
		zap.String("promptID", p.ID),
		zap.String("tokenID", req.TokenID.String()))

	select {
	case decision := <-p.decision:
		return decision, nil
	case <-ctx.Done():
		d.mu.Lock()
		delete(d.prompts, p.ID)
		d.mu.Unlock()
		return DecisionCancel, ctx.Err()
	}
}

// Prompts returns the pending prompts, oldest first
func (d *Desk) Prompts() []Prompt {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Prompt, 0, len(d.prompts))
	for _, p := range d.prompts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Decide answers a pending prompt; anything but DecisionConfirm cancels
func (d *Desk) Decide(id string, decision Decision) error {
	d.mu.Lock()
	p, ok := d.prompts[id]
	if ok {
		delete(d.prompts, id)
	}
	d.mu.Unlock()

	if !ok {
		return domain.ErrPromptNotFound
	}
	p.decision <- decision
	return nil
}
