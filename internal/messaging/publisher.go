package messaging

import (
	"context"

	"github.com/feral-file/ff-fragment/internal/domain"
)

// Publisher defines the interface for publishing lifecycle events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a lifecycle event to the message broker
	PublishEvent(ctx context.Context, event *domain.LifecycleEvent) error
	// Close closes the connection
	Close()
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event.
// It is used when no broker URL is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishEvent(_ context.Context, _ *domain.LifecycleEvent) error {
	return nil
}

func (nopPublisher) Close() {}
