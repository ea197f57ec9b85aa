package policies

import (
	"context"

	"staybook/internal/domain/shared/events"
)

// Notifier publishes committed domain events to the message broker.
// Publication is best-effort: callers run it after commit and only log
// failures, a lost notification never rolls back the write it describes.
type Notifier interface {
	Notify(ctx context.Context, ev events.DomainEvent) error
}
