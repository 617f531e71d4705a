// Package events dispatches the domain events drained from an aggregate to
// registered handlers. The aggregate's pending-event list is a pull-based
// log; the application service drains it after a successful save and hands
// the batch to an EventEmitter. Handlers run synchronously and carry no
// retry or delivery guarantee.
package events

import (
	"context"

	"github.com/marchenry/bookworm-api/internal/domain"
)

// EventHandler is implemented by components that want to observe domain
// events (projections, audit logs, outbound publishers).
type EventHandler interface {
	// HandleEvent processes a single domain event. Returning an error does
	// not stop delivery to other handlers.
	HandleEvent(ctx context.Context, event domain.Event) error
}

// EventEmitter is implemented by components that can dispatch domain
// events to handlers.
type EventEmitter interface {
	// Emit delivers the events, in order, to every registered handler.
	Emit(ctx context.Context, events []domain.Event) error
}

// HandlerFunc adapts a function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event domain.Event) error

// HandleEvent implements EventHandler.
func (f HandlerFunc) HandleEvent(ctx context.Context, event domain.Event) error {
	return f(ctx, event)
}
