package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/marchenry/bookworm-api/internal/domain"
)

// InMemoryEventEmitter is a simple EventEmitter that stores registered
// handlers in memory and dispatches events to them synchronously.
type InMemoryEventEmitter struct {
	handlers []EventHandler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// Ensure InMemoryEventEmitter implements the EventEmitter interface.
var _ EventEmitter = (*InMemoryEventEmitter)(nil)

// NewInMemoryEventEmitter creates a new emitter. A logging handler is
// always useful as a first registration; see NewLoggingHandler.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	return &InMemoryEventEmitter{
		logger: logger.With("component", "event_emitter"),
	}
}

// RegisterHandler adds a handler to receive future events.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered event handler", "handler_count", len(e.handlers))
}

// Emit delivers each event to every registered handler in registration
// order. A failing handler does not stop delivery; the first error
// encountered is returned after all handlers have run.
func (e *InMemoryEventEmitter) Emit(ctx context.Context, evts []domain.Event) error {
	e.mu.RLock()
	handlers := make([]EventHandler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	var firstErr error
	for _, event := range evts {
		for _, handler := range handlers {
			if err := handler.HandleEvent(ctx, event); err != nil {
				e.logger.Error("event handler failed",
					"error", err,
					"event_type", event.EventType(),
					"aggregate_id", event.AggregateID())
				if firstErr == nil {
					firstErr = err
				}
			}
		}
	}
	return firstErr
}

// NewLoggingHandler returns a handler that records every event at info
// level. It is the default sink when no other handler is registered.
func NewLoggingHandler(logger *slog.Logger) EventHandler {
	log := logger.With("component", "event_log")
	return HandlerFunc(func(ctx context.Context, event domain.Event) error {
		log.InfoContext(ctx, "domain event",
			"event_type", event.EventType(),
			"aggregate_id", event.AggregateID(),
			"occurred_at", event.OccurredAt())
		return nil
	})
}
