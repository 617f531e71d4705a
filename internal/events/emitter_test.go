package events

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/marchenry/bookworm-api/internal/domain"
)

func testEvents() []domain.Event {
	now := time.Now().UTC()
	return []domain.Event{
		domain.FavoriteGenreChanged{UserID: "u1", Genre: "Fantasy", Action: domain.GenreActionAdded, Timestamp: now},
		domain.RatingGiven{UserID: "u1", BookID: "b1", Rating: 5, Timestamp: now},
		domain.ItemBlocked{UserID: "u1", BookID: "b2", Timestamp: now},
	}
}

func TestEmitDeliversInOrder(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEventEmitter(slog.Default())
	var seen []string
	emitter.RegisterHandler(HandlerFunc(func(_ context.Context, event domain.Event) error {
		seen = append(seen, event.EventType())
		return nil
	}))

	if err := emitter.Emit(context.Background(), testEvents()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{
		domain.EventTypeFavoriteGenreChanged,
		domain.EventTypeRatingGiven,
		domain.EventTypeItemBlocked,
	}
	if len(seen) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Event %d: expected %q, got %q", i, want[i], seen[i])
		}
	}
}

func TestEmitContinuesPastFailingHandler(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEventEmitter(slog.Default())
	handlerErr := errors.New("handler broken")
	emitter.RegisterHandler(HandlerFunc(func(context.Context, domain.Event) error {
		return handlerErr
	}))

	delivered := 0
	emitter.RegisterHandler(HandlerFunc(func(context.Context, domain.Event) error {
		delivered++
		return nil
	}))

	err := emitter.Emit(context.Background(), testEvents())
	if !errors.Is(err, handlerErr) {
		t.Errorf("Expected first handler error, got %v", err)
	}
	if delivered != 3 {
		t.Errorf("Expected second handler to see all 3 events, got %d", delivered)
	}
}

func TestEmitNoHandlers(t *testing.T) {
	t.Parallel()

	emitter := NewInMemoryEventEmitter(slog.Default())
	if err := emitter.Emit(context.Background(), testEvents()); err != nil {
		t.Errorf("Expected no error with no handlers, got %v", err)
	}
}
