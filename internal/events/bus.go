package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/google/uuid"
)

// EventType names what happened.
type EventType string

// CountsChanged is published after a document was accepted by the backend, so
// anything showing document counts should refresh them.
const CountsChanged EventType = "counts_changed"

// Event is delivered to every subscriber.
type Event struct {
	ID        uuid.UUID           `json:"id"`
	Type      EventType           `json:"type"`
	Kind      domain.DocumentKind `json:"kind"`
	Folio     string              `json:"folio,omitempty"`
	Subject   string              `json:"subject,omitempty"` // Caller that submitted the document
	CreatedAt time.Time           `json:"createdAt"`
}

// NewCountsChanged builds the event for an accepted submission.
func NewCountsChanged(sub domain.Submission, subject string) Event {
	return Event{
		ID:        uuid.New(),
		Type:      CountsChanged,
		Kind:      sub.Kind,
		Folio:     sub.Folio,
		Subject:   subject,
		CreatedAt: time.Now().UTC(),
	}
}

const defaultBufferSize = 16

// Bus fans events out to subscribers. Publish never blocks: a subscriber whose
// buffer is full misses the event.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[uint64]chan Event
	nextID      uint64
	bufferSize  int
	logger      *slog.Logger
}

// NewBus creates an empty Bus. A nil logger falls back to slog.Default.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subscribers: make(map[uint64]chan Event),
		bufferSize:  defaultBufferSize,
		logger:      logger,
	}
}

// Subscribe registers a new subscriber. The returned cancel func unregisters it
// and closes the channel; it is safe to call more than once.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, b.bufferSize)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers evt to every current subscriber.
func (b *Bus) Publish(ctx context.Context, evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subscribers {
		select {
		case ch <- evt:
		default:
			b.logger.WarnContext(ctx, "Dropping event for slow subscriber",
				slog.Uint64("subscriber", id), slog.String("type", string(evt.Type)))
		}
	}
}

// SubscriberCount reports the number of active subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
