// Package events publishes change notifications after committed mutations so
// UI sessions know which of their cached queries to invalidate.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type Type string

const (
	TransactionsChanged Type = "transactions.changed"
	AccountsChanged     Type = "accounts.changed"
	CategoriesChanged   Type = "categories.changed"
)

// Event describes one committed mutation. Empty IDs means every cached query
// of the type is stale, as when deleting an account removes its transactions.
type Event struct {
	Type       Type      `json:"type"`
	UserID     string    `json:"userId"`
	IDs        []string  `json:"ids"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

func Decode(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
