// Package event is a minimal synchronous bus: subscribers keyed by ID
// receive every published record. There is no queueing or asynchronous
// delivery; Publish calls each handler inline.
package event

import (
	"log/slog"

	"github.com/Ddemon26/recordkit/internal/domain/collection"
	"github.com/Ddemon26/recordkit/internal/domain/record"
)

// Handler receives published records. Records are immutable, so a
// handler can retain its argument without copying.
type Handler func(record.Record)

// Bus routes published records to registered handlers.
type Bus struct {
	subscribers *collection.Store[string, Handler]
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: collection.NewStore[string, Handler](collection.Reject)}
}

// Subscribe registers a handler under an ID. A duplicate ID fails with
// collection.DuplicateKeyError.
func (b *Bus) Subscribe(id string, h Handler) error {
	return b.subscribers.Add(id, h)
}

// Unsubscribe removes a handler, or fails with collection.NotFoundError.
func (b *Bus) Unsubscribe(id string) error {
	_, err := b.subscribers.Remove(id)
	return err
}

// Publish delivers a record to every subscriber in subscription order.
func (b *Bus) Publish(r record.Record) {
	slog.Debug("publishing record", "shape", r.Shape().Name(), "subscribers", b.subscribers.Len())
	for _, h := range b.subscribers.All() {
		h(r)
	}
}

// Len returns the number of subscribers.
func (b *Bus) Len() int { return b.subscribers.Len() }
