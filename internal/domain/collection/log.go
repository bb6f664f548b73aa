package collection

import (
	"iter"
	"sync"
)

// Log is the append-only, keyless collection variant. Entries get
// consecutive indices starting at zero, are never removed, and iterate
// in insertion order.
type Log[V any] struct {
	mu      sync.RWMutex
	entries []V
}

// NewLog creates an empty log.
func NewLog[V any]() *Log[V] {
	return &Log[V]{}
}

// Append adds an entry and returns its assigned index.
func (l *Log[V]) Append(value V) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, value)
	return len(l.entries) - 1
}

// At returns the entry at an index, or NotFoundError when out of range.
func (l *Log[V]) At(index int) (V, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.entries) {
		var zero V
		return zero, &NotFoundError{Key: index}
	}
	return l.entries[index], nil
}

// Len returns the number of entries.
func (l *Log[V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// All returns a restartable sequence of (index, entry) pairs in
// insertion order, iterating over a snapshot taken at range start.
func (l *Log[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		l.mu.RLock()
		snapshot := make([]V, len(l.entries))
		copy(snapshot, l.entries)
		l.mu.RUnlock()

		for i, v := range snapshot {
			if !yield(i, v) {
				return
			}
		}
	}
}
