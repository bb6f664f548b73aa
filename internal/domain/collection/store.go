package collection

import (
	"iter"
	"sync"
)

// Policy selects how a Store treats Add on an existing key.
type Policy int

const (
	// Overwrite silently replaces the stored value, dictionary-style.
	Overwrite Policy = iota
	// Reject fails the Add with DuplicateKeyError.
	Reject
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// Store is a keyed collection of values. Iteration order is insertion
// order, which makes it stable within one instance's lifetime.
//
// The internal mutex keeps individual operations safe, but the store has
// no multi-operation transactions: callers coordinating a read-then-write
// sequence across goroutines need their own lock. Single-writer use needs
// nothing extra.
type Store[K comparable, V any] struct {
	mu     sync.RWMutex
	policy Policy
	items  map[K]V
	order  []K
}

// NewStore creates an empty store with the given duplicate policy.
func NewStore[K comparable, V any](policy Policy) *Store[K, V] {
	return &Store[K, V]{
		policy: policy,
		items:  make(map[K]V),
	}
}

// Policy returns the store's duplicate policy.
func (s *Store[K, V]) Policy() Policy { return s.policy }

// Len returns the number of stored entries.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Add stores a value under a key. Under the Reject policy an existing
// key fails with DuplicateKeyError; under Overwrite the prior value is
// replaced and the key keeps its original position in iteration order.
func (s *Store[K, V]) Add(key K, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[key]; exists {
		if s.policy == Reject {
			return &DuplicateKeyError{Key: key}
		}
		s.items[key] = value
		return nil
	}

	s.items[key] = value
	s.order = append(s.order, key)
	return nil
}

// Get returns the value stored under a key, or NotFoundError.
func (s *Store[K, V]) Get(key K) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		var zero V
		return zero, &NotFoundError{Key: key}
	}
	return value, nil
}

// Contains reports whether a key is present.
func (s *Store[K, V]) Contains(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[key]
	return ok
}

// Remove deletes a key and returns the prior value, or NotFoundError.
func (s *Store[K, V]) Remove(key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.items[key]
	if !ok {
		var zero V
		return zero, &NotFoundError{Key: key}
	}

	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return value, nil
}

// All returns a restartable sequence of (key, value) pairs in insertion
// order. The sequence iterates over a snapshot taken when the range
// begins, so concurrent membership changes do not disturb a walk in
// progress.
func (s *Store[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s.mu.RLock()
		keys := make([]K, len(s.order))
		copy(keys, s.order)
		values := make([]V, 0, len(keys))
		for _, k := range keys {
			values = append(values, s.items[k])
		}
		s.mu.RUnlock()

		for i, k := range keys {
			if !yield(k, values[i]) {
				return
			}
		}
	}
}
