// Package collection provides the mutable containers of the model: a
// keyed store with selectable duplicate policies and an append-only log.
// The records they hold stay immutable; only membership changes.
package collection

import "fmt"

// DuplicateKeyError indicates an Add on a Reject-policy store whose key
// is already present. Recoverable: the caller may overwrite via a fresh
// Remove+Add, skip, or pick a new key.
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}

// NotFoundError indicates a Get or Remove on an absent key.
type NotFoundError struct {
	Key any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}
