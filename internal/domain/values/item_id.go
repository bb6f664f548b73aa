// Package values contains small identifier value objects that wrap
// primitive types with validation.
package values

import (
	"fmt"
	"strings"
)

// ItemID identifies an item slot in an inventory.
// Enforces non-empty, trimmed identifiers.
type ItemID struct {
	value string
}

// NewItemID creates an ItemID with validation
func NewItemID(id string) (ItemID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ItemID{}, fmt.Errorf("item ID cannot be empty")
	}
	return ItemID{value: id}, nil
}

// MustNewItemID creates an ItemID or panics
func MustNewItemID(id string) ItemID {
	iid, err := NewItemID(id)
	if err != nil {
		panic(err)
	}
	return iid
}

// String returns the string representation
func (i ItemID) String() string {
	return i.value
}

// IsEmpty returns true if this is the zero value
func (i ItemID) IsEmpty() bool {
	return i.value == ""
}

// Equals checks if two item IDs are equal
func (i ItemID) Equals(other ItemID) bool {
	return i.value == other.value
}
