package values

import (
	"fmt"

	"github.com/google/uuid"
)

// TransactionID uniquely identifies a trade transaction.
type TransactionID struct {
	value uuid.UUID
}

// NewTransactionID creates a new random transaction ID
func NewTransactionID() TransactionID {
	return TransactionID{value: uuid.New()}
}

// ParseTransactionID parses a string into a TransactionID
func ParseTransactionID(s string) (TransactionID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TransactionID{}, fmt.Errorf("invalid transaction ID: %w", err)
	}
	return TransactionID{value: id}, nil
}

// MustParseTransactionID parses a string or panics (for tests only)
func MustParseTransactionID(s string) TransactionID {
	id, err := ParseTransactionID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation
func (t TransactionID) String() string {
	return t.value.String()
}

// IsZero returns true if this is the zero value
func (t TransactionID) IsZero() bool {
	return t.value == uuid.Nil
}

// Equals checks if two TransactionIDs are equal
func (t TransactionID) Equals(other TransactionID) bool {
	return t.value == other.value
}
