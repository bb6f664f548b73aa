package inventory

import (
	"iter"

	"github.com/Ddemon26/recordkit/internal/domain/collection"
	"github.com/Ddemon26/recordkit/internal/domain/values"
)

// Bag is a keyed inventory: item IDs mapped to immutable items. The
// default policy mirrors a plain dictionary and silently overwrites on
// duplicate IDs; NewStrictBag rejects duplicates instead.
type Bag struct {
	store *collection.Store[values.ItemID, Item]
}

// NewBag creates an inventory that overwrites on duplicate item IDs.
func NewBag() *Bag {
	return &Bag{store: collection.NewStore[values.ItemID, Item](collection.Overwrite)}
}

// NewStrictBag creates an inventory that rejects duplicate item IDs
// with collection.DuplicateKeyError.
func NewStrictBag() *Bag {
	return &Bag{store: collection.NewStore[values.ItemID, Item](collection.Reject)}
}

// Add stores an item under an ID, subject to the bag's duplicate policy.
func (b *Bag) Add(id values.ItemID, item Item) error {
	return b.store.Add(id, item)
}

// Get returns the item stored under an ID, or collection.NotFoundError.
func (b *Bag) Get(id values.ItemID) (Item, error) {
	return b.store.Get(id)
}

// Remove deletes an item and returns it, or collection.NotFoundError.
func (b *Bag) Remove(id values.ItemID) (Item, error) {
	return b.store.Remove(id)
}

// Contains reports whether an ID is present.
func (b *Bag) Contains(id values.ItemID) bool {
	return b.store.Contains(id)
}

// Len returns the number of carried items.
func (b *Bag) Len() int { return b.store.Len() }

// All iterates (ID, item) pairs in the order items were first added.
func (b *Bag) All() iter.Seq2[values.ItemID, Item] {
	return b.store.All()
}
