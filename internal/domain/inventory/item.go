// Package inventory models items and the bag that carries them. Items
// are immutable records; the bag is a keyed store over item IDs.
package inventory

import "github.com/Ddemon26/recordkit/internal/domain/record"

// Rarity tags an item's drop tier.
const (
	RarityCommon    = record.Tag("common")
	RarityUncommon  = record.Tag("uncommon")
	RarityRare      = record.Tag("rare")
	RarityLegendary = record.Tag("legendary")
)

var shape = record.MustShape("Item",
	record.Field{Name: "Name", Kind: record.KindString},
	record.Field{Name: "Rarity", Kind: record.KindTag},
	record.Field{Name: "Damage", Kind: record.KindInt},
	record.Field{Name: "Weight", Kind: record.KindFloat},
)

// Shape returns the Item record shape.
func Shape() *record.Shape { return shape }

// Item is an immutable item description.
type Item struct {
	rec record.Record
}

// NewItem creates an item.
func NewItem(name string, rarity record.Tag, damage int64, weight float64) Item {
	return Item{rec: record.MustNew(shape,
		record.String(name),
		rarity,
		record.Int(damage),
		record.Float(weight),
	)}
}

// FromRecord wraps an existing Item-shaped record.
func FromRecord(r record.Record) (Item, error) {
	if err := r.Conforms(shape); err != nil {
		return Item{}, err
	}
	return Item{rec: r}, nil
}

// Name returns the item name.
func (i Item) Name() string { return string(i.rec.MustGet("Name").(record.String)) }

// Rarity returns the drop tier tag.
func (i Item) Rarity() record.Tag { return i.rec.MustGet("Rarity").(record.Tag) }

// Damage returns the damage rating.
func (i Item) Damage() int64 { return int64(i.rec.MustGet("Damage").(record.Int)) }

// Weight returns the carry weight.
func (i Item) Weight() float64 { return float64(i.rec.MustGet("Weight").(record.Float)) }

// WithDamage derives an item with a new damage rating.
func (i Item) WithDamage(damage int64) Item {
	return Item{rec: i.rec.MustDerive(record.Changes{"Damage": record.Int(damage)})}
}

// WithRarity derives an item with a new rarity tag.
func (i Item) WithRarity(rarity record.Tag) Item {
	return Item{rec: i.rec.MustDerive(record.Changes{"Rarity": rarity})}
}

// Record returns the underlying record.
func (i Item) Record() record.Record { return i.rec }

// Equals reports structural equality.
func (i Item) Equals(other Item) bool { return i.rec.Equals(other.rec) }

// String renders the item.
func (i Item) String() string { return i.rec.String() }
