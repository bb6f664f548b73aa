// Package achievement models unlocked achievements. An achievement
// unlocks exactly once, so the board rejects duplicate names.
package achievement

import (
	"iter"
	"time"

	"github.com/Ddemon26/recordkit/internal/domain/collection"
	"github.com/Ddemon26/recordkit/internal/domain/record"
)

var shape = record.MustShape("Achievement",
	record.Field{Name: "Name", Kind: record.KindString},
	record.Field{Name: "Points", Kind: record.KindInt},
	record.Field{Name: "UnlockedAt", Kind: record.KindTime},
)

// Shape returns the Achievement record shape.
func Shape() *record.Shape { return shape }

// Achievement is an immutable unlock entry.
type Achievement struct {
	rec record.Record
}

// New creates an achievement unlocked at the given time.
func New(name string, points int64, unlockedAt time.Time) Achievement {
	return Achievement{rec: record.MustNew(shape,
		record.String(name),
		record.Int(points),
		record.NewTime(unlockedAt),
	)}
}

// FromRecord wraps an existing Achievement-shaped record.
func FromRecord(r record.Record) (Achievement, error) {
	if err := r.Conforms(shape); err != nil {
		return Achievement{}, err
	}
	return Achievement{rec: r}, nil
}

// Name returns the achievement name.
func (a Achievement) Name() string { return string(a.rec.MustGet("Name").(record.String)) }

// Points returns the score value.
func (a Achievement) Points() int64 { return int64(a.rec.MustGet("Points").(record.Int)) }

// UnlockedAt returns the unlock timestamp.
func (a Achievement) UnlockedAt() time.Time { return a.rec.MustGet("UnlockedAt").(record.Time).Std() }

// Record returns the underlying record.
func (a Achievement) Record() record.Record { return a.rec }

// Equals reports structural equality.
func (a Achievement) Equals(other Achievement) bool { return a.rec.Equals(other.rec) }

// String renders the achievement.
func (a Achievement) String() string { return a.rec.String() }

// Board tracks unlocked achievements by name. Unlocking the same name
// twice fails with collection.DuplicateKeyError.
type Board struct {
	store *collection.Store[string, Achievement]
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{store: collection.NewStore[string, Achievement](collection.Reject)}
}

// Unlock records an achievement under its name.
func (b *Board) Unlock(a Achievement) error {
	return b.store.Add(a.Name(), a)
}

// Get returns the achievement unlocked under a name.
func (b *Board) Get(name string) (Achievement, error) {
	return b.store.Get(name)
}

// Len returns the number of unlocked achievements.
func (b *Board) Len() int { return b.store.Len() }

// All iterates achievements in unlock order.
func (b *Board) All() iter.Seq2[string, Achievement] {
	return b.store.All()
}

// TotalPoints sums the points of every unlocked achievement.
func (b *Board) TotalPoints() int64 {
	var total int64
	for _, a := range b.store.All() {
		total += a.Points()
	}
	return total
}
