// Package quest models quest progress as immutable records. A quest
// never changes in place; advancing it derives a new record with the
// next stage.
package quest

import (
	"fmt"

	"github.com/Ddemon26/recordkit/internal/domain/record"
)

// Quest stages.
const (
	StageNotStarted = record.Tag("not_started")
	StageActive     = record.Tag("active")
	StageComplete   = record.Tag("complete")
)

var shape = record.MustShape("Quest",
	record.Field{Name: "Title", Kind: record.KindString},
	record.Field{Name: "Stage", Kind: record.KindTag},
	record.Field{Name: "RewardGold", Kind: record.KindInt},
)

// Shape returns the Quest record shape.
func Shape() *record.Shape { return shape }

// Quest is an immutable quest entry.
type Quest struct {
	rec record.Record
}

// New creates a quest in the not-started stage.
func New(title string, rewardGold int64) Quest {
	return Quest{rec: record.MustNew(shape,
		record.String(title),
		StageNotStarted,
		record.Int(rewardGold),
	)}
}

// FromRecord wraps an existing Quest-shaped record.
func FromRecord(r record.Record) (Quest, error) {
	if err := r.Conforms(shape); err != nil {
		return Quest{}, err
	}
	return Quest{rec: r}, nil
}

// Title returns the quest title.
func (q Quest) Title() string { return string(q.rec.MustGet("Title").(record.String)) }

// Stage returns the current stage tag.
func (q Quest) Stage() record.Tag { return q.rec.MustGet("Stage").(record.Tag) }

// RewardGold returns the completion reward.
func (q Quest) RewardGold() int64 { return int64(q.rec.MustGet("RewardGold").(record.Int)) }

// WithStage derives a quest at the given stage.
func (q Quest) WithStage(stage record.Tag) Quest {
	return Quest{rec: q.rec.MustDerive(record.Changes{"Stage": stage})}
}

// Advance derives a quest at the next stage. Advancing a completed
// quest is an error.
func (q Quest) Advance() (Quest, error) {
	switch q.Stage() {
	case StageNotStarted:
		return q.WithStage(StageActive), nil
	case StageActive:
		return q.WithStage(StageComplete), nil
	default:
		return Quest{}, fmt.Errorf("quest %q is already complete", q.Title())
	}
}

// Record returns the underlying record.
func (q Quest) Record() record.Record { return q.rec }

// Equals reports structural equality.
func (q Quest) Equals(other Quest) bool { return q.rec.Equals(other.rec) }

// String renders the quest.
func (q Quest) String() string { return q.rec.String() }
