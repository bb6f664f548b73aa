// Package stats holds the combat statistics of a player character as an
// immutable record.
package stats

import "github.com/Ddemon26/recordkit/internal/domain/record"

var shape = record.MustShape("PlayerStats",
	record.Field{Name: "Health", Kind: record.KindInt},
	record.Field{Name: "AttackPower", Kind: record.KindInt},
)

// Shape returns the PlayerStats record shape.
func Shape() *record.Shape { return shape }

// PlayerStats is an immutable stat block. Adjustments go through the
// With helpers, which derive a new block and leave the receiver intact.
type PlayerStats struct {
	rec record.Record
}

// New creates a stat block.
func New(health, attackPower int64) PlayerStats {
	return PlayerStats{rec: record.MustNew(shape, record.Int(health), record.Int(attackPower))}
}

// FromRecord wraps an existing PlayerStats-shaped record.
func FromRecord(r record.Record) (PlayerStats, error) {
	if err := r.Conforms(shape); err != nil {
		return PlayerStats{}, err
	}
	return PlayerStats{rec: r}, nil
}

// Health returns the current health.
func (p PlayerStats) Health() int64 {
	return int64(p.rec.MustGet("Health").(record.Int))
}

// AttackPower returns the current attack power.
func (p PlayerStats) AttackPower() int64 {
	return int64(p.rec.MustGet("AttackPower").(record.Int))
}

// WithHealth derives a stat block with a new health value.
func (p PlayerStats) WithHealth(health int64) PlayerStats {
	return PlayerStats{rec: p.rec.MustDerive(record.Changes{"Health": record.Int(health)})}
}

// WithAttackPower derives a stat block with a new attack power value.
func (p PlayerStats) WithAttackPower(attackPower int64) PlayerStats {
	return PlayerStats{rec: p.rec.MustDerive(record.Changes{"AttackPower": record.Int(attackPower)})}
}

// Record returns the underlying record.
func (p PlayerStats) Record() record.Record { return p.rec }

// Equals reports structural equality.
func (p PlayerStats) Equals(other PlayerStats) bool { return p.rec.Equals(other.rec) }

// String renders the stat block.
func (p PlayerStats) String() string { return p.rec.String() }
