// Package aiprofile models NPC behaviour tuning as an immutable record.
// Tuning an NPC means deriving a new settings record and handing it
// over; nothing observes a half-updated profile.
package aiprofile

import "github.com/Ddemon26/recordkit/internal/domain/record"

// Temperament tags the overall disposition of an NPC.
const (
	TemperamentPassive  = record.Tag("passive")
	TemperamentBalanced = record.Tag("balanced")
	TemperamentHostile  = record.Tag("hostile")
)

var shape = record.MustShape("AISettings",
	record.Field{Name: "Aggression", Kind: record.KindFloat},
	record.Field{Name: "Caution", Kind: record.KindFloat},
	record.Field{Name: "Curiosity", Kind: record.KindFloat},
	record.Field{Name: "Temperament", Kind: record.KindTag},
)

// Shape returns the AISettings record shape.
func Shape() *record.Shape { return shape }

// Settings is an immutable behaviour profile. Weights are expected in
// [0, 1] by convention; the record itself does not enforce ranges.
type Settings struct {
	rec record.Record
}

// New creates a settings profile.
func New(aggression, caution, curiosity float64, temperament record.Tag) Settings {
	return Settings{rec: record.MustNew(shape,
		record.Float(aggression),
		record.Float(caution),
		record.Float(curiosity),
		temperament,
	)}
}

// Balanced returns the neutral default profile.
func Balanced() Settings {
	return New(0.5, 0.5, 0.5, TemperamentBalanced)
}

// FromRecord wraps an existing AISettings-shaped record.
func FromRecord(r record.Record) (Settings, error) {
	if err := r.Conforms(shape); err != nil {
		return Settings{}, err
	}
	return Settings{rec: r}, nil
}

// Aggression returns the aggression weight.
func (s Settings) Aggression() float64 { return float64(s.rec.MustGet("Aggression").(record.Float)) }

// Caution returns the caution weight.
func (s Settings) Caution() float64 { return float64(s.rec.MustGet("Caution").(record.Float)) }

// Curiosity returns the curiosity weight.
func (s Settings) Curiosity() float64 { return float64(s.rec.MustGet("Curiosity").(record.Float)) }

// Temperament returns the disposition tag.
func (s Settings) Temperament() record.Tag { return s.rec.MustGet("Temperament").(record.Tag) }

// WithAggression derives a profile with a new aggression weight.
func (s Settings) WithAggression(w float64) Settings {
	return Settings{rec: s.rec.MustDerive(record.Changes{"Aggression": record.Float(w)})}
}

// WithTemperament derives a profile with a new disposition.
func (s Settings) WithTemperament(t record.Tag) Settings {
	return Settings{rec: s.rec.MustDerive(record.Changes{"Temperament": t})}
}

// Record returns the underlying record.
func (s Settings) Record() record.Record { return s.rec }

// Equals reports structural equality.
func (s Settings) Equals(other Settings) bool { return s.rec.Equals(other.rec) }

// String renders the profile.
func (s Settings) String() string { return s.rec.String() }
