// Package output renders records for the CLI in text, JSON or YAML form.
package output

import (
	"time"

	"github.com/Ddemon26/recordkit/internal/domain/record"
)

// View is a serialization-friendly projection of a record. The Fields
// slice preserves shape declaration order, which map-based encodings
// would lose.
type View struct {
	Shape  string      `json:"shape" yaml:"shape"`
	Text   string      `json:"text" yaml:"text"`
	Fields []FieldView `json:"fields" yaml:"fields"`
}

// FieldView is one field of a View.
type FieldView struct {
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
	Value any    `json:"value" yaml:"value"`
}

// NewView projects a record into a View.
func NewView(r record.Record) View {
	shape := r.Shape()
	fields := make([]FieldView, 0, shape.Len())
	for _, f := range shape.Fields() {
		fields = append(fields, FieldView{
			Name:  f.Name,
			Kind:  f.Kind.String(),
			Value: plainValue(r.MustGet(f.Name)),
		})
	}
	return View{
		Shape:  shape.Name(),
		Text:   r.String(),
		Fields: fields,
	}
}

// plainValue converts a field value into a plain Go value that both the
// JSON and YAML encoders render naturally.
func plainValue(v record.Value) any {
	switch val := v.(type) {
	case record.Int:
		return int64(val)
	case record.Float:
		return float64(val)
	case record.String:
		return string(val)
	case record.Tag:
		return string(val)
	case record.Time:
		return val.Std().UTC().Format(time.RFC3339Nano)
	case *record.Record:
		return NewView(*val)
	default:
		return nil
	}
}
