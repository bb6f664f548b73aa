// Package record implements an immutable value-record model: records with
// a fixed, named field shape, value-based equality, stable hashing,
// deterministic rendering, and non-destructive derivation. A Record is
// never mutated after construction; the only way to "change" one is
// Derive, which produces a new Record and leaves the source untouched.
package record

import (
	"strconv"
	"time"
)

// Kind identifies the semantic type of a field value.
type Kind int

const (
	KindInt Kind = iota + 1
	KindFloat
	KindString
	KindTime
	KindTag
	KindRecord
)

// String returns the lowercase kind name used in catalogs and rendering.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindTag:
		return "tag"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// ParseKind converts a catalog kind name into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "int":
		return KindInt, true
	case "float":
		return KindFloat, true
	case "string":
		return KindString, true
	case "time":
		return KindTime, true
	case "tag":
		return KindTag, true
	case "record":
		return KindRecord, true
	default:
		return 0, false
	}
}

// Value is a field value. Concrete types:
//
//   - Int     (signed 64-bit integer)
//   - Float   (64-bit floating point)
//   - String  (UTF-8 text)
//   - Time    (timestamp)
//   - Tag     (enumerated tag)
//   - *Record (nested record)
//
// The interface is sealed: only types in this package implement it.
type Value interface {
	Kind() Kind
	fieldValue()
}

// Int is a signed 64-bit integer field value.
type Int int64

// Float is a 64-bit floating point field value.
type Float float64

// String is a text field value.
type String string

// Tag is an enumerated tag field value. Tags render without quotes and
// compare by their symbol.
type Tag string

// Time is a timestamp field value. Two Times are equal when they denote
// the same instant, regardless of location.
type Time time.Time

// NewTime wraps a time.Time as a field value.
func NewTime(t time.Time) Time { return Time(t) }

// Std returns the underlying time.Time.
func (t Time) Std() time.Time { return time.Time(t) }

func (Int) Kind() Kind     { return KindInt }
func (Float) Kind() Kind   { return KindFloat }
func (String) Kind() Kind  { return KindString }
func (Tag) Kind() Kind     { return KindTag }
func (Time) Kind() Kind    { return KindTime }
func (*Record) Kind() Kind { return KindRecord }

func (Int) fieldValue()     {}
func (Float) fieldValue()   {}
func (String) fieldValue()  {}
func (Tag) fieldValue()     {}
func (Time) fieldValue()    {}
func (*Record) fieldValue() {}

// valueEqual reports structural equality of two field values. Equality is
// value-based for every kind, including nested records.
func valueEqual(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Int:
		return av == b.(Int)
	case Float:
		return av == b.(Float)
	case String:
		return av == b.(String)
	case Tag:
		return av == b.(Tag)
	case Time:
		return time.Time(av).Equal(time.Time(b.(Time)))
	case *Record:
		return av.Equals(*b.(*Record))
	default:
		return false
	}
}

// renderValue produces the deterministic textual form of a value used by
// Record.String. Strings are quoted so field boundaries stay unambiguous;
// tags render as bare symbols.
func renderValue(v Value) string {
	switch val := v.(type) {
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Float:
		return strconv.FormatFloat(float64(val), 'g', -1, 64)
	case String:
		return strconv.Quote(string(val))
	case Tag:
		return string(val)
	case Time:
		return time.Time(val).UTC().Format(time.RFC3339Nano)
	case *Record:
		return val.String()
	default:
		return "<invalid>"
	}
}
