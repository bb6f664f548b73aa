package record

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Record is an immutable binding of a Shape to one value per field.
//
// Copy disciplines:
//
//   - By value: Record is a plain value; Copy returns a storage-independent
//     clone, so rebinding or reusing one binding can never be observed
//     through another.
//   - By reference: Shared wraps a *Record so two bindings refer to the
//     same underlying storage. Because that storage is immutable the two
//     disciplines are observationally identical until a binding is
//     re-pointed at a Derive result.
//
// Equality and hashing are always value-based, never identity-based,
// under either discipline.
type Record struct {
	shape  *Shape
	fields []Value
}

// Changes maps field names to replacement values for Derive.
type Changes map[string]Value

// New constructs a Record, binding values to the shape's fields in
// declaration order. Every field is set exactly once, here; there is no
// other write path.
func New(shape *Shape, values ...Value) (Record, error) {
	if len(values) != shape.Len() {
		return Record{}, &ArityError{Shape: shape.name, Want: shape.Len(), Got: len(values)}
	}
	fields := make([]Value, len(values))
	for i, v := range values {
		if v == nil {
			return Record{}, &KindMismatchError{
				Shape: shape.name,
				Field: shape.fields[i].Name,
				Want:  shape.fields[i].Kind,
			}
		}
		if v.Kind() != shape.fields[i].Kind {
			return Record{}, &KindMismatchError{
				Shape: shape.name,
				Field: shape.fields[i].Name,
				Want:  shape.fields[i].Kind,
				Got:   v.Kind(),
			}
		}
		fields[i] = v
	}
	return Record{shape: shape, fields: fields}, nil
}

// MustNew constructs a Record or panics. For statically known shapes
// where a mismatch is a programming error.
func MustNew(shape *Shape, values ...Value) Record {
	r, err := New(shape, values...)
	if err != nil {
		panic(err)
	}
	return r
}

// Shape returns the record's shape.
func (r Record) Shape() *Shape { return r.shape }

// IsZero reports whether the record is the zero value (no shape bound).
func (r Record) IsZero() bool { return r.shape == nil }

// Get returns the value of a named field.
func (r Record) Get(name string) (Value, error) {
	if r.shape == nil {
		return nil, &InvalidFieldError{Field: name}
	}
	i, ok := r.shape.fieldIndex(name)
	if !ok {
		return nil, &InvalidFieldError{Shape: r.shape.name, Field: name}
	}
	return r.fields[i], nil
}

// MustGet returns the value of a named field or panics. For accessors
// over statically known shapes.
func (r Record) MustGet(name string) Value {
	v, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Conforms reports whether the record carries every field of the given
// shape with matching kinds. Used by typed wrappers accepting records
// from dynamic sources such as catalogs.
func (r Record) Conforms(shape *Shape) error {
	if r.shape == nil {
		return &ArityError{Shape: shape.name, Want: shape.Len(), Got: 0}
	}
	if r.shape.name != shape.name {
		return fmt.Errorf("record has shape %s, want %s", r.shape.name, shape.name)
	}
	if len(r.fields) != shape.Len() {
		return &ArityError{Shape: shape.name, Want: shape.Len(), Got: len(r.fields)}
	}
	for _, f := range shape.fields {
		v, err := r.Get(f.Name)
		if err != nil {
			return err
		}
		if v.Kind() != f.Kind {
			return &KindMismatchError{Shape: shape.name, Field: f.Name, Want: f.Kind, Got: v.Kind()}
		}
	}
	return nil
}

// Equals reports structural equality: same shape name, identical field
// layout (names and kinds in declaration order), and every field value
// equal, regardless of storage identity. Two shapes sharing a name but
// declaring their fields in a different order are distinct shapes, the
// same way their records render differently.
func (r Record) Equals(other Record) bool {
	if r.shape == nil || other.shape == nil {
		return r.shape == other.shape
	}
	if r.shape.name != other.shape.name || len(r.fields) != len(other.fields) {
		return false
	}
	for i, f := range r.shape.fields {
		of := other.shape.fields[i]
		if of.Name != f.Name || of.Kind != f.Kind {
			return false
		}
		if !valueEqual(r.fields[i], other.fields[i]) {
			return false
		}
	}
	return true
}

// Hash returns a stable hash over the record's shape name, field names
// and field values. Equal records hash equal.
func (r Record) Hash() uint64 {
	if r.shape == nil {
		return 0
	}
	d := xxhash.New()
	writeCanonical(d, r)
	return d.Sum64()
}

// String renders the record as TypeName(Field1: v1, Field2: v2) in field
// declaration order. The output is deterministic: equal records render
// identically across calls.
func (r Record) String() string {
	if r.shape == nil {
		return "Record()"
	}
	var b strings.Builder
	b.WriteString(r.shape.name)
	b.WriteByte('(')
	for i, f := range r.shape.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(renderValue(r.fields[i]))
	}
	b.WriteByte(')')
	return b.String()
}

// Copy returns a storage-independent clone. The shape is shared (shapes
// are immutable), the field storage is not.
func (r Record) Copy() Record {
	if r.shape == nil {
		return Record{}
	}
	fields := make([]Value, len(r.fields))
	for i, v := range r.fields {
		if nested, ok := v.(*Record); ok {
			c := nested.Copy()
			fields[i] = &c
			continue
		}
		fields[i] = v
	}
	return Record{shape: r.shape, fields: fields}
}

// Derive produces a new Record with the listed fields replaced and every
// other field carried over unchanged. The source is never mutated. An
// empty change set yields an identity copy; a change set naming every
// field yields a full override. A field name outside the shape fails
// with InvalidFieldError.
func (r Record) Derive(changes Changes) (Record, error) {
	if r.shape == nil {
		for name := range changes {
			return Record{}, &InvalidFieldError{Field: name}
		}
		return Record{}, nil
	}
	fields := make([]Value, len(r.fields))
	copy(fields, r.fields)
	for name, v := range changes {
		i, ok := r.shape.fieldIndex(name)
		if !ok {
			return Record{}, &InvalidFieldError{Shape: r.shape.name, Field: name}
		}
		if v == nil || v.Kind() != r.shape.fields[i].Kind {
			got := Kind(0)
			if v != nil {
				got = v.Kind()
			}
			return Record{}, &KindMismatchError{
				Shape: r.shape.name,
				Field: name,
				Want:  r.shape.fields[i].Kind,
				Got:   got,
			}
		}
		fields[i] = v
	}
	return Record{shape: r.shape, fields: fields}, nil
}

// MustDerive derives or panics. For With-style helpers over statically
// known shapes where the field set cannot be wrong.
func (r Record) MustDerive(changes Changes) Record {
	out, err := r.Derive(changes)
	if err != nil {
		panic(err)
	}
	return out
}

// writeCanonical feeds a deterministic byte encoding of the record into
// the digest: shape name, then each field's name, kind and value in
// declaration order. Strings are length-prefixed so adjacent fields
// cannot alias.
func writeCanonical(d *xxhash.Digest, r Record) {
	writeString(d, r.shape.name)
	for i, f := range r.shape.fields {
		writeString(d, f.Name)
		writeUint64(d, uint64(f.Kind))
		switch v := r.fields[i].(type) {
		case Int:
			writeUint64(d, uint64(int64(v)))
		case Float:
			f := float64(v)
			if f == 0 {
				// negative zero compares equal to zero, so it must hash equal
				f = 0
			}
			writeUint64(d, math.Float64bits(f))
		case String:
			writeString(d, string(v))
		case Tag:
			writeString(d, string(v))
		case Time:
			writeUint64(d, uint64(time.Time(v).UnixNano()))
		case *Record:
			writeCanonical(d, *v)
		}
	}
}

func writeString(d *xxhash.Digest, s string) {
	writeUint64(d, uint64(len(s)))
	_, _ = d.WriteString(s)
}

func writeUint64(d *xxhash.Digest, u uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], u)
	_, _ = d.Write(buf[:])
}
