package record

import "fmt"

// Field declares one named, typed slot in a Shape.
type Field struct {
	Name string
	Kind Kind
}

// Shape is the fixed field layout shared by every Record of one type:
// a type name plus an ordered set of uniquely named fields. Shapes are
// immutable once built.
type Shape struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewShape builds a Shape. Field order is significant: it drives
// construction arity, rendering order, and hashing.
func NewShape(name string, fields ...Field) (*Shape, error) {
	if name == "" {
		return nil, fmt.Errorf("shape name must not be empty")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("shape %s: at least one field required", name)
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("shape %s: field %d has empty name", name, i)
		}
		if _, dup := index[f.Name]; dup {
			return nil, fmt.Errorf("shape %s: duplicate field %s", name, f.Name)
		}
		index[f.Name] = i
	}
	return &Shape{
		name:   name,
		fields: append([]Field(nil), fields...),
		index:  index,
	}, nil
}

// MustShape builds a Shape or panics. Intended for package-level shape
// declarations where the layout is a compile-time constant.
func MustShape(name string, fields ...Field) *Shape {
	s, err := NewShape(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the shape's type name.
func (s *Shape) Name() string { return s.name }

// Len returns the number of fields.
func (s *Shape) Len() int { return len(s.fields) }

// Fields returns a copy of the ordered field declarations.
func (s *Shape) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Field returns the declaration for a named field.
func (s *Shape) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// fieldIndex returns the position of a named field.
func (s *Shape) fieldIndex(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}
