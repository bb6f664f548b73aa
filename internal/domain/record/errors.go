package record

import "fmt"

// InvalidFieldError indicates a field name not present in the record's shape.
type InvalidFieldError struct {
	Shape string
	Field string
}

func (e *InvalidFieldError) Error() string {
	if e.Shape == "" {
		return fmt.Sprintf("record has no field %q", e.Field)
	}
	return fmt.Sprintf("shape %s has no field %q", e.Shape, e.Field)
}

// KindMismatchError indicates a value of the wrong kind for a field.
type KindMismatchError struct {
	Shape string
	Field string
	Want  Kind
	Got   Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf(
		"shape %s field %s: want %s, got %s",
		e.Shape, e.Field, e.Want, e.Got,
	)
}

// ArityError indicates a constructor call with the wrong number of values.
type ArityError struct {
	Shape string
	Want  int
	Got   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("shape %s takes %d values, got %d", e.Shape, e.Want, e.Got)
}
