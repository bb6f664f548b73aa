package record

// Shared is the reference-share discipline over the same immutable data.
// Assigning a Shared copies the handle, not the storage: both bindings
// observe the same underlying Record. Since that Record can never be
// mutated, the bindings cannot diverge; a binding only changes by being
// rebound to the result of Derive, which leaves every other binding
// pointing at the original.
//
// Equality and hashing remain value-based, exactly as for Record.
type Shared struct {
	rec *Record
}

// Share places a record behind a shared handle.
func Share(r Record) Shared {
	return Shared{rec: &r}
}

// Record returns a value-discipline view of the shared data. An unbound
// handle yields the zero Record.
func (s Shared) Record() Record {
	if s.rec == nil {
		return Record{}
	}
	return *s.rec
}

// IsZero reports whether the handle is unbound.
func (s Shared) IsZero() bool { return s.rec == nil }

// SameStorage reports whether two handles refer to the same underlying
// instance. This is the only identity-sensitive operation; it exists so
// callers (and tests) can distinguish sharing from structural equality.
func (s Shared) SameStorage(other Shared) bool { return s.rec == other.rec }

// Get returns the value of a named field.
func (s Shared) Get(name string) (Value, error) { return s.Record().Get(name) }

// Equals reports structural equality with another shared handle.
func (s Shared) Equals(other Shared) bool { return s.Record().Equals(other.Record()) }

// Hash returns the value-based hash of the underlying record.
func (s Shared) Hash() uint64 { return s.Record().Hash() }

// String renders the underlying record.
func (s Shared) String() string { return s.Record().String() }

// Derive produces a new handle to a new underlying record with the
// listed fields replaced. The receiver's storage is untouched: callers
// still holding the old handle observe the original values.
func (s Shared) Derive(changes Changes) (Shared, error) {
	out, err := s.Record().Derive(changes)
	if err != nil {
		return Shared{}, err
	}
	return Share(out), nil
}
