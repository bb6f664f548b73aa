// Package filter evaluates boolean expressions against record fields,
// for selecting records out of a collection. Expressions use expr-lang
// syntax with field names as variables, e.g.
//
//	Health > 100 && Rarity == "rare"
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/Ddemon26/recordkit/internal/domain/record"
)

// Filter is a compiled record predicate.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile compiles an expression once so it can match many records.
// Field names are resolved per record, so a name absent from one shape
// is not a compile error.
func Compile(source string) (*Filter, error) {
	program, err := expr.Compile(source,
		expr.AllowUndefinedVariables(),
		expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return &Filter{source: source, program: program}, nil
}

// Source returns the original expression text.
func (f *Filter) Source() string { return f.source }

// Matches evaluates the filter against one record.
func (f *Filter) Matches(r record.Record) (bool, error) {
	output, err := expr.Run(f.program, Env(r))
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.source, err)
	}
	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q did not produce a boolean", f.source)
	}
	return result, nil
}

// Env builds the expression environment for a record: one variable per
// field, plus "_shape" bound to the shape name.
func Env(r record.Record) map[string]any {
	shape := r.Shape()
	env := make(map[string]any, shape.Len()+1)
	env["_shape"] = shape.Name()
	for _, f := range shape.Fields() {
		switch v := r.MustGet(f.Name).(type) {
		case record.Int:
			env[f.Name] = int64(v)
		case record.Float:
			env[f.Name] = float64(v)
		case record.String:
			env[f.Name] = string(v)
		case record.Tag:
			env[f.Name] = string(v)
		case record.Time:
			env[f.Name] = v.Std()
		case *record.Record:
			env[f.Name] = Env(*v)
		}
	}
	return env
}
