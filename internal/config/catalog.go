// Package config loads record catalogs: YAML documents declaring record
// shapes and named fixture records. Catalogs let the CLI and scenarios
// construct records declaratively instead of hardcoding them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/Ddemon26/recordkit/internal/domain/record"
)

// Catalog is a validated, decoded catalog document.
type Catalog struct {
	Version  string
	shapes   map[string]*record.Shape
	order    []string
	fixtures map[string]Fixture
	fixOrder []string
}

// Fixture is a named, pre-built record declared in a catalog.
type Fixture struct {
	Name   string
	Record record.Record
}

// catalogDoc mirrors the YAML document structure.
type catalogDoc struct {
	CatalogVersion string       `yaml:"catalog_version"`
	Shapes         []shapeDoc   `yaml:"shapes"`
	Fixtures       []fixtureDoc `yaml:"fixtures"`
}

type shapeDoc struct {
	Name   string     `yaml:"name"`
	Fields []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

type fixtureDoc struct {
	Name   string         `yaml:"name"`
	Shape  string         `yaml:"shape"`
	Values map[string]any `yaml:"values"`
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes, validates and builds a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := checkVersion(doc.CatalogVersion); err != nil {
		return nil, err
	}

	cat := &Catalog{
		Version:  doc.CatalogVersion,
		shapes:   make(map[string]*record.Shape, len(doc.Shapes)),
		fixtures: make(map[string]Fixture, len(doc.Fixtures)),
	}

	for _, sd := range doc.Shapes {
		shape, err := buildShape(sd)
		if err != nil {
			return nil, err
		}
		if _, dup := cat.shapes[shape.Name()]; dup {
			return nil, fmt.Errorf("catalog declares shape %s twice", shape.Name())
		}
		cat.shapes[shape.Name()] = shape
		cat.order = append(cat.order, shape.Name())
	}

	for _, fd := range doc.Fixtures {
		fx, err := buildFixture(cat, fd)
		if err != nil {
			return nil, err
		}
		if _, dup := cat.fixtures[fx.Name]; dup {
			return nil, fmt.Errorf("catalog declares fixture %s twice", fx.Name)
		}
		cat.fixtures[fx.Name] = fx
		cat.fixOrder = append(cat.fixOrder, fx.Name)
	}

	return cat, nil
}

// Shape returns a declared shape by name.
func (c *Catalog) Shape(name string) (*record.Shape, bool) {
	s, ok := c.shapes[name]
	return s, ok
}

// ShapeNames returns declared shape names in document order.
func (c *Catalog) ShapeNames() []string {
	return append([]string(nil), c.order...)
}

// Fixture returns a declared fixture by name.
func (c *Catalog) Fixture(name string) (Fixture, bool) {
	f, ok := c.fixtures[name]
	return f, ok
}

// FixtureNames returns declared fixture names in document order.
func (c *Catalog) FixtureNames() []string {
	return append([]string(nil), c.fixOrder...)
}

func buildShape(sd shapeDoc) (*record.Shape, error) {
	fields := make([]record.Field, 0, len(sd.Fields))
	for _, fd := range sd.Fields {
		kind, ok := record.ParseKind(fd.Kind)
		if !ok {
			return nil, fmt.Errorf("shape %s field %s: unknown kind %q", sd.Name, fd.Name, fd.Kind)
		}
		if kind == record.KindRecord {
			return nil, fmt.Errorf("shape %s field %s: nested record fields are not declarable in catalogs", sd.Name, fd.Name)
		}
		fields = append(fields, record.Field{Name: fd.Name, Kind: kind})
	}
	shape, err := record.NewShape(sd.Name, fields...)
	if err != nil {
		return nil, fmt.Errorf("invalid shape declaration: %w", err)
	}
	return shape, nil
}

func buildFixture(cat *Catalog, fd fixtureDoc) (Fixture, error) {
	shape, ok := cat.shapes[fd.Shape]
	if !ok {
		return Fixture{}, fmt.Errorf("fixture %s references undeclared shape %s", fd.Name, fd.Shape)
	}

	fields := shape.Fields()
	vals := make([]record.Value, 0, len(fields))
	for _, f := range fields {
		raw, ok := fd.Values[f.Name]
		if !ok {
			return Fixture{}, fmt.Errorf("fixture %s: missing value for field %s", fd.Name, f.Name)
		}
		v, err := CoerceValue(f.Kind, raw)
		if err != nil {
			return Fixture{}, fmt.Errorf("fixture %s field %s: %w", fd.Name, f.Name, err)
		}
		vals = append(vals, v)
	}
	for name := range fd.Values {
		if _, ok := shape.Field(name); !ok {
			return Fixture{}, fmt.Errorf("fixture %s: shape %s has no field %s", fd.Name, fd.Shape, name)
		}
	}

	rec, err := record.New(shape, vals...)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixture %s: %w", fd.Name, err)
	}
	return Fixture{Name: fd.Name, Record: rec}, nil
}

// ParseScalar converts a textual value (flag or prompt input) into a
// field value of the given kind. Timestamps are RFC 3339 strings.
func ParseScalar(kind record.Kind, s string) (record.Value, error) {
	switch kind {
	case record.KindInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		return record.Int(n), nil
	case record.KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q", s)
		}
		return record.Float(f), nil
	case record.KindString:
		return record.String(s), nil
	case record.KindTag:
		return record.Tag(s), nil
	case record.KindTime:
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		return record.NewTime(t), nil
	default:
		return nil, fmt.Errorf("cannot parse %s values from text", kind)
	}
}

// CoerceValue converts a decoded YAML scalar into a field value of the
// given kind. Timestamps are RFC 3339 strings.
func CoerceValue(kind record.Kind, raw any) (record.Value, error) {
	switch kind {
	case record.KindInt:
		switch n := raw.(type) {
		case int:
			return record.Int(n), nil
		case int64:
			return record.Int(n), nil
		case uint64:
			return record.Int(n), nil
		case float64:
			if n != float64(int64(n)) {
				return nil, fmt.Errorf("value %v is not an integer", raw)
			}
			return record.Int(int64(n)), nil
		}
	case record.KindFloat:
		switch n := raw.(type) {
		case float64:
			return record.Float(n), nil
		case int:
			return record.Float(n), nil
		case int64:
			return record.Float(n), nil
		case uint64:
			return record.Float(n), nil
		}
	case record.KindString:
		if s, ok := raw.(string); ok {
			return record.String(s), nil
		}
	case record.KindTag:
		if s, ok := raw.(string); ok {
			return record.Tag(s), nil
		}
	case record.KindTime:
		if s, ok := raw.(string); ok {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return nil, fmt.Errorf("invalid timestamp %q: %w", s, err)
			}
			return record.NewTime(t), nil
		}
	}
	return nil, fmt.Errorf("cannot use %T as %s", raw, kind)
}
