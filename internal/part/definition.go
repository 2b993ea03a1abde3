package part

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"parametric-parts/internal/mathutil"
	"parametric-parts/internal/mesh"
)

// Definition is the YAML form of a part: its name, metadata and attributes.
// The geometry comes from a separate mesh file.
type Definition struct {
	Name       string            `yaml:"name"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
	Attributes []AttributeDef    `yaml:"attributes"`
}

type AttributeDef struct {
	Name  string    `yaml:"name"`
	Items []ItemDef `yaml:"items"`
}

// ItemDef is one item of an attribute. Without a magnitude, a scale item
// multiplies by its direction as given, so a scale direction should not
// contain zeros.
type ItemDef struct {
	Op        string       `yaml:"op"`
	Direction []float64    `yaml:"direction"`
	Magnitude *float64     `yaml:"magnitude,omitempty"` // nil = 0 for translate/rotate, 1 for scale
	Degrees   bool         `yaml:"degrees,omitempty"`   // rotate only: direction is in degrees
	Select    SelectionDef `yaml:"select"`
}

// SelectionDef sets exactly one of its fields.
type SelectionDef struct {
	Indices []int `yaml:"indices,omitempty"`
	Range   []int `yaml:"range,omitempty"` // [start, end)
	All     bool  `yaml:"all,omitempty"`
}

// LoadDefinition reads a YAML part definition.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("part: read %s: %w", path, err)
	}
	d, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ParseDefinition decodes YAML, rejecting unknown keys.
func ParseDefinition(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Definition
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrBadDefinition, err)
	}
	return &d, nil
}

// Build turns the definition into a Part over g.
func (d *Definition) Build(g *mesh.Geometry) (*Part, error) {
	attrs := make([]*Attribute, 0, len(d.Attributes))
	for _, ad := range d.Attributes {
		items := make([]AttributeItem, 0, len(ad.Items))
		for i, id := range ad.Items {
			it, err := id.item()
			if err != nil {
				return nil, fmt.Errorf("attribute %q item %d: %w", ad.Name, i, err)
			}
			items = append(items, it)
		}
		a, err := NewAttribute(ad.Name, items...)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}

	p, err := NewPart(d.Name, g, attrs...)
	if err != nil {
		return nil, err
	}
	for k, v := range d.Metadata {
		p.Metadata[k] = v
	}
	return p, nil
}

func (id ItemDef) item() (AttributeItem, error) {
	op, err := mathutil.ParseOp(id.Op)
	if err != nil {
		return AttributeItem{}, fmt.Errorf("%w: %v", ErrBadDefinition, err)
	}
	if len(id.Direction) != 3 {
		return AttributeItem{}, fmt.Errorf("%w: direction needs 3 components, got %d", ErrBadDefinition, len(id.Direction))
	}
	dir := mathutil.V3(id.Direction[0], id.Direction[1], id.Direction[2])
	if id.Degrees {
		if op != mathutil.OpRotate {
			return AttributeItem{}, fmt.Errorf("%w: degrees only applies to rotate", ErrBadDefinition)
		}
		dir = dir.Scale(mathutil.Deg2Rad(1))
	}

	sel, err := id.Select.selection()
	if err != nil {
		return AttributeItem{}, err
	}

	magnitude := defaultMagnitude(op)
	if id.Magnitude != nil {
		magnitude = *id.Magnitude
	}
	return NewItem(sel, NewAlteration(op, dir, magnitude)), nil
}

func (sd SelectionDef) selection() (Selection, error) {
	set := 0
	if len(sd.Indices) > 0 {
		set++
	}
	if len(sd.Range) > 0 {
		set++
	}
	if sd.All {
		set++
	}
	if set != 1 {
		return Selection{}, fmt.Errorf("%w: select needs exactly one of indices, range, all", ErrBadDefinition)
	}

	switch {
	case sd.All:
		return All(), nil
	case len(sd.Range) > 0:
		if len(sd.Range) != 2 {
			return Selection{}, fmt.Errorf("%w: range needs [start, end], got %v", ErrBadDefinition, sd.Range)
		}
		return Range(sd.Range[0], sd.Range[1]), nil
	}
	return Specific(sd.Indices...), nil
}
