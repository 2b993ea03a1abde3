package part

import (
	"fmt"

	"parametric-parts/internal/mesh"
)

// Part is a named geometry together with the attributes that drive it.
type Part struct {
	Name     string
	Metadata map[string]string

	geometry   *mesh.Geometry
	attributes []*Attribute
}

// NewPart checks that the geometry is usable, that every attribute is
// non-nil and fits its vertex count, and that attribute names are unique.
func NewPart(name string, g *mesh.Geometry, attrs ...*Attribute) (*Part, error) {
	if name == "" {
		return nil, ErrUnnamedPart
	}
	if g == nil || g.VertexCount() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyGeometry, name)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("part %q: %w", name, err)
	}

	seen := make(map[string]bool, len(attrs))
	for i, a := range attrs {
		if a == nil {
			return nil, fmt.Errorf("%w: attribute %d of part %q is nil", ErrBadDefinition, i, name)
		}
		if seen[a.Name()] {
			return nil, fmt.Errorf("%w: %q in part %q", ErrDuplicateAttribute, a.Name(), name)
		}
		seen[a.Name()] = true
		if err := a.Check(g.VertexCount()); err != nil {
			return nil, fmt.Errorf("part %q: %w", name, err)
		}
	}

	return &Part{
		Name:       name,
		Metadata:   map[string]string{},
		geometry:   g,
		attributes: attrs,
	}, nil
}

func (p *Part) Geometry() *mesh.Geometry { return p.geometry }

func (p *Part) Attributes() []*Attribute {
	return append([]*Attribute(nil), p.attributes...)
}

// Attribute looks up an attribute by name.
func (p *Part) Attribute(name string) (*Attribute, bool) {
	for _, a := range p.attributes {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// Set updates the named attribute to value and revises the geometry.
func (p *Part) Set(name string, value float64) error {
	a, ok := p.Attribute(name)
	if !ok {
		return fmt.Errorf("%w: %q in part %q", ErrUnknownAttribute, name, p.Name)
	}
	if err := a.Update(value); err != nil {
		return err
	}
	return a.Revise(p.geometry)
}

// Apply sets several attributes in the part's attribute order. Every value
// is checked first: an unknown name, a zero value for a scaling attribute or
// a selection outside the geometry fails before any vertex moves.
func (p *Part) Apply(values map[string]float64) error {
	for name, v := range values {
		a, ok := p.Attribute(name)
		if !ok {
			return fmt.Errorf("%w: %q in part %q", ErrUnknownAttribute, name, p.Name)
		}
		if v == 0 && a.hasScale() {
			return fmt.Errorf("%w: update %q", ErrFixedAttribute, name)
		}
		if err := a.Check(p.geometry.VertexCount()); err != nil {
			return err
		}
	}
	for _, a := range p.attributes {
		v, ok := values[a.Name()]
		if !ok {
			continue
		}
		if err := p.Set(a.Name(), v); err != nil {
			return err
		}
	}
	return nil
}
