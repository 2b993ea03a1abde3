package part

import (
	"fmt"

	"parametric-parts/internal/mathutil"
	"parametric-parts/internal/mesh"
)

// AttributeItem pairs one Selection with one Alteration.
type AttributeItem struct {
	Selection  Selection
	Alteration Alteration
}

func NewItem(sel Selection, alt Alteration) AttributeItem {
	return AttributeItem{Selection: sel, Alteration: alt}
}

// Apply runs the item's alteration over its selection of vertices.
func (it AttributeItem) Apply(vertices []mathutil.Vertex) error {
	return it.Alteration.ApplySelection(it.Selection, vertices)
}

// defaultMagnitude is 0 for translate and rotate, so a fresh item of those
// ops is the identity. It is 1 for scale, so a fresh scale item's matrix is
// Scale(direction): the identity only when every component is 1, and a zero
// component flattens the selection onto that axis.
func defaultMagnitude(op mathutil.Op) float64 {
	if op == mathutil.OpScale {
		return 1
	}
	return 0
}

func newItem(op mathutil.Op, direction mathutil.Vec3, sel Selection) AttributeItem {
	return NewItem(sel, NewAlteration(op, direction, defaultMagnitude(op)))
}

func TranslateSpecific(direction mathutil.Vec3, indices ...int) AttributeItem {
	return newItem(mathutil.OpTranslate, direction, Specific(indices...))
}

func TranslateRange(direction mathutil.Vec3, start, end int) AttributeItem {
	return newItem(mathutil.OpTranslate, direction, Range(start, end))
}

func TranslateAll(direction mathutil.Vec3) AttributeItem {
	return newItem(mathutil.OpTranslate, direction, All())
}

func RotateSpecific(direction mathutil.Vec3, indices ...int) AttributeItem {
	return newItem(mathutil.OpRotate, direction, Specific(indices...))
}

func RotateRange(direction mathutil.Vec3, start, end int) AttributeItem {
	return newItem(mathutil.OpRotate, direction, Range(start, end))
}

func RotateAll(direction mathutil.Vec3) AttributeItem {
	return newItem(mathutil.OpRotate, direction, All())
}

func ScaleSpecific(direction mathutil.Vec3, indices ...int) AttributeItem {
	return newItem(mathutil.OpScale, direction, Specific(indices...))
}

func ScaleRange(direction mathutil.Vec3, start, end int) AttributeItem {
	return newItem(mathutil.OpScale, direction, Range(start, end))
}

func ScaleAll(direction mathutil.Vec3) AttributeItem {
	return newItem(mathutil.OpScale, direction, All())
}

// Attribute is a named parametric dimension: one magnitude broadcast to
// several items, each moving its own vertices along its own direction.
//
// Lifecycle: defined, then parametrized by Update, then applied by Revise,
// in any number of cycles. Revise is relative: it transforms the current
// vertex state, so calling it twice with the same magnitude applies the
// change twice. Undoing a change means applying the inverse transform.
type Attribute struct {
	name  string
	items []AttributeItem
}

// NewAttribute validates and builds an attribute. Checks run in order:
// a zero-magnitude scale item, an empty name, no items.
func NewAttribute(name string, items ...AttributeItem) (*Attribute, error) {
	for i, it := range items {
		if err := it.Alteration.Check(); err != nil {
			return nil, fmt.Errorf("attribute %q item %d: %w", name, i, err)
		}
	}
	if name == "" {
		return nil, ErrUnnamedAttribute
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyAttribute, name)
	}
	return &Attribute{
		name:  name,
		items: append([]AttributeItem(nil), items...),
	}, nil
}

func (a *Attribute) Name() string { return a.name }

// Len returns the number of items.
func (a *Attribute) Len() int { return len(a.items) }

// Items returns a copy of the items.
func (a *Attribute) Items() []AttributeItem {
	return append([]AttributeItem(nil), a.items...)
}

// Magnitude returns the first item's magnitude. After Update every item
// holds the same value.
func (a *Attribute) Magnitude() float64 {
	return a.items[0].Alteration.Magnitude()
}

func (a *Attribute) hasScale() bool {
	for _, it := range a.items {
		if it.Alteration.Op() == mathutil.OpScale {
			return true
		}
	}
	return false
}

// Update broadcasts m into every item's alteration. A zero magnitude is
// rejected when any item scales, and nothing changes.
func (a *Attribute) Update(m float64) error {
	if m == 0 && a.hasScale() {
		return fmt.Errorf("%w: update %q", ErrFixedAttribute, a.name)
	}
	for i := range a.items {
		a.items[i].Alteration.SetMagnitude(m)
	}
	return nil
}

// Check verifies every item's selection against a vertex count.
func (a *Attribute) Check(n int) error {
	for i, it := range a.items {
		if err := it.Selection.Check(n); err != nil {
			return fmt.Errorf("attribute %q item %d: %w", a.name, i, err)
		}
	}
	return nil
}

// Revise applies every item to g's vertices in item order. All selections
// are checked first, so a failure leaves g untouched.
func (a *Attribute) Revise(g *mesh.Geometry) error {
	vertices := g.Vertices()
	if err := a.Check(len(vertices)); err != nil {
		return err
	}
	for i, it := range a.items {
		if err := it.Apply(vertices); err != nil {
			return fmt.Errorf("attribute %q item %d: %w", a.name, i, err)
		}
	}
	return nil
}

// Centroid returns the centroid of item i's selection on g's current vertices.
func (a *Attribute) Centroid(g *mesh.Geometry, i int) (mathutil.Vertex, error) {
	if i < 0 || i >= len(a.items) {
		return mathutil.Vertex{}, fmt.Errorf("%w: item %d of %q (%d items)", ErrIndexOutOfRange, i, a.name, len(a.items))
	}
	return Centroid(a.items[i].Selection, g.Vertices())
}

// Distance returns the distance between the centroids of items i and j on
// g's current vertices.
func (a *Attribute) Distance(g *mesh.Geometry, i, j int) (float64, error) {
	ci, err := a.Centroid(g, i)
	if err != nil {
		return 0, err
	}
	cj, err := a.Centroid(g, j)
	if err != nil {
		return 0, err
	}
	return ci.Dist(cj), nil
}
