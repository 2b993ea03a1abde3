package part

import (
	"fmt"

	"parametric-parts/internal/mathutil"
)

// Alteration is a parametrized transform: an operation, a direction and a
// scalar magnitude. The matrix is derived on demand from
// direction × magnitude, so the knob can be changed between applications.
type Alteration struct {
	op        mathutil.Op
	dimension mathutil.Vec3
	magnitude float64
}

func NewAlteration(op mathutil.Op, dimension mathutil.Vec3, magnitude float64) Alteration {
	return Alteration{op: op, dimension: dimension, magnitude: magnitude}
}

func (a Alteration) Op() mathutil.Op          { return a.op }
func (a Alteration) Dimension() mathutil.Vec3 { return a.dimension }
func (a Alteration) Magnitude() float64       { return a.magnitude }

func (a *Alteration) SetMagnitude(v float64) {
	a.magnitude = v
}

func (a *Alteration) SetDimension(v mathutil.Vec3) {
	a.dimension = v
}

// Matrix feeds direction × magnitude to the constructor matching the op:
// an offset for translate, radians per axis for rotate, factors for scale.
func (a Alteration) Matrix() mathutil.Mat4 {
	v := a.dimension.Scale(a.magnitude)
	return mathutil.Matching(a.op, v[0], v[1], v[2])
}

// Check rejects a scale with magnitude 0.
func (a Alteration) Check() error {
	if a.op == mathutil.OpScale && a.magnitude == 0 {
		return fmt.Errorf("%w: %s along %v", ErrFixedAttribute, a.op, a.dimension)
	}
	return nil
}

// Apply transforms every vertex of the slice in place.
func (a Alteration) Apply(vertices []mathutil.Vertex) {
	a.Matrix().ApplyAll(vertices)
}

// ApplySelection transforms only the vertices sel addresses.
func (a Alteration) ApplySelection(sel Selection, vertices []mathutil.Vertex) error {
	m := a.Matrix()
	return sel.Map(vertices, func(v mathutil.Vertex) mathutil.Vertex {
		return v.Transform(m)
	})
}
