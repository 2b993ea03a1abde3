package mesh

import (
	"fmt"

	"parametric-parts/internal/mathutil"
)

// Face references three vertices of a Geometry by 0-based index.
// A Face never owns vertex data.
type Face struct {
	A, B, C int
}

// NewFace builds a Face from 1-based indices, as written in mesh files.
// Each index is reduced by one, saturating at zero.
func NewFace(a, b, c int) Face {
	return Face{A: fromOneBased(a), B: fromOneBased(b), C: fromOneBased(c)}
}

func fromOneBased(i int) int {
	if i < 1 {
		return 0
	}
	return i - 1
}

// OneBased returns the indices re-offset for output.
func (f Face) OneBased() (int, int, int) {
	return f.A + 1, f.B + 1, f.C + 1
}

// Indices returns the 0-based indices in winding order.
func (f Face) Indices() [3]int {
	return [3]int{f.A, f.B, f.C}
}

// IsValid reports whether all three indices address an element of vertices.
func (f Face) IsValid(vertices []mathutil.Vertex) bool {
	n := len(vertices)
	for _, i := range f.Indices() {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}

// Triangle copies the referenced vertices. The caller must have validated f.
func (f Face) Triangle(vertices []mathutil.Vertex) Triangle {
	return Triangle{
		Indices: f.Indices(),
		P1:      vertices[f.A],
		P2:      vertices[f.B],
		P3:      vertices[f.C],
	}
}

func (f Face) Normal(vertices []mathutil.Vertex) mathutil.Normal {
	return f.Triangle(vertices).Normal()
}

// String formats the face as a mesh line, e.g. "f 1 3 9".
func (f Face) String() string {
	a, b, c := f.OneBased()
	return fmt.Sprintf("%s %d %d %d", FaceTag, a, b, c)
}
