package mesh

import (
	"fmt"
	"math"

	"parametric-parts/internal/mathutil"
)

// Geometry owns a vertex array and a list of faces that index into it.
// Faces are only trustworthy after Validate succeeds.
type Geometry struct {
	vertices []mathutil.Vertex
	faces    []Face
}

// New wraps already-built vertices and 0-based faces. Call Validate before
// using the faces.
func New(vertices []mathutil.Vertex, faces []Face) *Geometry {
	return &Geometry{vertices: vertices, faces: faces}
}

// Make builds a Geometry from flat arrays: xyz triples and 1-based index
// triples. A trailing partial triple is ignored.
func Make(values []float64, indices []int) *Geometry {
	vertices := make([]mathutil.Vertex, 0, len(values)/3)
	for i := 0; i+3 <= len(values); i += 3 {
		vertices = append(vertices, mathutil.V3(values[i], values[i+1], values[i+2]))
	}
	faces := make([]Face, 0, len(indices)/3)
	for i := 0; i+3 <= len(indices); i += 3 {
		faces = append(faces, NewFace(indices[i], indices[i+1], indices[i+2]))
	}
	return New(vertices, faces)
}

// Validate fails with ErrInvalidFace if any face references a vertex
// outside the vertex array.
func (g *Geometry) Validate() error {
	for i, f := range g.faces {
		if !f.IsValid(g.vertices) {
			a, b, c := f.OneBased()
			return fmt.Errorf("%w: face %d (%d %d %d) with %d vertices",
				ErrInvalidFace, i+1, a, b, c, len(g.vertices))
		}
	}
	return nil
}

// Size returns the number of faces.
func (g *Geometry) Size() int {
	return len(g.faces)
}

func (g *Geometry) VertexCount() int {
	return len(g.vertices)
}

// Get returns the i-th face as a Triangle.
func (g *Geometry) Get(i int) (Triangle, error) {
	if i < 0 || i >= len(g.faces) {
		return Triangle{}, fmt.Errorf("%w: face %d of %d", ErrIndexOutOfRange, i, len(g.faces))
	}
	return g.faces[i].Triangle(g.vertices), nil
}

// Triangles materializes every face in order.
func (g *Geometry) Triangles() []Triangle {
	tris := make([]Triangle, len(g.faces))
	for i, f := range g.faces {
		tris[i] = f.Triangle(g.vertices)
	}
	return tris
}

// Vertices returns the vertex array itself, not a copy. Writes through it
// change the geometry; its length must not change.
func (g *Geometry) Vertices() []mathutil.Vertex {
	return g.vertices
}

func (g *Geometry) Faces() []Face {
	return g.faces
}

// Transform applies m to every vertex exactly once, so vertices shared by
// several faces move once.
func (g *Geometry) Transform(m mathutil.Mat4) {
	m.ApplyAll(g.vertices)
}

// Bounds returns the axis-aligned bounding box of the vertices. An empty
// geometry yields +Inf/-Inf extents.
func (g *Geometry) Bounds() (min, max mathutil.Vec3) {
	min = mathutil.V3(math.Inf(1), math.Inf(1), math.Inf(1))
	max = mathutil.V3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, v := range g.vertices {
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return min, max
}

// Clone returns a deep copy.
func (g *Geometry) Clone() *Geometry {
	vertices := make([]mathutil.Vertex, len(g.vertices))
	copy(vertices, g.vertices)
	faces := make([]Face, len(g.faces))
	copy(faces, g.faces)
	return New(vertices, faces)
}
