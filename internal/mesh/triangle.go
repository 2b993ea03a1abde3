package mesh

import "parametric-parts/internal/mathutil"

// Triangle is a snapshot of a face's vertex data plus the indices it came
// from. It does not track later changes to the source Geometry.
type Triangle struct {
	Indices    [3]int
	P1, P2, P3 mathutil.Vertex
}

// Normal returns normalize(cross(P2-P1, P3-P1)). The P1→P2→P3 winding
// selects the outward side by the right-hand rule.
func (t Triangle) Normal() mathutil.Normal {
	a := t.P2.Sub(t.P1)
	b := t.P3.Sub(t.P1)
	return a.Cross(b).Normalize()
}

// Area returns the triangle's surface area.
func (t Triangle) Area() float64 {
	return 0.5 * t.P2.Sub(t.P1).Cross(t.P3.Sub(t.P1)).Len()
}

// Face returns the index triple this triangle was built from.
func (t Triangle) Face() Face {
	return Face{A: t.Indices[0], B: t.Indices[1], C: t.Indices[2]}
}

// Transform applies m to the three points.
func (t *Triangle) Transform(m mathutil.Mat4) {
	t.P1 = t.P1.Transform(m)
	t.P2 = t.P2.Transform(m)
	t.P3 = t.P3.Transform(m)
}
