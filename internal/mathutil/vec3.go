package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// It is used both as a point and as a direction.
type Vec3 [3]float64

// Vertex and Normal name the intent of a Vec3; they are not distinct types.
type (
	Vertex = Vec3
	Normal = Vec3
)

// V3 builds a Vec3 from its components.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Mul returns the componentwise product.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Len returns the magnitude sqrt(x²+y²+z²).
func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Dist returns the Euclidean distance between two points.
func (a Vec3) Dist(b Vec3) float64 {
	return a.Sub(b).Len()
}

// Normalize returns the unit vector. A zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Transform treats v as a homogeneous point (w=1) and returns M × v after
// the perspective divide. The divide is kept even for affine matrices
// (dw == 1) so projective matrices behave correctly.
func (v Vec3) Transform(m Mat4) Vec3 {
	x, y, z := v[0], v[1], v[2]
	dx := m[0]*x + m[1]*y + m[2]*z + m[3]
	dy := m[4]*x + m[5]*y + m[6]*z + m[7]
	dz := m[8]*x + m[9]*y + m[10]*z + m[11]
	dw := m[12]*x + m[13]*y + m[14]*z + m[15]
	return Vec3{dx / dw, dy / dw, dz / dw}
}
