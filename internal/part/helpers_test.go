package part

import (
	"testing"

	"github.com/stretchr/testify/require"

	"parametric-parts/internal/mathutil"
	"parametric-parts/internal/mesh"
)

// board returns a 1.5 × 3.5 × 96 box. Vertices 0-3 form the back end at
// x=0 and vertices 4-7 the front end at x=96.
func board(t *testing.T) *mesh.Geometry {
	t.Helper()
	g := mesh.Make([]float64{
		0, 0, 0,
		0, 1.5, 0,
		0, 1.5, 3.5,
		0, 0, 3.5,
		96, 0, 0,
		96, 1.5, 0,
		96, 1.5, 3.5,
		96, 0, 3.5,
	}, []int{
		1, 2, 3, 1, 3, 4,
		5, 7, 6, 5, 8, 7,
		1, 5, 6, 1, 6, 2,
		2, 6, 7, 2, 7, 3,
		3, 7, 8, 3, 8, 4,
		4, 8, 5, 4, 5, 1,
	})
	require.NoError(t, g.Validate())
	return g
}

func snapshot(g *mesh.Geometry) []mathutil.Vertex {
	return append([]mathutil.Vertex(nil), g.Vertices()...)
}
