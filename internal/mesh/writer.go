package mesh

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"parametric-parts/internal/mathutil"
)

// FormatVertex formats v as a mesh line, e.g. "v 1 0.5 -2".
func FormatVertex(v mathutil.Vertex) string {
	return VertexTag + " " + FormatVec3(v)
}

// FormatVec3 formats the three components separated by spaces.
func FormatVec3(v mathutil.Vec3) string {
	return formatFloat(v[0]) + " " + formatFloat(v[1]) + " " + formatFloat(v[2])
}

// formatFloat uses the shortest decimal that round-trips, never an exponent.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Write emits every vertex, then every face, one per line, in order.
func Write(w io.Writer, g *Geometry) error {
	bw := bufio.NewWriter(w)
	for _, v := range g.vertices {
		bw.WriteString(FormatVertex(v))
		bw.WriteByte('\n')
	}
	for _, f := range g.faces {
		bw.WriteString(f.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Format returns the mesh text for g.
func Format(g *Geometry) string {
	var sb strings.Builder
	Write(&sb, g)
	return sb.String()
}
