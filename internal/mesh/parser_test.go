package mesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parametric-parts/internal/mathutil"
)

const sixVertices = `v 0.1 0.2 0.3
v 0.4 0.5 0.6
v 0.7 0.8 0.9
v 1.1 1.2 1.3
v 1.4 1.5 1.6
v 1.7 1.8 1.9
f 1 2 3
f 4 5 6
`

func TestParseString(t *testing.T) {
	g, err := ParseString(sixVertices, Options{})
	require.NoError(t, err)
	require.Equal(t, 2, g.Size())

	a, err := g.Get(0)
	require.NoError(t, err)
	b, err := g.Get(1)
	require.NoError(t, err)

	assert.Equal(t, mathutil.V3(0.1, 0.2, 0.3), a.P1)
	assert.Equal(t, mathutil.V3(0.4, 0.5, 0.6), a.P2)
	assert.Equal(t, mathutil.V3(0.7, 0.8, 0.9), a.P3)
	assert.Equal(t, mathutil.V3(1.1, 1.2, 1.3), b.P1)
	assert.Equal(t, mathutil.V3(1.4, 1.5, 1.6), b.P2)
	assert.Equal(t, mathutil.V3(1.7, 1.8, 1.9), b.P3)
}

func TestFormatRoundTrip(t *testing.T) {
	g, err := ParseString(sixVertices, Options{})
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(sixVertices), strings.TrimSpace(Format(g)))
}

func TestFormatGolden(t *testing.T) {
	g := Make([]float64{
		0, 0, 0,
		2, 0, 0,
		0, 1.5, 0,
		0.1, 0.2, -0.3,
	}, []int{1, 2, 3, 1, 3, 4})
	require.NoError(t, g.Validate())

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gold.Assert(t, "box", []byte(Format(g)))
}

func TestFormatVertex(t *testing.T) {
	assert.Equal(t, "v 1 5 9", FormatVertex(mathutil.V3(1, 5, 9)))
	assert.Equal(t, "v 1.1234 5.4321 9.87642343", FormatVertex(mathutil.V3(1.1234, 5.4321, 9.87642343)))
	assert.Equal(t, "v 1000000000000000000000 0 -2.5", FormatVertex(mathutil.V3(1e21, 0, -2.5)))
}

func TestParseSkipsUnknownLines(t *testing.T) {
	src := "# exported\n\no board\nvn 0 0 1\nv 0 0 0\nv 1 0 0\nv 0 1 0\ns off\nf 1 2 3\n"

	g, err := ParseString(src, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 1, g.Size())

	_, err = ParseString(src, Options{Strict: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseStrictAllowsComments(t *testing.T) {
	g, err := ParseString("# header\n\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n", Options{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Size())
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"bad float":      "v 1 x 3\n",
		"short vertex":   "v 1 2\n",
		"long vertex":    "v 1 2 3 4\n",
		"bad index":      "v 0 0 0\nf 1 a 1\n",
		"negative index": "v 0 0 0\nf 1 -1 1\n",
		"short face":     "v 0 0 0\nf 1 1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseString(src, Options{})
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseValidatesFaces(t *testing.T) {
	_, err := ParseString("v 0 0 0\nv 1 0 0\nf 1 2 3\n", Options{})
	assert.ErrorIs(t, err, ErrInvalidFace)
}

func TestParseObjFaceTokens(t *testing.T) {
	g, err := ParseString("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1 2/2/1 3//1\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, []Face{{A: 0, B: 1, C: 2}}, g.Faces())
}

func TestParseEncoding(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	utf16 := make([]byte, 0, 2*len(src))
	for _, b := range []byte(src) {
		utf16 = append(utf16, b, 0)
	}

	g, err := Parse(strings.NewReader(string(utf16)), Options{Encoding: "UTF-16LE"})
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())

	g, err = Parse(strings.NewReader("# caf\xe9\nv 1 2 3\n"), Options{Encoding: "windows-1252", Strict: true})
	require.NoError(t, err)
	assert.Equal(t, []mathutil.Vertex{{1, 2, 3}}, g.Vertices())

	_, err = ParseString(src, Options{Encoding: "no-such-charset"})
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0644))

	g, err := ParseFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Size())

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.obj"), Options{})
	assert.Error(t, err)
}
