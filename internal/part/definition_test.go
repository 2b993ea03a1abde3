package part

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parametric-parts/internal/mathutil"
)

const boardYAML = `
name: 2x4
metadata:
  material: pine
attributes:
  - name: Length
    items:
      - op: translate
        direction: [1, 0, 0]
        select: {indices: [4, 5, 6, 7]}
      - op: translate
        direction: [-1, 0, 0]
        select: {range: [0, 4]}
  - name: Thickness
    items:
      - op: Scale
        direction: [1, 1, 2]
        magnitude: 1
        select: {all: true}
  - name: Twist
    items:
      - op: rotate
        direction: [90, 0, 0]
        degrees: true
        select: {all: true}
`

func TestDefinitionBuild(t *testing.T) {
	d, err := ParseDefinition([]byte(boardYAML))
	require.NoError(t, err)

	p, err := d.Build(board(t))
	require.NoError(t, err)

	assert.Equal(t, "2x4", p.Name)
	assert.Equal(t, map[string]string{"material": "pine"}, p.Metadata)
	require.Len(t, p.Attributes(), 3)

	length, ok := p.Attribute("Length")
	require.True(t, ok)
	items := length.Items()
	require.Len(t, items, 2)
	assert.Equal(t, Specific(4, 5, 6, 7), items[0].Selection)
	assert.Equal(t, Range(0, 4), items[1].Selection)
	assert.Equal(t, mathutil.OpTranslate, items[0].Alteration.Op())
	assert.Equal(t, 0.0, length.Magnitude())

	thickness, ok := p.Attribute("Thickness")
	require.True(t, ok)
	assert.Equal(t, mathutil.OpScale, thickness.Items()[0].Alteration.Op())
	assert.Equal(t, 1.0, thickness.Magnitude())
	assert.Equal(t, All(), thickness.Items()[0].Selection)

	twist, ok := p.Attribute("Twist")
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, twist.Items()[0].Alteration.Dimension()[0], 1e-15)
}

func TestDefinitionApply(t *testing.T) {
	d, err := ParseDefinition([]byte(boardYAML))
	require.NoError(t, err)
	p, err := d.Build(board(t))
	require.NoError(t, err)

	require.NoError(t, p.Apply(map[string]float64{"Length": 2}))

	length, _ := p.Attribute("Length")
	dist, err := length.Distance(p.Geometry(), 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, dist, fassert)
}

func TestDefinitionQuarterTurn(t *testing.T) {
	d, err := ParseDefinition([]byte(boardYAML))
	require.NoError(t, err)
	p, err := d.Build(board(t))
	require.NoError(t, err)

	// magnitude 1 turns the configured 90 degrees
	require.NoError(t, p.Set("Twist", 1))

	v := p.Geometry().Vertices()[1] // (0, 1.5, 0)
	assert.InDelta(t, 0.0, v[0], 1e-12)
	assert.InDelta(t, 0.0, v[1], 1e-12)
	assert.InDelta(t, 1.5, math.Abs(v[2]), 1e-12)
}

func TestDefinitionErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown op", `
name: p
attributes:
  - name: A
    items:
      - op: shear
        direction: [1, 0, 0]
        select: {all: true}
`},
		{"short direction", `
name: p
attributes:
  - name: A
    items:
      - op: translate
        direction: [1, 0]
        select: {all: true}
`},
		{"two selections", `
name: p
attributes:
  - name: A
    items:
      - op: translate
        direction: [1, 0, 0]
        select: {all: true, indices: [1]}
`},
		{"no selection", `
name: p
attributes:
  - name: A
    items:
      - op: translate
        direction: [1, 0, 0]
        select: {}
`},
		{"bad range", `
name: p
attributes:
  - name: A
    items:
      - op: translate
        direction: [1, 0, 0]
        select: {range: [1, 2, 3]}
`},
		{"degrees on translate", `
name: p
attributes:
  - name: A
    items:
      - op: translate
        direction: [1, 0, 0]
        degrees: true
        select: {all: true}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDefinition([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = d.Build(board(t))
			assert.ErrorIs(t, err, ErrBadDefinition)
		})
	}
}

func TestDefinitionUnknownField(t *testing.T) {
	_, err := ParseDefinition([]byte("name: p\ncolour: red\n"))
	assert.ErrorIs(t, err, ErrBadDefinition)
}

func TestDefinitionBuildAttributeErrors(t *testing.T) {
	d, err := ParseDefinition([]byte(`
name: p
attributes:
  - name: Flat
    items:
      - op: scale
        direction: [1, 1, 1]
        magnitude: 0
        select: {all: true}
`))
	require.NoError(t, err)
	_, err = d.Build(board(t))
	assert.ErrorIs(t, err, ErrFixedAttribute)

	d, err = ParseDefinition([]byte("name: p\nattributes:\n  - name: Empty\n    items: []\n"))
	require.NoError(t, err)
	_, err = d.Build(board(t))
	assert.ErrorIs(t, err, ErrEmptyAttribute)
}

func TestLoadDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(boardYAML), 0o644))

	d, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "2x4", d.Name)
	assert.Len(t, d.Attributes, 3)

	_, err = LoadDefinition(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
