package mesh

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"parametric-parts/internal/mathutil"
)

// Line tags of the mesh text format.
const (
	VertexTag = "v"
	FaceTag   = "f"
)

// Options control how mesh text is read.
type Options struct {
	// Strict rejects lines whose tag is neither VertexTag nor FaceTag.
	// Blank lines and '#' comments are always allowed.
	Strict bool

	// Encoding is an IANA charset name (e.g. "windows-1252"). Empty means
	// the input is already UTF-8.
	Encoding string

	// Logger receives a debug record for every skipped line. Optional.
	Logger *slog.Logger
}

// ParseFile reads and parses a mesh file.
func ParseFile(path string, opts Options) (*Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ParseString parses mesh text held in memory.
func ParseString(s string, opts Options) (*Geometry, error) {
	return Parse(strings.NewReader(s), opts)
}

// Parse reads vertex and face lines and returns a validated Geometry.
// A vertex or face line with a bad token fails with ErrParse. Lines with
// other tags are skipped unless opts.Strict is set.
func Parse(r io.Reader, opts Options) (*Geometry, error) {
	src, err := decode(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	g := &Geometry{}
	sc := bufio.NewScanner(src)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case VertexTag:
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrParse, lineNo, err)
			}
			g.vertices = append(g.vertices, v)
		case FaceTag:
			f, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrParse, lineNo, err)
			}
			g.faces = append(g.faces, f)
		default:
			if opts.Strict {
				return nil, fmt.Errorf("%w: line %d: unrecognized tag %q", ErrParse, lineNo, fields[0])
			}
			if opts.Logger != nil {
				opts.Logger.Debug("Skipping mesh line", slog.Int("line", lineNo), slog.String("tag", fields[0]))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: scan: %w", err)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func decode(r io.Reader, name string) (io.Reader, error) {
	if name == "" {
		return r, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("mesh: encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("mesh: encoding %q is not supported", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

func parseVertex(tokens []string) (mathutil.Vertex, error) {
	var v mathutil.Vertex
	if len(tokens) != 3 {
		return v, fmt.Errorf("vertex needs 3 values, got %d", len(tokens))
	}
	for k, tok := range tokens {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return v, fmt.Errorf("vertex value %q: %w", tok, err)
		}
		v[k] = x
	}
	return v, nil
}

// parseFace accepts plain 1-based indices and OBJ-style "v/vt/vn" tokens,
// of which only the vertex index is kept.
func parseFace(tokens []string) (Face, error) {
	if len(tokens) != 3 {
		return Face{}, fmt.Errorf("face needs 3 indices, got %d", len(tokens))
	}
	var idx [3]int
	for k, tok := range tokens {
		head, _, _ := strings.Cut(tok, "/")
		i, err := strconv.Atoi(head)
		if err != nil {
			return Face{}, fmt.Errorf("face index %q: %w", tok, err)
		}
		if i < 0 {
			return Face{}, fmt.Errorf("face index %q is negative", tok)
		}
		idx[k] = i
	}
	return NewFace(idx[0], idx[1], idx[2]), nil
}
