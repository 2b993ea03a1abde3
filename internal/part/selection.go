package part

import (
	"fmt"

	"parametric-parts/internal/mathutil"
)

// SelectionKind tags the addressing strategy of a Selection.
type SelectionKind int

const (
	SelectSpecific SelectionKind = iota
	SelectRange
	SelectAll
)

func (k SelectionKind) String() string {
	switch k {
	case SelectSpecific:
		return "specific"
	case SelectRange:
		return "range"
	case SelectAll:
		return "all"
	}
	return fmt.Sprintf("SelectionKind(%d)", int(k))
}

// Selection addresses a subset of an ordered vertex list. It holds indices
// only, never vertex data.
//
// Every operation uses the same contract: indices must lie inside the list,
// replacement values must match the addressed count, and nothing is written
// unless both checks pass.
type Selection struct {
	Kind SelectionKind

	// Indices lists the addressed positions for SelectSpecific, in order.
	// Duplicates are allowed.
	Indices []int

	// Start and End bound SelectRange as [Start, End).
	Start, End int
}

// Specific addresses the given indices in the given order.
func Specific(indices ...int) Selection {
	return Selection{Kind: SelectSpecific, Indices: append([]int(nil), indices...)}
}

// Range addresses the half-open interval [start, end).
func Range(start, end int) Selection {
	return Selection{Kind: SelectRange, Start: start, End: end}
}

// All addresses every vertex.
func All() Selection {
	return Selection{Kind: SelectAll}
}

func (s Selection) String() string {
	switch s.Kind {
	case SelectSpecific:
		return fmt.Sprintf("specific%v", s.Indices)
	case SelectRange:
		return fmt.Sprintf("range[%d,%d)", s.Start, s.End)
	}
	return s.Kind.String()
}

// Len returns how many vertices s addresses in a list of length n.
func (s Selection) Len(n int) int {
	switch s.Kind {
	case SelectSpecific:
		return len(s.Indices)
	case SelectRange:
		return s.End - s.Start
	}
	return n
}

// Check verifies that s fits a list of length n.
func (s Selection) Check(n int) error {
	switch s.Kind {
	case SelectSpecific:
		for k, i := range s.Indices {
			if i < 0 || i >= n {
				return fmt.Errorf("%w: index %d at position %d with %d vertices", ErrIndexOutOfRange, i, k, n)
			}
		}
	case SelectRange:
		if s.Start < 0 || s.End < s.Start || s.End > n {
			return fmt.Errorf("%w: range [%d,%d) with %d vertices", ErrIndexOutOfRange, s.Start, s.End, n)
		}
	case SelectAll:
	default:
		return fmt.Errorf("part: unknown selection kind %d", int(s.Kind))
	}
	return nil
}

// index maps position k of the addressed subset to a list index.
func (s Selection) index(k int) int {
	switch s.Kind {
	case SelectSpecific:
		return s.Indices[k]
	case SelectRange:
		return s.Start + k
	}
	return k
}

// Take returns a copy of the addressed vertices in selection order.
func (s Selection) Take(vertices []mathutil.Vertex) ([]mathutil.Vertex, error) {
	if err := s.Check(len(vertices)); err != nil {
		return nil, err
	}
	out := make([]mathutil.Vertex, s.Len(len(vertices)))
	for k := range out {
		out[k] = vertices[s.index(k)]
	}
	return out, nil
}

// Give writes source back into dest: source[k] goes to the k-th addressed
// position. Matching is positional by selection order, not by index value.
func (s Selection) Give(source, dest []mathutil.Vertex) error {
	if err := s.Check(len(dest)); err != nil {
		return err
	}
	if want := s.Len(len(dest)); len(source) != want {
		return fmt.Errorf("%w: %s addresses %d vertices, source has %d", ErrLengthMismatch, s, want, len(source))
	}
	for k, v := range source {
		dest[s.index(k)] = v
	}
	return nil
}

// Map replaces each addressed vertex with fn(vertex). The result is the
// same as Take, transform, Give: every new value is computed from the state
// before Map, so a duplicated index is transformed once.
func (s Selection) Map(vertices []mathutil.Vertex, fn func(mathutil.Vertex) mathutil.Vertex) error {
	if err := s.Check(len(vertices)); err != nil {
		return err
	}
	switch s.Kind {
	case SelectSpecific:
		moved := make([]mathutil.Vertex, len(s.Indices))
		for k, i := range s.Indices {
			moved[k] = fn(vertices[i])
		}
		for k, i := range s.Indices {
			vertices[i] = moved[k]
		}
	case SelectRange:
		for i := s.Start; i < s.End; i++ {
			vertices[i] = fn(vertices[i])
		}
	default:
		for i := range vertices {
			vertices[i] = fn(vertices[i])
		}
	}
	return nil
}

// Centroid returns the mean position of the vertices s addresses.
func Centroid(s Selection, vertices []mathutil.Vertex) (mathutil.Vertex, error) {
	if err := s.Check(len(vertices)); err != nil {
		return mathutil.Vertex{}, err
	}
	n := s.Len(len(vertices))
	if n == 0 {
		return mathutil.Vertex{}, fmt.Errorf("%w: centroid of %s", ErrEmptySelection, s)
	}
	var sum mathutil.Vec3
	for k := 0; k < n; k++ {
		sum = sum.Add(vertices[s.index(k)])
	}
	return sum.Scale(1 / float64(n)), nil
}
