package mathutil

import (
	"fmt"
	"strings"
)

// Op selects which matrix constructor a parametrized transform uses.
type Op int

const (
	OpTranslate Op = iota
	OpRotate
	OpScale
)

func (o Op) String() string {
	switch o {
	case OpTranslate:
		return "translate"
	case OpRotate:
		return "rotate"
	case OpScale:
		return "scale"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// ParseOp accepts the lowercase names produced by String.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "translate":
		return OpTranslate, nil
	case "rotate":
		return OpRotate, nil
	case "scale":
		return OpScale, nil
	}
	return 0, fmt.Errorf("mathutil: unknown op %q", s)
}

// Matching builds the matrix for op from per-axis values: an offset for
// translate, angles in radians for rotate, factors for scale.
func Matching(op Op, x, y, z float64) Mat4 {
	switch op {
	case OpRotate:
		return Rotate(x, y, z)
	case OpScale:
		return Scale(x, y, z)
	default:
		return Translate(x, y, z)
	}
}
