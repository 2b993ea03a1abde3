package mesh

import "errors"

var (
	// ErrParse reports a malformed vertex or face line, or an unrecognized
	// line when parsing strictly.
	ErrParse = errors.New("mesh: parse error")

	// ErrInvalidFace reports a face that references a vertex outside the
	// geometry's vertex array.
	ErrInvalidFace = errors.New("mesh: face references missing vertex")

	// ErrIndexOutOfRange reports a face lookup past the end of the face list.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")
)
