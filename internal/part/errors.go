package part

import "errors"

var (
	// ErrFixedAttribute reports a scale alteration with magnitude 0, which
	// would collapse its vertices onto the origin.
	ErrFixedAttribute = errors.New("part: attribute scaling value is 0")

	// ErrUnnamedAttribute reports an attribute without a name.
	ErrUnnamedAttribute = errors.New("part: attribute has no name")

	// ErrEmptyAttribute reports an attribute that changes no vertices.
	ErrEmptyAttribute = errors.New("part: attribute has no items")

	// ErrIndexOutOfRange reports a selection or item index outside its list.
	ErrIndexOutOfRange = errors.New("part: index out of range")

	// ErrLengthMismatch reports replacement values whose count differs from
	// the number of vertices a selection addresses.
	ErrLengthMismatch = errors.New("part: selection and source length differ")

	// ErrEmptySelection reports a centroid of zero vertices.
	ErrEmptySelection = errors.New("part: selection is empty")

	ErrUnnamedPart        = errors.New("part: part has no name")
	ErrEmptyGeometry      = errors.New("part: geometry has no vertices")
	ErrDuplicateAttribute = errors.New("part: duplicate attribute name")
	ErrUnknownAttribute   = errors.New("part: unknown attribute")
	ErrBadDefinition      = errors.New("part: invalid definition")
)
