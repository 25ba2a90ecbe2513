package tds

import "errors"

// Sentinel errors for tds operations. Every invalid-argument or
// invalid-state precondition failure is reported through one of these,
// wrapped with call-site context via github.com/pkg/errors at the point
// of detection.
var (
	// ErrNilHandle indicates a null handle was passed where a live one
	// was required.
	ErrNilHandle = errors.New("tds: nil handle")

	// ErrDimensionOutOfRange indicates a dimension argument fell outside
	// [-1, ambient_dimension] (or [-2, ambient_dimension] where the empty
	// triangulation is a legal target).
	ErrDimensionOutOfRange = errors.New("tds: dimension out of range")

	// ErrIndexOutOfRange indicates a slot index fell outside [0, d].
	ErrIndexOutOfRange = errors.New("tds: slot index out of range")

	// ErrDuplicateVertex indicates a full cell would contain the same
	// vertex handle in two slots.
	ErrDuplicateVertex = errors.New("tds: duplicate vertex in full cell")

	// ErrVertexNotOwned indicates a query named a vertex slot that does
	// not belong to the given full cell.
	ErrVertexNotOwned = errors.New("tds: vertex not owned by full cell")

	// ErrNotBoundaryFacet indicates a starting facet supplied to a hole
	// algorithm is not actually on the hole's boundary.
	ErrNotBoundaryFacet = errors.New("tds: facet is not a boundary facet")
)
