package tds

import "github.com/pkg/errors"

// Facet names the facet of Cell opposite the vertex at slot Index (the
// facet's "covertex"). The same geometric facet has two encodings, one
// through each of the two full cells sharing it.
type Facet struct {
	Cell  CellHandle
	Index int // the covertex slot
}

// Face names a sub-simplex of feature-dimension len(Indices)-1: the
// simplex spanned by Cell's vertices at the given slot indices.
type Face struct {
	Cell    CellHandle
	Indices []int
}

// FeatureDimension returns the dimension of the simplex f spans.
func (f Face) FeatureDimension() int { return len(f.Indices) - 1 }

// FaceVertex returns the vertex at f's i-th named slot.
func (t *TDS) FaceVertex(f Face, i int) VertexHandle {
	return t.VertexOf(f.Cell, f.Indices[i])
}

// VertexFace builds the degenerate 0-face naming v within its own
// back-referenced full cell — the starting point for incident-cell and
// star queries over a single vertex. Panics with ErrVertexNotOwned if
// v's back-reference does not actually list v among its vertex slots.
func (t *TDS) VertexFace(v VertexHandle) Face {
	s := t.VertexFullCell(v)
	i := t.IndexOfVertex(s, v)
	if i < 0 {
		panic(errors.Wrapf(ErrVertexNotOwned, "VertexFace: vertex %v not found in its own back-referenced cell %v", v, s))
	}
	return Face{Cell: s, Indices: []int{i}}
}

// Rotor encodes a (d-2)-ridge of Cell — the ridge opposite the vertices
// at slots I and J — together with a witness (J) of which facet the
// rotor last crossed to get here. RotateRotor walks a Rotor around its
// ridge, one full cell at a time, by crossing the facet opposite slot I.
type Rotor struct {
	Cell CellHandle
	I    int // the slot the rotor is presently tracking
	J    int // the slot the rotor entered through
}

// RotateRotor returns the rotor obtained by crossing the facet of r.Cell
// opposite slot r.I (the slot currently being tested as a boundary
// candidate), landing in the neighboring full cell and re-deriving both
// tracked slots there: the vertex that was tracked at r.J follows by
// identity into the neighbor, and the slot the rotor now entered through
// is the mirror index of the facet just crossed.
func (t *TDS) RotateRotor(r Rotor) Rotor {
	opposite := t.MirrorIndexOf(r.Cell, r.I)
	next := t.NeighborOf(r.Cell, r.I)
	enteredVertex := t.VertexOf(r.Cell, r.J)
	nextI := t.IndexOfVertex(next, enteredVertex)
	return Rotor{Cell: next, I: nextI, J: opposite}
}

// IsBoundaryFacet reports whether the facet of s opposite slot i is on
// the boundary of the currently marked region: s itself must be visited
// and the neighbor across i must not be.
func (t *TDS) IsBoundaryFacet(s CellHandle, i int) bool {
	if t.Visited(t.NeighborOf(s, i)) {
		return false
	}
	return t.Visited(s)
}

// IsBoundaryRotor is IsBoundaryFacet applied to the facet a Rotor is
// currently tracking (r.Cell, r.I).
func (t *TDS) IsBoundaryRotor(r Rotor) bool {
	return t.IsBoundaryFacet(r.Cell, r.I)
}
