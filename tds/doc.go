// Package tds implements the adjacency bookkeeping at the heart of a
// combinatorial triangulation: vertex and full-cell pools, the
// dimension state machine, primitive mutators, face/facet/rotor algebra,
// and structural validation.
//
// What
//
//   - TDS owns two handle.Pool instances (vertices, full cells) plus an
//     ambient dimension D fixed at construction and a current dimension
//     d in {-2, -1, 0, ..., D}.
//   - Full cells hold (d+1) vertex slots, (d+1) neighbor slots and
//     (d+1) mirror indices; slices are pre-sized to D+1 so raising the
//     dimension never reallocates an unrelated cell.
//   - Face, Facet and Rotor are light value types over cell handles and
//     slot indices; RotateRotor is the single rotation primitive that
//     the hole-insertion algorithm in package hole walks around a
//     (d-2)-ridge.
//
// Why
//
//   - Every higher-level algorithm in this module (walk, hole,
//     dimension) needs the same five primitives: allocate/erase a
//     vertex or cell, wire two cells as neighbors across a facet with
//     correct mirror indices, and read a cell's vertex/neighbor slots.
//     Centralizing them here keeps neighbor symmetry and shared-facet
//     structure enforceable in one place instead of re-derived by every
//     caller.
//
// Invariants (checked by IsValid, assumed by every other package)
//
//	Neighbor symmetry: s.neighbor[i].neighbor[s.mirror[i]] == s
//	Shared facet:      neighbors across facet i share exactly d vertices
//	Back-reference:    v is among v.FullCell's vertex slots
//	Pseudo-manifold:   the cell adjacency graph is connected (not checked by IsValid)
//	Visited hygiene:   every visited bit is 0 at rest
//
// Errors
//
//	ErrNilHandle, ErrDimensionOutOfRange, ErrIndexOutOfRange,
//	ErrDuplicateVertex, ErrVertexNotOwned — programming-error sentinels,
//	wrapped with github.com/pkg/errors at call boundaries so callers can
//	still errors.Is against them.
package tds
