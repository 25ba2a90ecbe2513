package tds

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/simplex/handle"
)

// TDS is the triangulation data structure container: vertex and
// full-cell pools plus the ambient/current dimension pair.
//
// The zero TDS is not usable; construct one with New.
type TDS struct {
	ambientDim int
	currentDim int
	vertices   *handle.Pool[vertexRecord]
	cells      *handle.Pool[cellRecord]
}

// New returns an empty TDS (current_dimension == -2) with the given
// ambient dimension. ambientDim must be >= 1.
//
// Complexity: O(1).
func New(ambientDim int) *TDS {
	if ambientDim < 1 {
		panic(errors.Errorf("tds: ambient dimension must be >= 1, got %d", ambientDim))
	}
	return &TDS{
		ambientDim: ambientDim,
		currentDim: -2,
		vertices:   handle.New[vertexRecord](),
		cells:      handle.New[cellRecord](),
	}
}

// AmbientDimension returns D, fixed at construction.
func (t *TDS) AmbientDimension() int { return t.ambientDim }

// CurrentDimension returns the current dimension d.
func (t *TDS) CurrentDimension() int { return t.currentDim }

// NumberOfVertices returns the number of live vertices. Complexity: O(1).
func (t *TDS) NumberOfVertices() int { return t.vertices.Len() }

// NumberOfFullCells returns the number of live full cells. Complexity: O(1).
func (t *TDS) NumberOfFullCells() int { return t.cells.Len() }

// Clear resets the TDS to the empty triangulation (current_dimension ==
// -2), discarding every vertex and full cell. Previously issued handles
// become invalid; every structural invariant holds trivially on the
// empty triangulation.
func (t *TDS) Clear() {
	t.vertices.Clear()
	t.cells.Clear()
	t.currentDim = -2
}

// SetCurrentDimension sets d directly, bypassing any structural
// bookkeeping. It exists only for the dimension-change algorithms in
// package dimension, which atomically produce a consistent state at the
// new dimension; ordinary callers should never need it.
//
// Precondition: -1 <= k <= AmbientDimension().
func (t *TDS) SetCurrentDimension(k int) error {
	if k < -1 || k > t.ambientDim {
		return errors.Wrapf(ErrDimensionOutOfRange, "SetCurrentDimension(%d)", k)
	}
	t.currentDim = k
	return nil
}

// setCurrentDimensionRaw sets d without the [-1, D] precondition (e.g.
// dropping to -2).
func (t *TDS) setCurrentDimensionRaw(k int) { t.currentDim = k }

// newCellRecord allocates a cellRecord with slices sized to
// ambientDim+1, all slots null.
func (t *TDS) newCellRecord() cellRecord {
	n := t.ambientDim + 1
	rec := cellRecord{
		vertex:   make([]VertexHandle, n),
		neighbor: make([]CellHandle, n),
		mirror:   make([]int8, n),
	}
	for i := range rec.mirror {
		rec.mirror[i] = -1
	}
	return rec
}

// NewFullCell allocates a full cell with every vertex/neighbor slot
// null. Complexity: O(D).
func (t *TDS) NewFullCell() CellHandle {
	return CellHandle(t.cells.Insert(t.newCellRecord()))
}

// NewFullCellFrom allocates a full cell copying src's vertex and
// neighbor slots (mirror indices are copied too, though callers
// re-linking neighbors will usually overwrite them via SetNeighbors).
// Complexity: O(D).
func (t *TDS) NewFullCellFrom(src CellHandle) CellHandle {
	rec := t.cellRecordOrPanic(src)
	cp := t.newCellRecord()
	copy(cp.vertex, rec.vertex)
	copy(cp.neighbor, rec.neighbor)
	copy(cp.mirror, rec.mirror)
	cp.payload = rec.payload
	return CellHandle(t.cells.Insert(cp))
}

// DeleteFullCell deallocates s. The caller must have already detached s
// from every neighbor and vertex back-reference; DeleteFullCell does not
// verify that (callers within this module always erase a whole hole in
// one pass, after which none of its cells are reachable).
func (t *TDS) DeleteFullCell(s CellHandle) {
	t.cells.Erase(handle.Handle(s))
}

// DeleteFullCells deallocates every cell in cells.
func (t *TDS) DeleteFullCells(cells []CellHandle) {
	for _, s := range cells {
		t.DeleteFullCell(s)
	}
}

// NewVertex allocates a vertex with the given payload and a null
// back-reference. The caller is expected to call
// AssociateVertexWithFullCell shortly after so the vertex has a valid
// back-reference again before the enclosing public operation returns.
func (t *TDS) NewVertex(payload any) VertexHandle {
	return VertexHandle(t.vertices.Insert(vertexRecord{payload: payload}))
}

// DeleteVertex deallocates v.
func (t *TDS) DeleteVertex(v VertexHandle) {
	t.vertices.Erase(handle.Handle(v))
}

func (t *TDS) cellRecordOrPanic(s CellHandle) *cellRecord {
	rec := t.cells.Get(handle.Handle(s))
	if rec == nil {
		panic(errors.Wrapf(ErrNilHandle, "full cell %v", s))
	}
	return rec
}

func (t *TDS) vertexRecordOrPanic(v VertexHandle) *vertexRecord {
	rec := t.vertices.Get(handle.Handle(v))
	if rec == nil {
		panic(errors.Wrapf(ErrNilHandle, "vertex %v", v))
	}
	return rec
}

func (t *TDS) checkIndex(i int) {
	// At dimension -1 the single degenerate cell still has slot 0.
	hi := t.currentDim
	if hi < 0 {
		hi = 0
	}
	if i < 0 || i > hi {
		panic(errors.Wrapf(ErrIndexOutOfRange, "index %d, current dimension %d", i, t.currentDim))
	}
}

// AssociateVertexWithFullCell sets s.vertex[i] = v and v's back-reference
// to s. It is intentionally one-sided on the neighbor side: it does not
// touch any neighbor pointer. Panics with ErrDuplicateVertex if v
// already occupies a different slot of s.
func (t *TDS) AssociateVertexWithFullCell(s CellHandle, i int, v VertexHandle) {
	if s.IsNull() || v.IsNull() {
		panic(ErrNilHandle)
	}
	t.checkIndex(i)
	rec := t.cellRecordOrPanic(s)
	for k := 0; k <= t.currentDim; k++ {
		if k != i && rec.vertex[k] == v {
			panic(errors.Wrapf(ErrDuplicateVertex, "AssociateVertexWithFullCell: vertex %v already at slot %d of cell %v", v, k, s))
		}
	}
	rec.vertex[i] = v
	vrec := t.vertexRecordOrPanic(v)
	vrec.cell = s
}

// SetNeighbors establishes the symmetric neighbor link between s (across
// facet i) and u (across facet j), and both mirror indices. Panics if
// either handle is null or either index is out of [0, current_dimension]
// — this is a programming-error precondition, not a recoverable runtime
// condition.
func (t *TDS) SetNeighbors(s CellHandle, i int, u CellHandle, j int) {
	if s.IsNull() || u.IsNull() {
		panic(ErrNilHandle)
	}
	t.checkIndex(i)
	t.checkIndex(j)
	srec := t.cellRecordOrPanic(s)
	urec := t.cellRecordOrPanic(u)
	srec.neighbor[i] = u
	srec.mirror[i] = int8(j)
	urec.neighbor[j] = s
	urec.mirror[j] = int8(i)
}

// VertexOf returns s.vertex[i].
func (t *TDS) VertexOf(s CellHandle, i int) VertexHandle {
	t.checkIndex(i)
	return t.cellRecordOrPanic(s).vertex[i]
}

// SetVertexOf sets s.vertex[i] directly, without touching v's
// back-reference. Used by algorithms that reshuffle a cell's vertex
// slots (dimension change, hole reconstruction) and update the
// back-reference separately or not at all when it is unaffected.
func (t *TDS) SetVertexOf(s CellHandle, i int, v VertexHandle) {
	t.checkIndex(i)
	t.cellRecordOrPanic(s).vertex[i] = v
}

// NeighborOf returns s.neighbor[i].
func (t *TDS) NeighborOf(s CellHandle, i int) CellHandle {
	t.checkIndex(i)
	return t.cellRecordOrPanic(s).neighbor[i]
}

// SetNeighborOf sets s.neighbor[i] directly, without maintaining the
// mirror side. Used only by dimension-change bookkeeping that computes
// both sides of a link itself; prefer SetNeighbors elsewhere.
func (t *TDS) SetNeighborOf(s CellHandle, i int, u CellHandle) {
	t.checkIndex(i)
	t.cellRecordOrPanic(s).neighbor[i] = u
}

// MirrorIndexOf returns the index j such that
// neighbor(s,i).neighbor[j] == s.
func (t *TDS) MirrorIndexOf(s CellHandle, i int) int {
	t.checkIndex(i)
	return int(t.cellRecordOrPanic(s).mirror[i])
}

// SetMirrorIndexOf sets s's recorded mirror index at slot i directly.
func (t *TDS) SetMirrorIndexOf(s CellHandle, i int, j int) {
	t.checkIndex(i)
	t.cellRecordOrPanic(s).mirror[i] = int8(j)
}

// MirrorVertex returns the vertex of neighbor(s,i) opposite the facet
// shared with s across index i, i.e. neighbor(s,i).vertex[mirror(s,i)].
func (t *TDS) MirrorVertex(s CellHandle, i int) VertexHandle {
	n := t.NeighborOf(s, i)
	j := t.MirrorIndexOf(s, i)
	return t.VertexOf(n, j)
}

// SwapVertices exchanges the vertex handles at slots i and j of s,
// leaving neighbor/mirror slots untouched. Used by dimension-change
// parity correction and by collapse/removal slot compaction.
func (t *TDS) SwapVertices(s CellHandle, i, j int) {
	t.checkIndex(i)
	t.checkIndex(j)
	rec := t.cellRecordOrPanic(s)
	rec.vertex[i], rec.vertex[j] = rec.vertex[j], rec.vertex[i]
}

// IndexOfVertex returns the slot index of v within s's vertex list, or
// -1 if v is not one of s's vertices.
func (t *TDS) IndexOfVertex(s CellHandle, v VertexHandle) int {
	rec := t.cellRecordOrPanic(s)
	for i := 0; i <= t.currentDim; i++ {
		if rec.vertex[i] == v {
			return i
		}
	}
	return -1
}

// VertexPayload returns v's opaque payload.
func (t *TDS) VertexPayload(v VertexHandle) any {
	return t.vertexRecordOrPanic(v).payload
}

// SetVertexPayload replaces v's opaque payload.
func (t *TDS) SetVertexPayload(v VertexHandle, payload any) {
	t.vertexRecordOrPanic(v).payload = payload
}

// CellPayload returns s's opaque payload.
func (t *TDS) CellPayload(s CellHandle) any {
	return t.cellRecordOrPanic(s).payload
}

// SetCellPayload replaces s's opaque payload.
func (t *TDS) SetCellPayload(s CellHandle, payload any) {
	t.cellRecordOrPanic(s).payload = payload
}

// VertexFullCell returns v's back-reference (some full cell containing
// v). The returned cell, if non-null, lists v among its vertex slots.
func (t *TDS) VertexFullCell(v VertexHandle) CellHandle {
	return t.vertexRecordOrPanic(v).cell
}

// SetVertexFullCell overwrites v's back-reference directly, without
// checking that the target cell actually contains v. Used by dimension
// change and removal bookkeeping mid-transition, where the invariant is
// restored before the enclosing public operation returns.
func (t *TDS) SetVertexFullCell(v VertexHandle, s CellHandle) {
	t.vertexRecordOrPanic(v).cell = s
}

// Vertices returns every live vertex handle, in pool slot order.
func (t *TDS) Vertices() []VertexHandle {
	hs := t.vertices.Handles()
	out := make([]VertexHandle, len(hs))
	for i, h := range hs {
		out[i] = VertexHandle(h)
	}
	return out
}

// FullCells returns every live full-cell handle, in pool slot order.
func (t *TDS) FullCells() []CellHandle {
	hs := t.cells.Handles()
	out := make([]CellHandle, len(hs))
	for i, h := range hs {
		out[i] = CellHandle(h)
	}
	return out
}

// Visited reports s's traversal scratch bit.
func (t *TDS) Visited(s CellHandle) bool {
	return t.cellRecordOrPanic(s).visited
}

// SetVisited sets s's traversal scratch bit. Every public operation that
// sets any visited bit must clear it again before returning; walk does
// this with its own clear pass, and hole deletes the cells it marked.
func (t *TDS) SetVisited(s CellHandle, v bool) {
	t.cellRecordOrPanic(s).visited = v
}
