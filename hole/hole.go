package hole

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"

	"github.com/katalvlaran/simplex/tds"
	"github.com/katalvlaran/simplex/walk"
)

// frame is one still-open recursive step of the coning walk, kept on an
// explicit stack instead of the Go call stack. oldS/facetIndex name the
// boundary facet this frame is coning to v; newS is the replacement cell
// this frame is building; i is the loop cursor over the facet's other
// sides, resumed after a nested frame completes; pendingRot is the
// boundary rotor found for the in-flight index i, remembered across the
// suspension so the eventual set_neighbors call uses the right slot.
type frame struct {
	oldS       tds.CellHandle
	facetIndex int
	newS       tds.CellHandle
	started    bool
	i          int
	pendingRot tds.Rotor
}

// InsertInTaggedHole apexes v over every cell in the hole reachable, via
// boundary facets, from f — where "the hole" is exactly the set of cells
// already marked visited. f must already be a boundary facet of that
// region. Every newly created full cell is passed to collect, in the
// order the coning walk builds them.
//
// It returns the new full cell built for f itself.
//
// Precondition: f is a boundary facet of the currently marked region
// (t.IsBoundaryFacet(f.Cell, f.Index)); panics with
// tds.ErrNotBoundaryFacet otherwise.
//
// Complexity: O(hole boundary facets * D) rotor-walk work.
func InsertInTaggedHole(t *tds.TDS, v tds.VertexHandle, f tds.Facet, collect func(tds.CellHandle)) tds.CellHandle {
	if !t.IsBoundaryFacet(f.Cell, f.Index) {
		panic(errors.Wrapf(tds.ErrNotBoundaryFacet, "InsertInTaggedHole: facet %v/%d", f.Cell, f.Index))
	}

	stack := arraystack.New()
	stack.Push(&frame{oldS: f.Cell, facetIndex: f.Index})

	var lastResult tds.CellHandle
	haveResult := false

	for !stack.Empty() {
		top, _ := stack.Peek()
		fr := top.(*frame)

		if !fr.started {
			curDim := t.CurrentDimension()
			fr.newS = t.NewFullCell()
			for k := 0; k < fr.facetIndex; k++ {
				t.AssociateVertexWithFullCell(fr.newS, k, t.VertexOf(fr.oldS, k))
			}
			for k := fr.facetIndex + 1; k <= curDim; k++ {
				t.AssociateVertexWithFullCell(fr.newS, k, t.VertexOf(fr.oldS, k))
			}
			t.AssociateVertexWithFullCell(fr.newS, fr.facetIndex, v)
			t.SetNeighbors(fr.newS, fr.facetIndex,
				t.NeighborOf(fr.oldS, fr.facetIndex), t.MirrorIndexOf(fr.oldS, fr.facetIndex))
			collect(fr.newS)
			fr.started = true
			fr.i = 0
		} else if haveResult {
			t.SetNeighbors(fr.newS, fr.i, lastResult, fr.pendingRot.J)
			fr.i++
			haveResult = false
		}

		curDim := t.CurrentDimension()
		pushedChild := false
		for ; fr.i <= curDim; fr.i++ {
			if fr.i == fr.facetIndex {
				continue
			}
			rot := tds.Rotor{Cell: fr.oldS, I: fr.i, J: fr.facetIndex}
			for !t.IsBoundaryRotor(rot) {
				rot = t.RotateRotor(rot)
			}
			outside := t.NeighborOf(rot.Cell, rot.I)
			inside := rot.Cell
			m := t.MirrorVertex(inside, rot.I)
			idx := t.IndexOfVertex(outside, m)
			candidate := t.NeighborOf(outside, idx)

			if candidate == inside {
				fr.pendingRot = rot
				stack.Push(&frame{oldS: inside, facetIndex: rot.I})
				pushedChild = true
				break
			}
			t.SetNeighbors(fr.newS, fr.i, candidate, rot.J)
		}
		if pushedChild {
			continue
		}

		stack.Pop()
		lastResult = fr.newS
		haveResult = true
	}
	return lastResult
}

// InsertInHole replaces every cell in cells (which must already form a
// connected hole with f on its boundary) by the star of a freshly
// allocated vertex, and returns that vertex. Every new full cell is
// passed to collect (which may be nil).
//
// Precondition: f is a boundary facet of the hole formed by cells;
// enforced by the InsertInTaggedHole call this delegates to.
func InsertInHole(t *tds.TDS, cells []tds.CellHandle, f tds.Facet, payload any, collect func(tds.CellHandle)) tds.VertexHandle {
	for _, s := range cells {
		t.SetVisited(s, true)
	}
	v := t.NewVertex(payload)
	if collect == nil {
		collect = func(tds.CellHandle) {}
	}
	newS := InsertInTaggedHole(t, v, f, collect)
	t.SetVertexFullCell(v, newS)
	t.DeleteFullCells(cells)
	return v
}

// InsertInFullCell apexes a new vertex over s, splitting it into
// current_dimension+1 new full cells. It returns the new vertex.
//
// This is expressed as an InsertInHole of a single cell rather than a
// bespoke fan construction, since a lone cell is trivially its own
// one-cell hole and InsertInTaggedHole already implements the fan-out.
func InsertInFullCell(t *tds.TDS, s tds.CellHandle, payload any) tds.VertexHandle {
	return InsertInHole(t, []tds.CellHandle{s}, tds.Facet{Cell: s, Index: 0}, payload, nil)
}

// InsertInFace apexes a new vertex over the star of f.
func InsertInFace(t *tds.TDS, f tds.Face, payload any) tds.VertexHandle {
	cells := walk.IncidentFullCells(t, f)
	return InsertInHole(t, cells, tds.Facet{Cell: f.Cell, Index: f.Indices[0]}, payload, nil)
}

// InsertInFacet apexes a new vertex over the two full cells sharing ft.
func InsertInFacet(t *tds.TDS, ft tds.Facet, payload any) tds.VertexHandle {
	s0 := ft.Cell
	i := ft.Index
	s1 := t.NeighborOf(s0, i)
	curDim := t.CurrentDimension()
	nextIndex := (i + 1) % curDim
	return InsertInHole(t, []tds.CellHandle{s0, s1}, tds.Facet{Cell: s0, Index: nextIndex}, payload, nil)
}
