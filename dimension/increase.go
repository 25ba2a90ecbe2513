package dimension

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"

	"github.com/katalvlaran/simplex/tds"
)

// Increase raises t's current dimension by one and returns the newly
// allocated apex vertex. star must be the null vertex when t is
// currently empty (current_dimension == -2) and a live vertex of t
// otherwise.
//
// Precondition: t.CurrentDimension() < t.AmbientDimension().
func Increase(t *tds.TDS, star tds.VertexHandle, payload any) (tds.VertexHandle, error) {
	prev := t.CurrentDimension()
	if prev >= t.AmbientDimension() {
		return tds.NullVertex, errors.Wrapf(tds.ErrDimensionOutOfRange,
			"Increase: current dimension %d already at ambient dimension", prev)
	}
	if prev == -2 && !star.IsNull() {
		return tds.NullVertex, errors.New("dimension: Increase from an empty triangulation must not name a star vertex")
	}
	if prev != -2 && star.IsNull() {
		return tds.NullVertex, errors.New("dimension: Increase above dimension -2 requires a star vertex")
	}

	if err := t.SetCurrentDimension(prev + 1); err != nil {
		return tds.NullVertex, err
	}
	v := t.NewVertex(payload)

	switch prev {
	case -2:
		s := t.NewFullCell()
		t.AssociateVertexWithFullCell(s, 0, v)
	case -1:
		infiniteCell := t.VertexFullCell(star)
		finiteCell := t.NewFullCell()
		t.AssociateVertexWithFullCell(finiteCell, 0, v)
		t.SetNeighbors(infiniteCell, 0, finiteCell, 0)
	default:
		doIncreaseFrom(t, v, star)
	}
	return v, nil
}

// doIncreaseFrom implements the general cur_dim >= 0 case: every full
// cell not already containing star gets extended with x as its new
// last vertex and grows a fresh "twin" full cell on the far side,
// through star; cells that already contain star are simply extended.
// A second BFS pass then wires every twin's neighbors, and a final pass
// corrects an orientation parity that flips every other dimension.
func doIncreaseFrom(t *tds.TDS, x, star tds.VertexHandle) {
	curDim := t.CurrentDimension() // already bumped by Increase before this call
	cells := t.FullCells()
	start := cells[0]
	var swapMe tds.CellHandle

	for _, s := range cells {
		if !t.VertexOf(s, curDim).IsNull() {
			continue
		}
		t.SetVisited(s, true)
		t.AssociateVertexWithFullCell(s, curDim, x)
		if t.IndexOfVertex(s, star) < 0 {
			sNew := t.NewFullCell()
			t.SetNeighbors(s, curDim, sNew, 0)
			t.AssociateVertexWithFullCell(sNew, 0, star)
			for k := 1; k <= curDim; k++ {
				t.AssociateVertexWithFullCell(sNew, k, t.VertexOf(s, k-1))
			}
		} else if curDim == 2 {
			starIdx := t.IndexOfVertex(s, star)
			if t.MirrorIndexOf(s, starIdx) == 0 {
				swapMe = s
			}
		}
	}

	t.SetVisited(start, false)
	queue := linkedlistqueue.New()
	queue.Enqueue(start)
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		s := v.(tds.CellHandle)
		starIdx := t.IndexOfVertex(s, star)
		if starIdx >= 0 {
			t.SetNeighbors(s, curDim, t.NeighborOf(t.NeighborOf(s, starIdx), curDim),
				t.MirrorIndexOf(s, starIdx)+1)
		} else {
			sNew := t.NeighborOf(s, curDim)
			for k := 0; k < curDim; k++ {
				sOpp := t.NeighborOf(s, k)
				if t.IndexOfVertex(sOpp, star) < 0 {
					t.SetNeighbors(sNew, k+1, t.NeighborOf(sOpp, curDim), t.MirrorIndexOf(s, k)+1)
				}
			}
		}
		for k := 0; k < curDim; k++ {
			n := t.NeighborOf(s, k)
			if t.Visited(n) {
				t.SetVisited(n, false)
				queue.Enqueue(n)
			}
		}
	}

	if curDim%2 == 0 && curDim > 1 {
		for _, s := range t.FullCells() {
			if t.VertexOf(s, curDim) != x {
				t.SwapVertices(s, curDim-1, curDim)
			}
		}
	}
	if !swapMe.IsNull() {
		t.SwapVertices(swapMe, 1, 2)
	}
}
