package walk

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/simplex/tds"
)

// Predicate decides, while gathering full cells outward from a starting
// cell, whether the traversal should continue across a given facet. It
// receives the cell being left and the slot index of the facet being
// crossed.
type Predicate func(t *tds.TDS, s tds.CellHandle, i int) bool

// GatherFullCells runs the mark-and-sweep BFS described in package doc:
// starting from start, every reached cell is passed to collect in BFS
// order, and traversal continues across a facet only when pred returns
// true for it. It returns the last facet at which the predicate
// returned false (the zero Facet if every candidate facet was
// followed).
//
// Complexity: O(cells reached * D).
func GatherFullCells(t *tds.TDS, start tds.CellHandle, pred Predicate, collect func(tds.CellHandle)) tds.Facet {
	queue := linkedlistqueue.New()
	t.SetVisited(start, true)
	queue.Enqueue(start)
	curDim := t.CurrentDimension()
	var lastBoundary tds.Facet

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		s := v.(tds.CellHandle)
		collect(s)
		for i := 0; i <= curDim; i++ {
			n := t.NeighborOf(s, i)
			if t.Visited(n) {
				continue
			}
			t.SetVisited(n, true)
			if pred(t, s, i) {
				queue.Enqueue(n)
			} else {
				lastBoundary = tds.Facet{Cell: s, Index: i}
			}
		}
	}
	ClearVisitedMarks(t, start)
	return lastBoundary
}

// ClearVisitedMarks runs the same BFS shape as GatherFullCells purely to
// reset every visited bit reachable from start back to false.
// GatherFullCells calls it before returning; it is also exported for
// callers that set visited bits on their own.
func ClearVisitedMarks(t *tds.TDS, start tds.CellHandle) {
	queue := linkedlistqueue.New()
	t.SetVisited(start, false)
	queue.Enqueue(start)
	curDim := t.CurrentDimension()

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		s := v.(tds.CellHandle)
		for i := 0; i <= curDim; i++ {
			n := t.NeighborOf(s, i)
			if t.Visited(n) {
				t.SetVisited(n, false)
				queue.Enqueue(n)
			}
		}
	}
}
