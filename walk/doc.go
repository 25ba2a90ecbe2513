// Package walk implements the traversal layer built on top of package
// tds: gathering full cells incident to a face, computing a face's star,
// and enumerating the faces incident to a vertex.
//
// What
//
//   - GatherFullCells runs the two-phase mark-and-sweep BFS every other
//     operation in this package (and package hole) is built from: mark
//     the start cell visited, drain a FIFO queue, and for every
//     unvisited neighbor either enqueue it (predicate true) or record its
//     shared facet as the last boundary facet seen (predicate false).
//     ClearVisitedMarks repeats the same BFS shape purely to reset marks
//     before the enclosing call returns.
//   - IncidentFullCells(Face) / IncidentFullCellsOfVertex(Vertex) / Star(Face)
//     are GatherFullCells specialized with the two predicates below.
//   - IncidentFaces enumerates the k-subfaces of the triangulation that
//     contain a given vertex, deduplicated by a canonical vertex-handle
//     ordering.
//
// Why
//
//   - Every full-cell enumeration in this module shares the same
//     visited-bit BFS; centralizing it here means package hole's
//     coning work-list and package tds's IsValid never have to re-derive
//     queue/mark bookkeeping.
//
// Libraries
//
//   - github.com/emirpasic/gods/queues/linkedlistqueue backs the BFS
//     frontier; github.com/emirpasic/gods/sets/treeset backs the
//     canonical face dedup in IncidentFaces, both grounded on the same
//     library the retrieval pack's graph algorithms already depend on
//     for queue/set primitives.
package walk
