package walk

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/simplex/tds"
)

// incidentPredicate is Incident_full_cell_traversal_predicate: do not
// cross facet i of s when the vertex s.vertex[i] opposite it is one of
// f's own vertices, since the cell beyond that facet does not contain f.
func incidentPredicate(f tds.Face) Predicate {
	return func(t *tds.TDS, s tds.CellHandle, i int) bool {
		v := t.VertexOf(s, i)
		for _, idx := range f.Indices {
			if v == t.VertexOf(f.Cell, idx) {
				return false
			}
		}
		return true
	}
}

// starPredicate is Star_traversal_predicate: keep crossing a facet as
// long as the cell on the far side contains at least one vertex of f.
func starPredicate(f tds.Face) Predicate {
	return func(t *tds.TDS, s tds.CellHandle, i int) bool {
		n := t.NeighborOf(s, i)
		for j := 0; j <= t.CurrentDimension(); j++ {
			nv := t.VertexOf(n, j)
			for _, idx := range f.Indices {
				if nv == t.VertexOf(f.Cell, idx) {
					return true
				}
			}
		}
		return false
	}
}

// IncidentFullCells returns every full cell of which f is a subface.
func IncidentFullCells(t *tds.TDS, f tds.Face) []tds.CellHandle {
	var out []tds.CellHandle
	GatherFullCells(t, f.Cell, incidentPredicate(f), func(s tds.CellHandle) {
		out = append(out, s)
	})
	return out
}

// IncidentFullCellsOfVertex returns every full cell containing v.
func IncidentFullCellsOfVertex(t *tds.TDS, v tds.VertexHandle) []tds.CellHandle {
	s := t.VertexFullCell(v)
	f := tds.Face{Cell: s, Indices: []int{t.IndexOfVertex(s, v)}}
	return IncidentFullCells(t, f)
}

// Star returns every full cell reachable from f.Cell through cells that
// share at least one vertex with f — the cells you would need to delete,
// and re-triangulate around, to remove f.
func Star(t *tds.TDS, f tds.Face) []tds.CellHandle {
	var out []tds.CellHandle
	GatherFullCells(t, f.Cell, starPredicate(f), func(s tds.CellHandle) {
		out = append(out, s)
	})
	return out
}

// VertexOrder is a total order over vertex handles used to canonicalize
// faces before deduplication; callers of IncidentFaces may supply their
// own to order by payload instead of handle value.
type VertexOrder func(a, b tds.VertexHandle) bool

func defaultOrder(a, b tds.VertexHandle) bool { return a < b }

// faceKey is the canonical, order-independent identity of a face: its
// vertex handles as a sorted slice, compared lexicographically.
type faceKey struct {
	tds   *tds.TDS
	verts []tds.VertexHandle
}

func newFaceKey(t *tds.TDS, less VertexOrder, verts []tds.VertexHandle) faceKey {
	cp := append([]tds.VertexHandle(nil), verts...)
	sort.Slice(cp, func(i, j int) bool { return less(cp[i], cp[j]) })
	return faceKey{tds: t, verts: cp}
}

func compareFaceKeys(a, b faceKey) int {
	n := len(a.verts)
	if len(b.verts) < n {
		n = len(b.verts)
	}
	for i := 0; i < n; i++ {
		if a.verts[i] < b.verts[i] {
			return -1
		}
		if a.verts[i] > b.verts[i] {
			return 1
		}
	}
	return len(a.verts) - len(b.verts)
}

// IncidentFaces enumerates every d-dimensional subface of the
// triangulation incident to v, deduplicated by vertex-set identity. If
// upper is true, only faces whose vertex set — sorted by less — places v
// at or before position 0 (i.e. v is the lexicographically-least among
// the face's vertices under less) are reported; this is the
// "upper faces" restriction used by algorithms that only want to see
// each face once, from its canonically-first vertex.
//
// Precondition: 0 < d < current_dimension. Returns nil if d is out of
// that range.
func IncidentFaces(t *tds.TDS, v tds.VertexHandle, d int, less VertexOrder, upper bool) []tds.Face {
	if d <= 0 || d >= t.CurrentDimension() {
		return nil
	}
	if less == nil {
		less = defaultOrder
	}
	curDim := t.CurrentDimension()

	seen := treeset.NewWith(func(a, b any) int {
		return compareFaceKeys(a.(faceKey), b.(faceKey))
	})
	var out []tds.Face

	for _, s := range IncidentFullCellsOfVertex(t, v) {
		verts := make([]tds.VertexHandle, curDim+1)
		idx := make([]int, curDim+1)
		for i := 0; i <= curDim; i++ {
			verts[i] = t.VertexOf(s, i)
			idx[i] = i
		}
		vIdx := 0
		if upper {
			sortParallel(verts, idx, less)
			for verts[vIdx] != v {
				vIdx++
			}
		} else {
			for verts[vIdx] != v {
				vIdx++
			}
			verts[0], verts[vIdx] = verts[vIdx], verts[0]
			idx[0], idx[vIdx] = idx[vIdx], idx[0]
			vIdx = 0
			tailV, tailI := verts[1:], idx[1:]
			sortParallel(tailV, tailI, less)
		}
		if vIdx+d > curDim {
			continue
		}
		for _, combo := range combinations(d, vIdx+1, curDim) {
			faceVerts := make([]tds.VertexHandle, 0, d+1)
			faceVerts = append(faceVerts, verts[vIdx])
			indices := make([]int, 0, d+1)
			indices = append(indices, idx[vIdx])
			for _, c := range combo {
				faceVerts = append(faceVerts, verts[c])
				indices = append(indices, idx[c])
			}
			key := newFaceKey(t, less, faceVerts)
			if seen.Contains(key) {
				continue
			}
			seen.Add(key)
			out = append(out, tds.Face{Cell: s, Indices: indices})
		}
	}
	return out
}

// sortParallel sorts verts by less, permuting idx the same way.
func sortParallel(verts []tds.VertexHandle, idx []int, less VertexOrder) {
	type pair struct {
		v tds.VertexHandle
		i int
	}
	ps := make([]pair, len(verts))
	for k := range verts {
		ps[k] = pair{verts[k], idx[k]}
	}
	sort.Slice(ps, func(a, b int) bool { return less(ps[a].v, ps[b].v) })
	for k := range ps {
		verts[k] = ps[k].v
		idx[k] = ps[k].i
	}
}

// combinations enumerates every strictly-increasing sequence of k
// indices drawn from [lo, hi], in lexicographic order.
func combinations(k, lo, hi int) [][]int {
	var out [][]int
	cur := make([]int, k)
	var rec func(pos, start int)
	rec = func(pos, start int) {
		if pos == k {
			cp := append([]int(nil), cur...)
			out = append(out, cp)
			return
		}
		for x := start; x <= hi-(k-pos)+1; x++ {
			cur[pos] = x
			rec(pos+1, x+1)
		}
	}
	rec(0, lo)
	return out
}
