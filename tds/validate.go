package tds

import "github.com/golang/glog"

// IsValid checks neighbor symmetry, shared-facet count between
// neighbors, and vertex back-references, plus the basic
// dimension/cardinality sanity checks for the -2 and -1 states. It does
// not check global pseudo-manifold connectivity — that is left to
// callers that build a triangulation incrementally and only need to
// validate reachability once, separately, since it is O(cells) on its
// own.
//
// When verbose is true, the first violation found is logged via
// glog.Warningf before IsValid returns false.
func (t *TDS) IsValid(verbose bool) bool {
	warn := func(format string, args ...any) {
		if verbose {
			glog.Warningf(format, args...)
		}
	}

	if t.currentDim == -2 {
		if t.NumberOfVertices() != 0 || t.NumberOfFullCells() != 0 {
			warn("tds: current dimension is -2 but there are vertices or full cells")
			return false
		}
	}

	if t.currentDim == -1 {
		if t.NumberOfVertices() != 1 || t.NumberOfFullCells() != 1 {
			warn("tds: current dimension is -1 but there isn't exactly one vertex and one full cell")
			return false
		}
	}

	fakeCur := t.currentDim
	if fakeCur < 0 {
		fakeCur = 0
	}
	for _, v := range t.Vertices() {
		s := t.VertexFullCell(v)
		if s.IsNull() {
			warn("tds: vertex %v has a null back-reference", v)
			return false
		}
		ok := false
		for i := 0; i <= fakeCur; i++ {
			if t.VertexOf(s, i) == v {
				ok = true
				break
			}
		}
		if !ok {
			warn("tds: the full cell incident to vertex %v does not contain that vertex", v)
			return false
		}
	}

	if t.currentDim < 0 {
		return true
	}

	for _, s := range t.FullCells() {
		for i := 0; i <= t.currentDim; i++ {
			for j := i + 1; j <= t.currentDim; j++ {
				if t.VertexOf(s, i) == t.VertexOf(s, j) {
					warn("tds: full cell %v has two equal vertices at slots %d and %d", s, i, j)
					return false
				}
			}
		}
	}

	for _, s := range t.FullCells() {
		for i := 0; i <= t.currentDim; i++ {
			u := t.NeighborOf(s, i)
			if u.IsNull() {
				warn("tds: full cell %v has a null neighbor at slot %d", s, i)
				return false
			}
			l := t.MirrorIndexOf(s, i)
			if s != t.NeighborOf(u, l) || i != t.MirrorIndexOf(u, l) {
				warn("tds: neighbor relation is not symmetric between %v and %v", s, u)
				return false
			}
			for j := 0; j <= t.currentDim; j++ {
				if j == i {
					continue
				}
				sv := t.VertexOf(s, j)
				k := 0
				for ; k <= t.currentDim; k++ {
					if k == l {
						continue
					}
					if t.VertexOf(u, k) == sv {
						break
					}
				}
				if k > t.currentDim {
					warn("tds: too few shared vertices between neighboring full cells %v and %v", s, u)
					return false
				}
			}
		}
	}
	return true
}
