package hole

import (
	"github.com/katalvlaran/simplex/tds"
	"github.com/katalvlaran/simplex/walk"
)

// CollapseFace contracts f down to a single new vertex: its star is
// computed, re-triangulated as a hole apexed at a fresh vertex, and f's
// own vertices are then discarded.
//
// Precondition: 1 <= f.FeatureDimension() < t.CurrentDimension().
func CollapseFace(t *tds.TDS, f tds.Face, payload any) tds.VertexHandle {
	fd := f.FeatureDimension()
	if fd < 1 || fd >= t.CurrentDimension() {
		panic(tds.ErrDimensionOutOfRange)
	}
	saved := make([]tds.VertexHandle, fd+1)
	for i := 0; i <= fd; i++ {
		saved[i] = t.FaceVertex(f, i)
	}
	cells := walk.Star(t, f)
	v := InsertInHole(t, cells, tds.Facet{Cell: f.Cell, Index: f.Indices[0]}, payload, nil)
	for _, sv := range saved {
		t.DeleteVertex(sv)
	}
	return v
}
