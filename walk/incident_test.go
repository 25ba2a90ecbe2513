package walk_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplex/tds"
	"github.com/katalvlaran/simplex/walk"
)

// buildTetrahedron returns the minimal triangulated 2-sphere: four
// vertices and the four triangular cells opposite each of them, wired so
// every pair of cells shares exactly the edge that excludes both of
// their opposite vertices.
func buildTetrahedron(t *testing.T) (tt *tds.TDS, v0, v1, v2, v3 tds.VertexHandle) {
	tt = tds.New(3)
	require.NoError(t, tt.SetCurrentDimension(2))
	v0 = tt.NewVertex("v0")
	v1 = tt.NewVertex("v1")
	v2 = tt.NewVertex("v2")
	v3 = tt.NewVertex("v3")

	c0 := tt.NewFullCell() // opposite v0: [v1, v2, v3]
	c1 := tt.NewFullCell() // opposite v1: [v0, v2, v3]
	c2 := tt.NewFullCell() // opposite v2: [v0, v1, v3]
	c3 := tt.NewFullCell() // opposite v3: [v0, v1, v2]

	tt.AssociateVertexWithFullCell(c0, 0, v1)
	tt.AssociateVertexWithFullCell(c0, 1, v2)
	tt.AssociateVertexWithFullCell(c0, 2, v3)

	tt.AssociateVertexWithFullCell(c1, 0, v0)
	tt.AssociateVertexWithFullCell(c1, 1, v2)
	tt.AssociateVertexWithFullCell(c1, 2, v3)

	tt.AssociateVertexWithFullCell(c2, 0, v0)
	tt.AssociateVertexWithFullCell(c2, 1, v1)
	tt.AssociateVertexWithFullCell(c2, 2, v3)

	tt.AssociateVertexWithFullCell(c3, 0, v0)
	tt.AssociateVertexWithFullCell(c3, 1, v1)
	tt.AssociateVertexWithFullCell(c3, 2, v2)

	tt.SetNeighbors(c0, 0, c1, 0)
	tt.SetNeighbors(c0, 1, c2, 0)
	tt.SetNeighbors(c0, 2, c3, 0)
	tt.SetNeighbors(c1, 1, c2, 1)
	tt.SetNeighbors(c1, 2, c3, 1)
	tt.SetNeighbors(c2, 2, c3, 2)

	require.True(t, tt.IsValid(false))
	return tt, v0, v1, v2, v3
}

// vertexSets converts every returned Face to its sorted vertex-handle
// set, so results can be compared independent of which cell/slots the
// face happened to be reported through.
func vertexSets(tt *tds.TDS, faces []tds.Face) [][]tds.VertexHandle {
	out := make([][]tds.VertexHandle, len(faces))
	for i, f := range faces {
		vs := make([]tds.VertexHandle, len(f.Indices))
		for j, idx := range f.Indices {
			vs[j] = tt.VertexOf(f.Cell, idx)
		}
		sort.Slice(vs, func(a, b int) bool { return vs[a] < vs[b] })
		out[i] = vs
	}
	return out
}

func TestIncidentFaces_UpperRestrictsToLexicographicallyLeastVertex(t *testing.T) {
	tt, v0, v1, v2, v3 := buildTetrahedron(t)

	got := vertexSets(tt, walk.IncidentFaces(tt, v0, 1, nil, true))
	require.ElementsMatch(t, [][]tds.VertexHandle{{v0, v1}, {v0, v2}, {v0, v3}}, got,
		"v0 has the smallest handle, so every edge touching it names v0 first")

	got = vertexSets(tt, walk.IncidentFaces(tt, v2, 1, nil, true))
	require.ElementsMatch(t, [][]tds.VertexHandle{{v2, v3}}, got,
		"only the edge to v3 has v2 as its lexicographically-least endpoint")
}

func TestIncidentFaces_NonUpperReturnsEveryIncidentFaceOnce(t *testing.T) {
	tt, v0, v1, v2, v3 := buildTetrahedron(t)

	got := vertexSets(tt, walk.IncidentFaces(tt, v2, 1, nil, false))
	require.ElementsMatch(t, [][]tds.VertexHandle{{v0, v2}, {v1, v2}, {v2, v3}}, got,
		"non-upper mode reports every edge touching v2 regardless of the other endpoint's handle")
}

func TestIncidentFaces_RejectsDimensionOutOfRange(t *testing.T) {
	tt, v0, _, _, _ := buildTetrahedron(t)

	require.Nil(t, walk.IncidentFaces(tt, v0, 0, nil, true), "d must be strictly positive")
	require.Nil(t, walk.IncidentFaces(tt, v0, 2, nil, true), "d must be strictly less than current_dimension")
}
