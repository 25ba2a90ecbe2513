package walk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplex/tds"
	"github.com/katalvlaran/simplex/walk"
)

func buildTriangle(t *testing.T) (*tds.TDS, tds.CellHandle, tds.CellHandle) {
	tt := tds.New(3)
	require.NoError(t, tt.SetCurrentDimension(2))
	a := tt.NewVertex("a")
	b := tt.NewVertex("b")
	c := tt.NewVertex("c")
	s0 := tt.NewFullCell()
	s1 := tt.NewFullCell()
	tt.AssociateVertexWithFullCell(s0, 0, a)
	tt.AssociateVertexWithFullCell(s0, 1, b)
	tt.AssociateVertexWithFullCell(s0, 2, c)
	tt.AssociateVertexWithFullCell(s1, 0, a)
	tt.AssociateVertexWithFullCell(s1, 1, c)
	tt.AssociateVertexWithFullCell(s1, 2, b)
	tt.SetNeighbors(s0, 0, s1, 0)
	tt.SetNeighbors(s0, 1, s1, 1)
	tt.SetNeighbors(s0, 2, s1, 2)
	return tt, s0, s1
}

func TestGatherFullCells_VisitsEveryCellAndClearsMarks(t *testing.T) {
	tt, s0, s1 := buildTriangle(t)
	var seen []tds.CellHandle
	always := func(*tds.TDS, tds.CellHandle, int) bool { return true }
	walk.GatherFullCells(tt, s0, always, func(s tds.CellHandle) { seen = append(seen, s) })

	require.ElementsMatch(t, []tds.CellHandle{s0, s1}, seen)
	require.False(t, tt.Visited(s0))
	require.False(t, tt.Visited(s1))
}

func TestGatherFullCells_StopsAtBoundaryPredicate(t *testing.T) {
	tt, s0, _ := buildTriangle(t)
	never := func(*tds.TDS, tds.CellHandle, int) bool { return false }
	var seen []tds.CellHandle
	ft := walk.GatherFullCells(tt, s0, never, func(s tds.CellHandle) { seen = append(seen, s) })

	require.Equal(t, []tds.CellHandle{s0}, seen)
	require.Equal(t, s0, ft.Cell)
}

func TestIncidentFullCellsOfVertex_FindsBoth(t *testing.T) {
	tt, s0, s1 := buildTriangle(t)
	a := tt.VertexOf(s0, 0)
	cells := walk.IncidentFullCellsOfVertex(tt, a)
	require.ElementsMatch(t, []tds.CellHandle{s0, s1}, cells)
}

func TestStar_OfVertexFace(t *testing.T) {
	tt, s0, s1 := buildTriangle(t)
	a := tt.VertexOf(s0, 0)
	f := tt.VertexFace(a)
	cells := walk.Star(tt, f)
	require.ElementsMatch(t, []tds.CellHandle{s0, s1}, cells)
}
