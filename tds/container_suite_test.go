package tds_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/simplex/tds"
)

// ContainerSuite exercises the vertex/full-cell container across a
// shared, freshly rebuilt fixture per test: a 1-dimensional
// triangulation of two vertices and two full cells, each the other's
// neighbor through both of its facets.
type ContainerSuite struct {
	suite.Suite
	tt   *tds.TDS
	a, b tds.VertexHandle
	s0   tds.CellHandle
}

func (s *ContainerSuite) SetupTest() {
	s.tt = tds.New(2)
	require.NoError(s.T(), s.tt.SetCurrentDimension(1))
	s.a = s.tt.NewVertex("a")
	s.b = s.tt.NewVertex("b")
	s.s0 = s.tt.NewFullCell()
	s1 := s.tt.NewFullCell()
	s.tt.AssociateVertexWithFullCell(s.s0, 0, s.a)
	s.tt.AssociateVertexWithFullCell(s.s0, 1, s.b)
	s.tt.AssociateVertexWithFullCell(s1, 0, s.a)
	s.tt.AssociateVertexWithFullCell(s1, 1, s.b)
	s.tt.SetNeighbors(s.s0, 0, s1, 0)
	s.tt.SetNeighbors(s.s0, 1, s1, 1)
}

func (s *ContainerSuite) TestFixtureIsValid() {
	require := require.New(s.T())
	require.Equal(2, s.tt.NumberOfVertices())
	require.Equal(2, s.tt.NumberOfFullCells())
	require.True(s.tt.IsValid(false))
}

func (s *ContainerSuite) TestMirrorVertexCrossesTheSharedFacet() {
	require := require.New(s.T())
	i := s.tt.IndexOfVertex(s.s0, s.a)
	require.Equal(s.a, s.tt.MirrorVertex(s.s0, i))
}

func (s *ContainerSuite) TestSwapVerticesExchangesSlotsOnly() {
	require := require.New(s.T())
	i, j := s.tt.IndexOfVertex(s.s0, s.a), s.tt.IndexOfVertex(s.s0, s.b)
	s.tt.SwapVertices(s.s0, i, j)
	require.Equal(s.a, s.tt.VertexOf(s.s0, j))
	require.Equal(s.b, s.tt.VertexOf(s.s0, i))
}

func (s *ContainerSuite) TestClearResetsToEmpty() {
	require := require.New(s.T())
	s.tt.Clear()
	require.Equal(-2, s.tt.CurrentDimension())
	require.Equal(0, s.tt.NumberOfVertices())
	require.Equal(0, s.tt.NumberOfFullCells())
}

func (s *ContainerSuite) TestSetCurrentDimensionRejectsOutOfRange() {
	require := require.New(s.T())
	require.Error(s.tt.SetCurrentDimension(4))
	require.Error(s.tt.SetCurrentDimension(-3))
}

func TestContainerSuite(t *testing.T) {
	suite.Run(t, new(ContainerSuite))
}
