package tds_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplex/tds"
)

func TestIsValid_EmptyTriangulation(t *testing.T) {
	tt := tds.New(3)
	require.True(t, tt.IsValid(false))
}

func TestIsValid_SingleVertex(t *testing.T) {
	tt := tds.New(3)
	require.NoError(t, tt.SetCurrentDimension(-1))
	v := tt.NewVertex(nil)
	s := tt.NewFullCell()
	tt.AssociateVertexWithFullCell(s, 0, v)
	require.True(t, tt.IsValid(false))
}

func TestIsValid_DetectsAsymmetricNeighbor(t *testing.T) {
	tt, _, _ := buildSegment(t)
	s := tt.FullCells()[0]
	// corrupt the recorded mirror index without updating the neighbor's
	// matching side, breaking mirror-index symmetry
	tt.SetMirrorIndexOf(s, 0, 1)
	require.False(t, tt.IsValid(false))
}

func TestIsValid_DetectsDuplicateVertexInCell(t *testing.T) {
	tt, a, _ := buildSegment(t)
	s := tt.FullCells()[0]
	tt.SetVertexOf(s, 1, a)
	require.False(t, tt.IsValid(false))
}
