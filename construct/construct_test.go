package construct_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplex/construct"
)

func TestSphere_BuildsMinimalTriangulatedSphere(t *testing.T) {
	tt, err := construct.Build(4, nil, construct.Sphere(3))
	require.NoError(t, err)
	require.Equal(t, 3, tt.CurrentDimension())
	require.Equal(t, 5, tt.NumberOfVertices(), "the minimal triangulated 3-sphere has d+2 vertices")
	require.True(t, tt.IsValid(false))
}

func TestSphere_RejectsNonEmptyTarget(t *testing.T) {
	_, err := construct.Build(3, nil, construct.Sphere(1), construct.Sphere(1))
	require.Error(t, err)
}

func TestSubdivide_IncreasesVertexCountByCellCount(t *testing.T) {
	tt, err := construct.Build(3, nil, construct.Sphere(2))
	require.NoError(t, err)
	before := tt.NumberOfFullCells()

	_, err = construct.Build(3, nil) // no-op sanity check on empty chain
	require.NoError(t, err)

	tt2, err := construct.Build(3, nil, construct.Sphere(2), construct.Subdivide())
	require.NoError(t, err)
	require.True(t, tt2.IsValid(false))
	require.Equal(t, tt.NumberOfVertices()+before, tt2.NumberOfVertices())
	require.Greater(t, tt2.NumberOfFullCells(), before)
}
