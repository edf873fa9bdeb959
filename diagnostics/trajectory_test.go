package diagnostics_test

import (
	"testing"

	"github.com/katalvlaran/quetzal/diagnostics"
	"github.com/stretchr/testify/require"
)

func TestTrajectoryDistanceIdenticalIsZero(t *testing.T) {
	a := []int{10, 20, 30, 40}
	d, err := diagnostics.TrajectoryDistance(a, a, -1)
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestTrajectoryDistancePositiveForDivergentSeries(t *testing.T) {
	a := []int{10, 20, 30, 40}
	b := []int{15, 25, 35, 45}
	d, err := diagnostics.TrajectoryDistance(a, b, -1)
	require.NoError(t, err)
	require.Greater(t, d, 0.0)
}
