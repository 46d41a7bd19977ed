package curvetrace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPointCloud2DRejectsNonZeroZ(t *testing.T) {
	pts := []Point{
		NewPoint(0, 0, 0, 0),
		NewPoint(1, 1, 0.5, 1),
	}
	_, err := NewPointCloud(pts, Is2D(true))
	require.Error(t, err)
}

func TestNewPointCloud2DAcceptsZeroZ(t *testing.T) {
	pts := []Point{
		NewPoint(0, 0, 0, 0),
		NewPoint(1, 1, 0, 1),
	}
	c, err := NewPointCloud(pts, Is2D(true))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	require.True(t, c.Is2D())
	require.False(t, c.IsOrdered())
}

func TestPointCloudFlatData(t *testing.T) {
	pts := []Point{
		NewPoint(1, 2, 3, 0),
		NewPoint(4, 5, 6, 1),
	}
	c, err := NewPointCloud(pts)
	require.NoError(t, err)

	got := c.flatData()
	want := []float64{1, 2, 3, 4, 5, 6}
	require.Equal(t, want, got)
}

func TestPointCloudCloneIsIndependent(t *testing.T) {
	pts := []Point{NewPoint(0, 0, 0, 0)}
	c, err := NewPointCloud(pts, Ordered(true))
	require.NoError(t, err)

	clone := c.clone()
	clone.writeClusterID(0, 7)

	require.Equal(t, 0, c.points[0].ids.len())
	require.Equal(t, 1, clone.points[0].ids.len())
	require.True(t, clone.IsOrdered())
}
