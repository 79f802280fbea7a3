package delaunay

import (
	"math"
	"testing"

	"github.com/osuushi/delaunay/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are tested in advanced.
func TestTriangulate(t *testing.T) {
	points := []Point{
		NewPoint(0, 0, 5),
		NewPoint(1, 0, 5),
		NewPoint(1, 1, 5),
		NewPoint(0, 1, 5),
	}

	triangles, err := Triangulate(points)
	assert.NoError(t, err)
	assert.Len(t, triangles, 2)
}

func TestTriangulate_InsufficientInput(t *testing.T) {
	_, err := Triangulate([]Point{NewPoint(0, 0, 1), NewPoint(1, 0, 1)})
	assert.ErrorIs(t, err, advanced.ErrInsufficientInput)
}

func TestInterpolate(t *testing.T) {
	points := []Point{
		NewPoint(0, 0, 5),
		NewPoint(1, 0, 5),
		NewPoint(1, 1, 5),
		NewPoint(0, 1, 5),
	}

	v, err := Interpolate(points, 0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = Interpolate(points, 10, 10)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "outside the hull should be NaN, got %v", v)
}

func TestGrid(t *testing.T) {
	points := []Point{
		NewPoint(0, 0, 1),
		NewPoint(2, 0, 1),
		NewPoint(2, 2, 1),
		NewPoint(0, 2, 1),
	}

	// Every cell of this grid is strictly inside the square, away from the
	// vertices, so a constant field comes back unchanged.
	cells, err := Grid(points, 3, 0.5, 1.5)
	require.NoError(t, err)
	require.Len(t, cells, 9)
	for i, v := range cells {
		assert.InDelta(t, 1.0, v, 1e-12, "cell %d", i)
	}
}
