// Delaunay triangulation and scattered data interpolation for Go.
//
// This package triangulates a set of points carrying scalar values, such as
// spot heights, and uses the triangulation to estimate the value anywhere
// inside the convex hull of the points. It can also sample the estimate onto
// a regular grid, for height fields, heat maps, and contouring.
//
// The construction is the simple incremental Bowyer-Watson algorithm, which is
// quadratic in the number of points. See the advanced package for generic
// payloads, strict numeric checks, and rendering.
package delaunay

import (
	"context"

	"github.com/osuushi/delaunay/advanced"
)

type Point = advanced.Point[advanced.Scalar]
type Edge = advanced.Edge[advanced.Scalar]
type Triangle = advanced.Triangle[advanced.Scalar]

func NewPoint(x, y, value float64) Point {
	return advanced.NewPoint(x, y, advanced.Scalar(value))
}

// Triangulate returns the Delaunay triangles of points. At least three points
// are required, and no two may share coordinates.
func Triangulate(points []Point) ([]Triangle, error) {
	tr, err := advanced.Triangulate(points)
	if err != nil {
		return nil, err
	}
	return tr.Triangles(), nil
}

// Interpolate estimates the value at (x, y) from points. The result is NaN
// outside the convex hull of the points.
//
// This triangulates on every call. To query the same points repeatedly, build
// an advanced.Sampler once instead.
func Interpolate(points []Point, x, y float64) (float64, error) {
	tr, err := advanced.Triangulate(points)
	if err != nil {
		return 0, err
	}
	v, err := advanced.NewSampler(tr, advanced.NaN()).Value(x, y)
	return float64(v), err
}

// Grid samples the interpolated values onto a size×size grid covering [min,
// max] on both axes, in row major order. Cells outside the convex hull of the
// points are NaN.
func Grid(points []Point, size int, min, max float64) ([]float64, error) {
	tr, err := advanced.Triangulate(points)
	if err != nil {
		return nil, err
	}
	cells, err := advanced.NewSampler(tr, advanced.NaN()).Grid(context.Background(), size, min, max)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(cells))
	for i, v := range cells {
		result[i] = float64(v)
	}
	return result, nil
}
