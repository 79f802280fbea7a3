package advanced

// This contains no actual tests. It is just a helper for checking
// triangulations.

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every triangle has three distinct vertices, all of them input points.
// 2. No edge is shared by more than two triangles.
// 3. No input point is strictly inside any triangle's circumcircle.
func assertValidDelaunay(t *testing.T, points []Point[Scalar], triangles []Triangle[Scalar]) {
	inputs := make(map[r2.Point]struct{}, len(points))
	for _, p := range points {
		inputs[p.r2()] = struct{}{}
	}

	for _, tri := range triangles {
		for _, v := range tri.Vertices() {
			_, ok := inputs[v.r2()]
			require.True(t, ok, "triangle vertex %s is not an input point", v)
		}
		require.False(t, PointsEqual(tri.P1, tri.P2) || PointsEqual(tri.P2, tri.P3) || PointsEqual(tri.P3, tri.P1),
			"triangle has repeated vertices: %s", tri)
	}

	for edge, count := range edgeCounts(triangles) {
		assert.LessOrEqual(t, count, 2, "edge %v is shared by %d triangles", edge, count)
	}

	for _, tri := range triangles {
		center, radius := tri.Circumcircle()
		for _, v := range points {
			if tri.ContainsVertex(v) {
				continue
			}
			d := distance(v.r2(), center)
			// Allow for rounding in the circumcenter
			assert.GreaterOrEqual(t, d, radius*(1-1e-9), "%s lies inside the circumcircle of %s", v, tri)
		}
	}
}

// Used in the helper above, this is a "normalized" edge where the
// lexicographically lower point is always first
type normalizedEdge struct {
	lower, upper r2.Point
}

func newNormalizedEdge(e Edge[Scalar]) normalizedEdge {
	a, b := e.P1.r2(), e.P2.r2()
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return normalizedEdge{a, b}
}

func edgeCounts(triangles []Triangle[Scalar]) map[normalizedEdge]int {
	counts := make(map[normalizedEdge]int)
	for _, tri := range triangles {
		for _, e := range tri.Edges() {
			counts[newNormalizedEdge(e)]++
		}
	}
	return counts
}

// Number of points on the convex hull, not counting points in the middle of a
// hull edge. Andrew's monotone chain.
func convexHullSize(points []Point[Scalar]) int {
	sorted := make([]r2.Point, len(points))
	for i, p := range points {
		sorted[i] = p.r2()
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var hull []r2.Point
	build := func(points []r2.Point) {
		start := len(hull)
		for _, p := range points {
			for len(hull) >= start+2 && TriArea(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		// The last point is the first point of the next chain
		hull = hull[:len(hull)-1]
	}
	build(sorted)
	reversed := make([]r2.Point, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	build(reversed)
	return len(hull)
}

func randomPoints(seed int64, n int) []Point[Scalar] {
	rnd := rand.New(rand.NewSource(seed))
	points := make([]Point[Scalar], n)
	for i := range points {
		points[i] = NewPoint(rnd.Float64()*800, rnd.Float64()*600, Scalar(rnd.Float64()*510-10))
	}
	return points
}

func assertScalarEqual(t *testing.T, expected, actual Scalar, msgAndArgs ...interface{}) {
	t.Helper()
	if math.IsNaN(float64(expected)) {
		assert.True(t, actual.IsNaN(), msgAndArgs...)
		return
	}
	assert.Equal(t, expected, actual, msgAndArgs...)
}
