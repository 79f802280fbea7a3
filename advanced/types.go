package advanced

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"
)

// A point in the plane carrying a payload. Only the coordinates take part in
// equality. Two input points at the same location but with different values
// are interchangeable as far as the topology is concerned, so callers must not
// supply duplicates.
type Point[T any] struct {
	X, Y  float64
	Value T
}

// An unordered pair of points.
type Edge[T any] struct {
	P1, P2 Point[T]
}

// Triangles are immutable once constructed. The edges are always derived from
// the vertices, so construct triangles with NewTriangle.
type Triangle[T any] struct {
	P1, P2, P3 Point[T]
	E1, E2, E3 Edge[T]
}

func NewPoint[T any](x, y float64, value T) Point[T] {
	return Point[T]{X: x, Y: y, Value: value}
}

func NewTriangle[T any](p1, p2, p3 Point[T]) Triangle[T] {
	return Triangle[T]{
		P1: p1, P2: p2, P3: p3,
		E1: Edge[T]{p1, p2},
		E2: Edge[T]{p2, p3},
		E3: Edge[T]{p3, p1},
	}
}

// Exact coordinate equality, with no tolerance. Shared vertices must compare
// identically for cavity edges to cancel.
func PointsEqual[T any](a, b Point[T]) bool {
	return a.X == b.X && a.Y == b.Y
}

// Edges are equal if they join the same two points, in either direction.
func EdgesEqual[T any](a, b Edge[T]) bool {
	return (PointsEqual(a.P1, b.P1) && PointsEqual(a.P2, b.P2)) ||
		(PointsEqual(a.P1, b.P2) && PointsEqual(a.P2, b.P1))
}

// Triangles are equal if their vertex sets match, regardless of labeling.
func TrianglesEqual[T any](a, b Triangle[T]) bool {
	return a.ContainsVertex(b.P1) && a.ContainsVertex(b.P2) && a.ContainsVertex(b.P3) &&
		b.ContainsVertex(a.P1) && b.ContainsVertex(a.P2) && b.ContainsVertex(a.P3)
}

func (t Triangle[T]) ContainsVertex(v Point[T]) bool {
	return PointsEqual(t.P1, v) || PointsEqual(t.P2, v) || PointsEqual(t.P3, v)
}

func (t Triangle[T]) Vertices() [3]Point[T] {
	return [3]Point[T]{t.P1, t.P2, t.P3}
}

func (t Triangle[T]) Edges() [3]Edge[T] {
	return [3]Edge[T]{t.E1, t.E2, t.E3}
}

func (p Point[T]) r2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("Point x: %g y: %g value: %v", p.X, p.Y, p.Value)
}

func (e Edge[T]) String() string {
	return fmt.Sprintf("Edge %s, %s", e.P1, e.P2)
}

func (t Triangle[T]) String() string {
	var b strings.Builder
	b.WriteString("Triangle:\n")
	for _, p := range t.Vertices() {
		fmt.Fprintf(&b, "\t%s\n", p)
	}
	for _, e := range t.Edges() {
		fmt.Fprintf(&b, "\t%s\n", e)
	}
	return b.String()
}

// Key identifying the triangle's vertex set for debug naming. The vertices are
// kept in labeling order, so equal triangles with different labelings get
// different names, which is what you want when following a construction.
func (t Triangle[T]) dbgKey() [6]float64 {
	return [6]float64{t.P1.X, t.P1.Y, t.P2.X, t.P2.Y, t.P3.X, t.P3.Y}
}
