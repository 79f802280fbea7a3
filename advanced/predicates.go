package advanced

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Geometric predicates, in plain floating point. Both containment tests are
// inclusive on the boundary. Changing either one changes which diagonal
// cocircular points end up with, and which triangle owns a point on a shared
// edge.

func distance(a, b r2.Point) float64 {
	d := a.Sub(b)
	return math.Sqrt(d.Dot(d))
}

// Solve for the circumcenter by intersecting perpendicular bisectors. The two
// denominators are returned so that callers can detect collinear triangles,
// for which they approach zero.
func (t Triangle[T]) circumcircle() (center r2.Point, radius, denomX, denomY float64) {
	p1, p2, p3 := t.P1, t.P2, t.P3
	ab := p1.X*p1.X + p1.Y*p1.Y
	cd := p2.X*p2.X + p2.Y*p2.Y
	ef := p3.X*p3.X + p3.Y*p3.Y

	denomX = p1.X*(p3.Y-p2.Y) + p2.X*(p1.Y-p3.Y) + p3.X*(p2.Y-p1.Y)
	denomY = p1.Y*(p3.X-p2.X) + p2.Y*(p1.X-p3.X) + p3.Y*(p2.X-p1.X)

	center.X = (ab*(p3.Y-p2.Y) + cd*(p1.Y-p3.Y) + ef*(p2.Y-p1.Y)) / denomX / 2
	center.Y = (ab*(p3.X-p2.X) + cd*(p1.X-p3.X) + ef*(p2.X-p1.X)) / denomY / 2
	radius = distance(p1.r2(), center)
	return center, radius, denomX, denomY
}

// Circumcircle returns the center and radius of the circle through the
// triangle's vertices. For collinear triangles the result is not finite.
func (t Triangle[T]) Circumcircle() (center r2.Point, radius float64) {
	center, radius, _, _ = t.circumcircle()
	return center, radius
}

// Whether v lies inside or on the circumcircle.
func (t Triangle[T]) CircumCircleContains(v Point[T]) bool {
	center, radius, _, _ := t.circumcircle()
	return distance(v.r2(), center) <= radius
}

// Like CircumCircleContains, but fails with ErrDegenerateGeometry when the
// circumcircle can't be trusted.
func (t Triangle[T]) circumCircleContainsChecked(v Point[T], tolerance float64) (bool, error) {
	center, radius, err := t.circumcircleChecked(tolerance)
	if err != nil {
		return false, err
	}
	return distance(v.r2(), center) <= radius, nil
}

func (t Triangle[T]) circumcircleChecked(tolerance float64) (center r2.Point, radius float64, err error) {
	center, radius, denomX, denomY := t.circumcircle()
	if math.Abs(denomX) <= tolerance || math.Abs(denomY) <= tolerance ||
		!isFinite(center.X) || !isFinite(center.Y) || !isFinite(radius) {
		return center, radius, errors.Wrapf(ErrDegenerateGeometry,
			"no reliable circumcircle for (%g, %g), (%g, %g), (%g, %g)",
			t.P1.X, t.P1.Y, t.P2.X, t.P2.Y, t.P3.X, t.P3.Y)
	}
	return center, radius, nil
}

// Sign based point in triangle test, inclusive of the boundary. D is twice the
// signed area; s and u are unnormalized barycentric coordinates relative to
// the third vertex. The two branches handle the two windings.
func (t Triangle[T]) IsEncircling(x, y float64) bool {
	p1, p2, p3 := t.P1, t.P2, t.P3
	dX := x - p3.X
	dY := y - p3.Y
	dX32 := p3.X - p2.X
	dY23 := p2.Y - p3.Y
	d := dY23*(p1.X-p3.X) + dX32*(p1.Y-p3.Y)
	s := dY23*dX + dX32*dY
	u := (p3.Y-p1.Y)*dX + (p1.X-p3.X)*dY
	if d < 0 {
		return s <= 0 && u <= 0 && s+u >= d
	}
	return s >= 0 && u >= 0 && s+u <= d
}

// Positive for counterclockwise triangles.
func (t Triangle[T]) SignedArea() float64 {
	return TriArea(t.P1.r2(), t.P2.r2(), t.P3.r2()) / 2
}

// Twice the signed area of abc.
func TriArea(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
