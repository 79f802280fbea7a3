package advanced

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Sampler estimates payload values at arbitrary points from a triangulation.
// It never mutates the triangulation, so a single Sampler can be queried from
// many goroutines.
type Sampler[T Payload[T]] struct {
	triangles []Triangle[T]
	fallback  T
	opts      options
}

// NewSampler returns a sampler over tr. Queries outside every triangle return
// fallback. The options default to those tr was built with. The sampler keeps
// its own copy of the triangles.
func NewSampler[T Payload[T]](tr *Triangulation[T], fallback T, opts ...Option) *Sampler[T] {
	o := tr.opts
	for _, opt := range opts {
		opt(&o)
	}
	return &Sampler[T]{
		triangles: append([]Triangle[T](nil), tr.triangles...),
		fallback:  fallback,
		opts:      o,
	}
}

func (s *Sampler[T]) Fallback() T {
	return s.fallback
}

// Value interpolates the payload at (x, y) by inverse distance weighting over
// the vertices of the first triangle containing the point. Points on an edge
// shared by two triangles take the first one in triangle order.
//
// A query exactly on a vertex divides by zero. By default that is passed
// through to the payload (NaN for Scalar); in strict mode it fails with
// ErrCoincidentQueryPoint.
func (s *Sampler[T]) Value(x, y float64) (T, error) {
	for _, t := range s.triangles {
		if !t.IsEncircling(x, y) {
			continue
		}
		if s.opts.strict {
			for _, v := range t.Vertices() {
				if v.X == x && v.Y == y {
					var zero T
					return zero, errors.Wrapf(ErrCoincidentQueryPoint, "(%g, %g)", x, y)
				}
			}
		}
		return inverseDistanceWeighted(t, x, y), nil
	}
	return s.fallback, nil
}

// ValueAt interpolates at p's coordinates, ignoring p's own value.
func (s *Sampler[T]) ValueAt(p Point[T]) (T, error) {
	return s.Value(p.X, p.Y)
}

func inverseDistanceWeighted[T Payload[T]](t Triangle[T], x, y float64) T {
	q := r2.Point{X: x, Y: y}
	w1 := 1 / distance(t.P1.r2(), q)
	w2 := 1 / distance(t.P2.r2(), q)
	w3 := 1 / distance(t.P3.r2(), q)

	sum := w1 + w2 + w3
	w1 /= sum
	w2 /= sum
	w3 /= sum

	return t.P1.Value.Scale(w1).Add(t.P2.Value.Scale(w2)).Add(t.P3.Value.Scale(w3))
}
