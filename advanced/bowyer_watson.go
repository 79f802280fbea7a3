package advanced

import (
	"github.com/golang/geo/r2"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/dbg"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// How far beyond the bounding box the super triangle's vertices are placed, in
// multiples of the box's larger dimension.
const superTriangleScale = 20

// Triangulation is the result of Triangulate. It is read only.
type Triangulation[T any] struct {
	triangles []Triangle[T]
	edges     []Edge[T]
	vertices  []Point[T]
	opts      options
}

// The final triangles. The slice is shared with the triangulation and must not
// be modified. Samplers take their own copy.
func (tr *Triangulation[T]) Triangles() []Triangle[T] {
	return tr.triangles
}

// Every edge of every triangle, three per triangle. Edges shared by adjacent
// triangles appear once for each triangle.
func (tr *Triangulation[T]) Edges() []Edge[T] {
	return tr.edges
}

// A copy of the input points.
func (tr *Triangulation[T]) Vertices() []Point[T] {
	return tr.vertices
}

// Triangulate builds the Delaunay triangulation of points by Bowyer-Watson
// incremental insertion.
//
// At least three points are required, and no two may share coordinates.
// Collinear input is accepted but the result is numerically meaningless unless
// WithStrict is given, in which case it fails with ErrDegenerateGeometry. In
// strict mode every final triangle is checked, and input that yields no
// triangles at all is degenerate.
//
// Each insertion scans every current triangle, so this is quadratic in the
// number of points. It is intended for at most a few thousand points.
func Triangulate[T any](points []Point[T], opts ...Option) (result *Triangulation[T], err error) {
	defer func() {
		recoveredErr := HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if len(points) < 3 {
		return nil, errors.Wrapf(ErrInsufficientInput, "got %d", len(points))
	}

	o := buildOptions(opts)
	if o.strict {
		if err := checkDuplicates(points); err != nil {
			return nil, err
		}
	}

	b := &builder[T]{
		opts: o,
		log:  o.logger.Named("triangulate"),
	}
	result = &Triangulation[T]{
		vertices: append([]Point[T](nil), points...),
		opts:     o,
	}
	result.triangles = b.run(result.vertices)
	if o.strict {
		if err := checkTriangles(result.triangles, len(points), o.tolerance); err != nil {
			return nil, err
		}
	}
	result.edges = flattenEdges(result.triangles)

	b.log.Debug("triangulation complete",
		zap.Int("points", len(points)),
		zap.Int("triangles", len(result.triangles)),
		zap.Int("edges", len(result.edges)),
	)
	return result, nil
}

type builder[T any] struct {
	opts      options
	log       *zap.Logger
	triangles []Triangle[T]
	super     Triangle[T]
}

func (b *builder[T]) run(points []Point[T]) []Triangle[T] {
	b.super = superTriangle(points)
	b.triangles = []Triangle[T]{b.super}
	b.log.Debug("super triangle", zap.Stringer("triangle", b.super))

	for i, p := range points {
		b.insert(i, p)
	}

	before := len(b.triangles)
	b.triangles = removeTrianglesSharingVertices(b.triangles, b.super)
	b.log.Debug("removed super triangle", zap.Int("dropped", before-len(b.triangles)))
	return b.triangles
}

// Insert a point: remove every triangle whose circumcircle contains it, and
// fan the cavity boundary out to it.
func (b *builder[T]) insert(index int, p Point[T]) {
	var badTriangles []Triangle[T]
	var polygon []Edge[T]
	for _, t := range b.triangles {
		if b.circumCircleContains(t, p) {
			badTriangles = append(badTriangles, t)
			polygon = append(polygon, t.E1, t.E2, t.E3)
		}
	}

	b.triangles = removeTriangles(b.triangles, badTriangles)
	polygon = cancelSharedEdges(polygon)

	for _, e := range polygon {
		b.triangles = append(b.triangles, NewTriangle(e.P1, e.P2, p))
	}

	if ce := b.log.Check(zap.DebugLevel, "inserted point"); ce != nil {
		names := make([]string, len(badTriangles))
		for i, t := range badTriangles {
			names[i] = DbgName(t)
		}
		ce.Write(
			zap.Int("index", index),
			zap.Float64("x", p.X),
			zap.Float64("y", p.Y),
			zap.Strings("removed", names),
			zap.Int("cavityEdges", len(polygon)),
			zap.Int("triangles", len(b.triangles)),
		)
	}
}

func (b *builder[T]) circumCircleContains(t Triangle[T], p Point[T]) bool {
	if !b.opts.strict {
		return t.CircumCircleContains(p)
	}
	inside, err := t.circumCircleContainsChecked(p, b.opts.tolerance)
	if err != nil {
		fatalf(err, "inserting (%g, %g)", p.X, p.Y)
	}
	return inside
}

// A triangle comfortably enclosing every point, so that its circumcircle
// absorbs the early insertions.
func superTriangle[T any](points []Point[T]) Triangle[T] {
	coords := make([]r2.Point, len(points))
	for i, p := range points {
		coords[i] = p.r2()
	}
	box := r2.RectFromPoints(coords...)
	size := box.Size()
	delta := size.X
	if size.Y > delta {
		delta = size.Y
	}
	mid := box.Center()

	var zero T
	return NewTriangle(
		NewPoint(mid.X-superTriangleScale*delta, mid.Y-delta, zero),
		NewPoint(mid.X, mid.Y+superTriangleScale*delta, zero),
		NewPoint(mid.X+superTriangleScale*delta, mid.Y-delta, zero),
	)
}

// Remove from list every triangle equal to any triangle in bad.
func removeTriangles[T any](list, bad []Triangle[T]) []Triangle[T] {
	if len(bad) == 0 {
		return list
	}
	result := list[:0]
	for _, t := range list {
		if !containsTriangle(bad, t) {
			result = append(result, t)
		}
	}
	return result
}

func containsTriangle[T any](list []Triangle[T], t Triangle[T]) bool {
	for _, other := range list {
		if TrianglesEqual(other, t) {
			return true
		}
	}
	return false
}

// Edges shared by two bad triangles are interior to the cavity. Remove every
// edge that appears more than once, leaving only the cavity boundary.
func cancelSharedEdges[T any](polygon []Edge[T]) []Edge[T] {
	var shared []Edge[T]
	for i, e1 := range polygon {
		for j, e2 := range polygon {
			if i == j {
				continue
			}
			if EdgesEqual(e1, e2) {
				shared = append(shared, e1, e2)
			}
		}
	}
	if len(shared) == 0 {
		return polygon
	}

	result := polygon[:0]
	for _, e := range polygon {
		if !containsEdge(shared, e) {
			result = append(result, e)
		}
	}
	return result
}

func containsEdge[T any](list []Edge[T], e Edge[T]) bool {
	for _, other := range list {
		if EdgesEqual(other, e) {
			return true
		}
	}
	return false
}

// Remove every triangle touching a vertex of super.
func removeTrianglesSharingVertices[T any](list []Triangle[T], super Triangle[T]) []Triangle[T] {
	result := list[:0]
	for _, t := range list {
		if t.ContainsVertex(super.P1) || t.ContainsVertex(super.P2) || t.ContainsVertex(super.P3) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func flattenEdges[T any](triangles []Triangle[T]) []Edge[T] {
	edges := make([]Edge[T], 0, 3*len(triangles))
	for _, t := range triangles {
		edges = append(edges, t.E1, t.E2, t.E3)
	}
	return edges
}

func checkDuplicates[T any](points []Point[T]) error {
	seen := make(map[r2.Point]int, len(points))
	for i, p := range points {
		if j, ok := seen[p.r2()]; ok {
			return errors.Wrapf(ErrDuplicatePoint, "points %d and %d are both at (%g, %g)", j, i, p.X, p.Y)
		}
		seen[p.r2()] = i
	}
	return nil
}

// Insertion only tests the triangles that exist before each point goes in, and
// while the super triangle is present those are rarely flat. The survivors
// need checking on their own.
func checkTriangles[T any](triangles []Triangle[T], points int, tolerance float64) error {
	if len(triangles) == 0 {
		return errors.Wrapf(ErrDegenerateGeometry, "%d points produced no triangles", points)
	}
	for _, t := range triangles {
		if _, _, err := t.circumcircleChecked(tolerance); err != nil {
			return err
		}
	}
	return nil
}

// Readable name for a triangle in debug output. Triangles that are nearly flat
// relative to their size are colored red, since those are the ones whose
// circumcircles go wrong.
func DbgName[T any](t Triangle[T]) string {
	name := dbg.Name(t.dbgKey())
	if isNearlyFlat(t) {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

func isNearlyFlat[T any](t Triangle[T]) bool {
	longest := 0.0
	for _, e := range t.Edges() {
		if l := distance(e.P1.r2(), e.P2.r2()); l > longest {
			longest = l
		}
	}
	if longest == 0 {
		return true
	}
	// Twice the area over the squared longest side is the height relative to
	// that side, as a fraction of its length.
	area := t.SignedArea()
	if area < 0 {
		area = -area
	}
	return 2*area/(longest*longest) < flatnessThreshold
}

const flatnessThreshold = 1e-6
