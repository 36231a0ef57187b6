// Package shape implements Shape, an arbitrary polygonal region represented
// as a bag of triangles. Shapes support splitting by a line, rigid motions,
// and a cached convex hull used to measure and reorient rectangular pieces
// during the squaring pipeline.
package shape

import (
	"sort"

	"github.com/gerwien/dissect/line"
	"github.com/gerwien/dissect/linesegment"
	"github.com/gerwien/dissect/numeric"
	"github.com/gerwien/dissect/point"
	"github.com/gerwien/dissect/triangle"
)

// Shape is an immutable collection of triangles. Every method returns a new
// Shape rather than modifying the receiver.
type Shape struct {
	triangles []triangle.Triangle
	hull      *hullCache
}

// hullCache holds ConvexHull's lazily computed result. Every construction of
// a new Shape allocates a fresh, empty cache, so a derived shape never
// inherits a hull computed for different triangles.
type hullCache struct {
	points   []point.Point
	computed bool
}

// New constructs a Shape from the given triangles.
func New(triangles ...triangle.Triangle) Shape {
	cp := make([]triangle.Triangle, len(triangles))
	copy(cp, triangles)
	return Shape{triangles: cp, hull: &hullCache{}}
}

// Triangles returns the triangles making up s.
func (s Shape) Triangles() []triangle.Triangle {
	return s.triangles
}

// Split divides s by the infinite line l. All points of the returned
// "positive" shape lie on the non-negative side of l; all points of the
// "negative" shape lie on the non-positive side.
func (s Shape) Split(l line.Line) (Shape, Shape) {
	var up, down []triangle.Triangle
	for _, t := range s.triangles {
		result := t.Split(l)
		up = append(up, result.Positive...)
		down = append(down, result.Negative...)
	}
	return New(up...), New(down...)
}

// Translate returns s shifted by delta.
func (s Shape) Translate(delta point.Point) Shape {
	out := make([]triangle.Triangle, len(s.triangles))
	for i, t := range s.triangles {
		out[i] = t.Translate(delta)
	}
	return Shape{triangles: out, hull: &hullCache{}}
}

// Rotate returns s rotated clockwise by radians around pivot.
func (s Shape) Rotate(pivot point.Point, radians float64) Shape {
	out := make([]triangle.Triangle, len(s.triangles))
	for i, t := range s.triangles {
		out[i] = t.Rotate(pivot, radians)
	}
	return Shape{triangles: out, hull: &hullCache{}}
}

// Vertices returns the distinct points (within epsilon) appearing across all
// of s's triangles.
func (s Shape) Vertices() []point.Point {
	var verts []point.Point
	for _, t := range s.triangles {
		for _, p := range t.Points() {
			verts = append(verts, p)
		}
	}
	var dedup []point.Point
	for _, v := range verts {
		found := false
		for _, u := range dedup {
			if u.Eq(v) {
				found = true
				break
			}
		}
		if !found {
			dedup = append(dedup, v)
		}
	}
	return dedup
}

// ConvexHull returns the convex hull of s's vertices via a Graham scan: the
// anchor is the vertex with the smallest x-coordinate (ties broken by
// smallest y), the remaining vertices are sorted by polar angle around the
// anchor in clockwise order (ties broken by distance, nearer first), and a
// stack scan discards any vertex that would make a counterclockwise or
// collinear turn. The resulting hull starts at the anchor and runs
// clockwise.
//
// The hull is computed at most once per Shape; repeated calls return the
// cached result. Callers must not modify the returned slice.
func (s Shape) ConvexHull() []point.Point {
	if s.hull != nil && s.hull.computed {
		return s.hull.points
	}
	hull := s.computeConvexHull()
	if s.hull != nil {
		s.hull.points = hull
		s.hull.computed = true
	}
	return hull
}

func (s Shape) computeConvexHull() []point.Point {
	verts := s.Vertices()
	if len(verts) == 0 {
		return nil
	}
	if len(verts) == 1 {
		return verts
	}

	anchor, rest := extractAnchor(verts)
	sort.Slice(rest, func(i, j int) bool {
		return clockwiseAndDist(anchor, rest[i], rest[j]) < 0
	})

	ps := append(rest, anchor)
	hull := []point.Point{anchor, ps[0]}
	i := 1
	for i < len(ps) && point.Orientation(hull[0], hull[1], ps[i]) >= 0 {
		hull = hull[:len(hull)-1]
		hull = append(hull, ps[i])
		i++
	}
	if i >= len(ps) {
		return hull
	}
	hull = append(hull, ps[i])
	for _, l := range ps[i:] {
		for len(hull) >= 2 && point.Orientation(hull[len(hull)-2], hull[len(hull)-1], l) >= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, l)
	}
	return hull[:len(hull)-1]
}

// extractAnchor removes and returns the point with the smallest x-coordinate
// (ties broken by smallest y) from points, along with the remaining points
// in their original relative order.
func extractAnchor(points []point.Point) (point.Point, []point.Point) {
	minIdx := 0
	for i := 1; i < len(points); i++ {
		if pointCmp(points[i], points[minIdx]) < 0 {
			minIdx = i
		}
	}
	anchor := points[minIdx]
	rest := make([]point.Point, 0, len(points)-1)
	rest = append(rest, points[:minIdx]...)
	rest = append(rest, points[minIdx+1:]...)
	return anchor, rest
}

// pointCmp orders points by x ascending, breaking ties by y ascending.
func pointCmp(a, b point.Point) int {
	if a.Eq(b) {
		return 0
	}
	if numeric.Eq(a.X(), b.X()) {
		if a.Y() < b.Y() {
			return -1
		}
		return 1
	}
	if a.X() < b.X() {
		return -1
	}
	return 1
}

// clockwiseAndDist orders p1 and p2 by polar angle around p0 (via
// point.Orientation), breaking ties between collinear points by distance
// from p0 (closer first).
func clockwiseAndDist(p0, p1, p2 point.Point) int {
	o := point.Orientation(p0, p1, p2)
	if o != 0 {
		return o
	}
	d1 := p0.DistanceToPoint(p1)
	d2 := p0.DistanceToPoint(p2)
	if numeric.Eq(d1, d2) {
		return 0
	}
	if d1 < d2 {
		return -1
	}
	return 1
}

// Height returns the longer of the two distinct side lengths of s's
// (rectangular) convex hull. Height panics if the hull does not have exactly
// four vertices, since it is only meaningful for a rectangle-shaped shape.
func (s Shape) Height() float64 {
	a, b, c, _ := s.rectangleHull()
	s1 := linesegment.New(a, b).Length()
	s2 := linesegment.New(b, c).Length()
	if s1 < s2 {
		return s2
	}
	return s1
}

// Width returns the shorter of the two distinct side lengths of s's
// (rectangular) convex hull. Width panics if the hull does not have exactly
// four vertices.
func (s Shape) Width() float64 {
	a, b, c, _ := s.rectangleHull()
	s1 := linesegment.New(a, b).Length()
	s2 := linesegment.New(b, c).Length()
	if s1 < s2 {
		return s1
	}
	return s2
}

func (s Shape) rectangleHull() (a, b, c, d point.Point) {
	hull := s.ConvexHull()
	if len(hull) != 4 {
		panic("shape: rectangle-only operation called on a shape whose hull is not a quadrilateral")
	}
	return hull[0], hull[1], hull[2], hull[3]
}
