// Package polygon turns a simple polygon's vertex list into triangles and
// validates that a vertex list is well-formed enough to dissect.
package polygon

import (
	"errors"
	"fmt"

	"github.com/gerwien/dissect/linesegment"
	"github.com/gerwien/dissect/point"
	"github.com/gerwien/dissect/triangle"
)

// ErrInvalidPolygon is returned by Validate when a vertex list cannot form a
// simple polygon: fewer than three points, zero area, or self-intersecting
// edges.
var ErrInvalidPolygon = errors.New("polygon: invalid polygon")

// Area2XSigned computes twice the signed area of the polygon defined by
// points, via the shoelace formula. The result is positive for a
// counterclockwise winding, negative for clockwise, and zero for fewer than
// three points or a degenerate (collinear) polygon.
func Area2XSigned(points []point.Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}

	var area float64
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		area += p1.X()*p2.Y() - p2.X()*p1.Y()
	}
	return area
}

// Validate reports whether points defines a well-formed simple polygon:
// at least three vertices, non-zero area, and no self-intersecting edges
// (edges that merely share an endpoint with a neighbor are not
// self-intersections).
func Validate(points []point.Point) error {
	if len(points) < 3 {
		return fmt.Errorf("polygon: need at least 3 points, got %d: %w", len(points), ErrInvalidPolygon)
	}
	if numericIsZero(Area2XSigned(points)) {
		return fmt.Errorf("polygon: zero area: %w", ErrInvalidPolygon)
	}

	edges := toLineSegments(points)
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if edgesAreAdjacent(i, j, len(edges)) {
				continue
			}
			if segmentsIntersect(edges[i], edges[j]) {
				return fmt.Errorf("polygon: self-intersecting edges %d and %d: %w", i, j, ErrInvalidPolygon)
			}
		}
	}
	return nil
}

// edgesAreAdjacent reports whether edge i and edge j (out of n polygon
// edges, wrapping) share an endpoint, and so are expected to "intersect"
// at that shared vertex without the polygon being self-intersecting.
func edgesAreAdjacent(i, j, n int) bool {
	return (i+1)%n == j || (j+1)%n == i
}

// segmentsIntersect reports whether a and b cross at a point that lies
// within both segments' bounds, not merely on one's unbounded extension.
func segmentsIntersect(a, b linesegment.LineSegment) bool {
	p, ok := a.IntersectLine(b.ToLine())
	if !ok {
		return false
	}
	return b.ContainsProjection(p)
}

func toLineSegments(points []point.Point) []linesegment.LineSegment {
	n := len(points)
	segments := make([]linesegment.LineSegment, 0, n)
	for i := 0; i < n; i++ {
		start := points[i]
		end := points[(i+1)%n]
		if start.Eq(end) {
			continue
		}
		segments = append(segments, linesegment.New(start, end))
	}
	return segments
}

func numericIsZero(v float64) bool {
	const eps = 1e-9
	return v > -eps && v < eps
}

// FanTriangulate dissects a simple, star-shaped-from-points[0] polygon into
// triangles by fanning out from its first vertex: triangle i is
// (points[0], points[i+1], points[i+2]) for i in 0..len(points)-3.
//
// Precondition (unchecked here; callers should run Validate first): points
// describes a simple polygon star-shaped from points[0]. Concave polygons
// not star-shaped from that vertex will fan-triangulate into triangles that
// fall outside the polygon.
func FanTriangulate(points []point.Point) []triangle.Triangle {
	if len(points) < 3 {
		return nil
	}
	common := points[0]
	triangles := make([]triangle.Triangle, 0, len(points)-2)
	for i := 1; i < len(points)-1; i++ {
		triangles = append(triangles, triangle.New(common, points[i], points[i+1]))
	}
	return triangles
}
