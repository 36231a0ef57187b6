// Package transform implements the rectangle- and square-level dissection
// steps of the squaring pipeline: squishing a rectangle to a tame aspect
// ratio, cutting a rectangle into a square, reorienting a shape's hull edge
// onto the x-axis, and merging two squares into one larger square.
//
// Every multi-step transform returns the ordered sequence of intermediate
// Shape states it passes through, ending with the final state, so a frame
// sequencer can emit one animation frame per element without recomputing
// any geometry. SquishRectangle and RectangleToSquare start with the input
// shape itself; MergeSquares starts with both squares already oriented and
// placed side by side.
package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/gerwien/dissect/linesegment"
	"github.com/gerwien/dissect/numeric"
	"github.com/gerwien/dissect/point"
	"github.com/gerwien/dissect/shape"
	"github.com/gerwien/dissect/triangle"
)

// ErrBadCut is returned when a dissection step's cut did not produce the
// shape configuration the construction requires (e.g. a cut expected to
// isolate a single triangle instead left a shape with some other hull size).
var ErrBadCut = errors.New("transform: bad cut")

// SquishRectangle repeatedly halves a rectangle's aspect ratio until its
// height is at most twice its width: it cuts perpendicular to the long edge
// at its midpoint, producing two sub-rectangles sharing a corner, then
// rotates one of them 180 degrees about that shared corner. The returned
// slice holds every intermediate shape, starting with s and ending with the
// first configuration whose aspect ratio is tame.
func SquishRectangle(s shape.Shape) ([]shape.Shape, error) {
	frames := []shape.Shape{s}
	current := s
	for {
		a, b, c, _, err := hullCorners(current)
		if err != nil {
			return nil, err
		}
		s1 := linesegment.New(a, b)
		s2 := linesegment.New(b, c)
		width, height := s1, s2
		if s2.Length() < s1.Length() {
			width, height = s2, s1
		}
		if height.Length() <= 2*width.Length() {
			break
		}

		mid := height.Midpoint()
		cut := height.ToLine().Perpendicular(mid)
		rec1, rec2 := current.Split(cut)

		common, ok := sharedHullPoint(rec1.ConvexHull(), rec2.ConvexHull())
		if !ok {
			return nil, fmt.Errorf("transform: squish cut produced no shared corner: %w", ErrBadCut)
		}
		rec1 = rec1.Rotate(common, math.Pi)

		current = shape.New(append(rec1.Triangles(), rec2.Triangles()...)...)
		frames = append(frames, current)
	}
	return frames, nil
}

// RectangleToSquare dissects a rectangle (whose aspect ratio must already be
// at most 2, or will be squished to that point first) into a square of equal
// area, via two perpendicular cuts and two congruent-triangle translations.
//
// Returned frames: the squish sub-sequence (starting with s itself, plus one
// frame per squish step if any was required), the state right after both
// cuts, the state after the first triangle's translation, and finally the
// state after the second triangle's translation — which is the completed
// square. If the (squished) rectangle is already a square, only the squish
// sub-sequence is returned.
func RectangleToSquare(s shape.Shape) ([]shape.Shape, error) {
	squished, err := SquishRectangle(s)
	if err != nil {
		return nil, err
	}
	rect := squished[len(squished)-1]
	frames := append([]shape.Shape{}, squished...)

	a, b, c, d, err := hullCorners(rect)
	if err != nil {
		return nil, err
	}
	s1 := linesegment.New(a, b)
	s2 := linesegment.New(b, c)
	if numeric.Eq(s1.Length(), s2.Length()) {
		return frames, nil
	}
	if s1.Length() < s2.Length() {
		a, b, c, d = b, c, d, a
		s1 = linesegment.New(a, b)
	}

	squareSide := math.Sqrt(s1.Length() * linesegment.New(b, c).Length())
	corner1 := s1.PointAtDistance(squareSide)                     // P, on ab, distance s from a
	corner2 := linesegment.New(a, d).PointAtDistance(squareSide) // Q, on ad, distance s from a

	firstCut := linesegment.New(b, corner2).ToLine()
	r1, r2 := rect.Split(firstCut)
	cornerTriangle, rest, err := pickTriangleHull(r1, r2)
	if err != nil {
		return nil, err
	}

	secondCut := s1.ToLine().Perpendicular(corner1)
	r3, r4 := rest.Split(secondCut)
	otherTriangle, rest2, err := pickTriangleHull(r3, r4)
	if err != nil {
		return nil, err
	}
	frames = append(frames, shape.New(concatTriangles(rest2, cornerTriangle, otherTriangle)...))

	// The corner triangle's vertices are b, c, and the point where the first
	// cut crosses side cd; excluding b and c leaves that crossing, which
	// anchors both translations.
	apex, ok := apexExcluding(cornerTriangle.ConvexHull(), b, c)
	if !ok {
		return nil, fmt.Errorf("transform: could not identify corner triangle's apex: %w", ErrBadCut)
	}
	translatedCorner := cornerTriangle.Translate(corner2.Sub(apex))
	frames = append(frames, shape.New(concatTriangles(rest2, translatedCorner, otherTriangle)...))

	translatedOther := otherTriangle.Translate(apex.Sub(b))
	final := shape.New(concatTriangles(rest2, translatedCorner, translatedOther)...)
	frames = append(frames, final)

	return frames, nil
}

func concatTriangles(shapes ...shape.Shape) []triangle.Triangle {
	var out []triangle.Triangle
	for _, sh := range shapes {
		out = append(out, sh.Triangles()...)
	}
	return out
}

// pickTriangleHull identifies which of two split results is the lone
// corner triangle (a 3-point convex hull) and which is the remaining piece.
func pickTriangleHull(r1, r2 shape.Shape) (triangleShape, rest shape.Shape, err error) {
	h1, h2 := len(r1.ConvexHull()), len(r2.ConvexHull())
	switch {
	case h1 == 3 && h2 != 3:
		return r1, r2, nil
	case h2 == 3 && h1 != 3:
		return r2, r1, nil
	default:
		return shape.Shape{}, shape.Shape{}, fmt.Errorf("transform: cut did not isolate a single triangle: %w", ErrBadCut)
	}
}

// apexExcluding returns the hull point that is neither (epsilon-)equal to a
// nor b.
func apexExcluding(hull []point.Point, a, b point.Point) (point.Point, bool) {
	for _, p := range hull {
		if !p.Eq(a) && !p.Eq(b) {
			return p, true
		}
	}
	return point.Point{}, false
}

// Orientate rotates s so the first edge of its convex hull is parallel to
// the x-axis.
func Orientate(s shape.Shape) shape.Shape {
	hull := s.ConvexHull()
	p0, p1 := hull[0], hull[1]
	xd, yd := p0.X()-p1.X(), p0.Y()-p1.Y()
	return s.Rotate(p1, math.Atan2(yd, xd))
}

// MergeSquares combines two squares of (possibly different) side length into
// a single larger square of the same total area, using the classical
// Perigal-style two-cut dissection: orientate both squares, slide the
// smaller's bottom-left corner onto the larger's bottom-right corner so their
// bottom edges line up, mark the point P on the larger's bottom edge one
// small-side-length from its bottom-left corner, then cut from P to the
// larger's top-left corner and from P to the smaller's top-right corner.
// Both cut segments have the merged square's side length, and rotating each
// cut-off corner triangle a quarter turn about its top corner completes the
// square they span.
//
// Returned frames: the state after orientation and placement, then one frame
// after each cut and each rotation — five in all, the last being the merged
// square.
func MergeSquares(first, second shape.Shape) ([]shape.Shape, error) {
	o1 := Orientate(first)
	o2 := Orientate(second)

	big, small := o1, o2
	if small.Width() > big.Width() {
		big, small = small, big
	}

	bigHull := big.ConvexHull()
	if len(bigHull) != 4 {
		return nil, fmt.Errorf("transform: merge requires square inputs: %w", ErrBadCut)
	}
	// bigHull[0] is the hull's anchor (min-x, then min-y), i.e. the
	// bottom-left corner, by construction of ConvexHull's Graham scan.
	a1 := bigHull[0]
	bigBottomRight := cornerMaxXThenMinY(bigHull)
	bigTopLeft := cornerMinXThenMaxY(bigHull)

	smallHull := small.ConvexHull()
	if len(smallHull) != 4 {
		return nil, fmt.Errorf("transform: merge requires square inputs: %w", ErrBadCut)
	}
	// smallHull[0] is likewise small's bottom-left (left-most) corner.
	small = small.Translate(bigBottomRight.Sub(smallHull[0]))
	smallTopRight := cornerMaxXThenMaxY(small.ConvexHull())

	combined := shape.New(concatTriangles(big, small)...)
	frames := []shape.Shape{combined}

	p := linesegment.New(a1, bigBottomRight).PointAtDistance(small.Width())

	firstCut := linesegment.New(p, bigTopLeft).ToLine()
	r1, r2 := combined.Split(firstCut)
	tri1, rest1, err := pickTriangleHull(r1, r2)
	if err != nil {
		return nil, err
	}
	frames = append(frames, shape.New(concatTriangles(rest1, tri1)...))

	tri1 = tri1.Rotate(bigTopLeft, -math.Pi/2)
	afterFirst := shape.New(concatTriangles(rest1, tri1)...)
	frames = append(frames, afterFirst)

	secondCut := linesegment.New(p, smallTopRight).ToLine()
	r3, r4 := afterFirst.Split(secondCut)
	tri2, rest2, err := pickTriangleHull(r3, r4)
	if err != nil {
		return nil, err
	}
	frames = append(frames, shape.New(concatTriangles(rest2, tri2)...))

	tri2 = tri2.Rotate(smallTopRight, math.Pi/2)
	frames = append(frames, shape.New(concatTriangles(rest2, tri2)...))

	return frames, nil
}

// cornerMaxXThenMinY returns the hull point with the greatest x coordinate,
// breaking ties in favor of the smaller y — the bottom-right corner of an
// axis-aligned square's hull.
func cornerMaxXThenMinY(hull []point.Point) point.Point {
	best := hull[0]
	for _, p := range hull[1:] {
		if numeric.Eq(p.X(), best.X()) {
			if p.Y() < best.Y() {
				best = p
			}
		} else if p.X() > best.X() {
			best = p
		}
	}
	return best
}

// cornerMinXThenMaxY returns the hull point with the smallest x coordinate,
// breaking ties in favor of the larger y — the top-left corner of an
// axis-aligned square's hull.
func cornerMinXThenMaxY(hull []point.Point) point.Point {
	best := hull[0]
	for _, p := range hull[1:] {
		if numeric.Eq(p.X(), best.X()) {
			if p.Y() > best.Y() {
				best = p
			}
		} else if p.X() < best.X() {
			best = p
		}
	}
	return best
}

// cornerMaxXThenMaxY returns the hull point with the greatest x coordinate,
// breaking ties in favor of the larger y — the top-right corner of an
// axis-aligned square's hull.
func cornerMaxXThenMaxY(hull []point.Point) point.Point {
	best := hull[0]
	for _, p := range hull[1:] {
		if numeric.Eq(p.X(), best.X()) {
			if p.Y() > best.Y() {
				best = p
			}
		} else if p.X() > best.X() {
			best = p
		}
	}
	return best
}

func hullCorners(s shape.Shape) (a, b, c, d point.Point, err error) {
	hull := s.ConvexHull()
	if len(hull) != 4 {
		return point.Point{}, point.Point{}, point.Point{}, point.Point{},
			fmt.Errorf("transform: expected a rectangular hull, got %d points: %w", len(hull), ErrBadCut)
	}
	return hull[0], hull[1], hull[2], hull[3], nil
}

func sharedHullPoint(h1, h2 []point.Point) (point.Point, bool) {
	for _, p := range h1 {
		for _, q := range h2 {
			if p.Eq(q) {
				return q, true
			}
		}
	}
	return point.Point{}, false
}
