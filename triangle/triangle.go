// Package triangle implements the Triangle primitive: a 3-tuple of points
// with the angle, split, and right-angle/rectangle transforms the dissection
// pipeline is built from.
package triangle

import (
	"encoding/json"
	"math"

	"github.com/gerwien/dissect/line"
	"github.com/gerwien/dissect/linesegment"
	"github.com/gerwien/dissect/numeric"
	"github.com/gerwien/dissect/point"
)

// Triangle is an ordered 3-tuple of points. Values are immutable: every
// method returns a new Triangle rather than modifying the receiver.
type Triangle struct {
	points [3]point.Point
}

// New constructs a Triangle from three points. New panics if the points are
// collinear or any two coincide, since such a triple cannot form a triangle
// and every downstream operation (angle, split, rectangle) assumes a
// non-degenerate one.
func New(a, b, c point.Point) Triangle {
	if point.Orientation(a, b, c) == 0 {
		panic("triangle: points are collinear or coincident")
	}
	return Triangle{points: [3]point.Point{a, b, c}}
}

// Points returns the triangle's three vertices in order.
func (t Triangle) Points() [3]point.Point {
	return t.points
}

// MarshalJSON serializes t as a JSON object with a "points" array of its
// three vertices, in order.
func (t Triangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Points [3]point.Point `json:"points"`
	}{t.points})
}

// Side returns the ith side as a LineSegment. The ith side is opposite the
// ith point.
func (t Triangle) Side(i int) linesegment.LineSegment {
	switch i % 3 {
	case 0:
		return linesegment.New(t.points[1], t.points[2])
	case 1:
		return linesegment.New(t.points[0], t.points[2])
	default:
		return linesegment.New(t.points[0], t.points[1])
	}
}

// Angle returns the interior angle in radians at the ith vertex, via the law
// of cosines. The cosine ratio is clamped to [-1, 1] before Acos to absorb
// floating-point drift at near-degenerate (near-0 or near-π) angles.
func (t Triangle) Angle(i int) float64 {
	a := t.Side(i).Length()
	b := t.Side((i + 1) % 3).Length()
	c := t.Side((i + 2) % 3).Length()
	cosine := (a*a - b*b - c*c) / (-2 * b * c)
	return math.Acos(numeric.Clamp(cosine, -1, 1))
}

// LargestAngle returns the index (0, 1, or 2) of the vertex with the
// largest interior angle. Ties (angles equal within epsilon) resolve to the
// first occurrence.
func (t Triangle) LargestAngle() int {
	best := 0
	bestAngle := t.Angle(0)
	for i := 1; i < 3; i++ {
		a := t.Angle(i)
		if a > bestAngle && !numeric.Eq(a, bestAngle) {
			bestAngle = a
			best = i
		}
	}
	return best
}

// Rotate returns t rotated clockwise by radians around pivot.
func (t Triangle) Rotate(pivot point.Point, radians float64) Triangle {
	return Triangle{points: [3]point.Point{
		t.points[0].Rotate(pivot, radians),
		t.points[1].Rotate(pivot, radians),
		t.points[2].Rotate(pivot, radians),
	}}
}

// Translate returns t shifted by delta.
func (t Triangle) Translate(delta point.Point) Triangle {
	return Triangle{points: [3]point.Point{
		t.points[0].Translate(delta),
		t.points[1].Translate(delta),
		t.points[2].Translate(delta),
	}}
}

// ToRightAngle splits t across the altitude dropped from its largest-angle
// vertex, producing two right triangles. This is the first cut of the
// squaring pipeline: it guarantees every subsequent piece has a right angle,
// which ToRectangle requires.
func (t Triangle) ToRightAngle() (Triangle, Triangle) {
	apex := t.LargestAngle()
	other1, other2 := (apex+1)%3, (apex+2)%3

	opposite := t.Side(apex)
	cut := opposite.ToLine().Perpendicular(t.points[apex])
	foot, ok := opposite.IntersectLine(cut)
	if !ok {
		panic("triangle: altitude from largest-angle vertex failed to meet the opposite side")
	}

	t1 := New(t.points[apex], foot, t.points[other1])
	t2 := New(t.points[apex], foot, t.points[other2])
	return t1, t2
}

// ToRectangleSteps computes the same step-cut rectangle dissection as
// ToRectangle, but exposes the moved piece's pre-rotation position as well,
// so a frame sequencer can emit the cut and the 180-degree rotation as two
// separate frames. stationary1 and stationary2 do not move during the
// rotation and accompany both frames.
func (t Triangle) ToRectangleSteps() (preRotation, postRotation, stationary1, stationary2 Triangle) {
	right := t.LargestAngle()
	if !numeric.Eq(t.Angle(right), math.Pi/2) {
		panic("triangle: ToRectangle requires a right triangle")
	}
	other1, other2 := (right+1)%3, (right+2)%3

	hypotenuse := t.Side(right)
	base := t.Side(other1)
	height := t.Side(other2)

	mid := height.Midpoint()
	rectSide := base.ToLine().Parallel(mid)
	cutPoint, ok := hypotenuse.IntersectLine(rectSide)
	if !ok {
		panic("triangle: rectangle cut line did not cross the hypotenuse")
	}

	pre := New(t.points[other1], mid, cutPoint)
	post := pre.Rotate(cutPoint, math.Pi)
	return pre, post, New(t.points[right], t.points[other2], mid), New(t.points[other2], mid, cutPoint)
}

// ToRectangle turns a right triangle into three triangles that reassemble
// into a rectangle of the same area, by cutting at the midpoint of one leg
// and rotating the resulting small triangle 180 degrees about the cut's far
// endpoint.
//
// The returned triangles are in emission order: t1 is the piece produced by
// the 180-degree rotation (the "moved" piece), t2 and t3 are the two
// stationary pieces. t.LargestAngle() must be (within epsilon) a right
// angle; ToRectangle panics otherwise, since the construction below is only
// valid for a right triangle.
func (t Triangle) ToRectangle() (Triangle, Triangle, Triangle) {
	_, post, s1, s2 := t.ToRectangleSteps()
	return post, s1, s2
}

// SplitKind discriminates the possible outcomes of Split.
type SplitKind int

const (
	// AllPositive means every point of t lies on the non-negative side of
	// the splitting line; t is returned whole, unsplit.
	AllPositive SplitKind = iota
	// AllNegative means every point of t lies on the non-positive side of
	// the splitting line; t is returned whole, unsplit.
	AllNegative
	// SplitIntoTwo means the line actually cut t into two pieces.
	SplitIntoTwo
)

// SplitResult is the tagged outcome of splitting a Triangle by a Line.
//
// For AllPositive, Positive contains exactly t and Negative is empty. For
// AllNegative, Negative contains exactly t and Positive is empty. For
// SplitIntoTwo, both are non-empty and together reconstitute the original
// triangle's area.
type SplitResult struct {
	Kind     SplitKind
	Positive []Triangle
	Negative []Triangle
}

// Split divides t by the infinite line l. All points of the returned
// Positive pieces lie on the non-negative side of l; all points of Negative
// lie on the non-positive side.
func (t Triangle) Split(l line.Line) SplitResult {
	sides := [3]int{
		l.SideOfLine(t.points[0]),
		l.SideOfLine(t.points[1]),
		l.SideOfLine(t.points[2]),
	}

	if sides[0] == sides[1] && sides[1] == sides[2] {
		// All three on the line is lumped with the negative side, matching
		// the degenerate-collinear row of the classification.
		if sides[0] > 0 {
			return SplitResult{Kind: AllPositive, Positive: []Triangle{t}}
		}
		return SplitResult{Kind: AllNegative, Negative: []Triangle{t}}
	}

	hasPos, hasNeg, hasZero := hasSign(sides, 1), hasSign(sides, -1), hasSign(sides, 0)

	if hasZero && !(hasPos && hasNeg) {
		// Line touches one vertex (or runs along one edge) without crossing
		// the interior: the triangle lies entirely on one side plus the
		// points it shares with the line.
		if hasPos {
			return SplitResult{Kind: AllPositive, Positive: []Triangle{t}}
		}
		return SplitResult{Kind: AllNegative, Negative: []Triangle{t}}
	}

	if hasZero {
		return t.splitThroughVertex(l, sides)
	}

	return t.splitThroughTwoEdges(l, sides)
}

func hasSign(sides [3]int, s int) bool {
	for _, v := range sides {
		if v == s {
			return true
		}
	}
	return false
}

// splitThroughVertex handles the case where the line passes exactly through
// one vertex (side 0) and separates the other two (one +1, one -1).
func (t Triangle) splitThroughVertex(l line.Line, sides [3]int) SplitResult {
	var onLine, pos, neg point.Point
	for i, s := range sides {
		switch s {
		case 0:
			onLine = t.points[i]
		case 1:
			pos = t.points[i]
		case -1:
			neg = t.points[i]
		}
	}
	base := linesegment.New(pos, neg)
	basePoint, ok := base.IntersectLine(l)
	if !ok {
		panic("triangle: expected the splitting line to cross the base segment")
	}

	posTriangle := New(basePoint, onLine, pos)
	negTriangle := New(basePoint, onLine, neg)
	return SplitResult{
		Kind:     SplitIntoTwo,
		Positive: []Triangle{posTriangle},
		Negative: []Triangle{negTriangle},
	}
}

// splitThroughTwoEdges handles the case where the line crosses two of the
// triangle's edges, cutting off either one vertex (the minority side) into
// a single triangle and leaving a quadrilateral (expressed as two triangles)
// on the majority side.
func (t Triangle) splitThroughTwoEdges(l line.Line, sides [3]int) SplitResult {
	var posPts, negPts []point.Point
	for i, s := range sides {
		if s >= 0 {
			posPts = append(posPts, t.points[i])
		}
		if s <= 0 {
			negPts = append(negPts, t.points[i])
		}
	}

	var intersections []point.Point
	for i := 0; i < 3; i++ {
		if p, ok := t.Side(i).IntersectLine(l); ok {
			intersections = append(intersections, p)
		}
	}
	if len(intersections) != 2 {
		panic("triangle: expected the splitting line to cross exactly two edges")
	}
	x1, x2 := intersections[0], intersections[1]

	if len(negPts) == 1 {
		lone := negPts[0]
		majority := posPts
		negTriangle := New(lone, x1, x2)
		posT1 := New(majority[0], x1, x2)
		posT2 := New(majority[0], majority[1], x1)
		return SplitResult{
			Kind:     SplitIntoTwo,
			Positive: []Triangle{posT1, posT2},
			Negative: []Triangle{negTriangle},
		}
	}

	lone := posPts[0]
	majority := negPts
	posTriangle := New(lone, x1, x2)
	negT1 := New(majority[0], x1, x2)
	negT2 := New(majority[0], majority[1], x1)
	return SplitResult{
		Kind:     SplitIntoTwo,
		Positive: []Triangle{posTriangle},
		Negative: []Triangle{negT1, negT2},
	}
}
