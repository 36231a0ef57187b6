// Package linesegment implements a straight line bounded by two endpoints,
// layered on top of package point and package line. A LineSegment is treated
// as an immutable value throughout this module.
package linesegment

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/gerwien/dissect/line"
	"github.com/gerwien/dissect/numeric"
	"github.com/gerwien/dissect/point"
)

// LineSegment is a straight line bounded by two points.
type LineSegment struct {
	start, end point.Point
}

// New constructs a LineSegment between start and end.
func New(start, end point.Point) LineSegment {
	return LineSegment{start: start, end: end}
}

// Start returns the first bounding point of the segment.
func (s LineSegment) Start() point.Point {
	return s.start
}

// End returns the second bounding point of the segment.
func (s LineSegment) End() point.Point {
	return s.end
}

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	return s.start.DistanceToPoint(s.end)
}

// Midpoint returns the point halfway between the segment's endpoints.
func (s LineSegment) Midpoint() point.Point {
	return point.New(
		(s.start.X()+s.end.X())/2,
		(s.start.Y()+s.end.Y())/2,
	)
}

// PointAtDistance returns the point on the ray from Start() through End()
// whose distance from Start() is d. d may exceed Length(), in which case the
// returned point lies beyond End().
func (s LineSegment) PointAtDistance(d float64) point.Point {
	r := s.Length()
	x1, y1 := s.start.Coordinates()
	x2, y2 := s.end.Coordinates()
	return point.New(
		(x2-x1)*d/r+x1,
		(y2-y1)*d/r+y1,
	)
}

// ToLine extends s into the infinite Line passing through both endpoints.
func (s LineSegment) ToLine() line.Line {
	return line.FromPoints(s.start, s.end)
}

// ContainsProjection reports whether p's coordinates each fall within the
// bounding box of the segment's endpoints (inclusive, epsilon-tolerant). It
// does not check that p lies ON the segment's line — pair it with
// ToLine().SideOfLine(p) == 0 for that.
func (s LineSegment) ContainsProjection(p point.Point) bool {
	between := func(x, a, b float64) bool {
		lo, hi := math.Min(a, b), math.Max(a, b)
		return (lo <= x || numeric.Eq(lo, x)) && (x <= hi || numeric.Eq(hi, x))
	}
	x, y := p.Coordinates()
	x1, y1 := s.start.Coordinates()
	x2, y2 := s.end.Coordinates()
	return between(x, x1, x2) && between(y, y1, y2)
}

// IntersectLine computes the point where s's underlying line crosses l, and
// reports whether that point actually falls within s's bounds (rather than
// on the unbounded extension of s). The second return is false if l is
// parallel to s or if the crossing point lies outside the segment.
func (s LineSegment) IntersectLine(l line.Line) (point.Point, bool) {
	self := s.ToLine()
	if self.IsParallelTo(l) {
		return point.Point{}, false
	}
	p, err := self.Intersection(l)
	if err != nil {
		return point.Point{}, false
	}
	if !s.ContainsProjection(p) {
		return point.Point{}, false
	}
	return p, true
}

// Translate returns s shifted by delta.
func (s LineSegment) Translate(delta point.Point) LineSegment {
	return New(s.start.Translate(delta), s.end.Translate(delta))
}

// Rotate returns s rotated clockwise by radians around pivot.
func (s LineSegment) Rotate(pivot point.Point, radians float64) LineSegment {
	return New(s.start.Rotate(pivot, radians), s.end.Rotate(pivot, radians))
}

// String returns a human-readable representation of s.
func (s LineSegment) String() string {
	return fmt.Sprintf("%s -> %s", s.start, s.end)
}

// MarshalJSON serializes s as a JSON object with "start" and "end" fields.
func (s LineSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start point.Point `json:"start"`
		End   point.Point `json:"end"`
	}{s.start, s.end})
}
