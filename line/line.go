// Package line implements the infinite-line primitive of the geometric
// kernel: lines represented in general form Ax + By + C = 0, with
// side-of-line classification, parallelism, intersection, and the
// perpendicular/parallel-through-a-point constructions the triangle and
// transform packages build on.
package line

import (
	"errors"
	"fmt"

	"github.com/gerwien/dissect/numeric"
	"github.com/gerwien/dissect/point"
)

// ErrDegenerate is returned when an operation is asked to do something a
// line cannot: intersect two parallel lines, or construct a line from two
// coincident points.
var ErrDegenerate = errors.New("line: degenerate operation")

// Line represents a straight line in the plane as the coefficients of
// A*x + B*y + C = 0.
//
// The representation is deliberately not normalized (no A+B+C=1 or unit
// normal form is enforced or assumed anywhere in this package); callers
// must not rely on a canonical form, only on the sign of A*x + B*y + C.
type Line struct {
	A, B, C float64
}

// New constructs a Line directly from its coefficients. (A, B) must not both
// be zero; New panics if they are, since that is a caller-constructed
// invariant violation rather than a runtime geometric failure.
func New(a, b, c float64) Line {
	if numeric.Eq(a, 0) && numeric.Eq(b, 0) {
		panic("line: A and B cannot both be zero")
	}
	return Line{A: a, B: b, C: c}
}

// FromPoints constructs the infinite line passing through p and q.
//
// FromPoints panics if p and q are (epsilon-)coincident, since no unique
// line passes through a single point.
func FromPoints(p, q point.Point) Line {
	if p.Eq(q) {
		panic("line: cannot construct a line from two coincident points")
	}
	x1, y1 := p.Coordinates()
	x2, y2 := q.Coordinates()
	a := y1 - y2
	b := x2 - x1
	c := -a*x1 - b*y1
	return Line{A: a, B: b, C: c}
}

// SideOfLine classifies p relative to l: +1 if p lies on the positive side
// (A*x+B*y+C > 0, outside epsilon), -1 on the negative side, 0 if p lies on
// l within epsilon.
func (l Line) SideOfLine(p point.Point) int {
	x, y := p.Coordinates()
	value := l.A*x + l.B*y + l.C
	if numeric.Eq(value, 0) {
		return 0
	}
	if value > 0 {
		return 1
	}
	return -1
}

// IsParallelTo reports whether l and other are parallel (including
// coincident lines).
func (l Line) IsParallelTo(other Line) bool {
	return numeric.Eq(l.A*other.B, other.A*l.B)
}

// Intersection computes the unique point where l and other cross.
//
// Returns ErrDegenerate if the lines are parallel (including coincident).
// Callers must check IsParallelTo first if they want to distinguish
// "parallel, no unique intersection" from a geometric surprise.
func (l Line) Intersection(other Line) (point.Point, error) {
	denominator := l.A*other.B - other.A*l.B
	if numeric.Eq(denominator, 0) {
		return point.Point{}, fmt.Errorf("line: lines are parallel: %w", ErrDegenerate)
	}
	x := (l.B*other.C - other.B*l.C) / denominator
	y := (other.A*l.C - l.A*other.C) / denominator
	return point.New(x, y), nil
}

// Perpendicular returns the line through p perpendicular to l.
func (l Line) Perpendicular(p point.Point) Line {
	x, y := p.Coordinates()
	a, b := -l.B, l.A
	c := -a*x - b*y
	return Line{A: a, B: b, C: c}
}

// Parallel returns the line through p parallel to l.
func (l Line) Parallel(p point.Point) Line {
	x, y := p.Coordinates()
	a, b := l.A, l.B
	c := -a*x - b*y
	return Line{A: a, B: b, C: c}
}
