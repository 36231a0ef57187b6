// Package point defines the foundational geometric primitive used throughout
// this module: a point in the plane with float64 coordinates. Every higher
// package (line, linesegment, triangle, shape) is built on top of this type.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/gerwien/dissect/numeric"
)

// Point represents a point in two-dimensional space.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the given coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the x-coordinate of p.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of p.
func (p Point) Y() float64 {
	return p.y
}

// Coordinates returns the x and y coordinates of p as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// Add returns the componentwise sum of p and q, treating both as vectors.
func (p Point) Add(q Point) Point {
	return New(p.x+q.x, p.y+q.y)
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// Negate returns a new Point with both coordinates negated.
func (p Point) Negate() Point {
	return New(-p.x, -p.y)
}

// Translate moves p by the displacement vector delta.
func (p Point) Translate(delta Point) Point {
	return p.Add(delta)
}

// Scale scales p by factor k relative to the reference point ref.
func (p Point) Scale(ref Point, k float64) Point {
	return New(
		ref.x+(p.x-ref.x)*k,
		ref.y+(p.y-ref.y)*k,
	)
}

// Rotate returns p rotated clockwise by radians around pivot.
//
// The rotation is performed in polar form: translate p so pivot sits at the
// origin, read off the current angle with atan2, subtract radians (clockwise
// rotation is a negative mathematical angle), then reconstruct the point from
// its radius and the new angle.
func (p Point) Rotate(pivot Point, radians float64) Point {
	dx, dy := p.x-pivot.x, p.y-pivot.y
	r := math.Hypot(dx, dy)
	theta := math.Atan2(dy, dx) - radians
	return New(
		pivot.x+r*math.Cos(theta),
		pivot.y+r*math.Sin(theta),
	)
}

// DistanceSquaredToPoint returns the squared Euclidean distance between p
// and q, avoiding a square root when only comparisons are needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx, dy := q.x-p.x, q.y-p.y
	return dx*dx + dy*dy
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// CrossProduct returns the 2D cross product (determinant) of the vectors p
// and q: p.X*q.Y - p.Y*q.X. Positive indicates a counterclockwise turn from p
// to q, negative a clockwise turn, zero collinearity.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DotProduct returns the dot product of the vectors p and q.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// Eq reports whether p and q are equal within the package-level epsilon.
func (p Point) Eq(q Point) bool {
	return numeric.Eq(p.x, q.x) && numeric.Eq(p.y, q.y)
}

// String returns a human-readable "(x, y)" representation of p.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}

// MarshalJSON serializes p as a JSON object with "x" and "y" fields.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{p.x, p.y})
}

// UnmarshalJSON deserializes p from a JSON object with "x" and "y" fields.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x, p.y = temp.X, temp.Y
	return nil
}

// Orientation classifies the turn formed by p, q, r (in that order) as
// counterclockwise (positive cross product), clockwise (negative), or
// collinear (within epsilon of zero, scaled by the segment lengths so the
// test stays meaningful regardless of the points' distance apart).
func Orientation(p, q, r Point) int {
	val := q.Sub(p).CrossProduct(r.Sub(p))
	tolerance := numeric.Epsilon() * (p.DistanceToPoint(q) + p.DistanceToPoint(r))
	if numeric.FloatEquals(val, 0, tolerance) {
		return 0
	}
	if val > 0 {
		return 1
	}
	return -1
}
