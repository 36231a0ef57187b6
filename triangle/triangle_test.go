package triangle_test

import (
	"math"
	"testing"

	"github.com/gerwien/dissect/line"
	"github.com/gerwien/dissect/point"
	"github.com/gerwien/dissect/triangle"
	"github.com/stretchr/testify/assert"
)

func rightIsoceles() triangle.Triangle {
	return triangle.New(point.New(0, 0), point.New(4, 0), point.New(0, 4))
}

func TestNewPanicsOnCollinearPoints(t *testing.T) {
	assert.Panics(t, func() {
		triangle.New(point.New(0, 0), point.New(1, 0), point.New(2, 0))
	})
}

func TestAngleSumIsPi(t *testing.T) {
	tri := triangle.New(point.New(0, 0), point.New(5, 0), point.New(1, 3))
	sum := tri.Angle(0) + tri.Angle(1) + tri.Angle(2)
	assert.InDelta(t, math.Pi, sum, 1e-9)
}

func TestLargestAngleOfRightTriangleIsTheRightAngleVertex(t *testing.T) {
	tri := rightIsoceles()
	largest := tri.LargestAngle()
	assert.InDelta(t, math.Pi/2, tri.Angle(largest), 1e-9)
	assert.Equal(t, 0, largest)
}

func TestLargestAngleFirstOccurrenceWinsOnTie(t *testing.T) {
	// Equilateral triangle: all angles equal, so vertex 0 must win.
	tri := triangle.New(point.New(0, 0), point.New(2, 0), point.New(1, math.Sqrt(3)))
	assert.Equal(t, 0, tri.LargestAngle())
}

func TestToRightAngleProducesTwoRightTriangles(t *testing.T) {
	tri := triangle.New(point.New(0, 0), point.New(6, 0), point.New(2, 4))
	t1, t2 := tri.ToRightAngle()

	assert.InDelta(t, math.Pi/2, t1.Angle(t1.LargestAngle()), 1e-9)
	assert.InDelta(t, math.Pi/2, t2.Angle(t2.LargestAngle()), 1e-9)
}

func TestToRectangleOnRightTriangleSucceeds(t *testing.T) {
	tri := rightIsoceles()
	t1, t2, t3 := tri.ToRectangle()

	originalArea := triangleArea(tri)
	sumArea := triangleArea(t1) + triangleArea(t2) + triangleArea(t3)
	assert.InDelta(t, originalArea, sumArea, 1e-6)
}

func TestToRectanglePanicsOnNonRightTriangle(t *testing.T) {
	tri := triangle.New(point.New(0, 0), point.New(5, 0), point.New(1, 3))
	assert.Panics(t, func() {
		tri.ToRectangle()
	})
}

func TestSplitAllPositive(t *testing.T) {
	tri := rightIsoceles()
	l := line.FromPoints(point.New(-1, 5), point.New(-1, -1)) // vertical line to the left, pointing down
	result := tri.Split(l)
	assert.Equal(t, triangle.AllPositive, result.Kind)
	assert.Len(t, result.Positive, 1)
	assert.Empty(t, result.Negative)
}

func TestSplitAllNegative(t *testing.T) {
	tri := rightIsoceles()
	l := line.FromPoints(point.New(10, 5), point.New(10, -1)) // vertical line to the right, pointing down
	result := tri.Split(l)
	assert.Equal(t, triangle.AllNegative, result.Kind)
	assert.Len(t, result.Negative, 1)
	assert.Empty(t, result.Positive)
}

func TestSplitThroughVertexPreservesArea(t *testing.T) {
	tri := triangle.New(point.New(0, 0), point.New(4, 0), point.New(0, 4))
	// Line through vertex (0,4) and the midpoint of the opposite side.
	l := line.FromPoints(point.New(0, 4), point.New(2, 0))
	result := tri.Split(l)
	assert.Equal(t, triangle.SplitIntoTwo, result.Kind)

	originalArea := triangleArea(tri)
	var sum float64
	for _, p := range result.Positive {
		sum += triangleArea(p)
	}
	for _, n := range result.Negative {
		sum += triangleArea(n)
	}
	assert.InDelta(t, originalArea, sum, 1e-6)
}

func TestSplitThroughTwoEdgesPreservesArea(t *testing.T) {
	tri := triangle.New(point.New(0, 0), point.New(6, 0), point.New(0, 6))
	l := line.FromPoints(point.New(3, -1), point.New(3, 7)) // vertical cut through the middle
	result := tri.Split(l)
	assert.Equal(t, triangle.SplitIntoTwo, result.Kind)

	originalArea := triangleArea(tri)
	var sum float64
	for _, p := range result.Positive {
		sum += triangleArea(p)
	}
	for _, n := range result.Negative {
		sum += triangleArea(n)
	}
	assert.InDelta(t, originalArea, sum, 1e-6)
}

func triangleArea(t triangle.Triangle) float64 {
	p := t.Points()
	return 0.5 * math.Abs(
		(p[1].X()-p[0].X())*(p[2].Y()-p[0].Y())-
			(p[2].X()-p[0].X())*(p[1].Y()-p[0].Y()),
	)
}
