package dissect_test

import (
	"math"
	"testing"

	"github.com/gerwien/dissect"
	"github.com/gerwien/dissect/point"
	"github.com/gerwien/dissect/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameArea(f dissect.Frame) float64 {
	var sum float64
	for _, tri := range f.Triangles() {
		p := tri.Points()
		sum += 0.5 * math.Abs(
			(p[1].X()-p[0].X())*(p[2].Y()-p[0].Y())-
				(p[2].X()-p[0].X())*(p[1].Y()-p[0].Y()),
		)
	}
	return sum
}

func lastFrame(t *testing.T, seq *dissect.FrameSequence) dissect.Frame {
	t.Helper()
	var last dissect.Frame
	for i := 0; ; i++ {
		f, err := seq.Get(i)
		if err != nil {
			require.ErrorIs(t, err, dissect.ErrOutOfBounds)
			break
		}
		last = f
	}
	require.NotNil(t, last)
	return last
}

// squareSide returns the side length of a frame whose final convex hull is
// (within tolerance) a square — via shoelace over the frame's triangles
// rather than relying on shape.Shape, since Frame is a plain triangle list.
func squareSide(t *testing.T, f dissect.Frame) float64 {
	t.Helper()
	return math.Sqrt(frameArea(f))
}

func TestBuildFramesRightIsocelesTriangle(t *testing.T) {
	poly := []point.Point{point.New(0, 0), point.New(100, 0), point.New(0, 100)}
	seq := dissect.BuildFrames(poly)

	first, err := seq.Get(0)
	require.NoError(t, err)
	assert.InDelta(t, 5000, frameArea(first), 1e-6)

	final := lastFrame(t, seq)
	assert.InDelta(t, math.Sqrt(5000), squareSide(t, final), 1e-3)
	assert.InDelta(t, 5000, frameArea(final), 1e-3)
}

func TestBuildFramesUnitSquareScaledByTen(t *testing.T) {
	poly := []point.Point{point.New(0, 0), point.New(10, 0), point.New(10, 10), point.New(0, 10)}
	seq := dissect.BuildFrames(poly)

	first, err := seq.Get(0)
	require.NoError(t, err)
	assert.Len(t, first.Triangles(), 2)

	final := lastFrame(t, seq)
	assert.InDelta(t, 10, squareSide(t, final), 1e-3)
}

func TestBuildFramesGoldenRectangle(t *testing.T) {
	poly := []point.Point{point.New(0, 0), point.New(100, 0), point.New(100, 62), point.New(0, 62)}
	seq := dissect.BuildFrames(poly)
	final := lastFrame(t, seq)
	assert.InDelta(t, math.Sqrt(6200), squareSide(t, final), 1e-2)
}

func TestBuildFramesThinRectangle(t *testing.T) {
	poly := []point.Point{point.New(0, 0), point.New(400, 0), point.New(400, 50), point.New(0, 50)}
	seq := dissect.BuildFrames(poly)
	final := lastFrame(t, seq)
	assert.InDelta(t, math.Sqrt(20000), squareSide(t, final), 1e-1)
}

func TestBuildFramesConvexPentagon(t *testing.T) {
	poly := []point.Point{
		point.New(0, 0), point.New(100, 0), point.New(130, 70),
		point.New(50, 120), point.New(-20, 70),
	}
	seq := dissect.BuildFrames(poly)

	first, err := seq.Get(0)
	require.NoError(t, err)
	assert.Len(t, first.Triangles(), 3)

	originalArea := frameArea(first)
	final := lastFrame(t, seq)
	assert.InDelta(t, math.Sqrt(originalArea), squareSide(t, final), 1e-1)
}

func TestFinalFrameHullIsSquare(t *testing.T) {
	poly := []point.Point{point.New(0, 0), point.New(100, 0), point.New(0, 100)}
	final := lastFrame(t, dissect.BuildFrames(poly))

	s := shape.New(final.Triangles()...)
	hull := s.ConvexHull()
	require.Len(t, hull, 4)
	assert.InDelta(t, s.Height(), s.Width(), 1e-3)
	assert.InDelta(t, 5000, s.Height()*s.Width(), 1)
}

func TestEveryFramePreservesPolygonArea(t *testing.T) {
	poly := []point.Point{
		point.New(0, 0), point.New(100, 0), point.New(130, 70),
		point.New(50, 120), point.New(-20, 70),
	}
	seq := dissect.BuildFrames(poly)

	first, err := seq.Get(0)
	require.NoError(t, err)
	want := frameArea(first)

	for i := 1; ; i++ {
		f, err := seq.Get(i)
		if err != nil {
			require.ErrorIs(t, err, dissect.ErrOutOfBounds)
			break
		}
		assert.InDeltaf(t, want, frameArea(f), want*1e-6, "frame %d", i)
	}
}

func TestFrameSequenceOutOfBoundsDoesNotPanicAndDoesNotCorruptEarlierFrames(t *testing.T) {
	poly := []point.Point{point.New(0, 0), point.New(10, 0), point.New(0, 10)}
	seq := dissect.BuildFrames(poly)

	assert.NotPanics(t, func() {
		_, err := seq.Get(1_000_000_000)
		assert.ErrorIs(t, err, dissect.ErrOutOfBounds)
	})

	first, err := seq.Get(0)
	require.NoError(t, err)
	assert.NotEmpty(t, first)
}

func TestFrameSequenceIsLazyAndCaches(t *testing.T) {
	poly := []point.Point{point.New(0, 0), point.New(10, 0), point.New(0, 10)}
	seq := dissect.BuildFrames(poly)

	f3, err := seq.Get(3)
	require.NoError(t, err)
	producedAfterFirstCall := seq.Len()

	f3Again, err := seq.Get(3)
	require.NoError(t, err)
	assert.Equal(t, producedAfterFirstCall, seq.Len(), "re-fetching an already-cached index should not produce more frames")
	assert.Equal(t, f3, f3Again)

	f1, err := seq.Get(1)
	require.NoError(t, err)
	assert.Equal(t, producedAfterFirstCall, seq.Len(), "fetching an earlier index should not re-invoke the producer")
	assert.NotNil(t, f1)
}

func TestBuildFramesRejectsTooFewPoints(t *testing.T) {
	seq := dissect.BuildFrames([]point.Point{point.New(0, 0), point.New(1, 0)})

	_, err := seq.Get(0)
	assert.ErrorIs(t, err, dissect.ErrOutOfBounds)
	assert.ErrorIs(t, seq.Err(), dissect.ErrInvalidPolygon)
}

func TestBuildFramesRejectsZeroAreaPolygon(t *testing.T) {
	seq := dissect.BuildFrames([]point.Point{point.New(0, 0), point.New(1, 0), point.New(2, 0)})

	_, err := seq.Get(0)
	assert.ErrorIs(t, err, dissect.ErrOutOfBounds)
	assert.ErrorIs(t, seq.Err(), dissect.ErrInvalidPolygon)
}

func TestBuildFramesRejectsSelfIntersectingPolygon(t *testing.T) {
	// A "bowtie" quadrilateral: edges 0-1 and 2-3 cross.
	poly := []point.Point{point.New(0, 0), point.New(10, 10), point.New(10, 0), point.New(0, 10)}
	seq := dissect.BuildFrames(poly)

	_, err := seq.Get(0)
	assert.ErrorIs(t, err, dissect.ErrOutOfBounds)
	assert.ErrorIs(t, seq.Err(), dissect.ErrInvalidPolygon)
}

func TestFirstFiveFramesAreNonEmpty(t *testing.T) {
	// Each of the first five frames exists and holds at least one triangle.
	poly := []point.Point{point.New(0, 0), point.New(6, 0), point.New(0, 6)}
	seq := dissect.BuildFrames(poly)
	for i := 0; i < 5; i++ {
		f, err := seq.Get(i)
		require.NoError(t, err)
		assert.NotEmpty(t, f.Triangles())
	}
}
