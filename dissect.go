// Package dissect is a constructive proof of the Bolyai–Gerwien theorem:
// given any simple planar polygon, it produces a finite sequence of scissor
// cuts and rigid motions (translations and clockwise rotations, no
// reflections) that dissects the polygon into pieces which reassemble into
// a square of equal area.
//
// The package's only output is an ordered, lazily-produced list of Frames —
// snapshots of the piece collection at each intermediate step — suitable
// for driving an animation. Building and rendering the animation's canvas,
// collecting the input polygon's vertices from a user, and assigning piece
// colors are all host concerns outside this package's scope.
//
// # Pipeline
//
// BuildFrames drives a single polygon through five stages, each grounded on
// the corresponding construction in the geometric layers beneath this
// package (triangle, shape, transform):
//
//  1. Fan-triangulate the polygon from its first vertex.
//  2. Split every triangle into two right triangles (triangle.ToRightAngle).
//  3. Turn every right triangle into a three-piece rectangle
//     (triangle.ToRectangleSteps).
//  4. Turn every rectangle into a square (transform.SquishRectangle,
//     transform.RectangleToSquare).
//  5. Repeatedly merge pairs of squares into one larger square
//     (transform.MergeSquares) until a single square remains.
//
// Each stage is realized as an explicit state in pipeline's state machine
// rather than as a native coroutine, and advances exactly as far as
// FrameSequence.Get requires to satisfy a request — never further.
package dissect

func init() {
	logDebugf("debug logging enabled")
}
