package dissect

import "errors"

// ErrDegenerate is returned when a geometric operation collapses onto a
// degenerate configuration (coincident points, parallel cuts) it cannot
// recover from. It names the same kind of condition package line reports as
// line.ErrDegenerate, but does not wrap it: FrameSequence.Get reports it for
// any panic the geometric layers raise while producing a frame.
var ErrDegenerate = errors.New("dissect: degenerate geometry")

// ErrBadCut is returned when a dissection step's cut did not produce the
// piece configuration the construction requires. It wraps the same
// condition package transform reports as transform.ErrBadCut.
var ErrBadCut = errors.New("dissect: bad cut")

// ErrOutOfBounds is returned by FrameSequence.Get when the requested index
// is beyond the last frame the pipeline will ever produce.
var ErrOutOfBounds = errors.New("dissect: frame index out of bounds")

// ErrInvalidPolygon is reported by (*FrameSequence).Err when BuildFrames
// rejected the input polygon (see package polygon). The error Err returns
// wraps both this and polygon.ErrInvalidPolygon.
var ErrInvalidPolygon = errors.New("dissect: invalid polygon")
