package dissect

import (
	"fmt"

	"github.com/gerwien/dissect/point"
	"github.com/gerwien/dissect/polygon"
)

// BuildFrames validates polygon and returns a FrameSequence that will
// lazily drive it through the full squaring pipeline on demand.
//
// polygon is an ordered list of vertices around a simple polygon's
// boundary; it is copied, so later mutation of the caller's slice has no
// effect on the returned sequence.
//
// If polygon fails validation (fewer than three vertices, zero area, or
// self-intersecting edges, see polygon.Validate), BuildFrames still returns
// a non-nil FrameSequence, but one that is already finished and produces no
// frames: every Get returns ErrOutOfBounds. Call (*FrameSequence).Err to
// distinguish that case from a genuinely empty but otherwise valid result.
func BuildFrames(poly []point.Point) *FrameSequence {
	if err := polygon.Validate(poly); err != nil {
		wrapped := fmt.Errorf("dissect: %w: %w", ErrInvalidPolygon, err)
		logDebugf("rejected polygon: %v", wrapped)
		return &FrameSequence{finished: true, validationErr: wrapped}
	}

	cp := make([]point.Point, len(poly))
	copy(cp, poly)
	logDebugf("building frames for a %d-vertex polygon", len(cp))
	return &FrameSequence{pipeline: newPipeline(cp)}
}
