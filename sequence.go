package dissect

// FrameSequence is an ordered, finite, 0-indexed sequence of Frames backed
// by an on-demand pipeline and a growing cache. Accessing index i forces
// production of frames 0..i; production already performed is never redone.
//
// FrameSequence is not safe for concurrent use; it follows the
// single-threaded, pull-based generator model of the rest of this package.
type FrameSequence struct {
	pipeline *pipeline
	cache    []Frame
	finished bool

	// err is set when the pipeline itself fails partway through (a
	// Degenerate or BadCut condition) and is what Get returns for any index
	// at or beyond the failing frame.
	err error

	// validationErr is set instead of err when BuildFrames rejected the
	// input polygon before the pipeline ever ran. Get still reports
	// ErrOutOfBounds for this case; validationErr is only surfaced through
	// Err, for callers that want to know why.
	validationErr error
}

// Get returns the ith Frame, producing it — and any not-yet-cached frame
// before it — on demand. Repeated calls with the same, already-cached i
// return the identical cached Frame without invoking the pipeline again.
//
// Get returns ErrOutOfBounds once the pipeline is finished (including the
// case of an invalid input polygon, which finishes immediately with zero
// frames) and i is beyond the last frame ever produced. If the pipeline
// fails partway through (a Degenerate or BadCut condition), Get returns that
// error for i at or beyond the failing frame, while every index already
// cached remains valid and returns successfully forever after.
func (fs *FrameSequence) Get(i int) (Frame, error) {
	if i < 0 {
		return nil, ErrOutOfBounds
	}
	for len(fs.cache) <= i {
		if fs.finished {
			if fs.err != nil {
				return nil, fs.err
			}
			return nil, ErrOutOfBounds
		}
		frame, ok, err := fs.pipeline.step()
		if err != nil {
			fs.finished = true
			fs.err = err
			return nil, err
		}
		if !ok {
			fs.finished = true
			continue
		}
		fs.cache = append(fs.cache, frame)
	}
	return fs.cache[i], nil
}

// Len returns the number of frames produced and cached so far. It never
// forces further production; call Get to extend the cache.
func (fs *FrameSequence) Len() int {
	return len(fs.cache)
}

// Err returns the error that ended production, if any — whether the input
// polygon was rejected before the pipeline ran, or the pipeline itself
// failed partway through. It is nil while the sequence is still producing
// frames, and nil if the sequence ran to completion (every frame through
// the final square) without one.
func (fs *FrameSequence) Err() error {
	if fs.validationErr != nil {
		return fs.validationErr
	}
	return fs.err
}
