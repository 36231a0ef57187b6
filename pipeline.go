package dissect

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/gerwien/dissect/point"
	"github.com/gerwien/dissect/polygon"
	"github.com/gerwien/dissect/shape"
	"github.com/gerwien/dissect/transform"
	"github.com/gerwien/dissect/triangle"
)

// stageID names one phase of the squaring pipeline, realized as an explicit,
// inspectable state machine rather than coroutine machinery.
type stageID int

const (
	stageTriangulate stageID = iota
	stageRightAngle
	stageRectangle
	stageSquare
	stageMerge
	stageFinished
)

// mergeAnchor is the arbitrary canvas point the merge pass re-anchors each
// completed square to.
var mergeAnchor = point.New(50, 50)

// rectWork holds the in-progress state of one right-triangle's conversion
// into a rectangle, so the two emitted frames (cut, then rotate) can share
// the stationary pieces between calls to step.
type rectWork struct {
	post, s1, s2 triangle.Triangle
}

// sqWork holds the in-progress state of one rectangle's conversion into a
// square: the ordered intermediate shapes transform.RectangleToSquare
// already computed, replayed one frame per step call.
type sqWork struct {
	frames []shape.Shape
	idx    int
}

// mergeWork is the sqWork equivalent for the merge pass.
type mergeWork struct {
	frames []shape.Shape
	idx    int
}

// pipeline is the explicit state machine driving one polygon's squaring. It
// is a pull-based producer: step is called exactly as many times as
// FrameSequence.Get needs to extend its cache, never more.
//
// Each stage keeps its pending pieces on an explicit
// github.com/emirpasic/gods/stacks/arraystack.
type pipeline struct {
	polygon []point.Point
	stage   stageID

	raPending *arraystack.Stack // pending triangle.Triangle, fresh from the fan
	raDone    []triangle.Triangle

	rectPending *arraystack.Stack // pending triangle.Triangle, already right-angled
	rectWork    *rectWork
	rectDone    []shape.Shape // completed 3-triangle rectangles

	sqPending *arraystack.Stack // pending shape.Shape rectangles
	sqWork    *sqWork
	sqDone    []shape.Shape // completed squares

	mergePending *arraystack.Stack // pending shape.Shape squares
	mergeWork    *mergeWork
}

func newPipeline(points []point.Point) *pipeline {
	return &pipeline{polygon: points, stage: stageTriangulate}
}

// step advances the pipeline by one unit of work and returns the Frame it
// produced. ok is false once the pipeline is finished and will never
// produce another frame. err is non-nil if a geometric operation the
// pipeline depends on failed; the pipeline is then also finished.
//
// Any panic raised by the triangle/shape layers on a degenerate
// configuration is recovered here and turned into an error, so
// FrameSequence.Get can report it as a normal failure instead of crashing
// the caller; frames already cached remain valid.
func (p *pipeline) step() (frame Frame, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			frame, ok = nil, false
			err = fmt.Errorf("dissect: %w: %v", ErrDegenerate, r)
		}
	}()

	for {
		switch p.stage {
		case stageTriangulate:
			f, more := p.stepTriangulate()
			return f, more, nil

		case stageRightAngle:
			f, advance := p.stepRightAngle()
			if advance {
				continue
			}
			return f, true, nil

		case stageRectangle:
			f, advance := p.stepRectangle()
			if advance {
				continue
			}
			return f, true, nil

		case stageSquare:
			f, advance, sqErr := p.stepSquare()
			if sqErr != nil {
				return nil, false, sqErr
			}
			if advance {
				continue
			}
			return f, true, nil

		case stageMerge:
			f, advance, mergeErr := p.stepMerge()
			if mergeErr != nil {
				return nil, false, mergeErr
			}
			if advance {
				continue
			}
			return f, true, nil

		case stageFinished:
			return nil, false, nil
		}
	}
}

func (p *pipeline) stepTriangulate() (Frame, bool) {
	triangles := polygon.FanTriangulate(p.polygon)
	p.raPending = arraystack.New()
	for _, t := range triangles {
		p.raPending.Push(t)
	}
	p.stage = stageRightAngle
	logDebugf("triangulated polygon into %d triangles", len(triangles))
	return cloneTriangles(triangles), true
}

// stepRightAngle pops one pending triangle and replaces it with its two
// right-angled sub-triangles, or, once the pending stack is drained,
// transitions to the rectangle stage. The bool return
// tells step whether to loop immediately (stage transition, no frame) or
// return the produced frame.
func (p *pipeline) stepRightAngle() (Frame, bool) {
	if p.raPending.Empty() {
		p.rectPending = arraystack.New()
		for _, t := range p.raDone {
			p.rectPending.Push(t)
		}
		p.raDone = nil
		p.stage = stageRectangle
		return nil, true
	}
	v, _ := p.raPending.Pop()
	t := v.(triangle.Triangle)
	t1, t2 := t.ToRightAngle()
	p.raDone = append(p.raDone, t1, t2)

	frame := make(Frame, 0, stackLen(p.raPending)+len(p.raDone))
	frame = append(frame, stackTriangles(p.raPending)...)
	frame = append(frame, p.raDone...)
	return frame, false
}

// stepRectangle runs one right triangle through ToRectangleSteps, emitting
// the pre-rotation cut as one frame and the post-rotation state as the
// next, or transitions to the square stage once every right triangle has
// been converted.
func (p *pipeline) stepRectangle() (Frame, bool) {
	if p.rectWork == nil {
		if p.rectPending.Empty() {
			p.sqPending = arraystack.New()
			for _, s := range p.rectDone {
				p.sqPending.Push(s)
			}
			p.rectDone = nil
			p.stage = stageSquare
			return nil, true
		}
		v, _ := p.rectPending.Pop()
		t := v.(triangle.Triangle)
		pre, post, s1, s2 := t.ToRectangleSteps()
		p.rectWork = &rectWork{post: post, s1: s1, s2: s2}
		return p.rectangleFrame([]triangle.Triangle{s1, s2}, pre), false
	}

	w := p.rectWork
	p.rectWork = nil
	frame := p.rectangleFrame([]triangle.Triangle{w.s1, w.s2}, w.post)
	p.rectDone = append(p.rectDone, shape.New(w.post, w.s1, w.s2))
	return frame, false
}

// rectangleFrame assembles a frame for the rectangle stage: every triangle
// still waiting in rectPending, every triangle already folded into a
// completed rectangle in rectDone, the in-progress triangle's stationary
// pieces, and finally active — the piece the current step just cut or
// rotated. It is always called before rectDone/rectWork are updated to
// reflect the step just taken, so active is never counted twice.
func (p *pipeline) rectangleFrame(stationary []triangle.Triangle, active triangle.Triangle) Frame {
	var frame Frame
	frame = append(frame, stackTriangles(p.rectPending)...)
	for _, s := range p.rectDone {
		frame = append(frame, s.Triangles()...)
	}
	frame = append(frame, stationary...)
	frame = append(frame, active)
	return frame
}

// stepSquare replays the ordered intermediate shapes transform.RectangleToSquare
// computed for one rectangle, one frame per call, or transitions to the
// merge stage once every rectangle has become a square.
func (p *pipeline) stepSquare() (Frame, bool, error) {
	if p.sqWork == nil {
		if p.sqPending.Empty() {
			p.mergePending = arraystack.New()
			for _, s := range p.sqDone {
				p.mergePending.Push(s)
			}
			p.sqDone = nil
			p.stage = stageMerge
			return nil, true, nil
		}
		v, _ := p.sqPending.Pop()
		rect := v.(shape.Shape)
		frames, err := transform.RectangleToSquare(rect)
		if err != nil {
			return nil, false, fmt.Errorf("dissect: %w: %w", ErrBadCut, err)
		}
		p.sqWork = &sqWork{frames: frames}
	}

	w := p.sqWork
	active := w.frames[w.idx]
	frame := p.squareFrame(active)
	w.idx++
	if w.idx >= len(w.frames) {
		p.sqDone = append(p.sqDone, active)
		p.sqWork = nil
	}
	return frame, false, nil
}

// squareFrame is called before sqDone is updated for the step just taken, so
// active (already reflected in neither sqPending nor sqDone at this point)
// is appended exactly once.
func (p *pipeline) squareFrame(active shape.Shape) Frame {
	var frame Frame
	frame = append(frame, stackShapeTriangles(p.sqPending)...)
	for _, s := range p.sqDone {
		frame = append(frame, s.Triangles()...)
	}
	frame = append(frame, active.Triangles()...)
	return frame
}

// stepMerge pops two pending squares and replays the ordered intermediate
// shapes transform.MergeSquares computed for combining them, one frame per
// call. The final frame of each merge is re-anchored
// to mergeAnchor (an arbitrary canvas point) and pushed back onto
// mergePending, since it may need to merge again with what remains.
// Transitions to Finished once at most one square remains.
func (p *pipeline) stepMerge() (Frame, bool, error) {
	if p.mergeWork == nil {
		if p.mergePending.Size() <= 1 {
			p.stage = stageFinished
			return nil, true, nil
		}
		va, _ := p.mergePending.Pop()
		vb, _ := p.mergePending.Pop()
		a, b := va.(shape.Shape), vb.(shape.Shape)
		frames, err := transform.MergeSquares(a, b)
		if err != nil {
			return nil, false, fmt.Errorf("dissect: %w: %w", ErrBadCut, err)
		}
		p.mergeWork = &mergeWork{frames: frames}
	}

	w := p.mergeWork
	active := w.frames[w.idx]
	isLast := w.idx == len(w.frames)-1
	if isLast {
		hull := active.ConvexHull()
		active = active.Translate(mergeAnchor.Sub(hull[0]))
	}

	// Built before the pending stack is mutated below, so active (not yet
	// pushed back) is never double-counted.
	frame := p.mergeFrame(active)

	w.idx++
	if isLast {
		p.mergePending.Push(active)
		p.mergeWork = nil
	}
	return frame, false, nil
}

func (p *pipeline) mergeFrame(active shape.Shape) Frame {
	var frame Frame
	frame = append(frame, stackShapeTriangles(p.mergePending)...)
	frame = append(frame, active.Triangles()...)
	return frame
}

func cloneTriangles(ts []triangle.Triangle) Frame {
	out := make(Frame, len(ts))
	copy(out, ts)
	return out
}

func stackTriangles(s *arraystack.Stack) []triangle.Triangle {
	values := s.Values()
	out := make([]triangle.Triangle, 0, len(values))
	for _, v := range values {
		out = append(out, v.(triangle.Triangle))
	}
	return out
}

func stackShapeTriangles(s *arraystack.Stack) []triangle.Triangle {
	var out []triangle.Triangle
	for _, v := range s.Values() {
		out = append(out, v.(shape.Shape).Triangles()...)
	}
	return out
}

func stackLen(s *arraystack.Stack) int {
	return s.Size()
}
