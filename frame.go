package dissect

import "github.com/gerwien/dissect/triangle"

// Frame is an immutable snapshot of the collection of triangular pieces at
// one step of the squaring pipeline.
//
// The pieces a stage has not yet touched and those it already finished
// with come first; the piece(s) the step that
// produced this Frame just cut or moved come last, so a renderer can
// highlight the final element as "the one just changed".
type Frame []triangle.Triangle

// Triangles returns the ordered list of triangles making up f.
func (f Frame) Triangles() []triangle.Triangle {
	return []triangle.Triangle(f)
}
