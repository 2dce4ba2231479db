// Package segment defines exact integer 2D segment geometry: the
// orientation sign primitive and the proper-crossing predicate built
// from it.  All arithmetic is integer and exact; there is no floating
// point anywhere in this module.
package segment

// Point is a 2D point with exact 16-bit integer coordinates.
type Point struct {
	X int16
	Y int16
}

// Seg is a 2D line segment between two points.  The two endpoints are
// interchangeable: no operation in this module distinguishes P1->P2
// from P2->P1.
//
// The in-memory layout (x1, y1, x2, y2; four int16s, 8 bytes total) is
// part of the C ABI and must not change.
type Seg struct {
	P1 Point
	P2 Point
}

// MakeSeg is a convenience constructor from raw coordinates.
func MakeSeg(x1, y1, x2, y2 int16) Seg {
	return Seg{Point{x1, y1}, Point{x2, y2}}
}

// Degenerate returns true iff both endpoints coincide.  Degenerate
// segments never intersect anything.
func (s Seg) Degenerate() bool {
	return s.P1 == s.P2
}
