package segment

import (
	"github.com/grailbio/base/log"
)

// Intersects reports whether q and b properly cross.  Collinear
// overlap, shared endpoints, and endpoint-on-interior touches are not
// crossings and return false, as do degenerate segments.
//
// This is the semantic reference for the chunked implementation in the
// segsimd package; the two are cross-validated by segsimd's tests.
func Intersects(q, b Seg) bool {
	ax, ay := int32(q.P1.X), int32(q.P1.Y)
	bx, by := int32(q.P2.X), int32(q.P2.Y)
	cx, cy := int32(b.P1.X), int32(b.P1.Y)
	dx, dy := int32(b.P2.X), int32(b.P2.Y)

	bax := bx - ax
	bay := by - ay

	// o1 = Clockness(A, B, C), o2 = Clockness(A, B, D), with the
	// query-side vector b-a hoisted out.
	o1 := Orient(bax, bay, bx-cx, by-cy)
	o2 := Orient(bax, bay, bx-dx, by-dy)
	if o1 == o2 {
		return false
	}
	// A zero orientation means an endpoint lies on the other segment's
	// line: a touch, not a proper crossing.
	if o1 == 0 || o2 == 0 {
		return false
	}

	dcx := dx - cx
	dcy := dy - cy
	o3 := Orient(dcx, dcy, dx-ax, dy-ay)
	o4 := Orient(dcx, dcy, dx-bx, dy-by)
	return o3 != o4 && o3 != 0 && o4 != 0
}

// AnyIntersections reports whether q properly crosses at least one
// barrier.
func AnyIntersections(q Seg, barriers []Seg) bool {
	for i := range barriers {
		if Intersects(q, barriers[i]) {
			return true
		}
	}
	return false
}

// BatchIntersect writes one byte per query: 1 if the query crosses at
// least one barrier, 0 otherwise, in query order.  It panics if
// results is shorter than queries.
func BatchIntersect(barriers, queries []Seg, results []byte) {
	if len(results) < len(queries) {
		log.Panicf("segment.BatchIntersect: len(results) = %d < len(queries) = %d", len(results), len(queries))
	}
	for i := range queries {
		if AnyIntersections(queries[i], barriers) {
			results[i] = 1
		} else {
			results[i] = 0
		}
	}
}

// CountMisses returns the number of queries that cross no barrier.
func CountMisses(barriers, queries []Seg) int {
	pass := 0
	for i := range queries {
		if !AnyIntersections(queries[i], barriers) {
			pass++
		}
	}
	return pass
}
