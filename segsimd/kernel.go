// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package segsimd

import (
	"github.com/grailbio/seg2d/segment"
)

// anyIntersections scans the chunk buffer for a barrier that q
// properly crosses.  It mirrors the vector formulation: all four
// orientations of all four barriers in an iteration are evaluated
// unconditionally, the per-barrier decision is taken on the two
// horizontal differences o1-o2 and o3-o4, and the scan exits after the
// first four-barrier group containing a crossing.
//
// Per barrier, with query endpoints A=(ax,ay), B=(bx,by) and barrier
// endpoints C, D, the four cross products are madd-shaped sums over
// the precomputed lanes:
//
//	o1* = bax*(by-cy) + aby*(bx-cx)
//	o2* = bax*(by-dy) + aby*(bx-dx)
//	o3* = cdx*(ay-dy) + dcy*(ax-dx)
//	o4* = cdx*(by-dy) + dcy*(bx-dx)
//
// where bax = bx-ax and aby = ay-by are computed once per query, and
// cdx = cx-dx, dcy = dy-cy are the pre-stored chunk deltas.  The signs
// of aby and dcy fold the usual "a*d - b*c" cross product into the
// pure-add form a pairwise multiply-add instruction produces.  Each
// o_i* has the same sign as the corresponding scalar Clockness.
func anyIntersections(q segment.Seg, halves []barrierHalf) bool {
	ax, ay := int32(q.P1.X), int32(q.P1.Y)
	bx, by := int32(q.P2.X), int32(q.P2.Y)
	bax := bx - ax
	aby := ay - by

	for base := 0; base < len(halves); base += barriersPerIter {
		hit := false
		for j := base; j < base+barriersPerIter; j++ {
			h := &halves[j]
			bcy := by - int32(h.y1)
			bcx := bx - int32(h.x1)
			bdy := by - int32(h.y2)
			bdx := bx - int32(h.x2)
			ady := ay - int32(h.y2)
			adx := ax - int32(h.x2)

			o1 := sign64(int64(bax)*int64(bcy) + int64(aby)*int64(bcx))
			o2 := sign64(int64(bax)*int64(bdy) + int64(aby)*int64(bdx))
			o3 := sign64(int64(h.cdx)*int64(ady) + int64(h.dcy)*int64(adx))
			o4 := sign64(int64(h.cdx)*int64(bdy) + int64(h.dcy)*int64(bdx))
			// A proper crossing needs opposite non-zero signs in both
			// pairs, i.e. both differences are +2 or -2; a difference of
			// +1 or -1 is a touch.
			d12, d34 := o1-o2, o3-o4
			hit = hit || ((d12 == 2 || d12 == -2) && (d34 == 2 || d34 == -2))
		}
		if hit {
			return true
		}
	}
	return false
}

func sign64(v int64) int32 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// AnyIntersections reports whether q properly crosses at least one
// loaded barrier.
func (s *PrequeryState) AnyIntersections(q segment.Seg) bool {
	return anyIntersections(q, s.halves)
}
