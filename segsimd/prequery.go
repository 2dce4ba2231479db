// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package segsimd

import (
	"reflect"
	"unsafe"

	"github.com/grailbio/seg2d/segment"
)

// barrierHalf is one pre-processed barrier: half of a 32-byte chunk.
// The endpoint lanes are int16 in (y, x) order; the two pre-stored
// deltas are widened to int32 because e.g. x1 = 32767, x2 = -32768
// does not fit in an int16 lane.
//
// A zero barrierHalf degenerates to (0,0)-(0,0) with zero deltas, so
// every orientation against it is sign(0) = 0 and it can never report
// a crossing.  Tail padding relies on this.
type barrierHalf struct {
	y1, x1, y2, x2 int16
	cdx            int32 // x1 - x2
	dcy            int32 // y2 - y1
}

const (
	// bytesPerChunk is the size of one chunk: two barrierHalf records,
	// matching one 256-bit vector register.
	bytesPerChunk = 32
	// chunkAlign is the required alignment of the chunk buffer.
	chunkAlign = 32
	// halvesPerChunk is the number of barriers packed per chunk.
	halvesPerChunk = 2
	// barriersPerIter is the number of barriers consumed per kernel
	// iteration (two chunks).
	barriersPerIter = 4
)

// PrequeryState is an immutable chunked barrier layout, built once per
// barrier set and scanned by many queries, possibly from many
// goroutines at once.
type PrequeryState struct {
	numBarriers int
	numChunks   int
	// halves is the 32-byte-aligned view over raw.
	// len(halves) == halvesPerChunk * numChunks.
	halves []barrierHalf
	// raw keeps the over-allocated backing store reachable for as long
	// as the aligned view is.
	raw []byte
}

// alignedHalves allocates a chunkAlign-aligned []barrierHalf of length
// n.  It returns the aligned view together with the raw backing store,
// which the caller must keep alive alongside the view.
func alignedHalves(n int) ([]barrierHalf, []byte) {
	raw := make([]byte, n*int(unsafe.Sizeof(barrierHalf{}))+chunkAlign-1)
	base := uintptr(unsafe.Pointer(&raw[0]))
	aligned := base + uintptr((chunkAlign-int(base%chunkAlign))%chunkAlign)
	var halves []barrierHalf
	h := (*reflect.SliceHeader)(unsafe.Pointer(&halves))
	h.Data = aligned
	h.Len = n
	h.Cap = n
	return halves, raw
}

// LoadPrequery packs barriers into a fresh PrequeryState.
//
// numChunks is always even: one kernel iteration consumes two chunks.
// When len(barriers) is not a multiple of four, the unfilled slots in
// the final two chunks stay zeroed and are inert during scans.
func LoadPrequery(barriers []segment.Seg) *PrequeryState {
	numChunks := ((len(barriers) + 3) / 4) * 2
	// make() zero-fills, which covers the requirement that the final
	// two chunks be zeroed before real barriers are written into them.
	halves, raw := alignedHalves(numChunks * halvesPerChunk)
	for i, b := range barriers {
		h := &halves[i]
		h.y1 = b.P1.Y
		h.x1 = b.P1.X
		h.y2 = b.P2.Y
		h.x2 = b.P2.X
		h.cdx = int32(b.P1.X) - int32(b.P2.X)
		h.dcy = int32(b.P2.Y) - int32(b.P1.Y)
	}
	return &PrequeryState{
		numBarriers: len(barriers),
		numChunks:   numChunks,
		halves:      halves,
		raw:         raw,
	}
}

// NumBarriers returns the number of barriers loaded into the state.
func (s *PrequeryState) NumBarriers() int {
	return s.numBarriers
}

// NumChunks returns the number of 32-byte chunks in the state's
// buffer.  It is always even, and at least 2*ceil(NumBarriers()/4).
func (s *PrequeryState) NumChunks() int {
	return s.numChunks
}
