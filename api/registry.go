// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package api

import (
	"sync"

	"github.com/grailbio/seg2d/segsimd"
)

// Handle identifies a loaded prequery state across the ABI boundary.
// Handles are issued monotonically from 1 and are never reused within
// a process; zero is reserved as an invalid sentinel.
type Handle uint64

// registry is the process-wide handle table.  The mutex covers the map
// and the next-handle counter, and is never held across a scan: Query
// copies the state reference out under the lock and releases it before
// touching the chunk buffer.  The states themselves are immutable, and
// the garbage collector keeps one alive for any query still scanning
// it after a concurrent Free.
type registry struct {
	mu         sync.Mutex
	states     map[Handle]*segsimd.PrequeryState
	nextHandle Handle
}

var global = &registry{
	states:     make(map[Handle]*segsimd.PrequeryState),
	nextHandle: 1,
}

func (r *registry) insert(state *segsimd.PrequeryState) Handle {
	r.mu.Lock()
	h := r.nextHandle
	r.nextHandle++
	r.states[h] = state
	r.mu.Unlock()
	return h
}

func (r *registry) lookup(h Handle) (*segsimd.PrequeryState, bool) {
	r.mu.Lock()
	state, ok := r.states[h]
	r.mu.Unlock()
	return state, ok
}

func (r *registry) remove(h Handle) bool {
	r.mu.Lock()
	_, ok := r.states[h]
	if ok {
		delete(r.states, h)
	}
	r.mu.Unlock()
	return ok
}
