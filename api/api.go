// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package api mediates prequery states behind opaque integer handles
// for ABI callers.  Load builds a state and registers it, Query runs
// the batched scan against a registered state, Free releases it.  All
// calls are synchronous on the caller's goroutine and safe to issue
// concurrently.
//
// Every call converts an internal panic into ErrorUnknown after
// logging it once; no fault poisons the registry.
package api

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/seg2d/segment"
	"github.com/grailbio/seg2d/segsimd"
)

// convertPanic is deferred by every exported call.  It reports the
// recovered value on the error stream, tagged with the call it escaped
// from, and downgrades the call's result to ErrorUnknown.
func convertPanic(call string, result *Result) {
	if r := recover(); r != nil {
		log.Error.Printf("seg2d api error @ %s: %v", call, r)
		*result = ErrorUnknown
	}
}

// GetVersion returns the ABI version constant, 1337.
func GetVersion() int32 {
	return Version
}

// LoadPrequeryAnySegmentIntersections builds a prequery state from the
// barriers and registers it, returning its handle.  The barrier slice
// is copied into the state; the caller may reuse it afterwards.
func LoadPrequeryAnySegmentIntersections(barriers []segment.Seg) (handle Handle, result Result) {
	defer convertPanic("LoadPrequeryAnySegmentIntersections", &result)
	state := segsimd.LoadPrequery(barriers)
	return global.insert(state), Success
}

// QueryAnySegmentIntersections scans every query against the state
// registered under handle, writing one byte per query into results: 1
// if the query crosses at least one barrier, 0 otherwise.  On any
// result other than Success the contents of results are undefined.
//
// The registry lock is released before the scan starts; a concurrent
// Free of the same handle does not disturb a query already past
// lookup.
func QueryAnySegmentIntersections(handle Handle, queries []segment.Seg, results []byte) (result Result) {
	defer convertPanic("QueryAnySegmentIntersections", &result)
	state, ok := global.lookup(handle)
	if !ok {
		return ErrorUnknownHandle
	}
	state.Query(queries, results)
	return Success
}

// FreePrequeryAnySegmentIntersections removes the state registered
// under handle.  In-flight queries holding the state continue to
// completion; the state is collected when the last of them finishes.
func FreePrequeryAnySegmentIntersections(handle Handle) (result Result) {
	defer convertPanic("FreePrequeryAnySegmentIntersections", &result)
	if !global.remove(handle) {
		return ErrorUnknownHandle
	}
	return Success
}
