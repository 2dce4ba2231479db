// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package api_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/grailbio/seg2d/api"
	"github.com/grailbio/seg2d/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	assert.Equal(t, int32(1337), api.GetVersion())
}

func TestLoadQueryFree(t *testing.T) {
	barriers := []segment.Seg{
		segment.MakeSeg(0, 5, 10, 5),
		segment.MakeSeg(5, 0, 5, 10),
	}
	handle, result := api.LoadPrequeryAnySegmentIntersections(barriers)
	require.Equal(t, api.Success, result)
	require.NotEqual(t, api.Handle(0), handle)

	queries := []segment.Seg{
		segment.MakeSeg(0, 0, 10, 10),
		segment.MakeSeg(100, 100, 200, 200),
		segment.MakeSeg(4, 6, 6, 4),
	}
	results := make([]byte, len(queries))
	require.Equal(t, api.Success, api.QueryAnySegmentIntersections(handle, queries, results))
	assert.Equal(t, []byte{1, 0, 1}, results)

	require.Equal(t, api.Success, api.FreePrequeryAnySegmentIntersections(handle))
	assert.Equal(t, api.ErrorUnknownHandle, api.QueryAnySegmentIntersections(handle, queries, results))
	assert.Equal(t, api.ErrorUnknownHandle, api.FreePrequeryAnySegmentIntersections(handle))
}

func TestUnknownHandle(t *testing.T) {
	assert.Equal(t, api.ErrorUnknownHandle, api.QueryAnySegmentIntersections(0, nil, nil))
	assert.Equal(t, api.ErrorUnknownHandle, api.FreePrequeryAnySegmentIntersections(0))
	assert.Equal(t, api.ErrorUnknownHandle, api.QueryAnySegmentIntersections(^api.Handle(0), nil, nil))
}

func TestHandlesMonotonic(t *testing.T) {
	var last api.Handle
	for i := 0; i < 20; i++ {
		handle, result := api.LoadPrequeryAnySegmentIntersections(nil)
		require.Equal(t, api.Success, result)
		require.True(t, handle > last, "handle %d after %d", handle, last)
		last = handle
		require.Equal(t, api.Success, api.FreePrequeryAnySegmentIntersections(handle))
	}
}

func TestShortResultsBuffer(t *testing.T) {
	handle, result := api.LoadPrequeryAnySegmentIntersections(nil)
	require.Equal(t, api.Success, result)
	defer api.FreePrequeryAnySegmentIntersections(handle)

	// The internal panic must come back as ErrorUnknown, and the
	// registry must stay usable.
	queries := []segment.Seg{segment.MakeSeg(0, 0, 1, 1)}
	assert.Equal(t, api.ErrorUnknown, api.QueryAnySegmentIntersections(handle, queries, nil))
	results := make([]byte, 1)
	assert.Equal(t, api.Success, api.QueryAnySegmentIntersections(handle, queries, results))
}

func TestConcurrentLoadQueryFree(t *testing.T) {
	barriers := []segment.Seg{
		segment.MakeSeg(0, 5, 10, 5),
		segment.MakeSeg(5, 0, 5, 10),
	}
	queries := []segment.Seg{
		segment.MakeSeg(0, 0, 10, 10),
		segment.MakeSeg(100, 100, 200, 200),
		segment.MakeSeg(4, 6, 6, 4),
	}
	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			for i := 0; i < 300; i++ {
				handle, result := api.LoadPrequeryAnySegmentIntersections(barriers)
				if result != api.Success {
					t.Errorf("Load: %v", result)
					return
				}
				results := make([]byte, len(queries))
				if result = api.QueryAnySegmentIntersections(handle, queries, results); result != api.Success {
					t.Errorf("Query: %v", result)
					return
				}
				if results[0] != 1 || results[1] != 0 || results[2] != 1 {
					t.Errorf("Query results: %v", results)
					return
				}
				if r.Intn(2) == 0 {
					// Free from a sibling goroutine while this one may
					// still be between calls.
					go api.FreePrequeryAnySegmentIntersections(handle)
				} else if result = api.FreePrequeryAnySegmentIntersections(handle); result != api.Success {
					t.Errorf("Free: %v", result)
					return
				}
			}
		}(int64(worker))
	}
	wg.Wait()
}
