// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package segsimd

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/seg2d/segment"
)

// Query writes one byte per query: 1 if the query crosses at least one
// barrier, 0 otherwise, in query order.  It does not mutate the state
// and has no side effects beyond filling results.  It panics if
// results is shorter than queries.
func (s *PrequeryState) Query(queries []segment.Seg, results []byte) {
	if len(results) < len(queries) {
		log.Panicf("segsimd.Query: len(results) = %d < len(queries) = %d", len(results), len(queries))
	}
	for i := range queries {
		if anyIntersections(queries[i], s.halves) {
			results[i] = 1
		} else {
			results[i] = 0
		}
	}
}

// QueryParallel is Query sharded across the given number of
// goroutines.  Results are identical to Query; only the evaluation
// order differs.  The state is immutable, so shards share it without
// synchronization.
func (s *PrequeryState) QueryParallel(queries []segment.Seg, results []byte, parallelism int) {
	if len(results) < len(queries) {
		log.Panicf("segsimd.QueryParallel: len(results) = %d < len(queries) = %d", len(results), len(queries))
	}
	if parallelism < 1 || len(queries) < 2*parallelism {
		s.Query(queries, results)
		return
	}
	n := len(queries)
	traverse.Each(parallelism, func(shard int) error { // nolint: errcheck
		start := shard * n / parallelism
		end := (shard + 1) * n / parallelism
		s.Query(queries[start:end], results[start:end])
		return nil
	})
}

// CountMisses returns the number of queries that cross no barrier.
// This matches segment.CountMisses on the same inputs.
func (s *PrequeryState) CountMisses(queries []segment.Seg) int {
	pass := 0
	for i := range queries {
		if !anyIntersections(queries[i], s.halves) {
			pass++
		}
	}
	return pass
}
