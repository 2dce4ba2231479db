// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package segsimd answers "does this segment cross any barrier?" at
// high throughput.  Barriers are packed once into an aligned, chunked
// buffer with per-barrier constants precomputed (LoadPrequery); each
// query is then a single linear scan over the chunks, four barriers
// per iteration, with an early exit on the first crossing.
//
// The chunk layout mirrors a 256-bit integer vector register, so an
// assembly back end can be slotted in per target; the portable Go path
// in this package is the semantic specification, and is itself
// cross-validated against the scalar predicate in the segment package.
package segsimd
