// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package halfsum computes the sum of an int32 sequence by splitting it into
// two halves and summing each half on its own concurrently executing worker.
// It separates launching the workers from joining their results so that the
// two partial sums are computed in parallel while the final addition remains
// sequential in the calling goroutine.
//
// Each worker receives a freshly allocated copy of its half rather than a
// view of the caller's storage. The copies alias neither the input nor each
// other, so the two workers share no mutable memory and need no
// synchronization beyond the result handoff itself. The cost of this
// ownership transfer is one extra allocation and copy per half per call.
//
// [Sum] is the only entry point. The workers are created per call and torn
// down before it returns; there is no pool, no cancellation, and no timeout.
// A worker that terminates abnormally causes the whole operation to fail:
// the fault is re-raised in the calling goroutine rather than being absorbed,
// since both partial sums are required to produce a correct total.
package halfsum
