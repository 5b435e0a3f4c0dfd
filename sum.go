// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package halfsum

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Sum returns the arithmetic sum of values, computed by two concurrently
// executing workers that each sum one half of the input. The calling
// goroutine blocks until both workers have delivered their partial sums and
// then returns their total. An empty or nil slice yields 0. Addition wraps
// on int32 overflow, exactly as a sequential sum over the same values would.
//
// Sum consumes values: ownership transfers to the call and the caller should
// not rely on the slice afterwards. Each worker operates on its own copy of
// its half, so no memory is shared between the workers or with the caller.
//
// If a worker panics, the panic value is re-raised in the calling goroutine
// at join time. Sum never returns a partial or incorrect total in that case;
// it does not return at all.
func Sum(values []int32) int32 {
	left, right := halve(values)
	leftWorker := spawn(func() int32 { return fold(left) })
	rightWorker := spawn(func() int32 { return fold(right) })
	return join(leftWorker) + join(rightWorker)
}

// halve splits values at mid = len(values)/2 and clones each side into
// freshly allocated storage. For odd lengths the right half holds the extra
// element; for lengths 0 and 1 the left half is empty. The clones must not
// alias the input or each other, since each is handed to a separately
// scheduled worker with no synchronization back to the source slice.
func halve(values []int32) (left, right []int32) {
	mid := len(values) / 2
	return slices.Clone(values[:mid]), slices.Clone(values[mid:])
}

// fold sums a partition by plain left-to-right sequential addition, keeping
// the order of additions within a partition deterministic.
func fold[E constraints.Integer](partition []E) E {
	var total E
	for _, e := range partition {
		total += e
	}
	return total
}
