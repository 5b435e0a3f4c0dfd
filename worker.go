// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package halfsum

// An outcome is the only value that crosses from a worker back to the joining
// goroutine: either the worker's partial sum or the value it panicked with.
// The handoff is a single scalar at join time; workers never expose their
// partition or any intermediate state.
type outcome struct {
	partial    int32
	panicked   bool
	panicValue any
}

// spawn launches workFunc in a new goroutine and returns the channel on which
// its outcome will be delivered. The goroutine is created for this call alone
// and exits as soon as it has sent its outcome.
//
// The channel is buffered so the send can never block, even if the joining
// goroutine is itself unwinding from the other worker's fault. A panic inside
// workFunc is recovered and carried in the outcome instead of terminating the
// program from the worker goroutine; join re-raises it in the caller.
func spawn(workFunc func() int32) <-chan outcome {
	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{panicked: true, panicValue: r}
			}
		}()
		ch <- outcome{partial: workFunc()}
	}()
	return ch
}

// join blocks until the worker delivers its outcome and returns the partial
// sum. If the worker panicked, join re-raises the original panic value so the
// fault propagates to the caller rather than being swallowed; there is no
// degraded result.
func join(ch <-chan outcome) int32 {
	o := <-ch
	if o.panicked {
		panic(o.panicValue)
	}
	return o.partial
}
