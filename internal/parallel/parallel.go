// Package parallel provides bounded fan-out/fan-in helpers for
// data-parallel filter execution.
//
// Filters partition their output into disjoint contiguous index ranges,
// compute each range on its own worker goroutine, and join before
// returning. There is no shared mutable state between ranges, so no
// synchronization beyond the final join is needed.
package parallel

import (
	"runtime"
	"sync"
)

// Workers resolves a requested worker count. Zero or negative means
// "use one worker per logical CPU" (GOMAXPROCS).
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Ranges splits [0, n) into at most workers contiguous ranges and calls
// fn(lo, hi) for each range on its own goroutine, then waits for all of
// them. Ranges are disjoint and cover [0, n) exactly, so each call may
// freely write its slice of the output without locking.
//
// For n <= 1 or a single worker the call runs synchronously on the
// caller's goroutine.
func Ranges(workers, n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers = Workers(workers)
	if workers > n {
		workers = n
	}
	if workers == 1 {
		fn(0, n)
		return
	}

	// Ceiling division keeps the last range no larger than the rest.
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
