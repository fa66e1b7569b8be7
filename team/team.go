// package team runs a fixed-size group of workers against one barrier.
//
// It is the moral equivalent of a parallel region: Run starts n goroutines,
// gives each an execution slot, an OS-thread lock, and a bound barrier
// handle, and returns when they all finish. The barrier itself stays a bare
// primitive; this package is only the plumbing around it.
package team

import (
	"sync"

	"github.com/zeebo/barrier"
	"github.com/zeebo/barrier/slot"
)

// Worker is what each worker's fn receives.
type Worker struct {
	ID     int            // worker index in [0, N)
	N      int            // team size
	Slot   slot.ID        // the worker's execution slot
	Handle barrier.Handle // bound to the Shared passed to Run
}

// Run starts n workers and waits for all of them to return. Every worker
// holds a slot and an OS-thread lock for the duration of fn, and its Handle
// is bound to s. fn runs concurrently in all workers; the usual pattern is
// rounds of work separated by w.Handle operations against s.
func Run(s *barrier.Shared, n int, fn func(w Worker)) {
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()

			id := slot.Acquire()
			defer slot.Release(id)

			id.Lock()
			defer id.Unlock()

			fn(Worker{
				ID:     i,
				N:      n,
				Slot:   id,
				Handle: s.Bind(id),
			})
		}(i)
	}

	wg.Wait()
}
