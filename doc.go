// package barrier provides a reusable, lock-free counting barrier for a
// fixed set of cooperating goroutines on a shared-memory machine.
//
// A Shared holds two monotonically increasing counters: count, bumped once
// by every Arrive, and start, published once per round by the single arrival
// that makes count reach the round's target. Waiters spin on start, which
// changes at most once per round, so arrivals do not invalidate the cache
// line the waiters are watching. The counters never reset between rounds;
// the barrier rearms itself purely through arithmetic on a per-handle round
// boundary.
//
// A typical staged pipeline with n producers and a few consumers:
//
//	s := barrier.New()
//
//	// in every participating goroutine:
//	id := slot.Acquire()
//	defer slot.Release(id)
//	id.Lock()
//	defer id.Unlock()
//	h := s.Bind(id)
//
//	// producers, every round:
//	writeResults()
//	s.Arrive(&h, n)
//	h.Reset(n) // or s.WaitAndReset(&h, n) to also consume
//
//	// consumers, every round:
//	s.WaitAndReset(&h, n)
//	readResults() // sees everything written before the n Arrive calls
//
// Threads that are both producer and consumer call the composite
// s.Barrier(&h, n). Rounds repeat indefinitely with no reinitialization, and
// Arrive, Reset, and WaitAndReset may interleave across goroutines in any
// order within a round.
//
// Correct use is a caller obligation, not something the operations check:
// the total number of Arrive calls in a round must equal the events value
// every participant passes for that round, no Arrive for a round may happen
// before the previous round's arrivals are all in (pure producers need a
// reciprocal barrier or a data dependency to keep them from running ahead),
// a Handle must only be used by the goroutine that bound it, and every
// participant must Reset or WaitAndReset each round. An undercounted or
// skewed round leaves all waiters spinning forever.
package barrier
