package barrier

import (
	"github.com/zeebo/barrier/slot"
)

// Handle is the per-goroutine half of the barrier: the round boundary this
// goroutine has already passed plus a bound reference to the shared arrival
// counter. A Handle belongs exclusively to the goroutine and execution slot
// that created it; it must not be copied to or used from anywhere else, and
// if the goroutine moves to a different slot the handle must be rebound.
type Handle struct {
	local uint64  // round boundary already passed
	count *uint64 // bound fetch-and-increment target in the Shared
	slot  slot.ID // execution slot the handle was bound on
}

// Bind creates the caller's Handle for s. Call it once per participating
// goroutine, after Init and before any Arrive. The slot records where the
// handle was bound; keep the goroutine locked to it (slot.ID.Lock) while the
// handle is in use.
func (s *Shared) Bind(id slot.ID) Handle {
	return Handle{count: &s.count, slot: id}
}

// Slot returns the execution slot the handle was bound on.
func (h *Handle) Slot() slot.ID { return h.slot }

// Reset advances the handle past the current round without waiting and
// without synchronizing memory: unlike WaitAndReset, it makes no guarantee
// that values written before other goroutines' Arrive calls are visible
// afterward. It is the fast path for pure producers that will not read the
// round's results.
func (h *Handle) Reset(events uint64) {
	h.local += events
}
