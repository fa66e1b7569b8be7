package barrier

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/zeebo/barrier/internal/machine"
)

// Shared is the node-wide half of the barrier. Both counters only ever grow;
// they will not wrap for hundreds of years of continuous rounds.
type Shared struct {
	// start holds the arrival count at which the latest round completed.
	// written by exactly one goroutine per round, spun on by waiters.
	start uint64
	_     machine.Pad56

	// count is bumped by every Arrive. it lives on its own cache line so
	// that arrivals do not disturb the line the waiters spin on.
	count uint64
	_     machine.Pad56
}

type ( // ensure start and count occupy disjoint cache lines
	_ [unsafe.Offsetof(Shared{}.count) - machine.CacheLine]byte
	_ [machine.CacheLine - unsafe.Offsetof(Shared{}.count)]byte
	_ [unsafe.Sizeof(Shared{}) - 2*machine.CacheLine]byte
	_ [2*machine.CacheLine - unsafe.Sizeof(Shared{})]byte
)

// New allocates a Shared ready for Bind calls. The caller owns it and keeps
// it alive for the whole parallel region.
func New() *Shared {
	return new(Shared)
}

// Init zeroes the counters. The zero value is already initialized; Init
// exists to reuse a Shared for an unrelated parallel region. It must be
// called by a single goroutine before any other goroutine holds a Handle
// bound to s.
func (s *Shared) Init() {
	s.start = 0
	s.count = 0
}

const (
	// spinYield is how many failed loads of start a waiter takes before
	// yielding to the scheduler. the yield keeps oversubscribed schedulers
	// live and plays no part in the memory ordering contract.
	spinYield = 128

	// spinWarn is how many yields a waiter takes before complaining that
	// the round looks stalled. it keeps spinning afterwards.
	spinWarn = 1 << 22
)

// Arrive announces one arrival at the barrier. Only producers need to call
// it, and a goroutine may arrive any number of times per round; the protocol
// only requires that the total number of Arrive calls in a round equal the
// events value every participant uses for that round.
//
// The atomic add is a full fence, so every write the caller made before
// Arrive is ordered before its arrival becomes visible. The single arrival
// that brings count up to the handle's round target publishes start, which
// releases everyone in WaitAndReset. Equality, not >=, keeps that publisher
// unique: count moves by exactly one per arrival.
func (s *Shared) Arrive(h *Handle, events uint64) {
	current := atomic.AddUint64(h.count, 1)
	if target := h.local + events; current == target {
		atomic.StoreUint64(&s.start, current)
	}
}

// WaitAndReset advances the handle past the current round and spins until
// every expected arrival for the round has happened. When it returns, every
// write made by every goroutine before its Arrive calls in the round is
// visible to the caller: the load of start that ends the spin is the acquire
// pairing for the last arriver's release store.
//
// The wait is unbounded. A round that never reaches its arrival count keeps
// all of its waiters spinning; after a long while they print a stall warning
// to stderr and spin on.
func (s *Shared) WaitAndReset(h *Handle, events uint64) {
	target := h.local + events
	h.local = target

	spins, yields := 0, 0
	for atomic.LoadUint64(&s.start) < target {
		if spins++; spins < spinYield {
			continue
		}
		spins = 0
		runtime.Gosched()
		if yields++; yields == spinWarn {
			yields = 0
			fmt.Fprintln(os.Stderr, "Slowdown: barrier stalled waiting for arrivals")
		}
	}
}

// Barrier arrives and then waits: the composite for goroutines that both
// produce into and consume out of the same round.
func (s *Shared) Barrier(h *Handle, events uint64) {
	s.Arrive(h, events)
	s.WaitAndReset(h, events)
}
