// package slot reserves execution slots for goroutines doing lock-free work.
//
// A slot is a small unique index plus the CPU the goroutine was observed on
// when the slot was acquired. Primitives that hand out per-thread state (such
// as barrier handles) record the slot so that callers can keep a goroutine,
// its OS thread, and its slot together: Lock pins the goroutine to its OS
// thread, and Pin additionally restricts that thread to the recorded CPU on
// platforms that support it.
package slot

import (
	"runtime"
	"sync/atomic"

	"github.com/zeebo/barrier/internal/debug"
	"github.com/zeebo/barrier/internal/machine"
)

var slotData struct {
	next uint32
	used [machine.MaxSlots]uint32
}

// ID identifies a reserved execution slot. It must only be used by the
// goroutine that acquired it.
type ID struct {
	id  uint32
	cpu int32
}

// Acquire reserves a unique slot for the calling goroutine, recording the
// CPU it is currently running on. It panics if every slot is taken.
func Acquire() ID {
	start := atomic.AddUint32(&slotData.next, 1)
	end := start + machine.MaxSlots*2

retry:
	if start == end {
		panic("too many execution slots")
	}
	id := start % machine.MaxSlots

	if !atomic.CompareAndSwapUint32(&slotData.used[id], 0, 1) {
		start++
		goto retry
	}

	return ID{id: id, cpu: currentCPU()}
}

// Release returns the slot, letting it be acquired by other goroutines.
func Release(id ID) {
	debug.Assert("release of unheld slot", func() bool {
		return atomic.LoadUint32(&slotData.used[id.id%machine.MaxSlots]) == 1
	})
	atomic.StoreUint32(&slotData.used[id.id%machine.MaxSlots], 0)
}

// Index returns the slot's index in [0, machine.MaxSlots).
func (id ID) Index() uint32 { return id.id }

// CPU returns the CPU recorded at Acquire, or -1 when the platform does not
// expose one.
func (id ID) CPU() int { return int(id.cpu) }

// Lock wires the calling goroutine to its current OS thread until Unlock.
// State bound to the slot stays valid only while the goroutine cannot
// migrate, so hold the lock for as long as the slot's state is in use.
func (id ID) Lock() { runtime.LockOSThread() }

// Unlock undoes Lock.
func (id ID) Unlock() { runtime.UnlockOSThread() }

// Pin restricts the calling goroutine's OS thread to the slot's recorded
// CPU. The caller must have called Lock first. The returned func restores
// the thread's previous affinity mask. On platforms without affinity
// control, or when no CPU was recorded, Pin does nothing.
func (id ID) Pin() (restore func(), err error) {
	return pinCPU(id.cpu)
}
