package slot

import (
	"testing"

	"github.com/zeebo/barrier/internal/assert"
	"github.com/zeebo/barrier/internal/machine"
)

func TestSlot(t *testing.T) {
	t.Run("Distinct", func(t *testing.T) {
		const n = 8

		ids := make([]ID, n)
		seen := make(map[uint32]bool)
		for i := range ids {
			ids[i] = Acquire()
			assert.That(t, !seen[ids[i].Index()])
			seen[ids[i].Index()] = true
		}
		for _, id := range ids {
			Release(id)
		}
	})

	t.Run("Reuse", func(t *testing.T) {
		// cycle through the table a few times; released slots come back.
		for i := 0; i < 3*machine.MaxSlots; i++ {
			id := Acquire()
			assert.That(t, id.Index() < machine.MaxSlots)
			Release(id)
		}
	})

	t.Run("Pin", func(t *testing.T) {
		id := Acquire()
		defer Release(id)

		id.Lock()
		defer id.Unlock()

		restore, err := id.Pin()
		assert.That(t, err == nil)
		restore()
	})
}

func BenchmarkSlot(b *testing.B) {
	b.ReportAllocs()

	b.Run("Acquire+Release", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			id := Acquire()
			Release(id)
		}
	})

	b.Run("Acquire+Release Parallel", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				id := Acquire()
				Release(id)
			}
		})
	})
}
