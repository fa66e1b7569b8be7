package team

import (
	"runtime"
	"testing"

	"github.com/zeebo/barrier"
	"github.com/zeebo/barrier/internal/assert"
	"github.com/zeebo/barrier/internal/machine"
)

func TestRun(t *testing.T) {
	const (
		n      = 4
		rounds = 32
	)

	s := barrier.New()
	ran := make([]int, n)
	slots := make([]uint32, n)
	sizes := make([]int, n)

	Run(s, n, func(w Worker) {
		h := w.Handle
		for r := 0; r < rounds; r++ {
			s.Barrier(&h, n)
		}
		ran[w.ID]++
		slots[w.ID] = w.Slot.Index()
		sizes[w.ID] = w.N
	})

	seen := make(map[uint32]bool)
	for i := 0; i < n; i++ {
		assert.Equal(t, ran[i], 1)
		assert.Equal(t, sizes[i], n)
		assert.That(t, !seen[slots[i]])
		seen[slots[i]] = true
	}
}

func BenchmarkRun(b *testing.B) {
	n := runtime.GOMAXPROCS(0)
	if n > machine.MaxSlots {
		n = machine.MaxSlots
	}

	b.ReportAllocs()
	b.ResetTimer()

	s := barrier.New()
	Run(s, n, func(w Worker) {
		h := w.Handle
		for i := 0; i < b.N; i++ {
			s.Barrier(&h, uint64(w.N))
		}
	})
}
