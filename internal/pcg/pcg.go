package pcg

import (
	"encoding/binary"
	"math/bits"
)

// PCG is a small permuted congruential generator. It is not cryptographic
// and not goroutine safe; each user keeps its own.
type PCG struct {
	state uint64
	inc   uint64
}

const mul = 6364136223846793005

// New constructs a pcg with the given state and inc.
func New(state, inc uint64) PCG {
	// equivalent to starting from a zero state with the updated inc and
	// stepping the generator twice with the state mixed in between, which
	// is how the reference implementation warms up.
	inc = inc<<1 | 1
	return PCG{
		state: (inc+state)*mul + inc,
		inc:   inc,
	}
}

// Uint32 returns a random uint32.
func (p *PCG) Uint32() uint32 {
	// predicted false almost always, making the zero value behave the
	// same as New(0, 0).
	if p.inc == 0 {
		*p = New(0, 0)
	}

	// LCG step
	oldstate := p.state
	p.state = oldstate*mul + p.inc

	// output permutation of the old state. a left rotate instead of the
	// canonical right rotate: any rotate works for the output compression
	// function and this one the compiler turns into a single instruction.
	xorshift := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	return bits.RotateLeft32(xorshift, int(oldstate>>59))
}

// Uint64 returns a random uint64.
func (p *PCG) Uint64() uint64 {
	return uint64(p.Uint32())<<32 | uint64(p.Uint32())
}

// Intn returns an int uniformly in [0, n)
func (p *PCG) Intn(n int) int {
	return fastMod(p.Uint32(), n)
}

// Fill overwrites buf with generator output.
func (p *PCG) Fill(buf []byte) {
	for len(buf) >= 4 {
		binary.LittleEndian.PutUint32(buf, p.Uint32())
		buf = buf[4:]
	}
	for i := range buf {
		buf[i] = byte(p.Uint32())
	}
}

// fastMod computes n % m assuming that n is a random number in the full
// uint32 range.
func fastMod(n uint32, m int) int {
	return int((uint64(n) * uint64(m)) >> 32)
}
