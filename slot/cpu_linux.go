//go:build linux
// +build linux

package slot

import (
	"golang.org/x/sys/unix"
)

func currentCPU() int32 {
	cpu, _, err := unix.Getcpu()
	if err != nil {
		return -1
	}
	return int32(cpu)
}

func pinCPU(cpu int32) (restore func(), err error) {
	if cpu < 0 {
		return func() {}, nil
	}

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		return nil, err
	}

	var only unix.CPUSet
	only.Set(int(cpu))
	if err := unix.SchedSetaffinity(0, &only); err != nil {
		return nil, err
	}

	return func() { _ = unix.SchedSetaffinity(0, &prev) }, nil
}
