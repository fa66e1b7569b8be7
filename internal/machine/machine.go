package machine

const (
	CacheLine   = 64
	MaxSlotBits = 6
	MaxSlots    = 1 << MaxSlotBits
)

type (
	Pad56 [56]uint8
	Pad48 [48]uint8
	Pad32 [32]uint8
	Pad16 [16]uint8
	Pad8  [8]uint8
)

type ( // ensure MaxSlots is actually 64.
	_ [MaxSlots - 64]byte
	_ [64 - MaxSlots]byte
)
