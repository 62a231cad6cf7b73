package Go_RankTree

import (
	"math/bits"
)

// NewBitArray holds at least size bits, all down.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size set of flags.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Swap sets bit i up and reports whether it was already up.
func (u BitArray) Swap(i int) bool {
	w, m := &u.bits[i/bits.UintSize], uint(1)<<(i%bits.UintSize)
	old := *w&m != 0
	*w |= m
	return old
}

// Count of bits that are up.
func (u BitArray) Count() (n int) {
	for _, w := range u.bits {
		n += bits.OnesCount(w)
	}
	return
}
