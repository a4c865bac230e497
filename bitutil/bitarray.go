// Package bitutil holds the packed bit storage used for binarized luminance.
package bitutil

import (
	"math/bits"
	"strings"
)

// BitArray is a fixed-size row of bits packed into uint32 words.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a BitArray holding size bits, all unset.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: make([]uint32, (size+31)/32),
		size: size,
	}
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	ba.bits[i/32] |= 1 << uint(i&0x1F)
}

// Clear unsets every bit.
func (ba *BitArray) Clear() {
	clear(ba.bits)
}

// Count returns the number of set bits.
func (ba *BitArray) Count() int {
	n := 0
	for _, w := range ba.bits {
		n += bits.OnesCount32(w)
	}
	return n
}

// String renders the row with 'X' for set bits and '.' for unset ones.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size)
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
