package bitutil

import (
	"math/bits"
	"strings"
)

// BitMatrix is a 2D grid of bits. x is the column, y the row; the origin is
// the top-left corner.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrixWithSize creates a width x height BitMatrix with every bit unset.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Unset clears the bit at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// Row copies row y into row, allocating a new BitArray if row is nil or
// too small.
func (bm *BitMatrix) Row(y int, row *BitArray) *BitArray {
	if row == nil || row.Size() < bm.width {
		row = NewBitArray(bm.width)
	} else {
		row.Clear()
	}
	copy(row.bits, bm.data[y*bm.rowSize:(y+1)*bm.rowSize])
	return row
}

// Count returns the number of set bits.
func (bm *BitMatrix) Count() int {
	n := 0
	for _, w := range bm.data {
		n += bits.OnesCount32(w)
	}
	return n
}

// Width returns the number of columns.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the number of rows.
func (bm *BitMatrix) Height() int { return bm.height }

// String renders the matrix with "X " for set bits and "  " for unset ones.
func (bm *BitMatrix) String() string {
	var sb strings.Builder
	sb.Grow(bm.height * (2*bm.width + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString("X ")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
