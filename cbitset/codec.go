// Package cbitset packs canopy trees into flat bit-strings.
//
// The serialized form of a tree is the concatenation,
// in left-to-right leaf order, of each leaf's fixed-width bit field,
// giving a total width of exactly 2^depth times the element width.
// [Pack] and [Unpack] are inverses on well-formed inputs.
package cbitset

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Codec describes the fixed-width bit serialization of one element type.
//
// Write must place exactly Width bits at positions [off, off+Width)
// of the destination bitset, and Read must recover the element
// from those same positions.
// Neither may touch bits outside that range.
type Codec[A any] struct {
	// The serialized size of one element, in bits. Must be positive.
	Width uint

	Write func(bs *bitset.BitSet, off uint, v A)
	Read  func(bs *bitset.BitSet, off uint) A
}

// Bool returns the one-bit codec for booleans.
func Bool() Codec[bool] {
	return Codec[bool]{
		Width: 1,
		Write: func(bs *bitset.BitSet, off uint, v bool) {
			if v {
				bs.Set(off)
			}
		},
		Read: func(bs *bitset.BitSet, off uint) bool {
			return bs.Test(off)
		},
	}
}

// Uint returns the codec for unsigned integers
// serialized as width bits, least significant bit first.
//
// The width must be in the range [1, 64].
// Writing a value that does not fit in width bits
// is a bug in the caller:
// truncation would break the pack/unpack round trip.
func Uint(width uint) Codec[uint64] {
	if width < 1 || width > 64 {
		panic(fmt.Errorf(
			"BUG: uint codec width must be in range [1, 64] (got %d)", width,
		))
	}

	return Codec[uint64]{
		Width: width,
		Write: func(bs *bitset.BitSet, off uint, v uint64) {
			if width < 64 && v>>width != 0 {
				panic(fmt.Errorf(
					"BUG: value %d does not fit in %d bits", v, width,
				))
			}

			for j := uint(0); j < width; j++ {
				if v&(1<<j) != 0 {
					bs.Set(off + j)
				}
			}
		},
		Read: func(bs *bitset.BitSet, off uint) uint64 {
			var v uint64
			for j := uint(0); j < width; j++ {
				if bs.Test(off + j) {
					v |= 1 << j
				}
			}
			return v
		},
	}
}
