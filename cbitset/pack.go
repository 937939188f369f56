package cbitset

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/canopy"
)

// Pack serializes t into a flat bit-string:
// each leaf's bit field in left-to-right leaf order.
// The returned bitset's length is always 2^depth times the codec width.
func Pack[A any](t *canopy.Tree[A], c Codec[A]) *bitset.BitSet {
	if c.Width == 0 {
		panic(fmt.Errorf("BUG: codec width must be positive"))
	}

	bs := bitset.MustNew(uint(t.NumLeaves()) * c.Width)

	off := uint(0)
	for _, v := range canopy.Flatten(t) {
		c.Write(bs, off, v)
		off += c.Width
	}

	return bs
}

// Unpack rebuilds the depth-d tree serialized in bs.
//
// The bit-string length must be exactly 2^depth times the codec width;
// any other length returns an error wrapping [canopy.ErrLengthMismatch].
//
// Unpack is the inverse of [Pack]:
// Unpack(d, Pack(t, c), c) reproduces t,
// and Pack(Unpack(d, bs, c), c) reproduces bs for well-formed bs.
func Unpack[A any](depth uint8, bs *bitset.BitSet, c Codec[A]) (*canopy.Tree[A], error) {
	if c.Width == 0 {
		panic(fmt.Errorf("BUG: codec width must be positive"))
	}

	nLeaves := uint(1) << depth
	want := nLeaves * c.Width
	if bs.Len() != want {
		return nil, fmt.Errorf(
			"depth %d at %d bits per element requires exactly %d bits, got %d: %w",
			depth, c.Width, want, bs.Len(), canopy.ErrLengthMismatch,
		)
	}

	vals := make([]A, 0, nLeaves)
	for off := uint(0); off < want; off += c.Width {
		vals = append(vals, c.Read(bs, off))
	}

	return canopy.Unflatten(depth, vals)
}
