// Package creduce builds balanced, width-growing reduction networks
// over canopy trees.
//
// A reduction network sums 2^d small values in d tiers.
// Giving every tier one conservative worst-case representation wastes width;
// instead, each tier here carries a [Lane] whose bit width grows
// by exactly one per tier, which is always just wide enough:
// joining two w-bit sums can need at most w+1 bits.
// This is the adder-tree / population-counter pattern,
// driven by [canopy.FoldAny] because the accumulator changes per level.
package creduce

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/canopy"
)

// Lane is one accumulator within a reduction network tier.
type Lane struct {
	// The running total for the subtree this lane covers.
	Sum uint64

	// The exact bit width of this tier's representation.
	// Leaves carry the configured leaf width,
	// and every tier above adds one bit.
	Width uint8
}

// ErrValueTooWide is returned by [Sum]
// when a leaf value does not fit in the configured leaf width.
var ErrValueTooWide = errors.New("leaf value does not fit leaf width")

// ErrWidthOverflow is returned by [Sum]
// when the root tier's width would exceed 64 bits.
var ErrWidthOverflow = errors.New("root width exceeds 64 bits")

// Sum reduces a tree of unsigned values to a single [Lane],
// where each leaf is a leafWidth-bit value
// and the tier joining subtrees of depth k
// carries sums that are exactly leafWidth+k+1 bits wide.
//
// The root lane's Sum is the total of every leaf,
// and its Width is leafWidth plus the tree depth.
func Sum(t *canopy.Tree[uint64], leafWidth uint8) (Lane, error) {
	if leafWidth < 1 || leafWidth > 64 {
		panic(fmt.Errorf(
			"BUG: leaf width must be in range [1, 64] (got %d)", leafWidth,
		))
	}

	if uint(leafWidth)+uint(t.Depth()) > 64 {
		return Lane{}, fmt.Errorf(
			"%d-bit leaves at depth %d need a %d-bit root: %w",
			leafWidth, t.Depth(), uint(leafWidth)+uint(t.Depth()), ErrWidthOverflow,
		)
	}

	for i, v := range canopy.Flatten(t) {
		if leafWidth < 64 && v>>leafWidth != 0 {
			return Lane{}, fmt.Errorf(
				"leaf %d holds %d, which does not fit in %d bits: %w",
				i, v, leafWidth, ErrValueTooWide,
			)
		}
	}

	root := canopy.FoldAny(
		t,
		func(v uint64) any {
			return Lane{Sum: v, Width: leafWidth}
		},
		func(level uint8, l, r any) any {
			ll := l.(Lane)
			rr := r.(Lane)

			return Lane{
				Sum:   ll.Sum + rr.Sum,
				Width: leafWidth + level + 1,
			}
		},
	)

	return root.(Lane), nil
}

// TierWidths returns the lane width at every tier of a [Sum] network,
// from the leaves (index 0) up to the root (index depth).
//
// The widths are tight: the largest possible sum over 2^(k+1) leaves
// of leafWidth bits each needs exactly leafWidth+k+1 bits.
func TierWidths(depth, leafWidth uint8) []uint8 {
	widths := make([]uint8, depth+1)
	for i := range widths {
		widths[i] = leafWidth + uint8(i)
	}
	return widths
}

// PopCount counts the set bits of bs
// by reducing a tree of one-bit leaves with [Sum].
//
// The bitset length must be a power of two;
// any other length returns an error wrapping [canopy.ErrLengthMismatch].
// The result always agrees with counting the bits directly.
func PopCount(bs *bitset.BitSet) (uint64, error) {
	n := bs.Len()
	if n == 0 || n&(n-1) != 0 {
		return 0, fmt.Errorf(
			"bitset length %d is not a power of two: %w",
			n, canopy.ErrLengthMismatch,
		)
	}

	vals := make([]uint64, n)
	for i := uint(0); i < n; i++ {
		if bs.Test(i) {
			vals[i] = 1
		}
	}

	depth := uint8(bits.Len(n) - 1)
	t, err := canopy.Unflatten(depth, vals)
	if err != nil {
		return 0, fmt.Errorf("building bit tree: %w", err)
	}

	lane, err := Sum(t, 1)
	if err != nil {
		return 0, fmt.Errorf("reducing bit tree: %w", err)
	}

	return lane.Sum, nil
}
