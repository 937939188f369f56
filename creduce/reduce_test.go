package creduce_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/gordian-engine/canopy"
	"github.com/gordian-engine/canopy/creduce"
)

// The population-count network from one-bit leaves:
// sixteen ones reduce to 16, and the root lane is exactly five bits wide
// (1-bit leaves, plus one bit per tier over four tiers).
func TestSum_popcountNetworkDepth4(t *testing.T) {
	t.Parallel()

	tr := canopy.Replicate(4, uint64(1))

	lane, err := creduce.Sum(tr, 1)
	require.NoError(t, err)

	require.Equal(t, uint64(16), lane.Sum)
	require.Equal(t, uint8(5), lane.Width)
}

func TestSum_widthAtEveryTier(t *testing.T) {
	t.Parallel()

	// Reimplement the network with explicit per-level checks,
	// asserting the lane width every join sees from below.
	const leafWidth = uint8(1)
	tr := canopy.Replicate(4, uint64(1))

	root := canopy.FoldAny(
		tr,
		func(v uint64) any {
			return creduce.Lane{Sum: v, Width: leafWidth}
		},
		func(level uint8, l, r any) any {
			ll := l.(creduce.Lane)
			rr := r.(creduce.Lane)

			// Both inputs to a level-k join carry the level-k width.
			require.Equal(t, leafWidth+level, ll.Width)
			require.Equal(t, leafWidth+level, rr.Width)

			width := leafWidth + level + 1

			// The width is tight: the sum always fits,
			// and the worst case needs all of it.
			sum := ll.Sum + rr.Sum
			require.Less(t, sum, uint64(1)<<width)

			return creduce.Lane{Sum: sum, Width: width}
		},
	)

	lane := root.(creduce.Lane)
	require.Equal(t, uint64(16), lane.Sum)
	require.Equal(t, uint8(5), lane.Width)
}

func TestSum_mixedValues(t *testing.T) {
	t.Parallel()

	tr, err := canopy.Unflatten(2, []uint64{3, 0, 7, 5})
	require.NoError(t, err)

	lane, err := creduce.Sum(tr, 3)
	require.NoError(t, err)

	require.Equal(t, uint64(15), lane.Sum)
	require.Equal(t, uint8(5), lane.Width)
}

func TestSum_valueTooWide(t *testing.T) {
	t.Parallel()

	tr, err := canopy.Unflatten(1, []uint64{1, 2})
	require.NoError(t, err)

	_, err = creduce.Sum(tr, 1)
	require.ErrorIs(t, err, creduce.ErrValueTooWide)
}

func TestSum_widthOverflow(t *testing.T) {
	t.Parallel()

	tr := canopy.Replicate(2, uint64(0))

	_, err := creduce.Sum(tr, 63)
	require.ErrorIs(t, err, creduce.ErrWidthOverflow)
}

func TestTierWidths(t *testing.T) {
	t.Parallel()

	require.Equal(t, []uint8{1, 2, 3, 4, 5}, creduce.TierWidths(4, 1))
	require.Equal(t, []uint8{3}, creduce.TierWidths(0, 3))
}

func TestPopCount(t *testing.T) {
	t.Parallel()

	bs := bitset.MustNew(16)
	for _, i := range []uint{0, 3, 7, 8, 15} {
		bs.Set(i)
	}

	got, err := creduce.PopCount(bs)
	require.NoError(t, err)
	require.Equal(t, uint64(5), got)

	// Always agrees with counting directly.
	require.Equal(t, uint64(bs.Count()), got)
}

func TestPopCount_extremes(t *testing.T) {
	t.Parallel()

	// No bits set.
	empty := bitset.MustNew(8)
	got, err := creduce.PopCount(empty)
	require.NoError(t, err)
	require.Zero(t, got)

	// Every bit set.
	full := bitset.MustNew(8)
	for i := uint(0); i < 8; i++ {
		full.Set(i)
	}
	got, err = creduce.PopCount(full)
	require.NoError(t, err)
	require.Equal(t, uint64(8), got)

	// A single bit is a depth-zero tree.
	one := bitset.MustNew(1)
	one.Set(0)
	got, err = creduce.PopCount(one)
	require.NoError(t, err)
	require.Equal(t, uint64(1), got)
}

func TestPopCount_lengthNotPowerOfTwo(t *testing.T) {
	t.Parallel()

	_, err := creduce.PopCount(bitset.MustNew(6))
	require.ErrorIs(t, err, canopy.ErrLengthMismatch)
}
