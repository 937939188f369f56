// Package canopytest contains helpers for testing canopy trees
// and for verifying user-provided codec implementations.
package canopytest

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"github.com/gordian-engine/canopy"
	"github.com/gordian-engine/canopy/cbitset"
)

// CodecCase is the input to [TestCodecCompliance].
type CodecCase[A any] struct {
	Codec cbitset.Codec[A]

	// Gen returns the element to place at leaf position i.
	// Distinct positions should get distinct elements where possible,
	// so that ordering mistakes are caught.
	Gen func(i int) A

	// Eq reports element equality.
	Eq func(a, b A) bool
}

// TestCodecCompliance asserts the properties
// that any [cbitset.Codec] implementation must satisfy.
//
// Call it from a standard unit test,
// once per codec configuration under test.
func TestCodecCompliance[A any](t *testing.T, c CodecCase[A]) {
	log := slogt.New(t)

	t.Run("pack then unpack reproduces the tree", func(t *testing.T) {
		for depth := uint8(0); depth <= 3; depth++ {
			n := 1 << depth
			log.Info("packing", "depth", depth, "leaves", n, "width", c.Codec.Width)

			vals := make([]A, n)
			for i := range vals {
				vals[i] = c.Gen(i)
			}

			tree, err := canopy.Unflatten(depth, vals)
			require.NoError(t, err)

			bs := cbitset.Pack(tree, c.Codec)
			require.Equal(t, uint(n)*c.Codec.Width, bs.Len())

			got, err := cbitset.Unpack(depth, bs, c.Codec)
			require.NoError(t, err)
			require.True(t, canopy.EqualFunc(tree, got, c.Eq))
		}
	})

	t.Run("unpack then pack reproduces the bit string", func(t *testing.T) {
		const depth = 2

		vals := make([]A, 1<<depth)
		for i := range vals {
			vals[i] = c.Gen(i)
		}

		tree, err := canopy.Unflatten(depth, vals)
		require.NoError(t, err)

		// Packing a real tree is the only portable way
		// to obtain a well-formed bit string for an arbitrary codec.
		bs := cbitset.Pack(tree, c.Codec)

		got, err := cbitset.Unpack(depth, bs, c.Codec)
		require.NoError(t, err)

		require.True(t, bs.Equal(cbitset.Pack(got, c.Codec)))
	})

	t.Run("wrong bit string length rejected", func(t *testing.T) {
		// One element's worth of bits, against a depth that requires two.
		bs := bitset.MustNew(c.Codec.Width)

		_, err := cbitset.Unpack(1, bs, c.Codec)
		require.ErrorIs(t, err, canopy.ErrLengthMismatch)
	})
}
