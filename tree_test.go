package canopy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gordian-engine/canopy"
)

func TestReplicate_leafCountAndValues(t *testing.T) {
	t.Parallel()

	for depth := uint8(0); depth <= 6; depth++ {
		tr := canopy.Replicate(depth, "x")

		require.Equal(t, depth, tr.Depth())
		require.Equal(t, uint64(1)<<depth, tr.NumLeaves())

		flat := canopy.Flatten(tr)
		require.Len(t, flat, 1<<depth)
		for _, v := range flat {
			require.Equal(t, "x", v)
		}
	}
}

func TestNewBranch_depthMismatch(t *testing.T) {
	t.Parallel()

	l := canopy.Replicate(2, 0)
	r := canopy.Replicate(1, 0)

	_, err := canopy.NewBranch(l, r)
	require.ErrorIs(t, err, canopy.ErrShapeMismatch)

	// Equal depths are fine either way around.
	b, err := canopy.NewBranch(r, canopy.Replicate(1, 0))
	require.NoError(t, err)
	require.Equal(t, uint8(2), b.Depth())
}

// The depth-2 tree over leaves [1 2 3 4],
// i.e. Branch(Branch(Leaf 1, Leaf 2), Branch(Leaf 3, Leaf 4)).
func depth2Tree(t *testing.T) *canopy.Tree[int] {
	t.Helper()

	tr, err := canopy.Unflatten(2, []int{1, 2, 3, 4})
	require.NoError(t, err)
	return tr
}

func TestTree_Index_depth2(t *testing.T) {
	t.Parallel()

	tr := depth2Tree(t)

	v, err := tr.Index(0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = tr.Index(2)
	require.NoError(t, err)
	require.Equal(t, 3, v)

	v, err = tr.Index(3)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	_, err = tr.Index(4)
	require.ErrorIs(t, err, canopy.ErrIndexOutOfRange)
}

func TestTree_Index_agreesWithFlatten(t *testing.T) {
	t.Parallel()

	tr := canopy.Indices(4)
	flat := canopy.Flatten(tr)

	for i := uint64(0); i < tr.NumLeaves(); i++ {
		v, err := tr.Index(i)
		require.NoError(t, err)
		require.Equal(t, flat[i], v)
	}
}

func TestTree_Replace_depth2(t *testing.T) {
	t.Parallel()

	tr := depth2Tree(t)

	got, err := tr.Replace(0, 5)
	require.NoError(t, err)

	require.Equal(t, []int{5, 2, 3, 4}, canopy.Flatten(got))

	// The original is untouched.
	require.Equal(t, []int{1, 2, 3, 4}, canopy.Flatten(tr))
}

func TestTree_Replace_everyPosition(t *testing.T) {
	t.Parallel()

	tr, err := canopy.Unflatten(3, []int{0, 1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)

	for i := uint64(0); i < tr.NumLeaves(); i++ {
		got, err := tr.Replace(i, 99)
		require.NoError(t, err)

		want := []int{0, 1, 2, 3, 4, 5, 6, 7}
		want[i] = 99
		require.Equal(t, want, canopy.Flatten(got))
	}
}

func TestTree_Replace_outOfRange(t *testing.T) {
	t.Parallel()

	tr := depth2Tree(t)

	_, err := tr.Replace(4, 9)
	require.ErrorIs(t, err, canopy.ErrIndexOutOfRange)

	_, err = tr.Replace(1<<40, 9)
	require.ErrorIs(t, err, canopy.ErrIndexOutOfRange)
}

func TestTree_Replace_onSharedReplicate(t *testing.T) {
	t.Parallel()

	// Replicate shares one subtree for both sides of every branch.
	// Replacing a leaf must still only affect one position.
	tr := canopy.Replicate(3, 0)

	got, err := tr.Replace(5, 1)
	require.NoError(t, err)

	require.Equal(t, []int{0, 0, 0, 0, 0, 1, 0, 0}, canopy.Flatten(got))
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0}, canopy.Flatten(tr))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := depth2Tree(t)
	b := depth2Tree(t)
	require.True(t, canopy.Equal(a, b))

	c, err := b.Replace(3, 9)
	require.NoError(t, err)
	require.False(t, canopy.Equal(a, c))

	// Same leaves, different depth.
	d, err := canopy.Unflatten(1, []int{1, 2})
	require.NoError(t, err)
	require.False(t, canopy.Equal(a, d))
}

func TestTree_leafAccessors(t *testing.T) {
	t.Parallel()

	leaf := canopy.NewLeaf(7)
	require.True(t, leaf.IsLeaf())
	require.Equal(t, 7, leaf.Value())

	b, err := canopy.NewBranch(canopy.NewLeaf(1), canopy.NewLeaf(2))
	require.NoError(t, err)
	require.False(t, b.IsLeaf())
	require.Equal(t, 1, b.Left().Value())
	require.Equal(t, 2, b.Right().Value())
}
