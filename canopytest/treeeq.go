package canopytest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gordian-engine/canopy"
)

// RequireTreesEqual fails the test unless want and got
// have the same depth and equal leaves at every position.
// On failure, the flattened forms are reported
// since they are far easier to compare by eye than node structure.
func RequireTreesEqual[A comparable](t *testing.T, want, got *canopy.Tree[A]) {
	t.Helper()

	require.Equal(t, want.Depth(), got.Depth(), "tree depths differ")
	require.Equal(t, canopy.Flatten(want), canopy.Flatten(got))
}
