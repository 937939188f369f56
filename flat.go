package canopy

import "fmt"

// Flatten returns t's leaf elements in left-to-right order.
// The returned slice has length 2^depth and is freshly allocated,
// so the caller may modify it freely.
func Flatten[A any](t *Tree[A]) []A {
	out := make([]A, 0, t.NumLeaves())
	return appendLeaves(t, out)
}

func appendLeaves[A any](t *Tree[A], out []A) []A {
	if t.depth == 0 {
		return append(out, t.value)
	}

	out = appendLeaves(t.left, out)
	return appendLeaves(t.right, out)
}

// Unflatten builds the depth-d tree whose left-to-right leaf order is seq.
//
// The sequence length must be exactly 2^depth;
// any other length returns an error wrapping [ErrLengthMismatch],
// never a truncated or padded tree.
//
// Unflatten is the inverse of [Flatten]:
// Unflatten(d, Flatten(t)) reproduces t,
// and Flatten(Unflatten(d, s)) reproduces s.
func Unflatten[A any](depth uint8, seq []A) (*Tree[A], error) {
	if depth > maxDepth {
		panic(fmt.Errorf(
			"BUG: tree depth must not exceed %d (got %d)",
			maxDepth, depth,
		))
	}

	if uint64(len(seq)) != uint64(1)<<depth {
		return nil, fmt.Errorf(
			"depth %d requires exactly %d elements, got %d: %w",
			depth, uint64(1)<<depth, len(seq), ErrLengthMismatch,
		)
	}

	return unflatten(depth, seq), nil
}

// unflatten splits seq into equal halves at every level.
// The length was checked once at the top,
// and halving a power of two stays exact the whole way down.
func unflatten[A any](depth uint8, seq []A) *Tree[A] {
	if depth == 0 {
		return NewLeaf(seq[0])
	}

	half := len(seq) / 2
	return branch(
		unflatten(depth-1, seq[:half]),
		unflatten(depth-1, seq[half:]),
	)
}
