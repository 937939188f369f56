package canopy

import "fmt"

// Fold is the depth-dependent structural fold over a tree,
// and the primitive every derived operation in this package builds on.
//
// Each leaf is first mapped through leaf.
// Then each branch at level k — meaning its subtrees have depth k —
// combines its two subtree results through branch(k, left, right).
// The root of a depth-d tree is combined at level d-1,
// so Fold on a depth-d tree produces the level-d result.
//
// The level argument lets the combining step behave differently per tier,
// which is what a balanced reduction network needs:
// a join at level k knows exactly how many leaves (2^(k+1)) it covers,
// and can size its output accordingly.
// When all tiers share one result type, Fold expresses that directly;
// when each tier needs a differently typed accumulator, see [FoldAny].
func Fold[A, R any](
	t *Tree[A],
	leaf func(A) R,
	branch func(level uint8, left, right R) R,
) R {
	if t.depth == 0 {
		return leaf(t.value)
	}

	level := t.depth - 1
	return branch(
		level,
		Fold(t.left, leaf, branch),
		Fold(t.right, leaf, branch),
	)
}

// FoldAny is [Fold] with a dynamically typed accumulator,
// for reductions whose result type legitimately changes per level
// (for example an adder tree whose tier-k sums are exactly k+1 bits wide).
//
// Go cannot express a per-level static result type,
// so the burden of keeping levels consistent moves to the caller:
// branch must assert the concrete types it expects at each level,
// and callers are expected to cover those assertions with tests.
// The creduce package is the canonical consumer.
func FoldAny[A any](
	t *Tree[A],
	leaf func(A) any,
	branch func(level uint8, left, right any) any,
) any {
	return Fold(t, leaf, branch)
}

// Reduce is [Fold] with a level-independent combining function.
func Reduce[A, R any](
	t *Tree[A],
	leaf func(A) R,
	combine func(left, right R) R,
) R {
	return Fold(t, leaf, func(_ uint8, l, r R) R {
		return combine(l, r)
	})
}

// Map returns a tree of the same shape as t
// with every leaf element mapped through f.
func Map[A, B any](t *Tree[A], f func(A) B) *Tree[B] {
	return Fold(
		t,
		func(a A) *Tree[B] { return NewLeaf(f(a)) },
		func(_ uint8, l, r *Tree[B]) *Tree[B] { return branch(l, r) },
	)
}

// Pair holds one element from each of two zipped trees.
type Pair[X, Y any] struct {
	First  X
	Second Y
}

// ZipWith combines two trees of equal depth leafwise through f,
// preserving shape.
//
// If the depths differ, ZipWith returns an error wrapping [ErrLengthMismatch].
func ZipWith[A, B, C any](f func(A, B) C, ta *Tree[A], tb *Tree[B]) (*Tree[C], error) {
	if ta.depth != tb.depth {
		return nil, fmt.Errorf(
			"cannot zip trees of depths %d and %d: %w",
			ta.depth, tb.depth, ErrLengthMismatch,
		)
	}

	return zipWith(f, ta, tb), nil
}

// zipWith recurses on ta's shape,
// destructuring the matching subtree of tb at every node.
// Depth equality was established once at the top.
func zipWith[A, B, C any](f func(A, B) C, ta *Tree[A], tb *Tree[B]) *Tree[C] {
	if ta.depth == 0 {
		return NewLeaf(f(ta.value, tb.value))
	}

	return branch(
		zipWith(f, ta.left, tb.left),
		zipWith(f, ta.right, tb.right),
	)
}

// Zip pairs two trees of equal depth leafwise.
//
// If the depths differ, Zip returns an error wrapping [ErrLengthMismatch].
func Zip[A, B any](ta *Tree[A], tb *Tree[B]) (*Tree[Pair[A, B]], error) {
	return ZipWith(func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	}, ta, tb)
}

// Unzip splits a tree of pairs into a pair of trees,
// splitting each leaf and recombining both halves
// bottom-up at every branch.
func Unzip[X, Y any](t *Tree[Pair[X, Y]]) (*Tree[X], *Tree[Y]) {
	p := Fold(
		t,
		func(p Pair[X, Y]) Pair[*Tree[X], *Tree[Y]] {
			return Pair[*Tree[X], *Tree[Y]]{
				First:  NewLeaf(p.First),
				Second: NewLeaf(p.Second),
			}
		},
		func(_ uint8, l, r Pair[*Tree[X], *Tree[Y]]) Pair[*Tree[X], *Tree[Y]] {
			return Pair[*Tree[X], *Tree[Y]]{
				First:  branch(l.First, r.First),
				Second: branch(l.Second, r.Second),
			}
		},
	)

	return p.First, p.Second
}

// Indices returns the depth-d tree whose leaf
// at left-to-right position i holds the value i.
//
// The tree is folded up from a [Replicate] skeleton:
// at each level the right half reuses the left half's structure,
// offset by the left half's leaf count,
// which yields the consecutive numbering 0..2^d-1.
func Indices(depth uint8) *Tree[uint64] {
	skeleton := Replicate(depth, uint64(0))

	return Fold(
		skeleton,
		func(uint64) *Tree[uint64] { return NewLeaf(uint64(0)) },
		func(level uint8, l, r *Tree[uint64]) *Tree[uint64] {
			offset := uint64(1) << level
			return branch(l, Map(r, func(v uint64) uint64 { return v + offset }))
		},
	)
}
