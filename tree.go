package canopy

import (
	"fmt"

	"github.com/gordian-engine/canopy/snat"
)

// maxDepth is the largest supported tree depth,
// so that a leaf count always fits in a uint64.
const maxDepth = 63

// Tree is an immutable perfect binary tree of depth-indexed shape.
// A depth-zero tree is a single leaf holding one element;
// a tree of depth d+1 is a branch over two subtrees of depth d.
// Both subtrees of a branch always have the same depth,
// so a depth-d tree holds exactly 2^d leaf elements.
//
// Trees are never mutated.
// [*Tree.Replace] returns a new tree sharing all untouched subtrees,
// so concurrent readers never require locking.
//
// Create trees with [NewLeaf], [NewBranch], [Replicate], or [Unflatten].
type Tree[A any] struct {
	depth uint8

	// Only set for leaves.
	value A

	// Both nil for leaves, both non-nil for branches.
	left, right *Tree[A]
}

// NewLeaf returns a depth-zero tree holding only v.
func NewLeaf[A any](v A) *Tree[A] {
	return &Tree[A]{value: v}
}

// NewBranch returns a tree one level deeper than l and r,
// with l's leaves ordered before r's.
//
// If l and r do not have the same depth,
// NewBranch returns an error wrapping [ErrShapeMismatch].
func NewBranch[A any](l, r *Tree[A]) (*Tree[A], error) {
	if l.depth != r.depth {
		return nil, fmt.Errorf(
			"cannot branch over depths %d and %d: %w",
			l.depth, r.depth, ErrShapeMismatch,
		)
	}

	return branch(l, r), nil
}

// branch is the internal constructor for callers
// that have already established equal depths.
func branch[A any](l, r *Tree[A]) *Tree[A] {
	if l.depth >= maxDepth {
		panic(fmt.Errorf(
			"BUG: tree depth must not exceed %d (got %d)",
			maxDepth, l.depth+1,
		))
	}

	return &Tree[A]{
		depth: l.depth + 1,
		left:  l,
		right: r,
	}
}

// Replicate returns a tree of the given depth
// with every leaf holding v.
//
// The two subtrees of every branch are one shared value,
// so construction allocates O(depth) nodes rather than O(2^depth).
// Callers observe the sharing only as structural equality;
// [*Tree.Replace] on the result copies the affected path as usual.
func Replicate[A any](depth uint8, v A) *Tree[A] {
	if depth > maxDepth {
		panic(fmt.Errorf(
			"BUG: tree depth must not exceed %d (got %d)",
			maxDepth, depth,
		))
	}

	// Structural recursion over the zero-or-successor form of the depth.
	return replicate(snat.FromWitness(snat.New(uint64(depth))), v)
}

func replicate[A any](n *snat.Inductive, v A) *Tree[A] {
	if n.IsZero() {
		return NewLeaf(v)
	}

	sub := replicate(n.Pred(), v)
	return branch(sub, sub)
}

// Depth reports the number of branch levels between the root and any leaf.
func (t *Tree[A]) Depth() uint8 {
	return t.depth
}

// NumLeaves reports the leaf count, which is always 2^depth.
func (t *Tree[A]) NumLeaves() uint64 {
	return 1 << t.depth
}

// IsLeaf reports whether t is a single leaf (depth zero).
func (t *Tree[A]) IsLeaf() bool {
	return t.depth == 0
}

// Value returns the element held by a leaf.
// Calling Value on a branch is a bug in the caller.
func (t *Tree[A]) Value() A {
	if t.depth != 0 {
		panic(fmt.Errorf(
			"BUG: Value called on branch of depth %d", t.depth,
		))
	}
	return t.value
}

// Left returns the subtree whose leaves order first.
// Calling Left on a leaf is a bug in the caller.
func (t *Tree[A]) Left() *Tree[A] {
	if t.depth == 0 {
		panic(fmt.Errorf("BUG: Left called on leaf"))
	}
	return t.left
}

// Right returns the subtree whose leaves order last.
// Calling Right on a leaf is a bug in the caller.
func (t *Tree[A]) Right() *Tree[A] {
	if t.depth == 0 {
		panic(fmt.Errorf("BUG: Right called on leaf"))
	}
	return t.right
}

// Index returns the leaf element at position i in left-to-right order.
//
// The index must be in the range [0, 2^depth);
// otherwise Index returns an error wrapping [ErrIndexOutOfRange].
//
// Index descends directly on i's bit pattern against the subtree width,
// so it runs in O(depth) without flattening the tree.
func (t *Tree[A]) Index(i uint64) (A, error) {
	if i >= t.NumLeaves() {
		var zero A
		return zero, fmt.Errorf(
			"index %d not in range [0, %d): %w",
			i, t.NumLeaves(), ErrIndexOutOfRange,
		)
	}

	for t.depth > 0 {
		half := uint64(1) << (t.depth - 1)
		if i < half {
			t = t.left
		} else {
			i -= half
			t = t.right
		}
	}

	return t.value, nil
}

// Replace returns a new tree equal to t
// except that the leaf at position i holds v.
//
// The index contract matches [*Tree.Index].
// Only the O(depth) branches on the path to i are reallocated;
// every subtree off that path is shared with t.
func (t *Tree[A]) Replace(i uint64, v A) (*Tree[A], error) {
	if i >= t.NumLeaves() {
		return nil, fmt.Errorf(
			"index %d not in range [0, %d): %w",
			i, t.NumLeaves(), ErrIndexOutOfRange,
		)
	}

	return t.replace(i, v), nil
}

func (t *Tree[A]) replace(i uint64, v A) *Tree[A] {
	if t.depth == 0 {
		return NewLeaf(v)
	}

	half := uint64(1) << (t.depth - 1)
	if i < half {
		return &Tree[A]{
			depth: t.depth,
			left:  t.left.replace(i, v),
			right: t.right,
		}
	}
	return &Tree[A]{
		depth: t.depth,
		left:  t.left,
		right: t.right.replace(i-half, v),
	}
}

// Equal reports whether a and b have the same depth
// and equal elements at every leaf position.
func Equal[A comparable](a, b *Tree[A]) bool {
	return EqualFunc(a, b, func(x, y A) bool { return x == y })
}

// EqualFunc reports whether a and b have the same depth
// and eq holds at every leaf position.
func EqualFunc[A, B any](a *Tree[A], b *Tree[B], eq func(A, B) bool) bool {
	if a.depth != b.depth {
		return false
	}

	if a.depth == 0 {
		return eq(a.value, b.value)
	}

	return EqualFunc(a.left, b.left, eq) && EqualFunc(a.right, b.right, eq)
}
