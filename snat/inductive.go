package snat

import "fmt"

// Inductive is a natural number in zero-or-successor form:
// either zero, or the successor of the Inductive one below it.
//
// A [Witness] is opaque — there is nothing to pattern-match on —
// so recursion over a size has no base case to find.
// Inductive reifies the same number into a shape
// that structural recursion can consume:
// peel one [*Inductive.Pred] per recursive step
// and stop at [*Inductive.IsZero].
//
// Inductive values never need to escape the call
// that is recursing over them.
type Inductive struct {
	// nil for zero.
	pred *Inductive
}

// zeroNat is the shared terminator of every Inductive chain.
var zeroNat Inductive

// Zero returns the Inductive form of zero.
func Zero() *Inductive {
	return &zeroNat
}

// Succ returns the Inductive one greater than n.
func Succ(n *Inductive) *Inductive {
	return &Inductive{pred: n}
}

// FromWitness builds the Inductive form of w by repeated decrement.
// It allocates O(n) links, which is fine for the depths
// this module recurses over.
func FromWitness(w Witness) *Inductive {
	n := Zero()
	for i := uint64(0); i < w.Uint64(); i++ {
		n = Succ(n)
	}
	return n
}

// IsZero reports whether n is zero.
func (n *Inductive) IsZero() bool {
	return n.pred == nil
}

// Pred returns the Inductive one less than n.
// Calling Pred on zero is a bug in the caller.
func (n *Inductive) Pred() *Inductive {
	if n.pred == nil {
		panic(fmt.Errorf("BUG: Pred called on zero"))
	}
	return n.pred
}

// Witness converts n back to its opaque form.
func (n *Inductive) Witness() Witness {
	var c uint64
	for ; !n.IsZero(); n = n.pred {
		c++
	}
	return New(c)
}

// Add returns n + m by recursion on n:
// zero + m = m, and (1+x) + m = 1 + (x + m).
func (n *Inductive) Add(m *Inductive) *Inductive {
	if n.IsZero() {
		return m
	}
	return Succ(n.pred.Add(m))
}

// Mul returns n * m by recursion on n:
// zero * m = zero, and (1+x) * m = m + x*m.
func (n *Inductive) Mul(m *Inductive) *Inductive {
	if n.IsZero() {
		return Zero()
	}
	return m.Add(n.pred.Mul(m))
}

// Pow returns n raised to the power m by recursion on m:
// n^zero = 1, and n^(1+y) = n * n^y.
func (n *Inductive) Pow(m *Inductive) *Inductive {
	if m.IsZero() {
		return Succ(Zero())
	}
	return n.Mul(n.Pow(m.pred))
}
