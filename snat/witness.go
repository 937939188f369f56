// Package snat contains size witnesses:
// runtime values standing in for the natural numbers
// that parameterize tree shapes in the canopy module.
//
// A [Witness] is an opaque checked natural,
// and an [Inductive] is the same number in zero-or-successor form,
// which is the shape structural recursion wants to consume.
package snat

import (
	"fmt"
	"math/bits"
)

// Witness is a known natural number.
// All arithmetic on witnesses is validating:
// a result outside the uint64 range is a bug in the caller,
// never a silently wrapped value,
// so a witness's runtime value can be trusted to equal
// whatever size parameter it was created to represent.
//
// The zero value is the witness for zero.
type Witness struct {
	n uint64
}

// New returns the witness for n.
func New(n uint64) Witness {
	return Witness{n: n}
}

// Uint64 returns the natural number w stands for.
func (w Witness) Uint64() uint64 {
	return w.n
}

// Add returns the witness for w + o.
// Overflowing uint64 is a bug in the caller.
func (w Witness) Add(o Witness) Witness {
	sum, carry := bits.Add64(w.n, o.n, 0)
	if carry != 0 {
		panic(fmt.Errorf(
			"BUG: witness addition %d + %d overflows uint64", w.n, o.n,
		))
	}

	return New(sum)
}

// Sub returns the witness for w - o.
//
// Sub exists to decrement a depth while descending one branch level,
// so w < o never happens through correct use;
// underflow is a bug in the caller, not a recoverable condition.
func (w Witness) Sub(o Witness) Witness {
	if w.n < o.n {
		panic(fmt.Errorf(
			"BUG: witness subtraction %d - %d underflows", w.n, o.n,
		))
	}

	return New(w.n - o.n)
}

// Mul returns the witness for w * o.
// Overflowing uint64 is a bug in the caller.
func (w Witness) Mul(o Witness) Witness {
	hi, lo := bits.Mul64(w.n, o.n)
	if hi != 0 {
		panic(fmt.Errorf(
			"BUG: witness multiplication %d * %d overflows uint64", w.n, o.n,
		))
	}

	return New(lo)
}

// Pow returns the witness for w raised to the power o.
// Overflowing uint64 is a bug in the caller.
func (w Witness) Pow(o Witness) Witness {
	// Plain square-and-multiply,
	// with every step going through the checked Mul.
	result := New(1)
	base := w
	e := o.n

	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		e >>= 1
		if e > 0 {
			base = base.Mul(base)
		}
	}

	return result
}
