// Package canopy contains an immutable perfect binary tree container.
//
// A tree of depth d holds exactly 2^d elements, all at the leaves,
// with a canonical left-to-right leaf order.
// Every derived operation — [Map], [ZipWith], [Indices],
// [*Tree.Index], [*Tree.Replace] — is defined in terms of
// one depth-aware fold primitive, [Fold].
//
// The shape of this tree makes it suitable for balanced reduction networks
// (adder trees, population counters, serialization trees)
// where each tier of the reduction may carry
// a differently sized accumulator.
// See [FoldAny] and the creduce package for that pattern.
package canopy
