package canopy

import "errors"

// ErrIndexOutOfRange is returned by [*Tree.Index] and [*Tree.Replace]
// when the requested leaf index is not in the range [0, 2^depth).
var ErrIndexOutOfRange = errors.New("leaf index out of range")

// ErrLengthMismatch is returned by [Unflatten]
// when the given sequence length is not exactly 2^depth,
// and by [ZipWith] and [Zip] when the two trees have different depths.
//
// There is never a silent fallback:
// a wrong-length sequence is rejected outright,
// not truncated or padded.
var ErrLengthMismatch = errors.New("sequence length does not match leaf count")

// ErrShapeMismatch is returned by [NewBranch]
// when the two subtrees have different depths.
var ErrShapeMismatch = errors.New("subtree depths do not match")
