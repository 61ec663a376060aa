package tree

import (
	"fmt"

	"github.com/khernyo/sleep-parser/errs"
	"github.com/khernyo/sleep-parser/flattree"
)

// Roots returns the forest of maximal complete subtree roots spanning every
// appended leaf, ordered left to right. The forest has a single element
// exactly when the leaf count is a power of two; an in-progress tree with
// any other leaf count is a multi-root forest, which is a normal state, not
// an error. An empty tree has no roots.
func (t *Tree) Roots() []uint64 {
	return flattree.RootsForLeaves(t.leaves)
}

// Root returns the index of the single node spanning every appended leaf.
//
// Returns:
//   - uint64: Root index
//   - error: errs.ErrNoSingleRoot if the current leaf count is not spanned
//     by one node; Roots enumerates the forest in that case
func (t *Tree) Root() (uint64, error) {
	return RootForLeafCount(t.leaves)
}

// RootForLeafCount returns the index of the smallest node whose span covers
// exactly the first n data blocks, or errs.ErrNoSingleRoot when no single
// node spans that range (any n that is not a power of two).
func RootForLeafCount(n uint64) (uint64, error) {
	roots := flattree.RootsForLeaves(n)
	if len(roots) != 1 {
		return 0, fmt.Errorf("%w: %d leaves decompose into %d subtree roots",
			errs.ErrNoSingleRoot, n, len(roots))
	}

	return roots[0], nil
}
