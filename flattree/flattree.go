// Package flattree computes parent, child and sibling relationships for a
// binary Merkle tree whose nodes are addressed by position in a flat array.
//
// The addressing scheme stores no pointers. Even indices are leaves (one per
// data block), odd indices are internal nodes, and every relationship is
// recovered from index arithmetic alone:
//
//	depth 2        3
//	             /   \
//	depth 1    1       5
//	          / \     / \
//	depth 0  0   2   4   6
//
// The depth of a node is the number of trailing one-bits in its index, and
// its offset is its position among nodes of the same depth, counted from the
// left. Interleaving depths this way keeps the array append-friendly: adding
// data blocks on the right never renumbers existing nodes.
//
// Every function is pure and allocation-free except FullRoots. None of them
// touch storage; interpreting positions as stored entries is the business of
// the tree package.
package flattree

import (
	"fmt"
	"math/bits"

	"github.com/khernyo/sleep-parser/errs"
)

// Depth returns the depth of the node at the given index: the number of
// trailing one-bits in the index. Leaves (even indices) have depth 0.
func Depth(index uint64) uint64 {
	return uint64(bits.TrailingZeros64(^index))
}

// Offset returns the position of the node among all nodes sharing its depth,
// counted from the left. Offset(0) = 0, Offset(4) = 2, Offset(5) = 1.
func Offset(index uint64) uint64 {
	return index >> (Depth(index) + 1)
}

// Index returns the flat-tree index of the node at the given depth and
// offset. It is the inverse of the (Depth, Offset) pair:
// Index(Depth(i), Offset(i)) == i for every index i.
func Index(depth, offset uint64) uint64 {
	return ((2*offset + 1) << depth) - 1
}

// Parent returns the index of the unique internal node that spans this node
// and its sibling. The parent is always exactly one depth level up.
func Parent(index uint64) uint64 {
	return Index(Depth(index)+1, Offset(index)/2)
}

// Sibling returns the other child of Parent(index).
func Sibling(index uint64) uint64 {
	return Index(Depth(index), Offset(index)^1)
}

// Children returns the indices of the two children of an internal node.
//
// Returns:
//   - uint64: Left child index
//   - uint64: Right child index
//   - error: ErrLeafHasNoChildren if the node is a leaf (depth 0)
func Children(index uint64) (uint64, uint64, error) {
	depth := Depth(index)
	if depth == 0 {
		return 0, 0, fmt.Errorf("%w: index %d", errs.ErrLeafHasNoChildren, index)
	}

	offset := Offset(index)

	return Index(depth-1, 2*offset), Index(depth-1, 2*offset+1), nil
}

// LeftSpan returns the index of the leftmost leaf in the subtree rooted at
// index. For a leaf it is the index itself.
func LeftSpan(index uint64) uint64 {
	return Offset(index) << (Depth(index) + 1)
}

// RightSpan returns the index of the rightmost leaf in the subtree rooted at
// index. For a leaf it is the index itself.
func RightSpan(index uint64) uint64 {
	depth := Depth(index)

	return LeftSpan(index) + (1 << (depth + 1)) - 2
}

// Spans returns the contiguous inclusive range of leaf positions covered by
// the subtree rooted at index. Both bounds are flat-tree indices (even
// numbers); the data block number of a leaf position p is p/2.
func Spans(index uint64) (first, last uint64) {
	return LeftSpan(index), RightSpan(index)
}

// Count returns the total number of nodes in the subtree rooted at index,
// the node itself included. A subtree of depth d always holds 2^(d+1) - 1
// nodes.
func Count(index uint64) uint64 {
	return (2 << Depth(index)) - 1
}

// FullRoots returns the roots of the maximal complete subtrees strictly to
// the left of the given leaf position, ordered left to right. The position
// must be a leaf index (even); passing an internal node is out of the
// function's domain and yields ErrInvalidIndex.
//
// The result is the canonical decomposition of the first index/2 data
// blocks: one root per set bit of the leaf count, largest subtree first.
// A power-of-two leaf count yields a single root.
func FullRoots(index uint64) ([]uint64, error) {
	if index&1 != 0 {
		return nil, fmt.Errorf("%w: %d is not a leaf position", errs.ErrInvalidIndex, index)
	}

	var roots []uint64
	leaves := index / 2
	offset := uint64(0)

	for leaves != 0 {
		factor := uint64(1) << (bits.Len64(leaves) - 1)
		roots = append(roots, offset+factor-1)
		offset += 2 * factor
		leaves -= factor
	}

	return roots, nil
}

// RootsForLeaves returns the forest of subtree roots spanning exactly the
// first n data blocks, ordered left to right. An empty tree has no roots.
func RootsForLeaves(n uint64) []uint64 {
	roots, _ := FullRoots(2 * n)

	return roots
}
