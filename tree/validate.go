package tree

import (
	"fmt"

	"github.com/khernyo/sleep-parser/errs"
	"github.com/khernyo/sleep-parser/flattree"
	"github.com/khernyo/sleep-parser/section"
)

// NodeError reports a validation failure at a specific flat-tree position.
// It unwraps to the sentinel describing the failure kind, so callers can
// test with errors.Is and still recover the exact index.
type NodeError struct {
	// Index is the flat-tree position of the node that failed.
	Index uint64
	// Err is the underlying sentinel, e.g. errs.ErrHashMismatch.
	Err error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("tree node %d: %v", e.Index, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// ValidateSubtree recomputes, bottom-up from the leaves spanned by root,
// every internal node's hash and byte length from its two children and
// compares them against the stored entries.
//
// The walk stops at the first divergence: a *NodeError wrapping
// errs.ErrHashMismatch identifies the lowest node whose stored entry does
// not match its recomputed value. Ancestors above a divergence are not
// checked, their correctness is unverifiable once a child is wrong. A
// *NodeError wrapping errs.ErrIncompleteTree is returned if any required
// node lies beyond the current entry sequence.
//
// Validation is read-only and idempotent: calling it twice on an unchanged
// tree yields the same result both times. Successful subtree roots are
// memoized in an LRU keyed by index, invalidated by comparing the stored
// hash, so the memo never masks later corruption of the root entry itself.
func (t *Tree) ValidateSubtree(root uint64) error {
	_, err := t.validate(root)

	return err
}

// ValidateAll validates every complete subtree root of the current forest.
func (t *Tree) ValidateAll() error {
	for _, root := range t.Roots() {
		if err := t.ValidateSubtree(root); err != nil {
			return err
		}
	}

	return nil
}

func (t *Tree) validate(index uint64) (section.Entry, error) {
	if !t.present(index) {
		return section.Entry{}, &NodeError{Index: index, Err: errs.ErrIncompleteTree}
	}

	stored := t.entries[index]

	if flattree.Depth(index) == 0 {
		// leaf hashes are inputs, there is nothing to recompute against
		return stored, nil
	}

	if cached, ok := t.cachedVerified(index); ok && cached == stored.Hash {
		return stored, nil
	}

	left, right, err := flattree.Children(index)
	if err != nil {
		return section.Entry{}, err
	}

	leftEntry, err := t.validate(left)
	if err != nil {
		return section.Entry{}, err
	}
	rightEntry, err := t.validate(right)
	if err != nil {
		return section.Entry{}, err
	}

	recomputed := t.combine(leftEntry, rightEntry)
	if recomputed.Hash != stored.Hash || recomputed.ByteLength != stored.ByteLength {
		return section.Entry{}, &NodeError{Index: index, Err: errs.ErrHashMismatch}
	}

	t.markVerified(index, stored.Hash)

	return stored, nil
}

func (t *Tree) cachedVerified(index uint64) ([section.HashSize]byte, bool) {
	if t.verified == nil {
		return [section.HashSize]byte{}, false
	}

	return t.verified.Get(index)
}

func (t *Tree) markVerified(index uint64, hash [section.HashSize]byte) {
	if t.verified == nil {
		return
	}
	t.verified.Add(index, hash)
}
