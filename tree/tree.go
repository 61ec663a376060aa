// Package tree builds and validates the Merkle hash tree stored in a SLEEP
// tree file.
//
// A tree is a flat, position-indexed sequence of section.Entry records
// addressed by flat-tree arithmetic: entry i of the sequence is node i of
// the tree, leaves at even positions, internal nodes at odd positions. The
// package composes the section codecs with the flattree index to grow the
// sequence as data blocks are appended and to check a stored sequence
// against recomputed hashes.
//
// A Tree assumes a single writer. AppendLeaf calls must be serialized by the
// caller; reads of already written entries are safe at any time because
// entries are never rewritten once appended.
package tree

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/khernyo/sleep-parser/errs"
	"github.com/khernyo/sleep-parser/flattree"
	"github.com/khernyo/sleep-parser/internal/options"
	"github.com/khernyo/sleep-parser/section"
)

// HashFunc hashes a byte slice to a fixed 32-byte digest. A parent node's
// hash is HashFunc(left.Hash || right.Hash) over its children's digests.
type HashFunc func(data []byte) [section.HashSize]byte

// Blake2b is the default HashFunc: unkeyed BLAKE2b-256, the algorithm a
// SLEEP tree header declares.
func Blake2b(data []byte) [section.HashSize]byte {
	return blake2b.Sum256(data)
}

// DefaultVerifiedCacheSize is the default capacity of the verified-subtree
// memo.
const DefaultVerifiedCacheSize = 1024

// Tree is an in-memory, append-only Merkle tree over data blocks.
type Tree struct {
	hash HashFunc

	// entries is position-indexed; positions whose subtree is not yet
	// complete hold a zero Entry and are not considered present.
	entries []section.Entry
	// leaves is the number of data blocks appended so far.
	leaves uint64
	// written counts the entries actually produced: leaves plus completed
	// internal nodes. It never decreases.
	written uint64

	// verified memoizes the stored hash of subtree roots that already
	// validated, so repeat validations of an unchanged subtree are O(1).
	verified *lru.Cache[uint64, [section.HashSize]byte]
}

// Option configures a Tree.
type Option = options.Option[*Tree]

// WithHashFunc replaces the default BLAKE2b-256 hash function.
func WithHashFunc(hash HashFunc) Option {
	return options.New(func(t *Tree) error {
		if hash == nil {
			return fmt.Errorf("tree: hash function must not be nil")
		}
		t.hash = hash

		return nil
	})
}

// WithVerifiedCacheSize sets the capacity of the verified-subtree memo.
// A size of 0 disables the memo entirely.
func WithVerifiedCacheSize(size int) Option {
	return options.New(func(t *Tree) error {
		if size < 0 {
			return fmt.Errorf("tree: cache size must not be negative")
		}
		if size == 0 {
			t.verified = nil
			return nil
		}

		cache, err := lru.New[uint64, [section.HashSize]byte](size)
		if err != nil {
			return err
		}
		t.verified = cache

		return nil
	})
}

// New creates an empty Tree.
func New(opts ...Option) (*Tree, error) {
	t := &Tree{hash: Blake2b}

	cache, err := lru.New[uint64, [section.HashSize]byte](DefaultVerifiedCacheSize)
	if err != nil {
		return nil, err
	}
	t.verified = cache

	if err := options.Apply(t, opts...); err != nil {
		return nil, err
	}

	return t, nil
}

// Load reconstructs a Tree from a stored position-indexed entry sequence,
// for example the decoded body of a tree file. A sequence over n data blocks
// always has 2n-1 positions (the last position is the newest leaf), so the
// sequence length must be zero or odd.
//
// Load copies the sequence; the caller keeps ownership of entries.
func Load(entries []section.Entry, opts ...Option) (*Tree, error) {
	if len(entries)%2 == 0 && len(entries) != 0 {
		return nil, fmt.Errorf("%w: %d positions cannot end on an internal node",
			errs.ErrIncompleteTree, len(entries))
	}

	t, err := New(opts...)
	if err != nil {
		return nil, err
	}

	t.entries = make([]section.Entry, len(entries))
	copy(t.entries, entries)
	t.leaves = uint64(len(entries)+1) / 2

	for i := range t.entries {
		if t.present(uint64(i)) {
			t.written++
		}
	}

	return t, nil
}

// AppendLeaf appends one leaf entry for a data block with the given content
// hash and raw byte length, then eagerly appends every internal node the new
// leaf completes: it walks upward via the parent relation, combining each
// pair of complete children into their parent's hash and summed byte length,
// and stops at the first ancestor whose sibling subtree is not yet present.
//
// Returns the flat-tree index the leaf was stored at. The entry sequence
// only ever grows; nothing is rewritten.
func (t *Tree) AppendLeaf(hash [section.HashSize]byte, byteLength uint64) uint64 {
	leaf := 2 * t.leaves
	t.set(leaf, section.Entry{Hash: hash, ByteLength: byteLength})
	t.leaves++

	index := leaf
	for {
		parent := flattree.Parent(index)
		if !t.present(parent) {
			break
		}

		left, right, _ := flattree.Children(parent)
		t.set(parent, t.combine(t.entries[left], t.entries[right]))
		index = parent
	}

	return leaf
}

// Entry returns the entry at the given flat-tree index and whether that
// node has been produced yet.
func (t *Tree) Entry(index uint64) (section.Entry, bool) {
	if !t.present(index) {
		return section.Entry{}, false
	}

	return t.entries[index], true
}

// Leaves returns the number of data blocks appended so far.
func (t *Tree) Leaves() uint64 {
	return t.leaves
}

// Len returns the number of entries produced so far: one per leaf plus one
// per completed internal node. It is non-decreasing across AppendLeaf calls.
func (t *Tree) Len() uint64 {
	return t.written
}

// Entries returns the position-indexed entry sequence. Positions whose node
// is not yet complete hold a zero entry. The returned slice is shared with
// the Tree and must not be modified.
func (t *Tree) Entries() []section.Entry {
	return t.entries
}

// combine produces a parent entry from its two children: the hash of the
// concatenated child hashes and the summed byte length.
func (t *Tree) combine(left, right section.Entry) section.Entry {
	var joined [2 * section.HashSize]byte
	copy(joined[:section.HashSize], left.Hash[:])
	copy(joined[section.HashSize:], right.Hash[:])

	return section.Entry{
		Hash:       t.hash(joined[:]),
		ByteLength: left.ByteLength + right.ByteLength,
	}
}

// present reports whether the node at index has been produced: its whole
// subtree span must fall within the leaves appended so far. This is pure
// arithmetic, no presence bitmap is kept.
func (t *Tree) present(index uint64) bool {
	if t.leaves == 0 {
		return false
	}

	return flattree.RightSpan(index) <= 2*(t.leaves-1)
}

// set stores an entry at a flat-tree position, growing the sequence with
// zero-valued gap entries as needed.
func (t *Tree) set(index uint64, e section.Entry) {
	for uint64(len(t.entries)) <= index {
		t.entries = append(t.entries, section.Entry{})
	}
	t.entries[index] = e
	t.written++
}
