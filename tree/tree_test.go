package tree

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khernyo/sleep-parser/errs"
	"github.com/khernyo/sleep-parser/section"
)

// appendBlocks appends n data blocks of the given sizes, hashing synthetic
// block content with the tree's default hash.
func appendBlocks(t *testing.T, tr *Tree, sizes ...uint64) {
	t.Helper()

	for i, size := range sizes {
		block := make([]byte, size)
		for j := range block {
			block[j] = byte(i)
		}
		tr.AppendLeaf(Blake2b(block), size)
	}
}

func TestTree_AppendLeaf(t *testing.T) {
	t.Run("Single leaf", func(t *testing.T) {
		tr, err := New()
		require.NoError(t, err)

		index := tr.AppendLeaf(Blake2b([]byte("a")), 1)
		require.Equal(t, uint64(0), index)
		require.Equal(t, uint64(1), tr.Leaves())
		require.Equal(t, uint64(1), tr.Len())
	})

	t.Run("Two equal blocks produce one parent", func(t *testing.T) {
		tr, err := New()
		require.NoError(t, err)

		h0 := Blake2b([]byte("block zero"))
		h1 := Blake2b([]byte("block one "))
		tr.AppendLeaf(h0, 10)
		tr.AppendLeaf(h1, 10)

		// two leaves plus exactly one parent
		require.Equal(t, uint64(3), tr.Len())

		parent, ok := tr.Entry(1)
		require.True(t, ok)
		require.Equal(t, uint64(20), parent.ByteLength)

		var joined [2 * section.HashSize]byte
		copy(joined[:section.HashSize], h0[:])
		copy(joined[section.HashSize:], h1[:])
		require.Equal(t, Blake2b(joined[:]), parent.Hash)
	})

	t.Run("Third leaf completes no parent", func(t *testing.T) {
		tr, err := New()
		require.NoError(t, err)
		appendBlocks(t, tr, 4, 4, 4)

		require.Equal(t, uint64(4), tr.Len()) // 3 leaves + 1 parent

		_, ok := tr.Entry(3)
		require.False(t, ok, "node 3 needs 4 leaves")
		_, ok = tr.Entry(5)
		require.False(t, ok, "node 5 needs leaves 2 and 3")
	})

	t.Run("Fourth leaf completes two parents", func(t *testing.T) {
		tr, err := New()
		require.NoError(t, err)
		appendBlocks(t, tr, 4, 4, 4, 4)

		require.Equal(t, uint64(7), tr.Len()) // 4 leaves + 3 internal nodes

		root, ok := tr.Entry(3)
		require.True(t, ok)
		require.Equal(t, uint64(16), root.ByteLength)
	})

	t.Run("Length is monotonically non-decreasing", func(t *testing.T) {
		tr, err := New()
		require.NoError(t, err)

		prev := uint64(0)
		for i := 0; i < 20; i++ {
			appendBlocks(t, tr, 8)
			require.GreaterOrEqual(t, tr.Len(), prev+1)
			prev = tr.Len()
		}
		// a forest over n leaves holds 2n - popcount(n) nodes; n=20 gives 38
		require.Equal(t, uint64(38), tr.Len())
	})
}

func TestTree_Roots(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	require.Empty(t, tr.Roots())
	_, err = tr.Root()
	require.ErrorIs(t, err, errs.ErrNoSingleRoot)

	appendBlocks(t, tr, 1)
	require.Equal(t, []uint64{0}, tr.Roots())

	appendBlocks(t, tr, 1)
	require.Equal(t, []uint64{1}, tr.Roots())
	root, err := tr.Root()
	require.NoError(t, err)
	require.Equal(t, uint64(1), root)

	appendBlocks(t, tr, 1)
	require.Equal(t, []uint64{1, 4}, tr.Roots())
	_, err = tr.Root()
	require.ErrorIs(t, err, errs.ErrNoSingleRoot)

	appendBlocks(t, tr, 1)
	require.Equal(t, []uint64{3}, tr.Roots())
}

func TestRootForLeafCount(t *testing.T) {
	root, err := RootForLeafCount(4)
	require.NoError(t, err)
	require.Equal(t, uint64(3), root)

	_, err = RootForLeafCount(3)
	require.ErrorIs(t, err, errs.ErrNoSingleRoot)

	_, err = RootForLeafCount(0)
	require.ErrorIs(t, err, errs.ErrNoSingleRoot)
}

func TestTree_ValidateSubtree(t *testing.T) {
	t.Run("Valid tree", func(t *testing.T) {
		tr, err := New()
		require.NoError(t, err)
		appendBlocks(t, tr, 16, 16, 16, 16)

		require.NoError(t, tr.ValidateSubtree(3))
		require.NoError(t, tr.ValidateAll())
	})

	t.Run("Idempotent", func(t *testing.T) {
		tr, err := New()
		require.NoError(t, err)
		appendBlocks(t, tr, 8, 8, 8)

		for _, root := range tr.Roots() {
			require.NoError(t, tr.ValidateSubtree(root))
			require.NoError(t, tr.ValidateSubtree(root))
		}
	})

	t.Run("Detects corrupted parent hash", func(t *testing.T) {
		// memo disabled so every walk recomputes from the leaves
		tr, err := New(WithVerifiedCacheSize(0))
		require.NoError(t, err)
		appendBlocks(t, tr, 8, 8, 8)

		// flip a single bit in the stored parent of leaves 0 and 2
		tr.Entries()[1].Hash[0] ^= 0x01

		err = tr.ValidateSubtree(1)
		require.ErrorIs(t, err, errs.ErrHashMismatch)

		var nodeErr *NodeError
		require.ErrorAs(t, err, &nodeErr)
		require.Equal(t, uint64(1), nodeErr.Index)
	})

	t.Run("Reports lowest diverging node first", func(t *testing.T) {
		tr, err := New(WithVerifiedCacheSize(0))
		require.NoError(t, err)
		appendBlocks(t, tr, 8, 8, 8, 8)

		tr.Entries()[1].Hash[31] ^= 0x80

		err = tr.ValidateSubtree(3)
		var nodeErr *NodeError
		require.ErrorAs(t, err, &nodeErr)
		require.Equal(t, uint64(1), nodeErr.Index, "divergence must surface at node 1, not the root")
	})

	t.Run("Detects corrupted byte length", func(t *testing.T) {
		tr, err := New(WithVerifiedCacheSize(0))
		require.NoError(t, err)
		appendBlocks(t, tr, 8, 8)

		tr.Entries()[1].ByteLength++

		require.ErrorIs(t, tr.ValidateSubtree(1), errs.ErrHashMismatch)
	})

	t.Run("Incomplete tree", func(t *testing.T) {
		tr, err := New()
		require.NoError(t, err)
		appendBlocks(t, tr, 8, 8, 8)

		err = tr.ValidateSubtree(3)
		require.ErrorIs(t, err, errs.ErrIncompleteTree)

		var nodeErr *NodeError
		require.ErrorAs(t, err, &nodeErr)
	})
}

func TestLoad(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		tr, err := New()
		require.NoError(t, err)
		appendBlocks(t, tr, 8, 8, 8)

		loaded, err := Load(tr.Entries())
		require.NoError(t, err)
		require.Equal(t, tr.Leaves(), loaded.Leaves())
		require.Equal(t, tr.Len(), loaded.Len())
		require.NoError(t, loaded.ValidateAll())

		// appending continues where the stored tree left off
		loaded.AppendLeaf(Blake2b([]byte("fourth")), 8)
		require.Equal(t, []uint64{3}, loaded.Roots())
	})

	t.Run("Empty sequence", func(t *testing.T) {
		loaded, err := Load(nil)
		require.NoError(t, err)
		require.Equal(t, uint64(0), loaded.Leaves())
	})

	t.Run("Even length is rejected", func(t *testing.T) {
		_, err := Load(make([]section.Entry, 4))
		require.ErrorIs(t, err, errs.ErrIncompleteTree)
	})
}

func TestSignRoot(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	tr, errNew := New()
	require.NoError(t, errNew)
	appendBlocks(t, tr, 4, 4)

	root, err := tr.Root()
	require.NoError(t, err)
	entry, ok := tr.Entry(root)
	require.True(t, ok)

	sig := SignRoot(priv, entry.Hash)
	require.True(t, VerifyRoot(pub, entry.Hash, sig))

	sig.Signature[0] ^= 0xFF
	require.False(t, VerifyRoot(pub, entry.Hash, sig))
}
