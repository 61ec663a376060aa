package flattree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khernyo/sleep-parser/errs"
)

func TestDepth(t *testing.T) {
	cases := map[uint64]uint64{
		0: 0, 2: 0, 4: 0, 6: 0, 8: 0,
		1: 1, 5: 1, 9: 1,
		3: 2, 11: 2,
		7: 3,
	}

	for index, depth := range cases {
		require.Equal(t, depth, Depth(index), "Depth(%d)", index)
	}
}

func TestOffset(t *testing.T) {
	cases := map[uint64]uint64{
		0: 0, 2: 1, 4: 2, 6: 3,
		1: 0, 5: 1, 9: 2,
		3: 0, 11: 1,
		7: 0,
	}

	for index, offset := range cases {
		require.Equal(t, offset, Offset(index), "Offset(%d)", index)
	}
}

func TestIndex(t *testing.T) {
	require.Equal(t, uint64(0), Index(0, 0))
	require.Equal(t, uint64(2), Index(0, 1))
	require.Equal(t, uint64(1), Index(1, 0))
	require.Equal(t, uint64(5), Index(1, 1))
	require.Equal(t, uint64(3), Index(2, 0))
	require.Equal(t, uint64(7), Index(3, 0))
}

func TestParent(t *testing.T) {
	cases := map[uint64]uint64{
		0: 1, 2: 1,
		4: 5, 6: 5,
		1: 3, 5: 3,
		3: 7, 11: 7,
	}

	for index, parent := range cases {
		require.Equal(t, parent, Parent(index), "Parent(%d)", index)
	}
}

func TestSibling(t *testing.T) {
	cases := map[uint64]uint64{
		0: 2, 2: 0,
		4: 6, 6: 4,
		1: 5, 5: 1,
		3: 11, 11: 3,
	}

	for index, sibling := range cases {
		require.Equal(t, sibling, Sibling(index), "Sibling(%d)", index)
	}
}

func TestChildren(t *testing.T) {
	t.Run("Internal nodes", func(t *testing.T) {
		left, right, err := Children(1)
		require.NoError(t, err)
		require.Equal(t, uint64(0), left)
		require.Equal(t, uint64(2), right)

		left, right, err = Children(3)
		require.NoError(t, err)
		require.Equal(t, uint64(1), left)
		require.Equal(t, uint64(5), right)
	})

	t.Run("Leaves have no children", func(t *testing.T) {
		for _, leaf := range []uint64{0, 2, 4, 1024} {
			_, _, err := Children(leaf)
			require.ErrorIs(t, err, errs.ErrLeafHasNoChildren, "Children(%d)", leaf)
		}
	})
}

func TestSpans(t *testing.T) {
	cases := []struct {
		index, first, last uint64
	}{
		{0, 0, 0},
		{2, 2, 2},
		{1, 0, 2},
		{5, 4, 6},
		{3, 0, 6},
		{7, 0, 14},
		{11, 8, 14},
	}

	for _, c := range cases {
		first, last := Spans(c.index)
		require.Equal(t, c.first, first, "LeftSpan(%d)", c.index)
		require.Equal(t, c.last, last, "RightSpan(%d)", c.index)
	}
}

func TestCount(t *testing.T) {
	require.Equal(t, uint64(1), Count(0))
	require.Equal(t, uint64(3), Count(1))
	require.Equal(t, uint64(7), Count(3))
	require.Equal(t, uint64(15), Count(7))
}

func TestFullRoots(t *testing.T) {
	t.Run("Known decompositions", func(t *testing.T) {
		cases := []struct {
			index uint64
			roots []uint64
		}{
			{0, nil},
			{2, []uint64{0}},
			{4, []uint64{1}},
			{6, []uint64{1, 4}},
			{8, []uint64{3}},
			{10, []uint64{3, 8}},
			{12, []uint64{3, 9}},
			{14, []uint64{3, 9, 12}},
			{16, []uint64{7}},
		}

		for _, c := range cases {
			roots, err := FullRoots(c.index)
			require.NoError(t, err)
			require.Equal(t, c.roots, roots, "FullRoots(%d)", c.index)
		}
	})

	t.Run("Odd index is out of domain", func(t *testing.T) {
		_, err := FullRoots(7)
		require.ErrorIs(t, err, errs.ErrInvalidIndex)
	})
}

func TestRootsForLeaves(t *testing.T) {
	require.Nil(t, RootsForLeaves(0))
	require.Equal(t, []uint64{0}, RootsForLeaves(1))
	require.Equal(t, []uint64{1}, RootsForLeaves(2))
	require.Equal(t, []uint64{1, 4}, RootsForLeaves(3))
	require.Equal(t, []uint64{3}, RootsForLeaves(4))
	require.Equal(t, []uint64{3, 9, 12}, RootsForLeaves(7))
}
