package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func place(t *testing.T, b *Board, f Frontier, c Coord, s Stone) {
	t.Helper()
	require.NoError(t, b.Place(c, s))
	f.Update(b, c)
}

func TestFrontierUpdate(t *testing.T) {
	t.Run("first stone in the center", func(t *testing.T) {
		b := NewBoard(15)
		f := NewFrontier()

		place(t, b, f, Coord{7, 7}, Black)

		require.Equal(t, 24, f.Len(), "Every cell within radius 2 should be a candidate")
		require.NotContains(t, f, Coord{7, 7}, "Occupied cell should leave the frontier")
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				require.Equal(t, 1, f.Weight(Coord{7 + dr, 7 + dc}))
			}
		}
	})

	t.Run("corner stone stays in bounds", func(t *testing.T) {
		b := NewBoard(15)
		f := NewFrontier()

		place(t, b, f, Coord{0, 0}, Black)

		require.Equal(t, 8, f.Len())
		for c := range f {
			require.True(t, b.InBounds(c), "Frontier should not contain %v", c)
		}
	})

	t.Run("overlapping blocks accumulate weight", func(t *testing.T) {
		b := NewBoard(15)
		f := NewFrontier()

		place(t, b, f, Coord{7, 7}, Black)
		place(t, b, f, Coord{7, 8}, White)

		require.NotContains(t, f, Coord{7, 8})
		require.Equal(t, 2, f.Weight(Coord{7, 9}))
		require.Equal(t, 1, f.Weight(Coord{7, 10}))
		require.Equal(t, 1, f.Weight(Coord{7, 5}))
		require.Equal(t, 2, f.Weight(Coord{6, 6}))
	})

	t.Run("updating an empty cell panics", func(t *testing.T) {
		b := NewBoard(15)

		require.Panics(t, func() { NewFrontier().Update(b, Coord{3, 3}) })
	})
}

func TestFrontierInvariant(t *testing.T) {
	b := NewBoard(15)
	f := NewFrontier()
	moves := []Coord{{7, 7}, {7, 8}, {8, 8}, {6, 6}, {0, 14}, {1, 13}, {14, 0}, {9, 9}, {5, 5}}
	mover := Black
	for _, c := range moves {
		place(t, b, f, c, mover)
		mover = mover.Opponent()

		for c, w := range f {
			require.True(t, b.IsEmpty(c), "Frontier cell %v should be empty", c)
			require.GreaterOrEqual(t, w, 1)
		}
		require.Equal(t, NewFrontierFromBoard(b), f, "Incremental frontier should match a rebuild")
	}

	// Every empty cell near a stone is a candidate.
	for _, c := range b.EmptyCoords() {
		near := false
		for dr := -BoundRadius; dr <= BoundRadius; dr++ {
			for dc := -BoundRadius; dc <= BoundRadius; dc++ {
				if b.At(Coord{c.Row + dr, c.Col + dc}) != Empty {
					near = true
				}
			}
		}
		if near {
			require.GreaterOrEqual(t, f.Weight(c), 1, "Cell %v is near a stone", c)
		} else {
			require.NotContains(t, f, c)
		}
	}
}

func TestFrontierRevert(t *testing.T) {
	t.Run("update then revert restores the frontier", func(t *testing.T) {
		b := NewBoard(15)
		f := NewFrontier()
		place(t, b, f, Coord{7, 7}, Black)
		place(t, b, f, Coord{8, 9}, White)
		before := f.Clone()

		for _, c := range []Coord{{6, 7}, {9, 9}, {5, 5}, {0, 0}} {
			restore := b.Speculate(c, Black)
			d := f.Update(b, c)
			f.Revert(d)
			restore()

			require.Equal(t, before, f, "Revert of %v should leave no weight behind", c)
		}
	})

	t.Run("nested updates revert in reverse order", func(t *testing.T) {
		b := NewBoard(15)
		f := NewFrontier()
		place(t, b, f, Coord{7, 7}, Black)
		before := f.Clone()

		restore1 := b.Speculate(Coord{7, 8}, White)
		d1 := f.Update(b, Coord{7, 8})
		mid := f.Clone()
		restore2 := b.Speculate(Coord{7, 9}, Black)
		d2 := f.Update(b, Coord{7, 9})

		f.Revert(d2)
		restore2()
		require.Equal(t, mid, f)
		f.Revert(d1)
		restore1()
		require.Equal(t, before, f)
	})
}

func TestFrontierClone(t *testing.T) {
	b := NewBoard(15)
	f := NewFrontier()
	place(t, b, f, Coord{7, 7}, Black)

	clone := f.Clone()
	place(t, b, clone, Coord{7, 8}, White)

	require.Equal(t, 1, f.Weight(Coord{7, 9}), "Parent frontier should be unaffected by the clone")
	require.Contains(t, f, Coord{7, 8})
	require.NotContains(t, clone, Coord{7, 8})
}

func TestFrontierChildNodes(t *testing.T) {
	t.Run("descending weight then row-major", func(t *testing.T) {
		f := Frontier{
			{2, 2}: 1,
			{0, 5}: 3,
			{1, 1}: 1,
			{0, 1}: 3,
			{4, 0}: 2,
		}

		require.Equal(t, []Coord{{0, 1}, {0, 5}, {4, 0}, {1, 1}, {2, 2}}, f.ChildNodes())
	})

	t.Run("order is reproducible", func(t *testing.T) {
		b := NewBoard(15)
		f := NewFrontier()
		place(t, b, f, Coord{7, 7}, Black)
		place(t, b, f, Coord{6, 8}, White)

		first := f.ChildNodes()
		for i := 0; i < 20; i++ {
			require.Equal(t, first, f.Clone().ChildNodes())
		}
	})

	t.Run("empty frontier", func(t *testing.T) {
		require.Empty(t, NewFrontier().ChildNodes())
	})
}
