package canon

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"tag/game"
)

const (
	X = game.X
	O = game.O
	E = game.Empty
)

func randomBoard(rng *rand.Rand, size int) game.Board {
	b := game.NewBoard(size)
	for i := range b.Grid {
		b.Grid[i] = game.Piece(rng.Intn(3))
	}
	return b
}

func permuteRows(b game.Board, perm []int) game.Board {
	out := game.NewBoard(b.Size)
	for r, from := range perm {
		copy(out.Grid[r*b.Size:(r+1)*b.Size], b.Grid[from*b.Size:(from+1)*b.Size])
	}
	return out
}

func permuteCols(b game.Board, perm []int) game.Board {
	out := b.Clone()
	out.Transpose()
	out = permuteRows(out, perm)
	out.Transpose()
	return out
}

func TestCanonicalScenario(t *testing.T) {
	b, err := game.FromGrid([]game.Piece{
		X, O, E,
		O, X, E,
		E, E, E,
	})
	require.NoError(t, err)

	s := Scramble(b)
	s.FullyStandardize()

	require.Equal(t, []game.Piece{
		E, E, E,
		E, O, X,
		E, X, O,
	}, s.Board().Grid)
	require.Equal(t, game.Coord{Row: 2, Col: 2}, s.Origin(game.Coord{Row: 0, Col: 0}),
		"Top left of the canonical board should be the bottom right of the source")
	require.True(t, s.Original().Equal(b), "Origins should rebuild the source board")
}

func TestCanonicalProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	t.Run("canonicalization is idempotent", func(t *testing.T) {
		for size := 1; size <= 5; size++ {
			for i := 0; i < 200; i++ {
				b := randomBoard(rng, size)
				once := Canonical(b)
				require.True(t, once.Equal(Canonical(once)), "board %v", b.Grid)
				require.True(t, IsCanonical(once))
			}
		}
	})

	t.Run("result is standard and keeps the pieces", func(t *testing.T) {
		for size := 1; size <= 5; size++ {
			for i := 0; i < 200; i++ {
				b := randomBoard(rng, size)
				s := Scramble(b)
				s.FullyStandardize()
				require.True(t, s.IsStandard())
				for _, p := range []game.Piece{X, O, E} {
					require.Equal(t, b.Count(p), s.Board().Count(p))
				}
				require.True(t, s.Original().Equal(b))
			}
		}
	})

	t.Run("row permutations share a canonical form", func(t *testing.T) {
		for size := 2; size <= 5; size++ {
			for i := 0; i < 200; i++ {
				b := randomBoard(rng, size)
				perm := rng.Perm(size)
				require.True(t, Canonical(b).Equal(Canonical(permuteRows(b, perm))), "board %v perm %v", b.Grid, perm)
			}
		}
	})

	t.Run("column permutations and transposes share a canonical form on small boards", func(t *testing.T) {
		for size := 2; size <= 3; size++ {
			for i := 0; i < 300; i++ {
				b := randomBoard(rng, size)
				perm := rng.Perm(size)
				require.True(t, Canonical(b).Equal(Canonical(permuteCols(b, perm))), "board %v perm %v", b.Grid, perm)
				flipped := b.Clone()
				flipped.Transpose()
				require.True(t, Canonical(b).Equal(Canonical(flipped)), "board %v", b.Grid)
			}
		}
	})

	// Row sorting only reaches a local minimum, so from 4x4 up some column
	// permutations of a board keep their own canonical form. Both forms are
	// still standard, which only costs cache sharing.
	t.Run("column permutations can split a class on 4x4 boards", func(t *testing.T) {
		b, err := game.FromGrid([]game.Piece{
			E, O, E, E,
			O, E, E, E,
			X, E, E, E,
			E, X, E, O,
		})
		require.NoError(t, err)
		permuted := permuteCols(b, []int{2, 1, 3, 0})

		require.Equal(t, []game.Piece{
			E, E, X, E,
			E, E, O, E,
			E, E, E, O,
			E, O, E, X,
		}, Canonical(b).Grid)
		require.Equal(t, []game.Piece{
			E, E, E, X,
			E, E, O, E,
			E, E, E, O,
			E, O, X, E,
		}, Canonical(permuted).Grid)
		require.True(t, IsCanonical(Canonical(permuted)))
	})
}

func TestScrambledOrigins(t *testing.T) {
	b, err := game.FromGrid([]game.Piece{
		X, E, E,
		E, E, O,
		E, X, E,
	})
	require.NoError(t, err)

	s := Scramble(b)
	s.Invert()
	s.FullyStandardize()

	for _, c := range b.EmptyCoords() {
		at, ok := s.Locate(c)
		require.True(t, ok)
		require.Equal(t, c, s.Origin(at))
		require.Equal(t, E, s.Board().Grid[at.Row*3+at.Col])
	}
	require.True(t, s.Original().Equal(b.Inverse()))

	_, ok := s.Locate(game.Coord{Row: 3, Col: 0})
	require.False(t, ok)
	require.Panics(t, func() { s.Origin(game.Coord{Row: 0, Col: 3}) })
}
