package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tag/canon"
	"tag/game"
)

const (
	X = game.X
	O = game.O
	E = game.Empty
)

func c(row, col int) game.Coord {
	return game.Coord{Row: row, Col: col}
}

func moves(coords ...game.Coord) []game.Coord {
	return coords
}

func board(t *testing.T, grid ...game.Piece) game.Board {
	t.Helper()
	b, err := game.FromGrid(grid)
	require.NoError(t, err)
	return b
}

// scenario has X to move with a win available only at C3.
func scenario(t *testing.T) game.Board {
	return board(t,
		X, O, E,
		O, X, E,
		E, E, E)
}

func canonical(b game.Board) game.Board {
	return canon.Canonical(b)
}
