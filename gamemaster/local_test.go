package gamemaster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tag/game"
)

func at(row, col int) game.Coord {
	return game.Coord{Row: row, Col: col}
}

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine(3)
	board, getUpdate := engine.Init()

	require.Equal(t, 3, board.Size)
	require.Equal(t, 9, board.Count(game.Empty), "Board should start empty")
	require.Equal(t, game.X, engine.Turn(), "X should move first")

	_, ok := getUpdate()
	require.False(t, ok, "No update should be available before a move")
}

func TestLocalEnginePlay(t *testing.T) {
	t.Run("valid move publishes an update", func(t *testing.T) {
		engine := NewLocalEngine(3)
		_, getUpdate := engine.Init()

		err := engine.Play(game.X, at(1, 1))

		require.NoError(t, err)
		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, game.X, u.Piece)
		require.Equal(t, at(1, 1), u.Move)
		got, err := u.Board.PieceAt(at(1, 1))
		require.NoError(t, err)
		require.Equal(t, game.X, got)
		require.Equal(t, game.O, engine.Turn())
	})

	t.Run("moving out of turn", func(t *testing.T) {
		engine := NewLocalEngine(3)
		engine.Init()

		err := engine.Play(game.O, at(0, 0))

		require.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("occupied and out of bounds cells", func(t *testing.T) {
		engine := NewLocalEngine(2)
		engine.Init()
		require.NoError(t, engine.Play(game.X, at(0, 0)))

		require.ErrorIs(t, engine.Play(game.O, at(0, 0)), ErrIllegalMove)
		require.ErrorIs(t, engine.Play(game.O, at(2, 0)), ErrIllegalMove)
		require.Equal(t, game.O, engine.Turn(), "Rejected moves should not pass the turn")
	})

	t.Run("play before init", func(t *testing.T) {
		require.ErrorIs(t, NewLocalEngine(2).Play(game.X, at(0, 0)), ErrIllegalMove)
	})

	t.Run("published boards are copies", func(t *testing.T) {
		engine := NewLocalEngine(2)
		_, getUpdate := engine.Init()
		require.NoError(t, engine.Play(game.X, at(0, 0)))
		u, _ := getUpdate()

		u.Board.Grid[1] = game.O

		require.NoError(t, engine.Play(game.O, at(0, 1)), "Mutating an update should not touch the live board")
	})
}

func TestLocalEngineGameOver(t *testing.T) {
	t.Run("transversal wins", func(t *testing.T) {
		engine := NewLocalEngine(2)
		_, getUpdate := engine.Init()

		require.NoError(t, engine.Play(game.X, at(0, 0)))
		require.NoError(t, engine.Play(game.O, at(0, 1)))
		require.NoError(t, engine.Play(game.X, at(1, 1)))

		winner, over := engine.Winner()
		require.True(t, over)
		require.Equal(t, game.X, winner)

		for i := 0; i < 3; i++ {
			_, ok := getUpdate()
			require.True(t, ok, "Every move should be published before the channel closes")
		}
		_, ok := getUpdate()
		require.False(t, ok)

		err := engine.Play(game.O, at(1, 0))
		require.ErrorIs(t, err, ErrGameOver)
		require.EqualError(t, err, "game is over - no moves allowed")
	})

	t.Run("full board ties", func(t *testing.T) {
		engine := NewLocalEngine(2)
		engine.Init()

		require.NoError(t, engine.Play(game.X, at(0, 0)))
		require.NoError(t, engine.Play(game.O, at(1, 1)))
		require.NoError(t, engine.Play(game.X, at(1, 0)))
		_, over := engine.Winner()
		require.False(t, over)
		require.NoError(t, engine.Play(game.O, at(0, 1)))

		winner, over := engine.Winner()
		require.True(t, over)
		require.Equal(t, game.Empty, winner)
	})

	t.Run("init starts a fresh game", func(t *testing.T) {
		engine := NewLocalEngine(1)
		engine.Init()
		require.NoError(t, engine.Play(game.X, at(0, 0)))

		board, _ := engine.Init()

		_, over := engine.Winner()
		require.False(t, over)
		require.Equal(t, 1, board.Count(game.Empty))
	})
}
