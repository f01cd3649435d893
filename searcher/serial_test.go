package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tag/game"
)

func TestSerialAnalyze(t *testing.T) {
	t.Run("single cell board is an immediate win", func(t *testing.T) {
		s := NewSerial(1, X, WithStore(NewMapStore()))

		a := s.Analyze(game.NewBoard(1), 1)

		require.Equal(t, Value{Win, 0}, a.Value)
		require.Equal(t, moves(c(0, 0)), a.Moves)
		require.Equal(t, Exhaustive, a.Depth)
	})

	t.Run("empty 2x2 board is a tie with every move optimal", func(t *testing.T) {
		store := NewMapStore()
		s := NewSerial(2, X, WithStore(store))

		a := s.Analyze(game.NewBoard(2), 4)

		require.Equal(t, Value{Tie, 3}, a.Value)
		require.ElementsMatch(t, game.NewBoard(2).EmptyCoords(), a.Moves)
		require.Equal(t, Exhaustive, a.Depth)
		require.Equal(t, 5, store.Len())
	})

	t.Run("empty 3x3 board is a tie with every move optimal", func(t *testing.T) {
		store := NewMapStore()
		s := NewSerial(3, X, WithStore(store))

		a := s.Analyze(game.NewBoard(3), 9)

		require.Equal(t, Value{Tie, 8}, a.Value)
		require.Len(t, a.Moves, 9)
		require.Equal(t, Exhaustive, a.Depth)
		require.Equal(t, 96, store.Len())
	})

	t.Run("depth budget below the horizon stays unknown", func(t *testing.T) {
		for depth := 0; depth <= 4; depth++ {
			s := NewSerial(3, X, WithStore(NewMapStore()))

			a := s.Analyze(game.NewBoard(3), depth)

			require.Equal(t, Value{Unknown, depth}, a.Value, "depth %d", depth)
			require.Len(t, a.Moves, 9)
			require.Equal(t, depth, a.Depth)
		}
	})

	t.Run("immediate win is found at depth one", func(t *testing.T) {
		s := NewSerial(3, X, WithStore(NewMapStore()))
		key := canonical(scenario(t))

		require.Equal(t, []game.Piece{E, E, E, E, O, X, E, X, O}, key.Grid)
		a := s.Analyze(key, 1)

		require.Equal(t, Value{Win, 0}, a.Value)
		require.Equal(t, moves(c(0, 0)), a.Moves)
		full := s.Analyze(key, 9)
		require.Equal(t, a.Value, full.Value, "Full depth should agree")
		require.Equal(t, a.Moves, full.Moves, "Full depth should agree")
	})

	t.Run("board lost for the mover", func(t *testing.T) {
		s := NewSerial(2, X, WithStore(NewMapStore()))

		a := s.Analyze(board(t, O, X, E, O), 4)

		require.Equal(t, Value{Lose, 0}, a.Value)
		require.Empty(t, a.Moves)
		require.Equal(t, Exhaustive, a.Depth)
	})

	t.Run("cache only grows deeper", func(t *testing.T) {
		store := NewMapStore()
		s := NewSerial(3, X, WithStore(store))
		key := game.NewBoard(3)

		s.Analyze(key, 2)
		shallow, _ := store.Load(key.Key())
		s.Analyze(key, 9)
		deep, _ := store.Load(key.Key())
		s.Analyze(key, 1)
		again, _ := store.Load(key.Key())

		require.Equal(t, 2, shallow.Depth)
		require.Equal(t, Exhaustive, deep.Depth)
		require.Equal(t, deep, again)
	})
}

func TestSerialChooseMove(t *testing.T) {
	t.Run("takes the winning move in real coordinates", func(t *testing.T) {
		s := NewSerial(3, X)

		move, err := s.ChooseMove(X, scenario(t))

		require.NoError(t, err)
		require.Equal(t, c(2, 2), move)
	})

	t.Run("answers for the other piece on the inverted board", func(t *testing.T) {
		s := NewSerial(3, X, WithDepth(2))

		move, err := s.ChooseMove(O, scenario(t).Inverse())

		require.NoError(t, err)
		require.Equal(t, c(2, 2), move)
	})

	t.Run("blocks the only drawing square", func(t *testing.T) {
		s := NewSerial(3, O, WithSeed(1))
		b := board(t,
			X, O, E,
			E, X, E,
			E, E, E)

		move, err := s.ChooseMove(O, b)

		require.NoError(t, err)
		require.Equal(t, c(2, 2), move)
	})

	t.Run("sampling is reproducible with a seed", func(t *testing.T) {
		first, err := NewSerial(3, X, WithSeed(42)).ChooseMove(X, game.NewBoard(3))
		require.NoError(t, err)
		second, err := NewSerial(3, X, WithSeed(42)).ChooseMove(X, game.NewBoard(3))
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("rejects finished games and bad requests", func(t *testing.T) {
		s := NewSerial(2, X)

		_, err := s.ChooseMove(X, board(t, X, O, O, X))
		require.ErrorIs(t, err, ErrGameOver)

		_, err = s.ChooseMove(X, board(t, X, O, X, O))
		require.ErrorIs(t, err, ErrGameOver, "Full board should be over")

		_, err = s.ChooseMove(E, game.NewBoard(2))
		require.ErrorIs(t, err, ErrInvalidPiece)

		_, err = s.ChooseMove(X, game.NewBoard(3))
		require.ErrorIs(t, err, ErrSizeMismatch)
	})

	t.Run("records search metrics", func(t *testing.T) {
		s := NewSerial(2, X, WithMetrics())

		_, err := s.ChooseMove(X, game.NewBoard(2))
		require.NoError(t, err)

		metric := s.LastMetric()
		require.Equal(t, "serial", metric.Engine)
		require.Equal(t, 4, metric.Depth)
		require.Equal(t, 5, metric.CacheSize)
		require.Positive(t, metric.Nodes)
	})
}
