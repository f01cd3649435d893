package gamemaster

import (
	"errors"
	"fmt"

	"tag/game"
	"tag/utils"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
)

// Update is published after every accepted move.
type Update struct {
	Piece game.Piece
	Move  game.Coord
	Board game.Board
}

// UpdateGetter returns the next unread update without blocking.
type UpdateGetter func() (Update, bool)

type Engine interface {
	Init() (game.Board, UpdateGetter)
	Play(piece game.Piece, move game.Coord) error
	Turn() game.Piece
	Winner() (winner game.Piece, over bool)
}

type localEngine struct {
	size     int
	board    game.Board
	turn     game.Piece
	updateCh chan Update
	gameOver bool
	winner   game.Piece
}

func NewLocalEngine(size int) *localEngine {
	return &localEngine{size: size}
}

// Init starts a new game on an empty board with X to move.
func (e *localEngine) Init() (game.Board, UpdateGetter) {
	e.board = game.NewBoard(e.size)
	e.turn = game.X
	e.gameOver = false
	e.winner = game.Empty
	// One slot per cell so Play never blocks on an unread update.
	e.updateCh = make(chan Update, e.size*e.size)
	return e.board.Clone(), func() (Update, bool) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over and drained
				return Update{}, false
			}
			return u, true
		default:
			return Update{}, false
		}
	}
}

func (e *localEngine) Turn() game.Piece {
	return e.turn
}

// Winner reports the winning piece once the game is over. A tie reports Empty.
func (e *localEngine) Winner() (game.Piece, bool) {
	return e.winner, e.gameOver
}

func (e *localEngine) Play(piece game.Piece, move game.Coord) error {
	if e.updateCh == nil {
		return fmt.Errorf("%w: game not started", ErrIllegalMove)
	}
	if e.gameOver {
		return ErrGameOver
	}
	if piece != e.turn {
		return fmt.Errorf("%w: %v to move", ErrNotYourTurn, e.turn)
	}
	if utils.FindIndex(e.board.EmptyCoords(), move) == -1 {
		return fmt.Errorf("%w: %v", ErrIllegalMove, move)
	}
	if err := e.board.Place(piece, move); err != nil {
		return fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}

	switch {
	case e.board.HasWin(piece):
		e.gameOver = true
		e.winner = piece
	case e.board.IsFull():
		e.gameOver = true
	}
	e.turn = piece.Inverse()

	e.updateCh <- Update{Piece: piece, Move: move, Board: e.board.Clone()}
	if e.gameOver {
		close(e.updateCh)
	}
	return nil
}
