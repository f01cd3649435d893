package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("index out of bounds")
	ErrOccupied    = errors.New("space occupied")
	ErrInvalidGrid = errors.New("grid is not square")
	ErrNotAPlayer  = errors.New("piece is not a player")
)

// OutOfBoundsError names the offending axis ("row" or "col").
type OutOfBoundsError struct {
	Axis  string
	Index int
	Size  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("found %s index %d, but board is of size %d", e.Axis, e.Index, e.Size)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

type OccupiedError struct {
	Coord Coord
	Piece Piece
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("space %v is already occupied by %v", e.Coord, e.Piece)
}

func (e *OccupiedError) Unwrap() error {
	return ErrOccupied
}

type InvalidPieceError struct {
	Piece Piece
}

func (e *InvalidPieceError) Error() string {
	return fmt.Sprintf("cannot place %v, only X and O can be placed", e.Piece)
}

func (e *InvalidPieceError) Unwrap() error {
	return ErrNotAPlayer
}
