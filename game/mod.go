package game

import "fmt"

// Piece is the content of a single cell. The declaration order X < O < Empty
// is the order boards are compared in.
type Piece uint8

const (
	X Piece = iota
	O
	Empty
)

// Inverse swaps X and O. Empty stays Empty.
func (p Piece) Inverse() Piece {
	switch p {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// IsPlayer reports whether p is a piece a player can own.
func (p Piece) IsPlayer() bool {
	return p == X || p == O
}

func (p Piece) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

func ParsePiece(s string) (Piece, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	case ".", "", "_":
		return Empty, nil
	}
	return Empty, fmt.Errorf("unknown piece %q", s)
}

type Coord struct {
	Row int
	Col int
}

// String renders a coordinate the way boards are labelled: column letter and 1-based row.
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Col), c.Row+1)
}
