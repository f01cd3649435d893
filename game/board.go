package game

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// MaxSize bounds the side length so column sets fit in a machine word.
const MaxSize = 16

// Board is an N×N grid stored row-major.
type Board struct {
	Size int
	Grid []Piece
}

func NewBoard(size int) Board {
	if size < 1 || size > MaxSize {
		panic(fmt.Sprintf("board size %d outside [1, %d]", size, MaxSize))
	}
	grid := make([]Piece, size*size)
	for i := range grid {
		grid[i] = Empty
	}
	return Board{Size: size, Grid: grid}
}

// FromGrid builds a board from a row-major grid whose length is a perfect square.
func FromGrid(grid []Piece) (Board, error) {
	size := int(math.Sqrt(float64(len(grid))))
	if size < 1 || size > MaxSize || size*size != len(grid) {
		return Board{}, fmt.Errorf("%w: %d cells", ErrInvalidGrid, len(grid))
	}
	return Board{Size: size, Grid: slices.Clone(grid)}, nil
}

// Key identifies the grid contents, one byte per cell.
func (b Board) Key() string {
	key := make([]byte, len(b.Grid))
	for i, p := range b.Grid {
		key[i] = byte(p)
	}
	return string(key)
}

// ParseKey rebuilds the board a Key was taken from.
func ParseKey(key string) (Board, error) {
	grid := make([]Piece, len(key))
	for i := 0; i < len(key); i++ {
		if key[i] > byte(Empty) {
			return Board{}, fmt.Errorf("invalid piece byte %d at %d", key[i], i)
		}
		grid[i] = Piece(key[i])
	}
	return FromGrid(grid)
}

func (b Board) Clone() Board {
	return Board{Size: b.Size, Grid: slices.Clone(b.Grid)}
}

func (b Board) index(c Coord) (int, error) {
	if c.Row < 0 || c.Row >= b.Size {
		return 0, &OutOfBoundsError{Axis: "row", Index: c.Row, Size: b.Size}
	}
	if c.Col < 0 || c.Col >= b.Size {
		return 0, &OutOfBoundsError{Axis: "col", Index: c.Col, Size: b.Size}
	}
	return c.Row*b.Size + c.Col, nil
}

func (b Board) PieceAt(c Coord) (Piece, error) {
	i, err := b.index(c)
	if err != nil {
		return Empty, err
	}
	return b.Grid[i], nil
}

// Place puts p, which must be X or O, on an empty cell.
func (b *Board) Place(p Piece, c Coord) error {
	if !p.IsPlayer() {
		return &InvalidPieceError{Piece: p}
	}
	i, err := b.index(c)
	if err != nil {
		return err
	}
	if b.Grid[i] != Empty {
		return &OccupiedError{Coord: c, Piece: b.Grid[i]}
	}
	b.Grid[i] = p
	return nil
}

func (b Board) IsFull() bool {
	return !slices.Contains(b.Grid, Empty)
}

func (b Board) IsEmpty() bool {
	return b.Count(Empty) == len(b.Grid)
}

func (b Board) Count(p Piece) int {
	n := 0
	for _, q := range b.Grid {
		if q == p {
			n++
		}
	}
	return n
}

// Invert swaps X and O in place.
func (b *Board) Invert() {
	for i, p := range b.Grid {
		b.Grid[i] = p.Inverse()
	}
}

func (b Board) Inverse() Board {
	inv := b.Clone()
	inv.Invert()
	return inv
}

func (b *Board) Transpose() {
	n := b.Size
	for r := 0; r < n; r++ {
		for c := r + 1; c < n; c++ {
			b.Grid[r*n+c], b.Grid[c*n+r] = b.Grid[c*n+r], b.Grid[r*n+c]
		}
	}
}

// HasWin reports whether p occupies a transversal: one cell in every row,
// no two in the same column.
func (b Board) HasWin(p Piece) bool {
	return b.transversal(p, 0, 0)
}

func (b Board) transversal(p Piece, row int, used uint32) bool {
	if row == b.Size {
		return true
	}
	for col := 0; col < b.Size; col++ {
		if used&(1<<col) != 0 || b.Grid[row*b.Size+col] != p {
			continue
		}
		if b.transversal(p, row+1, used|1<<col) {
			return true
		}
	}
	return false
}

// EmptyCoords lists the empty cells in row-major order.
func (b Board) EmptyCoords() []Coord {
	coords := make([]Coord, 0, len(b.Grid))
	for i, p := range b.Grid {
		if p == Empty {
			coords = append(coords, Coord{Row: i / b.Size, Col: i % b.Size})
		}
	}
	return coords
}

func (b Board) Equal(other Board) bool {
	return b.Size == other.Size && slices.Equal(b.Grid, other.Grid)
}

// Compare orders boards of equal size lexicographically by grid.
func (b Board) Compare(other Board) int {
	return slices.Compare(b.Grid, other.Grid)
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < b.Size; c++ {
		sb.WriteByte(byte('A' + c))
	}
	sb.WriteByte('\n')
	for r := 0; r < b.Size; r++ {
		fmt.Fprintf(&sb, "%-2d", r+1)
		for c := 0; c < b.Size; c++ {
			sb.WriteString(b.Grid[r*b.Size+c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
