package canon

import (
	"fmt"
	"slices"

	"tag/game"
)

// Space is a cell of a scrambled board together with the coordinate it
// occupied on the board it was scrambled from.
type Space struct {
	Piece  game.Piece
	Origin game.Coord
}

// Scrambled is a board whose rows and columns have been permuted and
// transposed, remembering where every cell came from.
type Scrambled struct {
	size int
	grid []Space
}

func Scramble(b game.Board) *Scrambled {
	grid := make([]Space, len(b.Grid))
	for i, p := range b.Grid {
		grid[i] = Space{Piece: p, Origin: game.Coord{Row: i / b.Size, Col: i % b.Size}}
	}
	return &Scrambled{size: b.Size, grid: grid}
}

func (s *Scrambled) Size() int {
	return s.size
}

func (s *Scrambled) Clone() *Scrambled {
	return &Scrambled{size: s.size, grid: slices.Clone(s.grid)}
}

// Board drops origins and returns the bare scrambled grid.
func (s *Scrambled) Board() game.Board {
	grid := make([]game.Piece, len(s.grid))
	for i, space := range s.grid {
		grid[i] = space.Piece
	}
	return game.Board{Size: s.size, Grid: grid}
}

// Original writes every piece back to its origin.
func (s *Scrambled) Original() game.Board {
	b := game.NewBoard(s.size)
	for _, space := range s.grid {
		b.Grid[space.Origin.Row*s.size+space.Origin.Col] = space.Piece
	}
	return b
}

// Origin maps a coordinate of the scrambled board back to the source board.
func (s *Scrambled) Origin(c game.Coord) game.Coord {
	if c.Row < 0 || c.Row >= s.size || c.Col < 0 || c.Col >= s.size {
		panic(fmt.Sprintf("coordinate %v outside scrambled board of size %d", c, s.size))
	}
	return s.grid[c.Row*s.size+c.Col].Origin
}

// Locate is the inverse of Origin.
func (s *Scrambled) Locate(origin game.Coord) (game.Coord, bool) {
	i := slices.IndexFunc(s.grid, func(space Space) bool { return space.Origin == origin })
	if i < 0 {
		return game.Coord{}, false
	}
	return game.Coord{Row: i / s.size, Col: i % s.size}, true
}

func (s *Scrambled) Invert() {
	for i := range s.grid {
		s.grid[i].Piece = s.grid[i].Piece.Inverse()
	}
}

func (s *Scrambled) Transpose() {
	transpose(s.grid, s.size)
}

func transpose(grid []Space, n int) {
	for r := 0; r < n; r++ {
		for c := r + 1; c < n; c++ {
			grid[r*n+c], grid[c*n+r] = grid[c*n+r], grid[r*n+c]
		}
	}
}

func compareBare(a, b []Space) int {
	return slices.CompareFunc(a, b, func(x, y Space) int {
		return int(x.Piece) - int(y.Piece)
	})
}
