// Package canon reduces boards to a representative of their symmetry class
// under row permutation, column permutation and transposition.
package canon

import (
	"cmp"
	"slices"

	"tag/game"
)

// fastRounds standardizations settle every board seen in practice; after that
// the orbit is tracked explicitly.
const fastRounds = 8

// rowKey orders rows by O count, then X count, then the column sets of O and X
// read as binary numbers with column 0 as the lowest bit.
type rowKey struct {
	os, xs       int
	oMask, xMask uint64
}

func keyOf(row []Space) rowKey {
	var k rowKey
	for col, space := range row {
		switch space.Piece {
		case game.O:
			k.os++
			k.oMask |= 1 << col
		case game.X:
			k.xs++
			k.xMask |= 1 << col
		}
	}
	return k
}

func (k rowKey) compare(other rowKey) int {
	if c := cmp.Compare(k.os, other.os); c != 0 {
		return c
	}
	if c := cmp.Compare(k.xs, other.xs); c != 0 {
		return c
	}
	if c := cmp.Compare(k.oMask, other.oMask); c != 0 {
		return c
	}
	return cmp.Compare(k.xMask, other.xMask)
}

type keyedRow struct {
	key   rowKey
	cells []Space
}

func sortRows(grid []Space, n int) {
	rows := make([]keyedRow, n)
	for r := 0; r < n; r++ {
		cells := slices.Clone(grid[r*n : (r+1)*n])
		rows[r] = keyedRow{key: keyOf(cells), cells: cells}
	}
	slices.SortStableFunc(rows, func(a, b keyedRow) int { return a.key.compare(b.key) })
	for r, row := range rows {
		copy(grid[r*n:], row.cells)
	}
}

func rowsSorted(grid []Space, n int) bool {
	for r := 1; r < n; r++ {
		if keyOf(grid[(r-1)*n:r*n]).compare(keyOf(grid[r*n:(r+1)*n])) > 0 {
			return false
		}
	}
	return true
}

// Standardize sorts rows, transposes, sorts rows again and keeps the smaller
// of the result and its transpose.
func (s *Scrambled) Standardize() {
	sortRows(s.grid, s.size)
	s.Transpose()
	sortRows(s.grid, s.size)

	flipped := slices.Clone(s.grid)
	transpose(flipped, s.size)
	if compareBare(flipped, s.grid) < 0 {
		s.grid = flipped
	}
}

// IsStandard reports whether rows are sorted, the board is no greater than its
// transpose and the transpose's rows are sorted too.
func (s *Scrambled) IsStandard() bool {
	if !rowsSorted(s.grid, s.size) {
		return false
	}
	flipped := slices.Clone(s.grid)
	transpose(flipped, s.size)
	return compareBare(s.grid, flipped) <= 0 && rowsSorted(flipped, s.size)
}

// FullyStandardize repeats Standardize until the board is standard. A board
// whose standardizations cycle settles on the least board of the cycle.
func (s *Scrambled) FullyStandardize() {
	for i := 0; i < fastRounds; i++ {
		if s.IsStandard() {
			return
		}
		s.Standardize()
	}

	seen := map[string]int{}
	var orbit []*Scrambled
	for !s.IsStandard() {
		key := s.Board().Key()
		if start, ok := seen[key]; ok {
			least := orbit[start]
			for _, other := range orbit[start+1:] {
				if compareBare(other.grid, least.grid) < 0 {
					least = other
				}
			}
			s.grid = least.grid
			return
		}
		seen[key] = len(orbit)
		orbit = append(orbit, s.Clone())
		s.Standardize()
	}
}

// Canonical returns the canonical representative of b's symmetry class.
func Canonical(b game.Board) game.Board {
	s := Scramble(b)
	s.FullyStandardize()
	return s.Board()
}

func IsCanonical(b game.Board) bool {
	return Canonical(b).Equal(b)
}
