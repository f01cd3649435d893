package searcher

import (
	"slices"

	"gonum.org/v1/gonum/stat/combin"

	"tag/game"
)

// arrangements walks every distinct ordering of a multiset of pieces exactly
// once, starting from the sorted ordering, without keeping any history.
type arrangements struct {
	current   []game.Piece
	remaining int
}

func newArrangements(xs, os, empties int) *arrangements {
	current := make([]game.Piece, 0, xs+os+empties)
	for _, group := range []struct {
		piece game.Piece
		count int
	}{{game.X, xs}, {game.O, os}, {game.Empty, empties}} {
		for i := 0; i < group.count; i++ {
			current = append(current, group.piece)
		}
	}
	n := len(current)
	return &arrangements{
		current:   current,
		remaining: combin.Binomial(n, xs) * combin.Binomial(n-xs, os),
	}
}

// Next returns a fresh copy of the next ordering.
func (a *arrangements) Next() ([]game.Piece, bool) {
	if a.remaining == 0 {
		return nil, false
	}
	a.remaining--
	out := slices.Clone(a.current)
	a.advance()
	return out, true
}

// advance moves the head to just after the first ascent of the tail, or one
// further when the head is not greater than that ascent's first element.
func (a *arrangements) advance() {
	v := a.current
	if len(v) < 2 {
		return
	}
	head := v[0]
	pos := len(v) - 1
	for i := 1; i+1 < len(v); i++ {
		if v[i] < v[i+1] {
			pos = i + 1
			if head > v[i] {
				pos = i
			}
			break
		}
	}
	copy(v[:pos], v[1:pos+1])
	v[pos] = head
}
