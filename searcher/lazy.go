package searcher

import (
	"tag/game"
)

// Lazy searches to the end of the game, stops at the first winning move and
// remembers a single best move per board.
type Lazy struct {
	base
}

func NewLazy(size int, piece game.Piece, options ...Option) *Lazy {
	return &Lazy{base: newBase(KindLazy, size, piece, options)}
}

func (l *Lazy) ChooseMove(piece game.Piece, board game.Board) (game.Coord, error) {
	scrambled, err := l.perspective(piece, board)
	if err != nil {
		return game.Coord{}, err
	}

	l.begin(1, Exhaustive)
	a := l.Analyze(scrambled.Board())
	move := l.pick(scrambled, a)
	if !l.deterministic {
		move = l.equivalent(piece, board, move)
	}
	l.complete(move, a)
	return move, nil
}

func (l *Lazy) Analyze(key game.Board) Analysis {
	if a, ok := l.store.Load(key.Key()); ok && a.Depth == Exhaustive {
		l.metrics.AddCacheHit()
		return a
	}
	l.metrics.AddNode()

	if a, ok := terminal(key, l.piece); ok {
		l.store.Store(key.Key(), a)
		return a
	}

	var best outcome
	found := false
	for _, c := range key.EmptyCoords() {
		child, value, decided := advance(key, l.piece, c)
		if !decided {
			value = l.Analyze(child).Value.Next()
		}
		if value.Outcome == Win {
			best, found = outcome{move: c, value: value}, true
			break
		}
		if !found || value.Compare(best.value) > 0 {
			best, found = outcome{move: c, value: value}, true
		}
	}

	a := Analysis{Value: best.value, Moves: []game.Coord{best.move}, Depth: Exhaustive}
	l.store.Store(key.Key(), a)
	return a
}
