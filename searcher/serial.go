package searcher

import (
	"tag/game"
)

// Serial is a depth bounded, memoized minimax search on one goroutine.
type Serial struct {
	base
}

func NewSerial(size int, piece game.Piece, options ...Option) *Serial {
	return &Serial{base: newBase(KindSerial, size, piece, options)}
}

func (s *Serial) ChooseMove(piece game.Piece, board game.Board) (game.Coord, error) {
	scrambled, err := s.perspective(piece, board)
	if err != nil {
		return game.Coord{}, err
	}

	s.begin(1, s.depth)
	a := s.Analyze(scrambled.Board(), s.depth)
	move := s.pick(scrambled, a)
	s.complete(move, a)
	return move, nil
}

// Analyze evaluates a canonical board for the engine piece looking at most
// depth plies ahead.
func (s *Serial) Analyze(key game.Board, depth int) Analysis {
	if a, ok := s.store.Load(key.Key()); ok && a.Depth >= depth {
		s.metrics.AddCacheHit()
		return a
	}
	s.metrics.AddNode()

	if a, ok := terminal(key, s.piece); ok {
		s.store.Store(key.Key(), a)
		return a
	}
	if depth == 0 {
		a := frontier(key)
		s.store.Store(key.Key(), a)
		return a
	}

	empties := key.EmptyCoords()
	outcomes := make([]outcome, 0, len(empties))
	for _, c := range empties {
		child, value, decided := advance(key, s.piece, c)
		if decided {
			outcomes = append(outcomes, outcome{move: c, value: value, depth: Exhaustive})
			continue
		}
		a := s.Analyze(child, depth-1)
		outcomes = append(outcomes, outcome{move: c, value: a.Value.Next(), depth: a.Depth})
	}

	a := summarize(outcomes)
	s.store.Store(key.Key(), a)
	return a
}
