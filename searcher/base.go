package searcher

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"

	"tag/canon"
	"tag/experiments/metrics"
	"tag/game"
)

type sampler interface {
	Intn(n int) int
}

type fastSampler struct{}

func (fastSampler) Intn(n int) int {
	return frand.Intn(n)
}

// base carries what every engine shares: identity, cache, sampling and metrics.
type base struct {
	kind  Kind
	size  int
	piece game.Piece
	settings
	sampler sampler
	last    metrics.SearchMetric
}

func newBase(kind Kind, size int, piece game.Piece, options []Option) base {
	if !piece.IsPlayer() {
		panic(fmt.Sprintf("engine piece must be X or O, got %v", piece))
	}
	if size < 1 || size > game.MaxSize {
		panic(fmt.Sprintf("board size %d outside [1, %d]", size, game.MaxSize))
	}
	s := newSettings(size, options)
	b := base{kind: kind, size: size, piece: piece, settings: s, sampler: fastSampler{}}
	if s.seeded {
		b.sampler = rand.New(rand.NewSource(s.seed))
	}
	return b
}

func (b *base) Kind() Kind {
	return b.kind
}

func (b *base) Size() int {
	return b.size
}

func (b *base) Piece() game.Piece {
	return b.piece
}

func (b *base) LastMetric() metrics.SearchMetric {
	return b.last
}

// perspective validates a request and scrambles the board into the engine's
// canonical frame, inverting it when piece is not the engine piece.
func (b *base) perspective(piece game.Piece, board game.Board) (*canon.Scrambled, error) {
	if !piece.IsPlayer() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPiece, piece)
	}
	if board.Size != b.size {
		return nil, fmt.Errorf("%w: board is %d, engine is %d", ErrSizeMismatch, board.Size, b.size)
	}
	if board.HasWin(game.X) || board.HasWin(game.O) || board.IsFull() {
		return nil, ErrGameOver
	}
	s := canon.Scramble(board)
	if piece != b.piece {
		s.Invert()
	}
	s.FullyStandardize()
	return s, nil
}

// pick samples one optimal move and maps it back onto the real board.
func (b *base) pick(s *canon.Scrambled, a Analysis) game.Coord {
	if len(a.Moves) == 0 {
		panic(fmt.Sprintf("analysis %v has no moves for a live board", a.Value))
	}
	return s.Origin(a.Moves[b.sampler.Intn(len(a.Moves))])
}

// equivalent samples uniformly among the real moves whose result is
// symmetric to the result of chosen.
func (b *base) equivalent(piece game.Piece, board game.Board, chosen game.Coord) game.Coord {
	target := played(board, piece, chosen)
	group := lo.Filter(board.EmptyCoords(), func(c game.Coord, _ int) bool {
		return played(board, piece, c).Equal(target)
	})
	return group[b.sampler.Intn(len(group))]
}

func played(board game.Board, piece game.Piece, c game.Coord) game.Board {
	child := board.Clone()
	if err := child.Place(piece, c); err != nil {
		panic(fmt.Sprintf("illegal move %v: %v", c, err))
	}
	return canon.Canonical(child)
}

func (b *base) begin(goroutines, depth int) {
	b.metrics.Start(string(b.kind), goroutines, depth)
}

func (b *base) complete(move game.Coord, a Analysis) {
	metric := b.metrics.Complete()
	metric.CacheSize = b.store.Len()
	b.last = metric
	log.Debug().
		Str("engine", string(b.kind)).
		Stringer("move", move).
		Stringer("value", a.Value).
		Int("nodes", metric.Nodes).
		Int("cache", metric.CacheSize).
		Msg("move-chosen")
}
