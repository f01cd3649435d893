package player

import (
	"fmt"

	"golang.org/x/exp/rand"

	"tag/experiments/metrics"
	"tag/game"
	"tag/searcher"
)

// Player chooses moves for one piece.
type Player interface {
	Piece() game.Piece
	ChooseMove(b game.Board) (game.Coord, error)
}

// Reporter is implemented by players that measure their searches.
type Reporter interface {
	LastMetric() metrics.SearchMetric
}

// AI plays the moves an engine chooses.
type AI struct {
	piece  game.Piece
	engine searcher.Engine
}

func NewAI(piece game.Piece, engine searcher.Engine) *AI {
	return &AI{piece: piece, engine: engine}
}

func (a *AI) Piece() game.Piece {
	return a.piece
}

func (a *AI) Engine() searcher.Engine {
	return a.engine
}

func (a *AI) ChooseMove(b game.Board) (game.Coord, error) {
	return a.engine.ChooseMove(a.piece, b)
}

func (a *AI) LastMetric() metrics.SearchMetric {
	return a.engine.LastMetric()
}

func (a *AI) String() string {
	return fmt.Sprintf("%s AI (%v)", a.engine.Kind(), a.piece)
}

// Random plays a uniformly random empty cell.
type Random struct {
	piece game.Piece
	rng   *rand.Rand
}

func NewRandom(piece game.Piece, seed uint64) *Random {
	return &Random{piece: piece, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Piece() game.Piece {
	return r.piece
}

func (r *Random) ChooseMove(b game.Board) (game.Coord, error) {
	empties := b.EmptyCoords()
	if len(empties) == 0 {
		return game.Coord{}, searcher.ErrGameOver
	}
	return empties[r.rng.Intn(len(empties))], nil
}

func (r *Random) String() string {
	return fmt.Sprintf("random (%v)", r.piece)
}
