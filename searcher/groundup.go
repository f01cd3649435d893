package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tag/canon"
	"tag/game"
)

// GroundUp solves every canonical position reachable under alternating play,
// from full boards back to the empty board, before answering any request.
type GroundUp struct {
	base
	built bool
}

func NewGroundUp(size int, piece game.Piece, options ...Option) *GroundUp {
	return &GroundUp{base: newBase(KindGroundUp, size, piece, options)}
}

func (g *GroundUp) ChooseMove(piece game.Piece, board game.Board) (game.Coord, error) {
	scrambled, err := g.perspective(piece, board)
	if err != nil {
		return game.Coord{}, err
	}
	key := scrambled.Board()
	mine, theirs := key.Count(g.piece), key.Count(g.piece.Inverse())
	if theirs != mine && theirs != mine+1 {
		panic(fmt.Sprintf("board with %d movers and %d opponents is unreachable by alternating play", mine, theirs))
	}

	g.begin(1, Exhaustive)
	a, ok := g.store.Load(key.Key())
	if !ok && !g.built {
		g.Build()
		a, ok = g.store.Load(key.Key())
	}
	if !ok {
		panic(fmt.Sprintf("ground-up table has no entry for board\n%v", key))
	}
	g.metrics.AddCacheHit()

	move := g.pick(scrambled, a)
	g.complete(move, a)
	return move, nil
}

// Import accepts only exhaustive entries, since the table is served without
// any further search.
func (g *GroundUp) Import(s Snapshot) error {
	for key, a := range s.Entries {
		if a.Depth != Exhaustive {
			return fmt.Errorf("%w: %s snapshot entry %s is only valid to depth %d", ErrSnapshotMismatch, s.Kind, key, a.Depth)
		}
	}
	return g.base.Import(s)
}

// Build fills the table layer by layer. The layer with k filled cells holds
// k/2 mover pieces and the rest opponent pieces, and only refers to layer k+1.
func (g *GroundUp) Build() {
	start := time.Now()
	cells := g.size * g.size
	for filled := cells; filled >= 0; filled-- {
		mine, theirs := filled/2, filled-filled/2
		xs, os := mine, theirs
		if g.piece == game.O {
			xs, os = theirs, mine
		}

		boards := 0
		it := newArrangements(xs, os, cells-filled)
		for grid, ok := it.Next(); ok; grid, ok = it.Next() {
			b := game.Board{Size: g.size, Grid: grid}
			if !canon.IsCanonical(b) {
				continue
			}
			g.metrics.AddNode()
			g.store.Store(b.Key(), g.solve(b))
			boards++
		}
		log.Debug().Int("filled", filled).Int("boards", boards).Msg("ground-up-layer")
	}
	g.built = true
	log.Info().Msgf("solved %dx%d board for %v in %v with %d positions", g.size, g.size, g.piece, time.Since(start), g.store.Len())
}

func (g *GroundUp) solve(b game.Board) Analysis {
	if a, ok := terminal(b, g.piece); ok {
		return a
	}
	empties := b.EmptyCoords()
	outcomes := make([]outcome, 0, len(empties))
	for _, c := range empties {
		child, value, decided := advance(b, g.piece, c)
		if !decided {
			a, ok := g.store.Load(child.Key())
			if !ok {
				panic(fmt.Sprintf("ground-up layer is missing child board\n%v", child))
			}
			value = a.Value.Next()
		}
		outcomes = append(outcomes, outcome{move: c, value: value, depth: Exhaustive})
	}
	return summarize(outcomes)
}
