package searcher

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"tag/canon"
	"tag/game"
)

// Exhaustive marks an analysis that holds for any search depth.
const Exhaustive = math.MaxInt

// Analysis is the cached result for a canonical board: its value for the
// player to move, the optimal moves in canonical coordinates and the depth
// the result is valid for.
type Analysis struct {
	Value Value
	Moves []game.Coord
	Depth int
}

// placeholder stands in for an aborted branch. It is never cached.
var placeholder = Analysis{Value: Value{Outcome: Unknown}}

type outcome struct {
	move  game.Coord
	value Value
	depth int
}

func deeper(depth int) int {
	if depth == Exhaustive {
		return depth
	}
	return depth + 1
}

// terminal analyses a board whose game is already decided.
func terminal(key game.Board, piece game.Piece) (Analysis, bool) {
	if key.HasWin(piece.Inverse()) {
		return Analysis{Value: Value{Outcome: Lose}, Depth: Exhaustive}, true
	}
	if key.IsFull() {
		return Analysis{Value: Value{Outcome: Tie}, Depth: Exhaustive}, true
	}
	return Analysis{}, false
}

// frontier is the analysis at an exhausted depth budget.
func frontier(key game.Board) Analysis {
	return Analysis{Value: Value{Outcome: Unknown}, Moves: key.EmptyCoords(), Depth: 0}
}

// advance plays piece at c. A move that wins or fills the board is valued on
// the spot; otherwise the child is returned canonicalized from the opponent's
// point of view.
func advance(key game.Board, piece game.Piece, c game.Coord) (game.Board, Value, bool) {
	child := key.Clone()
	if err := child.Place(piece, c); err != nil {
		panic(fmt.Sprintf("illegal search move %v: %v", c, err))
	}
	if child.HasWin(piece) {
		return child, Value{Outcome: Win}, true
	}
	if child.IsFull() {
		return child, Value{Outcome: Tie}, true
	}
	child.Invert()
	return canon.Canonical(child), Value{}, false
}

// summarize keeps every move achieving the best value. The result is as deep
// as the shallowest child allows.
func summarize(outcomes []outcome) Analysis {
	if len(outcomes) == 0 {
		panic("no moves to summarize on a live board")
	}
	best := lo.MaxBy(outcomes, func(a, b outcome) bool {
		return a.value.Compare(b.value) > 0
	}).value
	moves := lo.FilterMap(outcomes, func(o outcome, _ int) (game.Coord, bool) {
		return o.move, o.value == best
	})
	shallowest := lo.MinBy(outcomes, func(a, b outcome) bool {
		return a.depth < b.depth
	}).depth
	return Analysis{Value: best, Moves: moves, Depth: deeper(shallowest)}
}
