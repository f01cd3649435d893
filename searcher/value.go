package searcher

import (
	"cmp"
	"fmt"
)

// Outcome is ordered from worst to best for the player to move.
type Outcome uint8

const (
	Lose Outcome = iota
	Tie
	Unknown
	Win
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "Lose"
	case Tie:
		return "Tie"
	case Unknown:
		return "Unknown"
	case Win:
		return "Win"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Value is an outcome reached after Moves further moves. Losses and ties are
// better when they come later, wins and unresolved lines when they come sooner.
type Value struct {
	Outcome Outcome
	Moves   int
}

// Compare returns +1 when v is better than w for the player to move.
func (v Value) Compare(w Value) int {
	if c := cmp.Compare(v.Outcome, w.Outcome); c != 0 {
		return c
	}
	switch v.Outcome {
	case Lose, Tie:
		return cmp.Compare(v.Moves, w.Moves)
	default:
		return cmp.Compare(w.Moves, v.Moves)
	}
}

// Next converts a value seen by the opponent after a move into the value of
// that move for the player making it.
func (v Value) Next() Value {
	switch v.Outcome {
	case Lose:
		return Value{Outcome: Win, Moves: v.Moves + 1}
	case Win:
		return Value{Outcome: Lose, Moves: v.Moves + 1}
	default:
		return Value{Outcome: v.Outcome, Moves: v.Moves + 1}
	}
}

func (v Value) String() string {
	return fmt.Sprintf("%v(%d)", v.Outcome, v.Moves)
}
