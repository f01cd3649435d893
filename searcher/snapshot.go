package searcher

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"tag/canon"
	"tag/game"
)

var ErrSnapshotMismatch = errors.New("snapshot does not fit engine")

// Snapshot is an exported cache. Keys are canonical boards from the point of
// view of Piece.
type Snapshot struct {
	Kind    Kind
	Size    int
	Piece   game.Piece
	Entries map[string]Analysis
}

func (b *base) Export() Snapshot {
	entries := make(map[string]Analysis, b.store.Len())
	b.store.Range(func(key string, a Analysis) bool {
		entries[key] = a
		return true
	})
	return Snapshot{Kind: b.kind, Size: b.size, Piece: b.piece, Entries: entries}
}

// Import merges a snapshot into the cache. A snapshot taken for the other
// piece is translated entry by entry.
func (b *base) Import(s Snapshot) error {
	if s.Size != b.size {
		return fmt.Errorf("%w: size %d, engine size %d", ErrSnapshotMismatch, s.Size, b.size)
	}
	if !s.Piece.IsPlayer() {
		return fmt.Errorf("%w: piece %v", ErrSnapshotMismatch, s.Piece)
	}
	for key, a := range s.Entries {
		if s.Piece != b.piece {
			board, err := game.ParseKey(key)
			if err != nil {
				return fmt.Errorf("failed to parse snapshot key: %w", err)
			}
			if board.Size != b.size {
				return fmt.Errorf("%w: key of size %d", ErrSnapshotMismatch, board.Size)
			}
			key, a = invert(board, a)
		}
		b.store.Store(key, a)
	}
	return nil
}

// invert re-expresses an analysis of board for the opposite piece.
func invert(board game.Board, a Analysis) (string, Analysis) {
	s := canon.Scramble(board.Inverse())
	s.FullyStandardize()
	moves := lo.Map(a.Moves, func(m game.Coord, _ int) game.Coord {
		c, ok := s.Locate(m)
		if !ok {
			panic(fmt.Sprintf("move %v outside board of size %d", m, board.Size))
		}
		return c
	})
	return s.Board().Key(), Analysis{Value: a.Value, Moves: moves, Depth: a.Depth}
}
