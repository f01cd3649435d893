package searcher

import (
	"errors"
	"fmt"

	"tag/experiments/metrics"
	"tag/game"
	"tag/meta"
)

var (
	ErrGameOver     = errors.New("game is already over")
	ErrSizeMismatch = errors.New("board size does not match engine")
	ErrInvalidPiece = errors.New("piece cannot move")
	ErrUnknownKind  = errors.New("unknown engine kind")
)

type Kind string

const (
	KindSerial   Kind = "serial"
	KindParallel Kind = "parallel"
	KindLazy     Kind = "lazy"
	KindGroundUp Kind = "ground-up"
)

// Engine picks moves for one board size. The engine piece fixes the
// perspective of its cache; requests for the other piece are answered on the
// inverted board.
type Engine interface {
	Kind() Kind
	Size() int
	Piece() game.Piece
	ChooseMove(piece game.Piece, b game.Board) (game.Coord, error)
	Export() Snapshot
	Import(s Snapshot) error
	LastMetric() metrics.SearchMetric
}

type Option func(s *settings)

type settings struct {
	depth         int
	goroutines    int
	serialDepth   int
	store         Store
	seed          uint64
	seeded        bool
	deterministic bool
	metrics       metrics.Collector
}

// WithDepth bounds the search to depth plies. It has no effect on the lazy and
// ground-up engines, which always search exhaustively.
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(s *settings) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithSerialDepth sets how many plies below the root the parallel engine
// still evaluates siblings one after another.
func WithSerialDepth(depth int) Option {
	return func(s *settings) {
		if depth >= 0 {
			s.serialDepth = depth
		}
	}
}

func WithStore(store Store) Option {
	return func(s *settings) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSeed makes move sampling reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}

// WithDeterministic turns off equivalent move re-randomization.
func WithDeterministic() Option {
	return func(s *settings) {
		s.deterministic = true
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

func newSettings(size int, options []Option) settings {
	s := settings{ // Default values
		depth:       size * size,
		goroutines:  meta.GO_ROUTINES,
		serialDepth: meta.SERIAL_DEPTH,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if s.depth > size*size {
		s.depth = size * size
	}
	if s.store == nil {
		s.store = NewSyncStore(meta.CACHE_SHARDS)
	}
	return s
}

// New builds an engine of the given kind.
func New(kind Kind, size int, piece game.Piece, options ...Option) (Engine, error) {
	if size < 1 || size > game.MaxSize {
		return nil, fmt.Errorf("board size %d outside [1, %d]", size, game.MaxSize)
	}
	if !piece.IsPlayer() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPiece, piece)
	}
	switch kind {
	case KindSerial:
		return NewSerial(size, piece, options...), nil
	case KindParallel:
		return NewParallel(size, piece, options...), nil
	case KindLazy:
		return NewLazy(size, piece, options...), nil
	case KindGroundUp:
		return NewGroundUp(size, piece, options...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
