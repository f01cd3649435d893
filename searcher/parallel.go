package searcher

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"tag/game"
)

// abortChain holds the flag of every frame between the root and a node. A
// flag is raised once its frame has found a winning move, which makes every
// branch still running below it irrelevant.
type abortChain []*atomic.Bool

func (c abortChain) aborted() bool {
	for _, flag := range c {
		if flag.Load() {
			return true
		}
	}
	return false
}

// extend allocates the flag for a new frame and the chain handed to its children.
func (c abortChain) extend() (abortChain, *atomic.Bool) {
	flag := new(atomic.Bool)
	next := make(abortChain, len(c), len(c)+1)
	copy(next, c)
	return append(next, flag), flag
}

// Parallel evaluates sibling moves concurrently once the search is more than
// serialDepth plies below the root, pruning siblings of a proven win.
type Parallel struct {
	base
	pool *semaphore.Weighted
}

func NewParallel(size int, piece game.Piece, options ...Option) *Parallel {
	p := &Parallel{base: newBase(KindParallel, size, piece, options)}
	p.pool = semaphore.NewWeighted(int64(p.goroutines))
	return p
}

func (p *Parallel) ChooseMove(piece game.Piece, board game.Board) (game.Coord, error) {
	scrambled, err := p.perspective(piece, board)
	if err != nil {
		return game.Coord{}, err
	}

	p.begin(p.goroutines, p.depth)
	a := p.Analyze(scrambled.Board(), p.depth)
	move := p.pick(scrambled, a)
	if !p.deterministic {
		move = p.equivalent(piece, board, move)
	}
	p.complete(move, a)
	return move, nil
}

// Analyze evaluates a canonical board for the engine piece. The value always
// matches the serial engine. A win may list fewer moves because siblings of
// the fastest win are pruned.
func (p *Parallel) Analyze(key game.Board, depth int) Analysis {
	a, ok := p.analyze(key, depth, 0, nil)
	if !ok {
		panic("root search aborted without an abort flag")
	}
	return a
}

// analyze returns false when an ancestor aborted the branch. Aborted results
// are never cached.
func (p *Parallel) analyze(key game.Board, depth, ply int, ancestors abortChain) (Analysis, bool) {
	if ancestors.aborted() {
		p.metrics.AddAbort()
		return placeholder, false
	}
	if a, ok := p.store.Load(key.Key()); ok && a.Depth >= depth {
		p.metrics.AddCacheHit()
		return a, true
	}
	p.metrics.AddNode()

	if a, ok := terminal(key, p.piece); ok {
		p.store.Store(key.Key(), a)
		return a, true
	}
	if depth == 0 {
		a := frontier(key)
		p.store.Store(key.Key(), a)
		return a, true
	}

	chain, won := ancestors.extend()
	empties := key.EmptyCoords()
	outcomes := make([]outcome, len(empties))
	done := make([]bool, len(empties))
	children := make([]game.Board, len(empties))

	// Moves decided on the spot go first so an immediate win is never pruned
	// by a slower one.
	for i, c := range empties {
		child, value, decided := advance(key, p.piece, c)
		if !decided {
			children[i] = child
			continue
		}
		outcomes[i] = outcome{move: c, value: value, depth: Exhaustive}
		done[i] = true
		if value.Outcome == Win {
			won.Store(true)
		}
	}

	evaluate := func(i int) {
		if done[i] || won.Load() || ancestors.aborted() {
			return
		}
		a, ok := p.analyze(children[i], depth-1, ply+1, chain)
		if !ok {
			return
		}
		value := a.Value.Next()
		outcomes[i] = outcome{move: empties[i], value: value, depth: a.Depth}
		done[i] = true
		if unbeatable(value) {
			won.Store(true)
		}
	}

	if ply <= p.serialDepth {
		for i := range empties {
			if won.Load() {
				break
			}
			evaluate(i)
		}
	} else {
		var g errgroup.Group
		for i := range empties {
			if won.Load() {
				break
			}
			if done[i] {
				continue
			}
			if !p.pool.TryAcquire(1) {
				evaluate(i)
				continue
			}
			i := i // per-iteration copy; go directive is below 1.22
			g.Go(func() error {
				defer p.pool.Release(1)
				evaluate(i)
				return nil
			})
		}
		g.Wait()
	}

	finished := make([]outcome, 0, len(empties))
	for i, ok := range done {
		if ok {
			finished = append(finished, outcomes[i])
		}
	}
	if len(finished) < len(empties) && !won.Load() {
		p.metrics.AddAbort()
		return placeholder, false
	}

	a := summarize(finished)
	p.store.Store(key.Key(), a)
	return a, true
}

// unbeatable reports whether a searched move can stop its siblings. Wins
// alternate with losses one ply apart, so searched wins are at least two
// moves away, and immediate wins are all known before the search starts.
func unbeatable(v Value) bool {
	return v.Outcome == Win && v.Moves <= 2
}
