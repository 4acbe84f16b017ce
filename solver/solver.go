// Package solver implements an exact breadth-first Zoysii solver.
package solver

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Deminder/zoysii-solver/board"
	"github.com/Deminder/zoysii-solver/internal/packed"
	"github.com/Deminder/zoysii-solver/internal/partset"
)

const numPart = 1024

// Solver runs a level-synchronous breadth-first search: each round expands
// the whole frontier by one move in parallel, prunes lost boards and
// previously visited nodes, then merges the round's sources into the
// visited set.
// Rounds are strictly sequential, so the first win found is of minimal
// length.
type Solver struct {
	strategy Strategy
	workers  int
	logger   zerolog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers sets the number of expansion goroutines per round.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLogger replaces the global logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Solver) { s.logger = logger }
}

// New returns a solver expanding steps via strategy.
func New(strategy Strategy, opts ...Option) *Solver {
	s := &Solver{strategy: strategy, workers: runtime.NumCPU(), logger: log.Logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// node is the search identity of a step. Two steps on the same board are
// still distinct nodes while they head for different shortcut ends: a
// mid-shortcut step only ever expands towards its pending end, so folding
// it into a board-equal step heading elsewhere would cut off that route.
type node struct {
	board board.Board
	end   board.Coord
}

func (n node) AppendBytes(buf []byte) []byte {
	return append(n.board.AppendBytes(buf), byte(n.end))
}

func (s Step) node() node { return node{board: s.Board, end: s.end} }

// Result is a found solution.
type Result struct {
	Moves    []board.Move // empty when the board was already solved
	Expanded int          // steps generated during the search
	Rounds   int          // frontier rounds played
}

// Solve searches for a shortest solution of at most maxMoves moves and
// returns nil when none exists within that budget. An already won board
// yields an empty move list without searching; a board that is lost from
// the start is a legitimate input and simply yields nil.
//
// maxMoves must not exceed packed.MaxLen. Exceeding it is a contract
// violation of the caller and panics before any search work starts.
func (s *Solver) Solve(b board.Board, maxMoves int) *Result {
	if maxMoves > packed.MaxLen {
		panic(fmt.Sprintf("solver: max moves %d exceeds sequence capacity %d", maxMoves, packed.MaxLen))
	}
	if b.IsWon() {
		return &Result{Moves: []board.Move{}}
	}

	visited := partset.New[node](numPart)
	frontier := []Step{{Board: b, end: noEnd}}
	expanded := 0

	for round := 0; round < maxMoves && len(frontier) > 0; round++ {
		survivors, generated := s.expandRound(frontier, visited)
		expanded += generated

		for _, step := range survivors {
			if step.Board.IsWon() {
				return &Result{Moves: step.Seq.Moves(), Expanded: expanded, Rounds: round + 1}
			}
		}

		// The visited set only covers prior rounds; duplicates generated
		// by parallel branches within this round are folded here.
		seen := make(map[node]struct{}, len(survivors))
		next := survivors[:0]
		for _, step := range survivors {
			if _, ok := seen[step.node()]; ok {
				continue
			}
			seen[step.node()] = struct{}{}
			next = append(next, step)
		}

		for _, step := range frontier {
			visited.Add(step.node())
		}
		frontier = next

		s.logger.Debug().
			Int("round", round).
			Int("frontier", len(frontier)).
			Int("visited", visited.Size()).
			Msg("expanded round")
	}
	return nil
}

// expandRound fans the frontier out across the workers. The visited set is
// read-only for the whole round, so workers share it without locking; each
// worker filters its own share and the shares are concatenated after the
// join.
func (s *Solver) expandRound(frontier []Step, visited *partset.Set[node]) ([]Step, int) {
	workers := min(s.workers, len(frontier))
	results := make([][]Step, workers)
	counts := make([]int, workers)

	g := new(errgroup.Group)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			var out, scratch []Step
			for i := w; i < len(frontier); i += workers {
				scratch = s.strategy.Expand(frontier[i], scratch[:0])
				counts[w] += len(scratch)
				for _, step := range scratch {
					if visited.Has(step.node()) || step.Board.IsLost() {
						continue
					}
					out = append(out, step)
				}
			}
			results[w] = out
			return nil
		})
	}
	_ = g.Wait()

	survivors := results[0]
	generated := counts[0]
	for w := 1; w < workers; w++ {
		survivors = append(survivors, results[w]...)
		generated += counts[w]
	}
	return survivors, generated
}
