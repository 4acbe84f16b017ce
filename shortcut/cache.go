// Package shortcut precomputes, per occupancy pattern, the first move of
// the shortest path through empty cells towards each reachable occupied
// boundary cell. Patterns are folded under the 8 symmetries of the square
// so equivalent layouts share one table.
package shortcut

import (
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/Deminder/zoysii-solver/board"
)

// actionBoard is the shortest-path table for one (pattern, end) pair:
// 2 bits per coordinate in actions, valid where starts is marked.
type actionBoard struct {
	actions uint32
	starts  board.Pattern
}

func (ab actionBoard) moveAt(pos board.Coord) (board.Move, bool) {
	if !ab.starts.Marked(pos) {
		return 0, false
	}
	return board.Move(ab.actions >> (2 * uint32(pos)) & 0x3), true
}

// Cache maps every canonical occupancy pattern to its action boards, keyed
// by end coordinate. It is immutable once built and safe for unsynchronized
// concurrent reads; build it once and share it across all search workers.
type Cache struct {
	tables map[board.Pattern]map[board.Coord]actionBoard
}

// New builds the cache for every pattern except the fully occupied one,
// which has no empty cells to path through. Patterns are enumerated in
// ascending order and skipped when any symmetric image was already built,
// so each stored representative is the canonical (smallest) one. Action
// boards are built in parallel across the surviving patterns.
func New() *Cache {
	begin := time.Now()

	var canonical []board.Pattern
	var seen [1 << board.NumCells]bool
	for i := 0; i < int(board.AllOccupied); i++ {
		pt := board.Pattern(i)
		if seen[pt] {
			continue
		}
		canonical = append(canonical, pt)
		for s := board.Sym(0); s < board.NumSyms; s++ {
			seen[pt.Transform(s)] = true
		}
	}

	boards := make([]map[board.Coord]actionBoard, len(canonical))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, pt := range canonical {
		i, pt := i, pt
		g.Go(func() error {
			boards[i] = endBoards(pt)
			return nil
		})
	}
	_ = g.Wait()

	tables := make(map[board.Pattern]map[board.Coord]actionBoard, len(canonical))
	for i, pt := range canonical {
		tables[pt] = boards[i]
	}

	log.Debug().
		Int("patterns", len(canonical)).
		Dur("took", time.Since(begin)).
		Msg("initialized action boards")
	return &Cache{tables: tables}
}

// endBoards builds one action board per eligible end coordinate: an
// occupied cell with at least one empty in-grid neighbor.
func endBoards(marks board.Pattern) map[board.Coord]actionBoard {
	m := map[board.Coord]actionBoard{}
	for p := board.Coord(0); p < board.NumCells; p++ {
		if marks.Marked(p) && hasFreeNeighbor(marks, p) {
			m[p] = newActionBoard(marks, p)
		}
	}
	return m
}

func hasFreeNeighbor(marks board.Pattern, p board.Coord) bool {
	for _, m := range board.Moves {
		if q, ok := p.Move(m); ok && !marks.Marked(q) {
			return true
		}
	}
	return false
}

// newActionBoard expands breadth-first from end across empty cells. Every
// reached cell records the reverse of the expanding move: the first step of
// its shortest path back towards end.
func newActionBoard(marks board.Pattern, end board.Coord) actionBoard {
	var ab actionBoard
	frontier := []board.Coord{end}
	var next []board.Coord
	for len(frontier) > 0 {
		next = next[:0]
		for _, p := range frontier {
			for _, m := range board.Moves {
				q, ok := p.Move(m)
				if !ok || marks.Marked(q) || ab.starts.Marked(q) {
					continue
				}
				ab.actions |= uint32(m.Reverse()) << (2 * uint32(q))
				ab.starts = ab.starts.Mark(q)
				next = append(next, q)
			}
		}
		frontier, next = next, frontier
	}
	return ab
}

// ActionTowards returns the first move of a shortest path through empty
// cells from pos to the occupied cell end, if such a path exists under pt.
func (c *Cache) ActionTowards(pt board.Pattern, pos, end board.Coord) (board.Move, bool) {
	canon, sym := pt.Canonical()
	ab, ok := c.tables[canon][sym.Apply(end)]
	if !ok {
		return 0, false
	}
	m, ok := ab.moveAt(sym.Apply(pos))
	if !ok {
		return 0, false
	}
	return sym.Inverse().Conj(m), true
}

// FindEnds returns every occupied cell reachable from pos through empty
// cells under pt, in ascending coordinate order.
func (c *Cache) FindEnds(pt board.Pattern, pos board.Coord) []board.Coord {
	canon, sym := pt.Canonical()
	cpos := sym.Apply(pos)
	inv := sym.Inverse()
	var ends []board.Coord
	for end, ab := range c.tables[canon] {
		if ab.starts.Marked(cpos) {
			ends = append(ends, inv.Apply(end))
		}
	}
	slices.Sort(ends)
	return ends
}

// NumPatterns returns the number of canonical patterns held by the cache.
func (c *Cache) NumPatterns() int { return len(c.tables) }
