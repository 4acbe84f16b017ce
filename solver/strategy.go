package solver

import (
	"github.com/Deminder/zoysii-solver/board"
	"github.com/Deminder/zoysii-solver/internal/packed"
	"github.com/Deminder/zoysii-solver/shortcut"
)

// noEnd marks a step without a pending shortcut target.
const noEnd = board.Coord(board.NumCells)

// Step is one search node: a board, the packed move path that produced it
// and, while mid-shortcut, the boundary cell the path is heading for.
type Step struct {
	Board board.Board
	Seq   packed.Seq
	end   board.Coord
}

// Strategy generates the successor steps of one search node. Expand appends
// to out and returns it, so workers can reuse one scratch slice.
type Strategy interface {
	Expand(s Step, out []Step) []Step
}

var (
	_ Strategy = Direct{}
	_ Strategy = (*Shortcut)(nil)
)

// Direct expands every step into all four directions.
type Direct struct{}

func (Direct) Expand(s Step, out []Step) []Step {
	for _, m := range board.Moves {
		if b, ok := s.Board.Apply(m); ok {
			out = append(out, Step{Board: b, Seq: s.Seq.Append(m), end: noEnd})
		}
	}
	return out
}

// Shortcut expands like Direct on nonzero cells but collapses free moves
// across empty cells into single steps towards a chosen boundary cell:
// standing on an empty cell with no pending target branches once per
// reachable end, and a pending target is followed move by move until the
// player arrives there.
type Shortcut struct {
	Cache *shortcut.Cache
}

func (sc *Shortcut) Expand(s Step, out []Step) []Step {
	if s.Board.Cell(s.Board.Pos()) != 0 {
		return Direct{}.Expand(s, out)
	}
	if s.end != noEnd {
		return sc.towards(s, s.end, out)
	}
	pt := s.Board.Pattern()
	for _, end := range sc.Cache.FindEnds(pt, s.Board.Pos()) {
		out = sc.towards(s, end, out)
	}
	return out
}

// towards advances s by the first move of the shortest free path to end.
// The pending target is dropped once the player arrives at end, or if the
// end cell was cleared along the way.
func (sc *Shortcut) towards(s Step, end board.Coord, out []Step) []Step {
	m, ok := sc.Cache.ActionTowards(s.Board.Pattern(), s.Board.Pos(), end)
	if !ok {
		return out
	}
	b, ok := s.Board.Apply(m)
	if !ok {
		return out
	}
	next := Step{Board: b, Seq: s.Seq.Append(m), end: end}
	if b.Pos() == end || b.Cell(end) == 0 {
		next.end = noEnd
	}
	out = append(out, next)
	return out
}
