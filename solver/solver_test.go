package solver

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/Deminder/zoysii-solver/board"
	"github.com/Deminder/zoysii-solver/internal/packed"
	"github.com/Deminder/zoysii-solver/shortcut"
)

var testCache = shortcut.New()

func solvers() map[string]*Solver {
	return map[string]*Solver{
		"direct":   New(Direct{}),
		"shortcut": New(&Shortcut{Cache: testCache}),
	}
}

func mustParse(t *testing.T, text string) board.Board {
	t.Helper()
	b, err := board.Parse(text)
	require.NoError(t, err)
	return b
}

// replay applies every move of a result and requires a winning end state.
func replay(t *testing.T, b board.Board, moves []board.Move) {
	t.Helper()
	ok := true
	for _, m := range moves {
		b, ok = b.Apply(m)
		require.True(t, ok, "solution move %s leaves the grid", m)
	}
	require.True(t, b.IsWon(), "solution does not clear the board: %s", b)
}

func TestAlreadyWon(t *testing.T) {
	won := mustParse(t, "0 0 0 0|0 0 0 0|0 0 0 0|0 0 0 0")
	for name, s := range solvers() {
		res := s.Solve(won, 10)
		require.NotNil(t, res, name)
		assert.Empty(t, res.Moves, name)
		assert.Zero(t, res.Expanded, "%s must not search a solved board", name)
	}
}

func TestOneMoveWin(t *testing.T) {
	b := mustParse(t, "1 1 0 0|0 0 0 0|0 0 0 0|0 0 0 0")
	for name, s := range solvers() {
		res := s.Solve(b, 10)
		require.NotNil(t, res, name)
		assert.Equal(t, []board.Move{board.Right}, res.Moves, name)
		replay(t, b, res.Moves)
	}
}

func TestTwoMoveWin(t *testing.T) {
	b := mustParse(t, "0 1 1 0|0 0 0 0|0 0 0 0|0 0 0 0")
	for name, s := range solvers() {
		res := s.Solve(b, 10)
		require.NotNil(t, res, name)
		assert.Equal(t, []board.Move{board.Right, board.Right}, res.Moves, name)
		replay(t, b, res.Moves)
	}
}

func TestLostAtStart(t *testing.T) {
	b := mustParse(t, "1 0 0 0|0 0 0 0|0 0 0 0|0 0 0 0")
	require.True(t, b.IsLost())
	for name, s := range solvers() {
		assert.Nil(t, s.Solve(b, 8), "%s: a dead cell can never clear", name)
	}
}

func TestNoSolutionWithinBudget(t *testing.T) {
	b := mustParse(t, "0 1 1 0|0 0 0 0|0 0 0 0|0 0 0 0")
	for name, s := range solvers() {
		assert.Nil(t, s.Solve(b, 1), "%s: needs two moves, budget is one", name)
	}
}

func TestBudgetContract(t *testing.T) {
	b := mustParse(t, "0 1 1 0|0 0 0 0|0 0 0 0|0 0 0 0")
	s := New(Direct{})
	assert.Panics(t, func() { s.Solve(b, packed.MaxLen+1) })
}

// compare runs both strategies and requires identical solvability and
// solution length: the shortcut cache is an optimization, never an
// approximation.
func compare(t *testing.T, b board.Board, maxMoves int) {
	t.Helper()
	direct := New(Direct{}).Solve(b, maxMoves)
	short := New(&Shortcut{Cache: testCache}).Solve(b, maxMoves)
	if direct == nil {
		require.Nil(t, short, "shortcut found a solution direct search did not: %s", b)
		return
	}
	require.NotNil(t, short, "shortcut missed a solution of length %d: %s", len(direct.Moves), b)
	assert.Equal(t, len(direct.Moves), len(short.Moves), "board %s", b)
	replay(t, b, direct.Moves)
	replay(t, b, short.Moves)
}

func TestStrategiesAgree(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long running solves")
	}
	tests := []string{
		"18 9 6 0|0 9 3 0|33 18 18 3|0 0 15 0",
		"1 1 0 0|0 0 0 0|0 0 0 2|0 0 0 2",
		"0 0 0 0|0 3 0 0|0 0 0 0|0 3 0 0",
		"2 0 0 2|0 0 0 0|0 0 0 0|2 0 0 2",
		// boards where several shortcut targets share the same opening
		// move; folding such branches by board alone loses the only
		// shortest route
		"0 1 1 0|0 2 0 2|1 1 0 0|0 0 0 0",
		"0 0 0 0|0 0 1 0|0 1 2 0|0 0 1 0",
	}
	for _, text := range tests {
		compare(t, mustParse(t, text), 12)
	}
}

func TestStrategiesAgreeRandom(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long running solves")
	}
	for i := 0; i < 500; i++ {
		rows := make([]string, board.N)
		for r := range rows {
			cells := make([]string, board.N)
			for c := range cells {
				// sparse small magnitudes keep boards plausibly solvable
				cells[c] = fmt.Sprintf("%d", frand.Intn(3))
			}
			rows[r] = strings.Join(cells, " ")
		}
		compare(t, mustParse(t, strings.Join(rows, "|")), 8)
	}
}

func TestResultCounters(t *testing.T) {
	b := mustParse(t, "0 1 1 0|0 0 0 0|0 0 0 0|0 0 0 0")
	res := New(Direct{}).Solve(b, 10)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Rounds)
	assert.Greater(t, res.Expanded, 0)
}

func TestWithWorkers(t *testing.T) {
	b := mustParse(t, "18 9 6 0|0 9 3 0|33 18 18 3|0 0 15 0")
	single := New(&Shortcut{Cache: testCache}, WithWorkers(1)).Solve(b, 10)
	many := New(&Shortcut{Cache: testCache}, WithWorkers(8)).Solve(b, 10)
	if single == nil {
		assert.Nil(t, many)
		return
	}
	require.NotNil(t, many)
	assert.Equal(t, len(single.Moves), len(many.Moves),
		"worker count must not change the solution length")
}
