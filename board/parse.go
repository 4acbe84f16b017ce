package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors. A failed parse never aborts the process: one malformed
// board in a batch is reported and skipped by callers.
var (
	ErrRowCount  = errors.New("board: expected 4 rows separated by '|'")
	ErrColCount  = errors.New("board: expected 4 space-separated cells per row")
	ErrCellValue = errors.New("board: cell values must be integers in 0-255")
)

// Parse reads a board from its text form: N rows separated by "|", each row
// N space-separated magnitudes in 0-255, row-major. The player always
// starts at (0,0); the position is not part of the text form.
func Parse(s string) (Board, error) {
	rows := strings.Split(s, "|")
	if len(rows) != N {
		return Board{}, ErrRowCount
	}
	var b Board
	for r, row := range rows {
		cells := strings.Split(row, " ")
		if len(cells) != N {
			return Board{}, fmt.Errorf("%w: %q", ErrColCount, row)
		}
		for c, cell := range cells {
			v, err := strconv.ParseUint(cell, 10, 8)
			if err != nil {
				return Board{}, fmt.Errorf("%w: %q", ErrCellValue, cell)
			}
			b = b.setCell(CoordOf(r, c), uint8(v))
		}
	}
	return b, nil
}

// String renders b in the text form Parse reads.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < N; r++ {
		if r > 0 {
			sb.WriteByte('|')
		}
		for c := 0; c < N; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(b.Cell(CoordOf(r, c)))))
		}
	}
	return sb.String()
}
