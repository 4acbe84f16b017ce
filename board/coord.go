// Package board implements the Zoysii 4x4 grid: coordinates, moves, the
// symmetries of the square and the bit-packed board with its move rule.
package board

import "fmt"

// N is the fixed grid edge length.
const N = 4

// NumCells is the number of grid cells.
const NumCells = N * N

// Coord is a cell index in [0, NumCells).
type Coord uint8

// CoordOf returns the coordinate at row r, column c.
func CoordOf(r, c int) Coord { return Coord(r*N + c) }

// Row returns the row of p.
func (p Coord) Row() int { return int(p) / N }

// Col returns the column of p.
func (p Coord) Col() int { return int(p) % N }

// Move returns p offset by one step in direction m and whether the result
// is still inside the grid.
func (p Coord) Move(m Move) (Coord, bool) {
	r := p.Row() + m.dRow()
	c := p.Col() + m.dCol()
	if r < 0 || r >= N || c < 0 || c >= N {
		return p, false
	}
	return CoordOf(r, c), true
}

func (p Coord) String() string { return fmt.Sprintf("(%d,%d)", p.Row(), p.Col()) }
