package board

import (
	"encoding/binary"
	"math/bits"
)

// Board is one game state: the player position plus all 16 cell magnitudes
// packed 8 bits per cell into two words. Boards are immutable comparable
// values and can be used directly as map keys.
type Board struct {
	pos Coord
	lo  uint64 // cells 0-7
	hi  uint64 // cells 8-15
}

// Pos returns the player position.
func (b Board) Pos() Coord { return b.pos }

// Cell returns the magnitude at p.
func (b Board) Cell(p Coord) uint8 {
	if p < 8 {
		return uint8(b.lo >> (p * 8))
	}
	return uint8(b.hi >> ((p - 8) * 8))
}

func (b Board) setCell(p Coord, v uint8) Board {
	shift := uint(p&7) * 8
	if p < 8 {
		b.lo = b.lo&^(0xff<<shift) | uint64(v)<<shift
	} else {
		b.hi = b.hi&^(0xff<<shift) | uint64(v)<<shift
	}
	return b
}

// diff is the clearing rule: equal magnitudes cancel to zero, consecutive
// magnitudes sum, anything else leaves the difference.
func diff(v, origin uint8) uint8 {
	if v == origin {
		return 0
	}
	low, high := v, origin
	if low > high {
		low, high = high, low
	}
	if high > low+1 {
		return high - low
	}
	return high + low
}

// Apply plays m and returns the resulting board. The bool is false when the
// move would leave the grid; such a move is unavailable, not an error.
//
// A move from a nonzero cell walks all cells from the new position outward
// in the move direction, replacing each nonzero magnitude with its diff
// against the origin cell. If any cell cleared, the origin cell itself is
// discharged to zero. A move from a zero cell only changes the position.
func (b Board) Apply(m Move) (Board, bool) {
	pos, ok := b.pos.Move(m)
	if !ok {
		return b, false
	}
	next := b
	next.pos = pos
	origin := b.Cell(b.pos)
	if origin == 0 {
		return next, true
	}
	clears := 0
	for p, in := pos, true; in; p, in = p.Move(m) {
		if v := next.Cell(p); v > 0 {
			nv := diff(v, origin)
			if nv == 0 {
				clears++
			}
			next = next.setCell(p, nv)
		}
	}
	if clears > 0 {
		next = next.setCell(b.pos, 0)
	}
	return next, true
}

// IsWon reports whether all cells are cleared.
func (b Board) IsWon() bool { return b.lo|b.hi == 0 }

// IsLost reports whether the board holds a dead cell: a nonzero cell that
// is the only nonzero cell of both its row and its column. Such a cell can
// never again pair up in a clearing interaction.
func (b Board) IsLost() bool {
	mask := uint16(b.Pattern())
	for r := 0; r < N; r++ {
		row := mask >> (r * N) & 0xf
		if bits.OnesCount16(row) != 1 {
			continue
		}
		c := bits.TrailingZeros16(row)
		if bits.OnesCount16(mask>>c&0x1111) == 1 {
			return true
		}
	}
	return false
}

// occupiedBits folds each byte of w into a single bit: bit i of the result
// is set when byte i of w is nonzero.
func occupiedBits(w uint64) uint16 {
	w |= w >> 4
	w |= w >> 2
	w |= w >> 1
	w &= 0x0101010101010101
	return uint16(w * 0x0102040810204080 >> 56)
}

// Pattern returns the occupancy mask of nonzero cells.
func (b Board) Pattern() Pattern {
	return Pattern(occupiedBits(b.lo)) | Pattern(occupiedBits(b.hi))<<8
}

// AppendBytes appends a stable 17-byte encoding of b, suitable as hash
// input.
func (b Board) AppendBytes(buf []byte) []byte {
	buf = append(buf, byte(b.pos))
	buf = binary.LittleEndian.AppendUint64(buf, b.lo)
	return binary.LittleEndian.AppendUint64(buf, b.hi)
}
