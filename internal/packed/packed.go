// Package packed provides a memory efficient move sequence representation.
package packed

import "github.com/Deminder/zoysii-solver/board"

// Seq is a bit-packed move sequence, used as the per-search-node path so a
// node is a plain value with O(1) copy, compare and hash.
//
// Schema, low bits first:
//
//	6 bits          length
//	2 bits per move up to MaxLen moves
//
// The zero value is the empty sequence. A Seq is immutable: Append returns
// a new sequence and never changes its receiver.
type Seq uint64

const lenBits = 6

const lenMask = 1<<lenBits - 1

// MaxLen is the maximum number of moves a Seq can hold.
const MaxLen = (64 - lenBits) / 2

// Len returns the number of moves in s.
func (s Seq) Len() int { return int(s & lenMask) }

// Append returns s with m added at the end. Appending to a full sequence is
// a contract violation and panics: the cap is statically known and owned by
// the caller.
func (s Seq) Append(m board.Move) Seq {
	n := s.Len()
	if n >= MaxLen {
		panic("packed: move sequence overflow")
	}
	return s&^lenMask | Seq(m&0x3)<<(lenBits+2*n) | Seq(n+1)
}

// At returns the i-th move of s.
func (s Seq) At(i int) board.Move {
	return board.Move(s >> (lenBits + 2*i) & 0x3)
}

// Moves unpacks s into a fresh slice.
func (s Seq) Moves() []board.Move {
	moves := make([]board.Move, s.Len())
	for i := range moves {
		moves[i] = s.At(i)
	}
	return moves
}
