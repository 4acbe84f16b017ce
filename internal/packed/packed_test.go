package packed

import (
	"testing"

	"github.com/matryer/is"

	"github.com/Deminder/zoysii-solver/board"
)

func TestSeqAppend(t *testing.T) {
	is := is.New(t)

	var s Seq
	is.Equal(s.Len(), 0)
	is.Equal(len(s.Moves()), 0)

	moves := []board.Move{board.Up, board.Right, board.Right, board.Down, board.Left}
	for _, m := range moves {
		s = s.Append(m)
	}
	is.Equal(s.Len(), len(moves))
	is.Equal(s.Moves(), moves)
	for i, m := range moves {
		is.Equal(s.At(i), m)
	}
}

func TestSeqImmutable(t *testing.T) {
	is := is.New(t)

	s := Seq(0).Append(board.Down).Append(board.Right)
	longer := s.Append(board.Up)
	is.Equal(s.Len(), 2) // adding must not alter the original
	is.Equal(longer.Len(), 3)
	is.Equal(s.Moves(), []board.Move{board.Down, board.Right})
}

func TestSeqFull(t *testing.T) {
	is := is.New(t)

	var s Seq
	for i := 0; i < MaxLen; i++ {
		s = s.Append(board.Move(i % 4))
	}
	is.Equal(s.Len(), MaxLen)
	for i := 0; i < MaxLen; i++ {
		is.Equal(s.At(i), board.Move(i%4))
	}

	defer func() {
		is.True(recover() != nil) // appending past MaxLen must panic
	}()
	s.Append(board.Up)
}
