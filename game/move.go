package game

import (
	"fmt"

	"github.com/daystram/ykchess/board"
)

// Move is a pair of single-cell bitmaps.
type Move struct {
	From board.Bitmap
	To   board.Bitmap
}

func (m Move) String() string {
	if m.From.BitCount() != 1 || m.To.BitCount() != 1 {
		return fmt.Sprintf("%#016x-%#016x", uint64(m.From), uint64(m.To))
	}
	return m.From.Square().Notation() + m.To.Square().Notation()
}
