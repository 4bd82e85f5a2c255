package board

import "github.com/daystram/ykchess/position"

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalSquares

	fullLine Line = 0xFF
)

type offset struct {
	dRow, dCol int
}

var (
	maskStart = [2 + 1][6 + 1]Bitmap{
		SideWhite: {
			PiecePawn:   0x_00_00_00_00_00_00_FF_00,
			PieceRook:   0x_00_00_00_00_00_00_00_81,
			PieceKnight: 0x_00_00_00_00_00_00_00_42,
			PieceBishop: 0x_00_00_00_00_00_00_00_24,
			PieceQueen:  0x_00_00_00_00_00_00_00_10,
			PieceKing:   0x_00_00_00_00_00_00_00_08,
		},
		SideBlack: {
			PiecePawn:   0x_00_FF_00_00_00_00_00_00,
			PieceRook:   0x_81_00_00_00_00_00_00_00,
			PieceKnight: 0x_42_00_00_00_00_00_00_00,
			PieceBishop: 0x_24_00_00_00_00_00_00_00,
			PieceQueen:  0x_10_00_00_00_00_00_00_00,
			PieceKing:   0x_08_00_00_00_00_00_00_00,
		},
	}

	offsetsKnight = []offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	offsetsKing = []offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)
