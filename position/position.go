package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum row or column count the square system supports.
	MaxComponentScalar = 8

	// TotalSquares is the number of squares on the board.
	TotalSquares = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidSquare represents a coordinate outside of the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square is the bit index of a board cell.
//
// Row 0 occupies the high-order byte and, within a byte, column 0 occupies the
// high-order bit: row=0,col=0 is index 63 and row=7,col=7 is index 0. Row 7 is
// White's back rank and column 0 is the a-file.
type Square int8

func NewSquare(row, col int) (Square, error) {
	if row < 0 || row >= MaxComponentScalar || col < 0 || col >= MaxComponentScalar {
		return 0, fmt.Errorf("%w: row=%d col=%d", ErrInvalidSquare, row, col)
	}
	return Square((MaxComponentScalar-1-row)*MaxComponentScalar + (MaxComponentScalar - 1 - col)), nil
}

func NewSquareFromNotation(n string) (Square, error) {
	row, col, err := notationToRowCol(n)
	if err != nil {
		return 0, err
	}
	return NewSquare(row, col)
}

func (s Square) Valid() bool {
	return s >= 0 && s < TotalSquares
}

func (s Square) Row() int {
	return MaxComponentScalar - 1 - int(s)/MaxComponentScalar
}

func (s Square) Col() int {
	return MaxComponentScalar - 1 - int(s)%MaxComponentScalar
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) Notation() string {
	if !s.Valid() {
		return ""
	}
	return NotationComponentCol(s.Col()) + NotationComponentRow(s.Row())
}

func notationToRowCol(n string) (int, int, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	col := int(n[0]) - 'a'
	if col < 0 || MaxComponentScalar <= col {
		return 0, 0, ErrInvalidNotation
	}
	rank := int(n[1]) - '1'
	if rank < 0 || MaxComponentScalar <= rank {
		return 0, 0, ErrInvalidNotation
	}
	return MaxComponentScalar - 1 - rank, col, nil
}

// NotationComponentCol returns the file letter of a column.
func NotationComponentCol(col int) string {
	if col < 0 || MaxComponentScalar <= col {
		return ""
	}
	return string(rune('a' + col))
}

// NotationComponentRow returns the rank digit of a row.
func NotationComponentRow(row int) string {
	if row < 0 || MaxComponentScalar <= row {
		return ""
	}
	return string(rune('8' - row))
}
