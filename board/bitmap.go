package board

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/daystram/ykchess/position"
)

var (
	// ErrMalformedBitmap is raised when a single-cell bitmap carries zero or many bits.
	// It signals a broken invariant and is only ever used as a panic value.
	ErrMalformedBitmap = errors.New("malformed bitmap")
)

// Bitmap is a set of board cells, one bit per cell, indexed by position.Square.
type Bitmap uint64

// NewCell returns the single-bit bitmap of a coordinate.
func NewCell(row, col int) (Bitmap, error) {
	sq, err := position.NewSquare(row, col)
	if err != nil {
		return 0, err
	}
	return CellOf(sq), nil
}

// CellOf returns the single-bit bitmap of a square.
func CellOf(sq position.Square) Bitmap {
	return 1 << uint(sq)
}

// Coordinates is the inverse of NewCell. It panics unless exactly one bit is set.
func Coordinates(cell Bitmap) (int, int) {
	sq := cell.Square()
	return sq.Row(), sq.Col()
}

func cellAt(row, col int) (Bitmap, bool) {
	if !inBounds(row, col) {
		return 0, false
	}
	return mustCell(row, col), true
}

func mustCell(row, col int) Bitmap {
	return 1 << uint((Height-1-row)*Width+(Width-1-col))
}

func inBounds[T constraints.Integer](row, col T) bool {
	return row >= 0 && row < Height && col >= 0 && col < Width
}

// Square returns the square of a single-cell bitmap. It panics unless exactly one bit is set.
func (bm Bitmap) Square() position.Square {
	if n := bm.BitCount(); n != 1 {
		panic(fmt.Errorf("%w: %d bits set in %#016x", ErrMalformedBitmap, n, uint64(bm)))
	}
	return position.Square(bits.TrailingZeros64(uint64(bm)))
}

func (bm Bitmap) Has(cell Bitmap) bool {
	return bm&cell != 0
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Iter calls fn with every set bit of bm as a single-cell bitmap, lowest bit first.
func (bm Bitmap) Iter(fn func(cell Bitmap)) {
	for rest := bm; rest != 0; rest &= rest - 1 {
		fn(rest & -rest)
	}
}

// Squares returns the squares of all set bits, lowest first.
func (bm Bitmap) Squares() []position.Square {
	sqs := make([]position.Square, 0, bm.BitCount())
	bm.Iter(func(cell Bitmap) {
		sqs = append(sqs, cell.Square())
	})
	return sqs
}

func (bm Bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for row := 0; row < Height; row++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", position.NotationComponentRow(row)))
		for col := 0; col < Width; col++ {
			if bm&mustCell(row, col) != 0 {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for col := 0; col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", position.NotationComponentCol(col)))
	}
	return builder.String()
}
