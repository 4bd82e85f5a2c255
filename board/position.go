package board

import (
	"fmt"
	"strings"

	"github.com/daystram/ykchess/position"
)

// Position holds one bitmap per side and piece kind. It is a plain value: copying
// a Position snapshots the whole board.
type Position struct {
	bitmaps [2 + 1][6 + 1]Bitmap
}

// NewPosition returns the standard starting layout.
func NewPosition() Position {
	return Position{bitmaps: maskStart}
}

func (p *Position) Bitmap(s Side, pc Piece) Bitmap {
	return p.bitmaps[s][pc]
}

func (p *Position) SideOccupied(s Side) Bitmap {
	var occupied Bitmap
	for _, pc := range Pieces {
		occupied |= p.bitmaps[s][pc]
	}
	return occupied
}

func (p *Position) Occupied() Bitmap {
	return p.SideOccupied(SideWhite) | p.SideOccupied(SideBlack)
}

// PieceAt scans the twelve bitmaps in a fixed order and returns the first match.
func (p *Position) PieceAt(cell Bitmap) (Piece, Side) {
	for _, s := range Sides {
		for _, pc := range Pieces {
			if p.bitmaps[s][pc]&cell != 0 {
				return pc, s
			}
		}
	}
	return PieceUnknown, SideUnknown
}

// Set places a piece on every cell of bm, replacing whatever stood there.
func (p *Position) Set(s Side, pc Piece, bm Bitmap) {
	p.Clear(bm)
	p.bitmaps[s][pc] |= bm
}

func (p *Position) Clear(bm Bitmap) {
	for _, s := range Sides {
		for _, pc := range Pieces {
			p.bitmaps[s][pc] &^= bm
		}
	}
}

// Move relocates the piece on src to dst, removing anything on dst. Legality is
// the caller's concern; an empty src is a no-op.
func (p *Position) Move(src, dst Bitmap) {
	pc, s := p.PieceAt(src)
	if pc == PieceUnknown {
		return
	}
	p.bitmaps[s][pc] &^= src
	p.Set(s, pc, dst)
}

// Valid reports whether no cell is claimed by two bitmaps.
func (p *Position) Valid() bool {
	var seen Bitmap
	for _, s := range Sides {
		for _, pc := range Pieces {
			if seen&p.bitmaps[s][pc] != 0 {
				return false
			}
			seen |= p.bitmaps[s][pc]
		}
	}
	return true
}

// AttackArea returns every cell threatened by the pieces of s.
func (p *Position) AttackArea(s Side) Bitmap {
	var area Bitmap
	p.SideOccupied(s).Iter(func(cell Bitmap) {
		area |= p.Generate(cell, true)
	})
	return area
}

func (p *Position) IsKingAttacked(s Side) bool {
	return p.bitmaps[s][PieceKing]&p.AttackArea(s.Opposite()) != 0
}

func (p *Position) Dump() string {
	builder := strings.Builder{}
	for row := 0; row < Height; row++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", position.NotationComponentRow(row)))
		for col := 0; col < Width; col++ {
			pc, s := p.PieceAt(mustCell(row, col))
			sym := pc.Symbol(s)
			if pc == PieceUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := 0; col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NotationComponentCol(col)))
	}
	return builder.String()
}
