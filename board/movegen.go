package board

// Generate returns the destination cells of the piece on cell. With attacks set,
// enemy-occupied cells the piece threatens are included; without it only empty
// cells are. Cells holding a piece of the mover are never included.
//
// This is not strictly legal: the mover's king may be left in check.
func (p *Position) Generate(cell Bitmap, attacks bool) Bitmap {
	if cell == 0 {
		return 0
	}
	row, col := Coordinates(cell)
	pc, s := p.PieceAt(cell)
	switch pc {
	case PiecePawn:
		return p.genPawn(cell, row, col, s, attacks)
	case PieceRook:
		return p.genLaterals(cell, row, col, s, attacks)
	case PieceKnight:
		return p.genJumps(row, col, s, offsetsKnight, attacks)
	case PieceBishop:
		return p.genDiagonals(cell, row, col, s, attacks)
	case PieceQueen:
		return p.genLaterals(cell, row, col, s, attacks) | p.genDiagonals(cell, row, col, s, attacks)
	case PieceKing:
		return p.genJumps(row, col, s, offsetsKing, attacks)
	default:
		return 0
	}
}

func (p *Position) genPawn(cell Bitmap, row, col int, s Side, attacks bool) Bitmap {
	var dst Bitmap
	empty := ^p.Occupied()
	dir := s.Forward()
	if one, ok := cellAt(row+dir, col); ok && one&empty != 0 {
		dst |= one
		if cell&maskStart[s][PiecePawn] != 0 {
			if two, ok := cellAt(row+2*dir, col); ok && two&empty != 0 {
				dst |= two
			}
		}
	}
	if attacks {
		enemy := p.SideOccupied(s.Opposite())
		for _, dCol := range [2]int{-1, 1} {
			if capture, ok := cellAt(row+dir, col+dCol); ok && capture&enemy != 0 {
				dst |= capture
			}
		}
	}
	return dst
}

func (p *Position) genLaterals(cell Bitmap, row, col int, s Side, attacks bool) Bitmap {
	occupied, enemy := p.Occupied(), p.SideOccupied(s.Opposite())
	rowHits := scanLine(RowView(cell, row), RowView(occupied, row), RowView(enemy, row), fullLine, attacks)
	colHits := scanLine(ColumnView(cell, col), ColumnView(occupied, col), ColumnView(enemy, col), fullLine, attacks)
	return RowFromView(rowHits, row) | ColumnFromView(colHits, col)
}

func (p *Position) genDiagonals(cell Bitmap, row, col int, s Side, attacks bool) Bitmap {
	occupied, enemy := p.Occupied(), p.SideOccupied(s.Opposite())
	self1, self2 := DiagonalViews(cell, row, col)
	occ1, occ2 := DiagonalViews(occupied, row, col)
	enemy1, enemy2 := DiagonalViews(enemy, row, col)
	valid1, valid2 := DiagonalViews(^Bitmap(0), row, col)
	return DiagonalsFromViews(
		scanLine(self1, occ1, enemy1, valid1, attacks),
		scanLine(self2, occ2, enemy2, valid2, attacks),
		row, col,
	)
}

func (p *Position) genJumps(row, col int, s Side, offsets []offset, attacks bool) Bitmap {
	var dst Bitmap
	own, enemy := p.SideOccupied(s), p.SideOccupied(s.Opposite())
	for _, o := range offsets {
		target, ok := cellAt(row+o.dRow, col+o.dCol)
		if !ok || target&own != 0 {
			continue
		}
		if target&enemy != 0 && !attacks {
			continue
		}
		dst |= target
	}
	return dst
}
