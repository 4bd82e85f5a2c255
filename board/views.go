package board

// Line is an 8-cell slice of the board (a row, column or diagonal) normalised so
// sliding pieces can be scanned with single-bit shifts. Row r of a column or
// diagonal lands on bit 7-r; a row keeps its own byte layout.
type Line uint8

func RowView(bm Bitmap, row int) Line {
	return Line(bm >> uint((Height-1-row)*Width))
}

func RowFromView(l Line, row int) Bitmap {
	return Bitmap(l) << uint((Height-1-row)*Width)
}

func ColumnView(bm Bitmap, col int) Line {
	var l Line
	for row := 0; row < Height; row++ {
		if bm&mustCell(row, col) != 0 {
			l |= lineBit(row)
		}
	}
	return l
}

func ColumnFromView(l Line, col int) Bitmap {
	var bm Bitmap
	for row := 0; row < Height; row++ {
		if l&lineBit(row) != 0 {
			bm |= mustCell(row, col)
		}
	}
	return bm
}

// DiagonalViews returns the two diagonals crossing (row, col): d1 keeps col-row
// constant, d2 keeps row+col constant.
func DiagonalViews(bm Bitmap, row, col int) (Line, Line) {
	var d1, d2 Line
	for r := 0; r < Height; r++ {
		if c := col - row + r; inBounds(r, c) && bm&mustCell(r, c) != 0 {
			d1 |= lineBit(r)
		}
		if c := row + col - r; inBounds(r, c) && bm&mustCell(r, c) != 0 {
			d2 |= lineBit(r)
		}
	}
	return d1, d2
}

func DiagonalsFromViews(d1, d2 Line, row, col int) Bitmap {
	var bm Bitmap
	for r := 0; r < Height; r++ {
		if c := col - row + r; inBounds(r, c) && d1&lineBit(r) != 0 {
			bm |= mustCell(r, c)
		}
		if c := row + col - r; inBounds(r, c) && d2&lineBit(r) != 0 {
			bm |= mustCell(r, c)
		}
	}
	return bm
}

func lineBit(row int) Line {
	return 1 << uint(Height-1-row)
}

// scanLine walks away from self in both directions, stopping at the first
// occupied cell. The blocker is kept only when it is an enemy and attacks is set.
// Bits outside valid do not exist on the board and end the walk.
func scanLine(self, occupied, enemy, valid Line, attacks bool) Line {
	var hits Line
	for _, step := range [2]func(Line) Line{shiftUp, shiftDown} {
		for next := step(self) & valid; next != 0; next = step(next) & valid {
			if next&occupied != 0 {
				if attacks && next&enemy != 0 {
					hits |= next
				}
				break
			}
			hits |= next
		}
	}
	return hits
}

func shiftUp(l Line) Line {
	return l << 1
}

func shiftDown(l Line) Line {
	return l >> 1
}
