package board

import (
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/ykchess/position"
)

var (
	colorTileLight     = color.New(color.FgBlack, color.BgHiWhite)
	colorTileDark      = color.New(color.FgBlack, color.BgGreen)
	colorTileHighlight = color.New(color.FgBlack, color.BgYellow)
	colorTileAlert     = color.New(color.FgHiWhite, color.BgRed)
	colorLabel         = color.New(color.Bold)
)

// Draw renders the position as coloured tiles. Cells in highlight are drawn as
// candidate destinations and cells in alert (a checked king) take precedence.
func (p *Position) Draw(highlight, alert Bitmap) string {
	builder := strings.Builder{}
	for row := 0; row < Height; row++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", position.NotationComponentRow(row)))
		for col := 0; col < Width; col++ {
			cell := mustCell(row, col)
			pc, s := p.PieceAt(cell)
			sym := pc.SymbolUnicode(s)
			if pc == PieceUnknown {
				sym = " "
			}
			tile := colorTileLight
			if (row+col)%2 == 1 {
				tile = colorTileDark
			}
			switch {
			case alert&cell != 0:
				tile = colorTileAlert
			case highlight&cell != 0:
				tile = colorTileHighlight
			}
			_, _ = builder.WriteString(tile.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := 0; col < Width; col++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", position.NotationComponentCol(col)))
	}
	return builder.String()
}
