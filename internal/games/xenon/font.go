package xenon

import "github.com/vovakirdan/xenon/internal/core"

// Bitmap font sheets start at the space character and hold printable ASCII.
const (
	fontFirst = 0x20
	fontLast  = 0x7E
)

// glyphIndex maps a character to its cell in the font sheet.
// Anything outside printable ASCII maps to the space cell.
func glyphIndex(ch rune) int {
	if ch < fontFirst || ch > fontLast {
		return 0
	}
	return int(ch - fontFirst)
}

// glyphRect returns the source rectangle of ch in a sheet of columns cells.
func glyphRect(ch rune, cellW, cellH float64, columns int) core.FRect {
	if columns <= 0 {
		columns = 16
	}
	idx := glyphIndex(ch)
	return core.NewFRect(
		float64(idx%columns)*cellW,
		float64(idx/columns)*cellH,
		cellW,
		cellH,
	)
}

// drawText renders s left to right from (x, y) with one cell per character.
func (g *Game) drawText(ds DrawService, x, y float64, s string) {
	if !g.assets.font.Valid() {
		return
	}
	h := g.cfg.HUD
	for _, ch := range s {
		ds.Draw(g.assets.font, glyphRect(ch, h.FontCellW, h.FontCellH, h.FontColumns),
			core.NewFRect(x, y, h.FontCellW, h.FontCellH))
		x += h.FontCellW
	}
}

func (g *Game) textWidth(s string) float64 {
	return float64(len([]rune(s))) * g.cfg.HUD.FontCellW
}
