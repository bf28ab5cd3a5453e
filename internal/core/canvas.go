package core

import (
	"errors"
	"fmt"
	"math"
)

// Handle is an opaque reference to a loaded image. The zero value is invalid.
type Handle int

// Valid reports whether h refers to a loaded image.
func (h Handle) Valid() bool {
	return h > 0
}

// ErrAssetNotFound is returned by loaders for paths they cannot resolve.
var ErrAssetNotFound = errors.New("asset not found")

// Glyph describes how an image is drawn on a character screen.
type Glyph struct {
	Rune  rune
	Color Color

	// Font marks a bitmap font sheet. Draws decode the character from the
	// source cell instead of filling the destination.
	Font        bool
	FontColumns int
	FontCellW   float64
	FontCellH   float64
	FontFirst   rune
}

// Atlas maps asset paths to glyphs and hands out handles for them.
type Atlas struct {
	byPath map[string]Handle
	glyphs []Glyph // index 0 unused
}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{
		byPath: make(map[string]Handle),
		glyphs: make([]Glyph, 1),
	}
}

// Register binds a path to a glyph. Registering the same path again
// replaces the glyph and keeps the handle.
func (a *Atlas) Register(path string, g Glyph) Handle {
	if h, ok := a.byPath[path]; ok {
		a.glyphs[h] = g
		return h
	}
	a.glyphs = append(a.glyphs, g)
	h := Handle(len(a.glyphs) - 1)
	a.byPath[path] = h
	return h
}

// Load returns the handle registered for path.
func (a *Atlas) Load(path string) (Handle, error) {
	if h, ok := a.byPath[path]; ok {
		return h, nil
	}
	return 0, fmt.Errorf("atlas: %q: %w", path, ErrAssetNotFound)
}

// Glyph returns the glyph behind a handle.
func (a *Atlas) Glyph(h Handle) (Glyph, bool) {
	if !h.Valid() || int(h) >= len(a.glyphs) {
		return Glyph{}, false
	}
	return a.glyphs[h], true
}

// Canvas rasterizes pixel-space draw calls onto a Screen.
// An arena of ArenaW x ArenaH pixels is scaled to the whole screen.
type Canvas struct {
	screen *Screen
	atlas  *Atlas
	arenaW float64
	arenaH float64

	// text cursor: consecutive font glyphs land in consecutive cells
	textY    float64
	textEndX float64
	textCell int
	textRow  int
	inText   bool
}

// NewCanvas creates a canvas drawing into screen.
func NewCanvas(screen *Screen, atlas *Atlas, arenaW, arenaH float64) *Canvas {
	return &Canvas{
		screen: screen,
		atlas:  atlas,
		arenaW: arenaW,
		arenaH: arenaH,
	}
}

// Begin clears the screen and resets per-frame state.
func (c *Canvas) Begin() {
	c.screen.Clear()
	c.inText = false
}

// Draw copies the src region of image h into the dst box.
func (c *Canvas) Draw(h Handle, src, dst FRect) {
	g, ok := c.atlas.Glyph(h)
	if !ok {
		return
	}
	if g.Font {
		c.drawChar(g, src, dst)
		return
	}
	c.inText = false

	x0, x1 := c.span(dst.X, dst.Right(), c.screen.Width(), c.arenaW)
	y0, y1 := c.span(dst.Y, dst.Bottom(), c.screen.Height(), c.arenaH)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.screen.SetColored(x, y, g.Rune, g.Color)
		}
	}
}

// span converts a pixel interval to an inclusive cell interval covering
// at least one cell.
func (c *Canvas) span(from, to float64, cells int, pixels float64) (int, int) {
	scale := float64(cells) / pixels
	lo := int(math.Floor(from * scale))
	hi := int(math.Ceil(to*scale)) - 1
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func (c *Canvas) drawChar(g Glyph, src, dst FRect) {
	cols := g.FontColumns
	if cols <= 0 {
		cols = 16
	}
	cw, ch := g.FontCellW, g.FontCellH
	if cw <= 0 {
		cw = 8
	}
	if ch <= 0 {
		ch = 8
	}
	first := g.FontFirst
	if first == 0 {
		first = ' '
	}
	index := int(src.Y/ch)*cols + int(src.X/cw)
	r := first + rune(index)

	var cell, row int
	if c.inText && dst.Y == c.textY && math.Abs(dst.X-c.textEndX) < 0.5 {
		cell = c.textCell + 1
		row = c.textRow
	} else {
		cell = int(math.Floor(dst.X * float64(c.screen.Width()) / c.arenaW))
		row = int(math.Floor(dst.Y * float64(c.screen.Height()) / c.arenaH))
	}
	c.screen.SetColored(cell, row, r, g.Color)

	c.inText = true
	c.textY = dst.Y
	c.textEndX = dst.Right()
	c.textCell = cell
	c.textRow = row
}
