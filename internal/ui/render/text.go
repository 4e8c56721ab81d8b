package render

import (
	"github.com/gdamore/tcell/v2"
	textutil "github.com/kk-code-lab/megamarkets/internal/textutil"
	"github.com/mattn/go-runewidth"
)

// drawTextLine draws sanitized text from startX, never past maxX, and
// returns the column after the last drawn cell.
func (r *Renderer) drawTextLine(startX, y, maxX int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range textutil.SanitizeTerminalText(text) {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		for extra := 1; extra < w; extra++ {
			r.screen.SetContent(x+extra, y, ' ', nil, style)
		}
		x += w
	}
	return x
}

// fillLine paints the remainder of row y from startX with style.
func (r *Renderer) fillLine(startX, y, maxX int, style tcell.Style) {
	for x := startX; x < maxX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawRightAligned draws text so that it ends at maxX.
func (r *Renderer) drawRightAligned(y, minX, maxX int, text string, style tcell.Style) int {
	width := textutil.DisplayWidth(text)
	start := maxX - width
	if start < minX {
		start = minX
	}
	return r.drawTextLine(start, y, maxX, text, style)
}
