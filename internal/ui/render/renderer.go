package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/megamarkets/internal/state"
)

const (
	headerTitle   = "MegaMarkets"
	formLabel     = "New location: "
	emptyListHint = "No markets yet. Type a location and press ↵."

	rowHeader  = 0
	rowTotals  = 1
	rowForm    = 2
	rowColumns = 3
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, theme ColorTheme) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if state == nil || w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawTotals(state, w)
	r.drawForm(state, w)
	r.drawColumnHeader(w)
	r.drawMarketList(state, w, h)
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with title and sync flag
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	r.fillLine(0, rowHeader, w, style)
	x := r.drawTextLine(rowIndent, rowHeader, w, headerTitle, style.Bold(true))

	synced := state.Market != nil && state.Market.Synced
	label, fg := "○ unsynced", r.theme.UnsyncedFg
	if synced {
		label, fg = "● synced", r.theme.SyncedFg
	}
	r.drawRightAligned(rowHeader, x+1, w-rowIndent, label, style.Foreground(fg))
}

func (r *Renderer) drawTotals(state *statepkg.AppState, w int) {
	markets, cards := 0, 0
	if state.Market != nil {
		markets, cards = state.Market.TotalMarkets, state.Market.TotalCards
	}
	text := fmt.Sprintf("Markets: %d   Cards: %d", markets, cards)
	r.drawTextLine(rowIndent, rowTotals, w, text, tcell.StyleDefault.Foreground(r.theme.TotalsFg))
}

func (r *Renderer) drawForm(state *statepkg.AppState, w int) {
	focused := state.View.Focus == statepkg.FocusForm
	base := tcell.StyleDefault
	if focused {
		base = base.Background(r.theme.FormFocusBg)
		r.fillLine(0, rowForm, w, base)
	}

	x := r.drawTextLine(rowIndent, rowForm, w, formLabel, base.Foreground(r.theme.FormLabelFg))

	location := ""
	if state.Market != nil {
		location = state.Market.NewLocation
	}
	x = r.drawTextLine(x, rowForm, w, location, base.Foreground(r.theme.FormFg))

	if focused && x < w {
		r.screen.SetContent(x, rowForm, ' ', nil, base.Reverse(true))
	}
}

func (r *Renderer) drawColumnHeader(w int) {
	cols := computeMarketColumns(w)
	style := tcell.StyleDefault.Foreground(r.theme.ColumnFg).Underline(true)
	r.drawTextLine(cols.indexX, rowColumns, cols.locationX, "#", style)
	r.drawTextLine(cols.locationX, rowColumns, cols.cardsX, "Location", style)
	r.drawRightAligned(rowColumns, cols.cardsX, cols.end, "Cards", style)
}

// drawMarketList renders the visible window of markets
func (r *Renderer) drawMarketList(state *statepkg.AppState, w, h int) {
	top := statepkg.ListTop()
	bottom := h - 1 // status line
	if top >= bottom {
		return
	}

	markets := state.Market.MarketList()
	if len(markets) == 0 {
		r.drawTextLine(rowIndent, top, w, emptyListHint, tcell.StyleDefault.Foreground(r.theme.EmptyFg).Italic(true))
		return
	}

	cols := computeMarketColumns(w)
	for row := 0; top+row < bottom; row++ {
		idx := state.View.ScrollOffset + row
		if idx < 0 || idx >= len(markets) {
			break
		}
		r.drawMarketRow(state, idx, markets[idx], top+row, w, cols)
	}
}

func (r *Renderer) drawMarketRow(state *statepkg.AppState, idx int, market statepkg.Market, y, w int, cols marketColumns) {
	style := tcell.StyleDefault
	cardsStyle := style.Foreground(r.theme.CardsFg)

	if idx == state.View.Selected {
		bg := r.theme.InactiveBg
		if state.View.Focus == statepkg.FocusList {
			bg = r.theme.SelectionBg
		}
		style = style.Background(bg).Foreground(r.theme.SelectionFg)
		if r.theme.isMono() {
			style = tcell.StyleDefault.Reverse(true)
		}
		cardsStyle = style.Bold(true)
		r.fillLine(0, y, w, style)
	}

	index, location, cards := formatMarketRow(idx, market, cols)
	r.drawTextLine(cols.indexX, y, cols.locationX, index, style)
	r.drawTextLine(cols.locationX, y, cols.cardsX, location, style)
	r.drawRightAligned(y, cols.cardsX, cols.end, cards, cardsStyle)
}

// drawStatusLine shows the last error, or contextual help when there is none.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y <= rowHeader {
		return
	}

	if err := state.View.LastError; err != nil {
		style := tcell.StyleDefault.Foreground(r.theme.ErrorFg).Bold(true)
		r.drawTextLine(rowIndent, y, w, "Error: "+err.Error(), style)
		return
	}

	r.drawTextLine(0, y, w, buildFooterHelpText(state), tcell.StyleDefault.Foreground(r.theme.FooterFg))
}

// MarketIndexAt maps a screen row onto a market index, or -1 when the row is
// not a market row.
func MarketIndexAt(state *statepkg.AppState, y int) int {
	if state == nil || state.Market == nil {
		return -1
	}
	top := statepkg.ListTop()
	if y < top || y >= state.View.ScreenHeight-1 {
		return -1
	}
	idx := state.View.ScrollOffset + (y - top)
	if idx < 0 || idx >= len(state.Market.Order) {
		return -1
	}
	return idx
}
