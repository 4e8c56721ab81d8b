package render

import (
	"fmt"

	statepkg "github.com/kk-code-lab/megamarkets/internal/state"
	textutil "github.com/kk-code-lab/megamarkets/internal/textutil"
)

const (
	rowIndent      = 1
	indexColWidth  = 4
	cardsColWidth  = 7
	minLocationCol = 8
)

// marketColumns splits a list row of the given width into its columns.
type marketColumns struct {
	indexX    int
	locationX int
	cardsX    int
	end       int
}

func computeMarketColumns(width int) marketColumns {
	cols := marketColumns{
		indexX:    rowIndent,
		locationX: rowIndent + indexColWidth,
		end:       width - rowIndent,
	}
	cols.cardsX = cols.end - cardsColWidth
	if cols.cardsX-cols.locationX < minLocationCol {
		cols.cardsX = cols.locationX + minLocationCol
	}
	if cols.cardsX > cols.end {
		cols.cardsX = cols.end
	}
	return cols
}

// formatMarketRow returns the three column texts for one market.
func formatMarketRow(position int, market statepkg.Market, cols marketColumns) (string, string, string) {
	index := fmt.Sprintf("%*d", indexColWidth-1, position+1)
	location := textutil.Truncate(market.Location, cols.cardsX-cols.locationX-1)
	cards := fmt.Sprintf("%*d", cardsColWidth, market.Cards)
	return index, location, cards
}

// IsFormRow reports whether screen row y holds the add-market form.
func IsFormRow(y int) bool {
	return y == rowForm
}
