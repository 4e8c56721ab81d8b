package state

// ===== STATE DEFINITIONS =====

// Focus selects which part of the screen receives typed input.
type Focus int

const (
	FocusForm Focus = iota
	FocusList
)

func (f Focus) String() string {
	switch f {
	case FocusForm:
		return "form"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}

// ViewState carries everything the UI needs beyond the market data.
type ViewState struct {
	Focus        Focus
	Selected     int // Index into MarketState.Order
	ScrollOffset int

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Error state
	LastError error
}

// AppState is the single source of truth for the running application.
type AppState struct {
	Market *MarketState
	View   ViewState
}

// NewAppState wraps a fresh MarketState with the form focused.
func NewAppState(width, height int) *AppState {
	return &AppState{
		Market: NewMarketState(),
		View: ViewState{
			Focus:        FocusForm,
			ScreenWidth:  width,
			ScreenHeight: height,
		},
	}
}

// SelectedMarket returns the market under the cursor, if any.
func (s *AppState) SelectedMarket() (Market, bool) {
	if s == nil {
		return Market{}, false
	}
	return s.Market.MarketAt(s.View.Selected)
}

// headerRows is the number of screen rows above the market list: title,
// totals, form and column headings. One status row sits below it.
const (
	headerRows = 4
	footerRows = 1
)

// ListViewportHeight reports how many market rows fit on screen.
func (v ViewState) ListViewportHeight() int {
	h := v.ScreenHeight - headerRows - footerRows
	if h < 1 {
		return 1
	}
	return h
}

// ListTop is the first screen row of the market list.
func ListTop() int {
	return headerRows
}
