package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== MARKET ACTIONS =====

// AddMarketAction appends a market named Location with no cards.
type AddMarketAction struct {
	Location string
}

// UpdateLocationAction replaces the staged add-market text.
type UpdateLocationAction struct {
	Location string
}

type AddCardAction struct {
	Market MarketRef
}

type DeleteCardAction struct {
	Market MarketRef
}

// ===== VIEW ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type SelectMarketAction struct {
	Index int
}
type ToggleFocusAction struct{}
type FocusFormAction struct{}

type ResizeAction struct {
	Width  int
	Height int
}

// ===== FORM ACTIONS =====

type LocationCharAction struct {
	Char rune
}
type LocationBackspaceAction struct{}
type LocationClearAction struct{}
type SubmitLocationAction struct{}

// ===== LIST ACTIONS =====

type IncrementSelectedAction struct{}
type DecrementSelectedAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
