package state

import (
	"unicode"
	"unicode/utf8"

	textutil "github.com/kk-code-lab/megamarkets/internal/textutil"
)

// Dispatch runs one action through the whole application state: form and
// list intents are resolved against the current state, the result goes
// through Reduce, and the view is updated to match. The returned AppState is
// always new; the input is left untouched.
func Dispatch(app *AppState, action Action) (*AppState, error) {
	if app == nil {
		app = NewAppState(0, 0)
	}

	resolved := ResolveAction(app, action)
	market, err := Reduce(app.Market, resolved)
	view := ReduceView(app.View, market, resolved)
	view.LastError = err

	return &AppState{Market: market, View: view}, err
}

// ResolveAction turns UI intents into market actions using app as it is
// right now. Actions that are already market or view actions pass through.
// A nil result means there is nothing to do.
func ResolveAction(app *AppState, action Action) Action {
	current := ""
	if app != nil && app.Market != nil {
		current = app.Market.NewLocation
	}

	switch a := action.(type) {
	case LocationCharAction:
		if unicode.IsControl(a.Char) || !utf8.ValidRune(a.Char) {
			return nil
		}
		return UpdateLocationAction{Location: textutil.NormalizeLocation(current + string(a.Char))}

	case LocationBackspaceAction:
		if current == "" {
			return nil
		}
		_, size := utf8.DecodeLastRuneInString(current)
		return UpdateLocationAction{Location: current[:len(current)-size]}

	case LocationClearAction:
		return UpdateLocationAction{Location: ""}

	case SubmitLocationAction:
		location := textutil.TrimLocation(current)
		if location == "" {
			return nil
		}
		return AddMarketAction{Location: location}

	case IncrementSelectedAction:
		return AddCardAction{Market: selectedRef(app)}

	case DecrementSelectedAction:
		return DeleteCardAction{Market: selectedRef(app)}
	}

	return action
}

// selectedRef prefers the stable ID of the selected market; with nothing
// selectable it falls back to the raw index so Reduce reports the range error.
func selectedRef(app *AppState) MarketRef {
	if app == nil {
		return AtIndex(0)
	}
	if m, ok := app.SelectedMarket(); ok {
		return ByID(m.ID)
	}
	return AtIndex(app.View.Selected)
}

// ReduceView applies view actions and re-clamps the selection against market.
func ReduceView(view ViewState, market *MarketState, action Action) ViewState {
	count := 0
	if market != nil {
		count = len(market.Order)
	}

	switch a := action.(type) {
	case NavigateUpAction:
		if view.Selected > 0 {
			view.Selected--
		}
	case NavigateDownAction:
		if view.Selected < count-1 {
			view.Selected++
		}
	case SelectMarketAction:
		if a.Index >= 0 && a.Index < count {
			view.Selected = a.Index
			view.Focus = FocusList
		}
	case ToggleFocusAction:
		if view.Focus == FocusForm {
			view.Focus = FocusList
		} else {
			view.Focus = FocusForm
		}
	case FocusFormAction:
		view.Focus = FocusForm
	case ResizeAction:
		view.ScreenWidth = a.Width
		view.ScreenHeight = a.Height
	case AddMarketAction:
		view.Selected = count - 1
	}

	view.clampSelection(count)
	view.ensureSelectionVisible(count)
	return view
}

func (v *ViewState) clampSelection(count int) {
	if v.Selected >= count {
		v.Selected = count - 1
	}
	if v.Selected < 0 {
		v.Selected = 0
	}
}

func (v *ViewState) ensureSelectionVisible(count int) {
	visible := v.ListViewportHeight()

	if v.Selected < v.ScrollOffset {
		v.ScrollOffset = v.Selected
	}
	if v.Selected >= v.ScrollOffset+visible {
		v.ScrollOffset = v.Selected - visible + 1
	}

	maxOffset := count - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.ScrollOffset > maxOffset {
		v.ScrollOffset = maxOffset
	}
	if v.ScrollOffset < 0 {
		v.ScrollOffset = 0
	}
}
