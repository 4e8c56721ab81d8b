package app

import (
	"fmt"

	statepkg "github.com/kk-code-lab/megamarkets/internal/state"
	textutil "github.com/kk-code-lab/megamarkets/internal/textutil"
)

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	}

	return app.dispatch(action)
}

// dispatch runs action through the reducers and installs the result.
func (app *Application) dispatch(action statepkg.Action) bool {
	name := fmt.Sprintf("%T", action)
	next, err := statepkg.Dispatch(app.state, action)
	if err != nil {
		app.logger.Warn("action rejected", "action", name, "error", err)
	} else {
		app.logger.Debug("dispatch", "action", name,
			"markets", next.Market.TotalMarkets,
			"cards", next.Market.TotalCards)
	}

	app.state = next
	app.input.SetState(next)
	return true
}

// seedMarkets adds the configured markets through the reducer, in order.
func (app *Application) seedMarkets(seeds []string) {
	for _, seed := range seeds {
		location := textutil.TrimLocation(seed)
		if location == "" {
			continue
		}
		app.dispatch(statepkg.AddMarketAction{Location: location})
	}
	if len(seeds) > 0 {
		// Start with the first market selected rather than the last seeded one.
		view := statepkg.ReduceView(app.state.View, app.state.Market, statepkg.SelectMarketAction{Index: 0})
		view.Focus = statepkg.FocusForm
		app.state = &statepkg.AppState{Market: app.state.Market, View: view}
		app.input.SetState(app.state)
	}
}
