package app

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/megamarkets/internal/state"
	inputui "github.com/kk-code-lab/megamarkets/internal/ui/input"
	renderui "github.com/kk-code-lab/megamarkets/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	logger     *slog.Logger
	mouse      bool
	shouldQuit bool
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

// State returns the current application state.
func (app *Application) State() *statepkg.AppState {
	return app.state
}
