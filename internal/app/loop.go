package app

import (
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/megamarkets/internal/config"
	statepkg "github.com/kk-code-lab/megamarkets/internal/state"
	"github.com/kk-code-lab/megamarkets/internal/ui/input"
	renderui "github.com/kk-code-lab/megamarkets/internal/ui/render"
)

// NewApplication opens the terminal and prepares the initial state.
func NewApplication(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newApplication(screen, cfg, logger), nil
}

// newApplication wires an already initialised screen.
func newApplication(screen tcell.Screen, cfg *config.Config, logger *slog.Logger) *Application {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.UI.Mouse {
		screen.EnableMouse()
	}

	w, h := screen.Size()
	actionCh := make(chan statepkg.Action, 10)

	app := &Application{
		screen:   screen,
		state:    statepkg.NewAppState(w, h),
		renderer: renderui.NewRenderer(screen, renderui.ThemeByName(cfg.UI.Theme)),
		input:    input.NewInputHandler(actionCh),
		actionCh: actionCh,
		logger:   logger,
		mouse:    cfg.UI.Mouse,
	}

	app.seedMarkets(cfg.Markets.Seed)
	app.input.SetState(app.state)
	return app
}

func (app *Application) Run() {
	app.logger.Info("started",
		"markets", app.state.Market.TotalMarkets,
		"width", app.state.View.ScreenWidth,
		"height", app.state.View.ScreenHeight)
	defer func() {
		app.logger.Info("stopped",
			"markets", app.state.Market.TotalMarkets,
			"cards", app.state.Market.TotalCards)
	}()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	case *tcell.EventMouse:
		return app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

// handleMouse maps primary clicks to selection and the wheel to navigation.
func (app *Application) handleMouse(ev *tcell.EventMouse) bool {
	if !app.mouse || app.state == nil {
		return false
	}

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		app.actionCh <- statepkg.NavigateUpAction{}
		return true
	case buttons&tcell.WheelDown != 0:
		app.actionCh <- statepkg.NavigateDownAction{}
		return true
	case buttons&tcell.Button1 == 0:
		return false
	}

	_, y := ev.Position()
	if renderui.IsFormRow(y) {
		app.actionCh <- statepkg.FocusFormAction{}
		return true
	}
	if idx := renderui.MarketIndexAt(app.state, y); idx >= 0 {
		app.actionCh <- statepkg.SelectMarketAction{Index: idx}
		return true
	}
	return false
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}
