package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/megamarkets/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for focus checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for focus checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event asks the application to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) focus() statepkg.Focus {
	if ih.state == nil {
		return statepkg.FocusForm
	}
	return ih.state.View.Focus
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	// Keys that behave the same regardless of focus
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyTab, tcell.KeyBacktab:
		ih.actionChan <- statepkg.ToggleFocusAction{}
		return true
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true
	}

	if ih.focus() == statepkg.FocusForm {
		return ih.processFormKey(ev)
	}
	return ih.processListKey(ev)
}

func (ih *InputHandler) processFormKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.SubmitLocationAction{}
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.LocationClearAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.LocationBackspaceAction{}
	case tcell.KeyCtrlU:
		ih.actionChan <- statepkg.LocationClearAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.LocationCharAction{Char: ev.Rune()}
	}
	return true
}

func (ih *InputHandler) processListKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRight:
		ih.actionChan <- statepkg.IncrementSelectedAction{}
		return true
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.DecrementSelectedAction{}
		return true
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.FocusFormAction{}
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case '+', '=':
		ih.actionChan <- statepkg.IncrementSelectedAction{}
	case '-', '_':
		ih.actionChan <- statepkg.DecrementSelectedAction{}
	case 'k':
		ih.actionChan <- statepkg.NavigateUpAction{}
	case 'j':
		ih.actionChan <- statepkg.NavigateDownAction{}
	case 'a', '/':
		ih.actionChan <- statepkg.FocusFormAction{}
	case 'q', 'Q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}
	return true
}
