package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/megamarkets/internal/state"
)

func newHandler(focus statepkg.Focus) (*InputHandler, chan statepkg.Action) {
	actionChan := make(chan statepkg.Action, 4)
	handler := NewInputHandler(actionChan)
	state := statepkg.NewAppState(80, 24)
	state.View.Focus = focus
	handler.SetState(state)
	return handler, actionChan
}

func expectAction[T statepkg.Action](t *testing.T, actionChan chan statepkg.Action) T {
	t.Helper()
	select {
	case action := <-actionChan:
		typed, ok := action.(T)
		if !ok {
			var want T
			t.Fatalf("Expected %T, got %T", want, action)
		}
		return typed
	default:
		var want T
		t.Fatalf("Expected %T to be emitted", want)
	}
	panic("unreachable")
}

func expectNoAction(t *testing.T, actionChan chan statepkg.Action) {
	t.Helper()
	select {
	case action := <-actionChan:
		t.Fatalf("expected no action, got %T", action)
	default:
	}
}

func TestTypingInFormEmitsLocationChars(t *testing.T) {
	handler, actionChan := newHandler(statepkg.FocusForm)

	if !handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Fatal("'q' must not quit while the form has focus")
	}
	action := expectAction[statepkg.LocationCharAction](t, actionChan)
	if action.Char != 'q' {
		t.Fatalf("expected 'q', got %q", action.Char)
	}

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, '-', 0))
	if got := expectAction[statepkg.LocationCharAction](t, actionChan); got.Char != '-' {
		t.Fatalf("expected '-', got %q", got.Char)
	}
}

func TestFormEditingKeys(t *testing.T) {
	handler, actionChan := newHandler(statepkg.FocusForm)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, 0))
	expectAction[statepkg.LocationBackspaceAction](t, actionChan)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	expectAction[statepkg.LocationClearAction](t, actionChan)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	expectAction[statepkg.SubmitLocationAction](t, actionChan)
}

func TestListKeysAdjustCards(t *testing.T) {
	handler, actionChan := newHandler(statepkg.FocusList)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, '+', 0))
	expectAction[statepkg.IncrementSelectedAction](t, actionChan)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, '-', 0))
	expectAction[statepkg.DecrementSelectedAction](t, actionChan)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRight, 0, 0))
	expectAction[statepkg.IncrementSelectedAction](t, actionChan)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyLeft, 0, 0))
	expectAction[statepkg.DecrementSelectedAction](t, actionChan)
}

func TestListEscapeReturnsToForm(t *testing.T) {
	handler, actionChan := newHandler(statepkg.FocusList)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	expectAction[statepkg.FocusFormAction](t, actionChan)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'a', 0))
	expectAction[statepkg.FocusFormAction](t, actionChan)
}

func TestQQuitsFromList(t *testing.T) {
	handler, actionChan := newHandler(statepkg.FocusList)

	if handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Fatal("expected ProcessEvent to report quit")
	}
	expectAction[statepkg.QuitAction](t, actionChan)
}

func TestCtrlCQuitsFromAnyFocus(t *testing.T) {
	for _, focus := range []statepkg.Focus{statepkg.FocusForm, statepkg.FocusList} {
		handler, actionChan := newHandler(focus)
		if handler.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
			t.Fatalf("%s: expected quit", focus)
		}
		expectAction[statepkg.QuitAction](t, actionChan)
	}
}

func TestTabTogglesFocus(t *testing.T) {
	handler, actionChan := newHandler(statepkg.FocusForm)
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyTab, 0, 0))
	expectAction[statepkg.ToggleFocusAction](t, actionChan)
}

func TestArrowsNavigateInBothFocuses(t *testing.T) {
	for _, focus := range []statepkg.Focus{statepkg.FocusForm, statepkg.FocusList} {
		handler, actionChan := newHandler(focus)
		handler.ProcessEvent(tcell.NewEventKey(tcell.KeyUp, 0, 0))
		expectAction[statepkg.NavigateUpAction](t, actionChan)
		handler.ProcessEvent(tcell.NewEventKey(tcell.KeyDown, 0, 0))
		expectAction[statepkg.NavigateDownAction](t, actionChan)
	}
}

func TestResizeEmitsDimensions(t *testing.T) {
	handler, actionChan := newHandler(statepkg.FocusForm)
	handler.ProcessEvent(tcell.NewEventResize(120, 40))

	action := expectAction[statepkg.ResizeAction](t, actionChan)
	if action.Width != 120 || action.Height != 40 {
		t.Fatalf("expected 120x40, got %dx%d", action.Width, action.Height)
	}
}

func TestUnhandledListKeysEmitNothing(t *testing.T) {
	handler, actionChan := newHandler(statepkg.FocusList)
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'z', 0))
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyF5, 0, 0))
	expectNoAction(t, actionChan)
}

func TestNilStateDefaultsToForm(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'x', 0))
	expectAction[statepkg.LocationCharAction](t, actionChan)
}
