package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/megamarkets/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles focus-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	if state.View.Focus == statepkg.FocusList {
		return []string{
			"↑↓: select",
			"+/→: add card",
			"-/←: remove card",
			"a: new market",
			"Tab: form",
			"q: quit",
		}
	}

	return []string{
		"type: location",
		"↵: add market",
		"Esc: clear",
		"↑↓: select",
		"Tab: markets",
		"^C: quit",
	}
}
