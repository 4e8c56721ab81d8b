package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLocation converts typed location text to NFC and removes runes
// that have no business in a market name (controls and formatting runes).
// Whitespace is kept as typed so the form echoes what the user entered.
func NormalizeLocation(text string) string {
	text = norm.NFC.String(text)
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsControl(r), unicode.Is(unicode.Cf, r):
			return -1
		}
		return r
	}, text)
}

// TrimLocation normalises text and collapses surrounding and repeated
// whitespace, producing the name stored for a new market.
func TrimLocation(text string) string {
	return strings.Join(strings.Fields(NormalizeLocation(text)), " ")
}
