package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	SyncedFg    tcell.Color
	UnsyncedFg  tcell.Color
	TotalsFg    tcell.Color
	FormLabelFg tcell.Color
	FormFg      tcell.Color
	FormFocusBg tcell.Color
	ColumnFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	InactiveBg  tcell.Color // selection while the form has focus
	CardsFg     tcell.Color
	EmptyFg     tcell.Color
	FooterFg    tcell.Color
	ErrorFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderBg:    tcell.Color33,
		HeaderFg:    tcell.ColorWhite,
		SyncedFg:    tcell.Color120,
		UnsyncedFg:  tcell.Color214,
		TotalsFg:    tcell.ColorDefault,
		FormLabelFg: tcell.ColorLightSlateGray,
		FormFg:      tcell.ColorDefault,
		FormFocusBg: tcell.Color236,
		ColumnFg:    tcell.ColorLightSlateGray,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		InactiveBg:  tcell.Color238,
		CardsFg:     tcell.Color44,
		EmptyFg:     tcell.ColorLightSlateGray,
		FooterFg:    tcell.ColorDefault,
		ErrorFg:     tcell.ColorRed,
	}
}

// GetMonoTheme avoids colors entirely for terminals without them.
func GetMonoTheme() ColorTheme {
	d := tcell.ColorDefault
	return ColorTheme{
		HeaderBg: d, HeaderFg: d, SyncedFg: d, UnsyncedFg: d, TotalsFg: d,
		FormLabelFg: d, FormFg: d, FormFocusBg: d, ColumnFg: d,
		SelectionBg: d, SelectionFg: d, InactiveBg: d, CardsFg: d,
		EmptyFg: d, FooterFg: d, ErrorFg: d,
	}
}

// ThemeByName maps a config theme name to a ColorTheme.
func ThemeByName(name string) ColorTheme {
	if strings.EqualFold(name, "mono") {
		return GetMonoTheme()
	}
	return GetColorTheme()
}

func (t ColorTheme) isMono() bool {
	return t.SelectionBg == tcell.ColorDefault
}
