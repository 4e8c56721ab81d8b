package textutil

import "testing"

func TestSanitizeTerminalTextLeavesSafeInput(t *testing.T) {
	input := "Diagon Alley"
	if got := SanitizeTerminalText(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestSanitizeTerminalTextReplacesControlSequences(t *testing.T) {
	input := "bad\x1b[31m\nmarket"
	got := SanitizeTerminalText(input)
	if got != "bad?[31m market" {
		t.Fatalf("expected sanitized string \"bad?[31m market\", got %q", got)
	}
}

func TestSanitizeTerminalTextDropsFormattingRunes(t *testing.T) {
	input := "a" + string(rune(0x202E)) + "b" + string(rune(0x200B)) + "c"
	if got := SanitizeTerminalText(input); got != "abc" {
		t.Fatalf("expected formatting runes to be dropped, got %q", got)
	}
}

func TestDisplayWidth(t *testing.T) {
	if got := DisplayWidth("abc"); got != 3 {
		t.Fatalf("expected ASCII width 3, got %d", got)
	}
	if got := DisplayWidth("你好"); got != 4 {
		t.Fatalf("expected wide rune width 4, got %d", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{"fits without truncation", "Azkaban", 20, "Azkaban"},
		{"adds ellipsis when needed", "Hogsmeade", 6, "Hogsm…"},
		{"only ellipsis when width too small", "Hogwartz", 1, "…"},
		{"multi-byte characters respected", "你好世界", 5, "你好…"},
		{"returns empty when width is zero", "anything", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.width); got != tt.expect {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.expect)
			}
		})
	}
}
