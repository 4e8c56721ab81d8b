package textutil

import "testing"

func TestNormalizeLocationComposesNFC(t *testing.T) {
	decomposed := "Zu\u0308rich"
	got := NormalizeLocation(decomposed)
	if got != "Z\u00fcrich" {
		t.Fatalf("expected composed form, got %q", got)
	}
}

func TestNormalizeLocationStripsControlRunes(t *testing.T) {
	got := NormalizeLocation("Az\x1bka" + string(rune(0x200D)) + "ban")
	if got != "Azkaban" {
		t.Fatalf("expected control runes removed, got %q", got)
	}
}

func TestNormalizeLocationKeepsSpaces(t *testing.T) {
	got := NormalizeLocation("Diagon ")
	if got != "Diagon " {
		t.Fatalf("trailing space should survive while typing, got %q", got)
	}
	if got := NormalizeLocation("a\tb"); got != "a b" {
		t.Fatalf("tab should become a space, got %q", got)
	}
}

func TestTrimLocation(t *testing.T) {
	tests := map[string]string{
		"  Azkaban ":       "Azkaban",
		"Diagon    Alley":  "Diagon Alley",
		"   ":              "",
		"Hogs\u200bmeade ": "Hogsmeade",
	}
	for input, want := range tests {
		if got := TrimLocation(input); got != want {
			t.Errorf("TrimLocation(%q) = %q, want %q", input, got, want)
		}
	}
}
