package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != "Energy" {
		t.Fatalf("ThemeNames() = %v, want Energy first of three", names)
	}
	for _, name := range names {
		if GetTheme(name).Name != name {
			t.Fatalf("GetTheme(%q) returned %q", name, GetTheme(name).Name)
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Energy"); got != "Dracula" {
		t.Fatalf("NextTheme(Energy) = %q, want Dracula", got)
	}
	if got := NextTheme("Slate"); got != "Energy" {
		t.Fatalf("NextTheme(Slate) = %q, want Energy", got)
	}
	if got := NextTheme("Unknown"); got != "Energy" {
		t.Fatalf("NextTheme(Unknown) = %q, want Energy", got)
	}
}

func TestGetThemeFallback(t *testing.T) {
	if got := GetTheme("Unknown").Name; got != "Energy" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Energy (fallback)", got)
	}
}
