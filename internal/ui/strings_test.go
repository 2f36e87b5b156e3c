package ui

import (
	"strings"
	"testing"
)

func containsText(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abcdef", 3, "abc"},
		{"  padded  ", 0, "padded"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{2.4, "★★☆☆☆"},
		{2.5, "★★★☆☆"},
		{5, "★★★★★"},
		{9, "★★★★★"},
		{-1, "☆☆☆☆☆"},
	}
	for _, tt := range tests {
		if got := stars(tt.rating); got != tt.want {
			t.Errorf("stars(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("lower  back"); got != "Lower Back" {
		t.Fatalf("titleCase = %q, want %q", got, "Lower Back")
	}
	if got := titleCase(""); got != "" {
		t.Fatalf("titleCase empty = %q", got)
	}
}

func TestNextFilterCycles(t *testing.T) {
	seen := map[string]bool{}
	f := nextFilter("")
	for range 3 {
		seen[string(f)] = true
		f = nextFilter(f)
	}
	if len(seen) != 3 {
		t.Fatalf("nextFilter visited %v, want all three filters", seen)
	}
}
