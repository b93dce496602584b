package excerpt

import (
	"context"
	"strings"
	"testing"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     int
	}{
		{"plain", "one two three", 3},
		{"bold and heading", "## Title\n\nSome **bold** text", 4},
		{"code block excluded", "before\n```\ncode here\n```\nafter", 2},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.markdown); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.markdown, got, tt.want)
			}
		})
	}
}

func TestTrimWords(t *testing.T) {
	got := TrimWords("a b c d e", 3)
	want := "a b c" + Ellipsis
	if got != want {
		t.Errorf("TrimWords() = %q, want %q", got, want)
	}

	if got := TrimWords("a b c", 5); got != "a b c" {
		t.Errorf("TrimWords() under limit = %q, want unchanged", got)
	}
	if got := TrimWords("a b c", 0); got != "a b c" {
		t.Errorf("TrimWords() with zero limit = %q, want unchanged", got)
	}
}

func TestGenerateTrimsAtWordLimit(t *testing.T) {
	g := NewGenerator()
	g.SetWordLimit(4)

	got, err := g.Generate(context.Background(), "<p>one two three four five six</p>")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("Generate() = %q, want trailing ellipsis", got)
	}
	if strings.Contains(got, "five") {
		t.Errorf("Generate() = %q, want words past the limit dropped", got)
	}
}
