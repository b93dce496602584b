package excerpt

import (
	"context"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	g := NewGenerator()
	got, err := g.Generate(context.Background(), `<h2>Title</h2><p>Body <strong>text</strong></p>`)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(got, "## Title") {
		t.Errorf("Generate() = %q, want markdown heading", got)
	}
	if !strings.Contains(got, "**text**") {
		t.Errorf("Generate() = %q, want bold markdown", got)
	}
}
