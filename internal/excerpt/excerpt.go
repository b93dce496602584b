// Package excerpt produces a plain-markdown rendition of source HTML for
// editor list views and previews. It is a side output of conversion and has
// no effect on the block markup itself.
package excerpt

import (
	"context"
	"fmt"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// DefaultWordLimit matches the conventional excerpt length of editor list
// views.
const DefaultWordLimit = 55

// Generator converts HTML to markdown, trimmed to a word limit.
type Generator struct {
	converter *md.Converter
	wordLimit int
}

// NewGenerator creates a generator with default conversion rules and the
// default word limit.
func NewGenerator() *Generator {
	return &Generator{
		converter: md.NewConverter("", true, nil),
		wordLimit: DefaultWordLimit,
	}
}

// SetWordLimit changes the trim length. Zero or negative disables trimming.
func (g *Generator) SetWordLimit(limit int) { g.wordLimit = limit }

// Generate transforms HTML into markdown. The input is expected to already
// be sanitized by the conversion pipeline.
func (g *Generator) Generate(_ context.Context, html string) (string, error) {
	markdown, err := g.converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return TrimWords(markdown, g.wordLimit), nil
}
