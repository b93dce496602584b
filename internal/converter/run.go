package converter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"blockpress/internal/autop"
	"blockpress/internal/blocks"
	"blockpress/internal/converter/sanitizer"
	"blockpress/internal/media"
)

// Run is the state of one conversion: the mapping table and allow-list
// snapshots (after override hooks) plus the converter they came from. It is
// handed to transform functions so they see the same tables the dispatcher
// does.
type Run struct {
	conv     *Converter
	mappings map[string]Mapping
	allow    map[string][]string
}

// Options returns the converter's options for this run.
func (r *Run) Options() Options { return r.conv.opts }

// Sideload requests the media storage service to fetch-and-store sourceURL.
func (r *Run) Sideload(ctx context.Context, sourceURL string) (*media.Asset, error) {
	if r.conv.uploader == nil {
		return nil, fmt.Errorf("no media uploader configured")
	}
	return r.conv.uploader.Sideload(ctx, sourceURL)
}

// load wraps, normalizes, sanitizes, and parses raw input into a DOM tree.
// The parser is lenient: malformed markup yields a best-effort tree, never
// an error.
func (r *Run) load(raw string) (*goquery.Document, error) {
	text := raw

	// The normalizer must see the bare text before any document wrapper is
	// added, or its blank-line paragraph detection has nothing to work on.
	if r.conv.opts.AutoParagraph {
		text = autop.AutoParagraph(text)
	}
	if !strings.HasPrefix(text, "<") {
		text = "<html><body>" + text + "</body></html>"
	}
	text = strings.ToValidUTF8(text, "�")
	text = sanitizer.New(r.allow).Sanitize(text)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// convertBody walks the direct children of the document body in document
// order and accumulates serialized blocks. Each block is followed by a
// blank-line separator; bare text containing "[" bypasses block
// serialization entirely.
func (r *Run) convertBody(ctx context.Context, doc *goquery.Document) string {
	var out strings.Builder

	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		switch node.Type {
		case html.ElementNode:
			b := r.dispatch(ctx, s)
			if b == nil {
				return
			}
			out.WriteString(blocks.Serialize(b))
			out.WriteString("\n\n")
		case html.TextNode:
			// Escape hatch for shortcode-like placeholders sitting as bare
			// text between elements: pass them through verbatim.
			if strings.Contains(node.Data, "[") {
				out.WriteString(node.Data)
			}
		}
	})

	return out.String()
}

// nonWord matches everything that is not a letter, digit, underscore, or
// hyphen.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_-]`)

// dispatch decides which block one top-level element becomes.
func (r *Run) dispatch(ctx context.Context, s *goquery.Selection) *blocks.Block {
	tag := strings.ToLower(goquery.NodeName(s))

	if m, ok := r.mappings[tag]; ok {
		if m.Transform != nil {
			b, err := m.Transform(ctx, r, s)
			if err != nil {
				// Unrecoverable per-node: drop it and keep converting.
				r.conv.logger.Debug("transform produced no block", "tag", tag, "error", err)
				return nil
			}
			return b
		}
		if m.BlockName != "" {
			return &blocks.Block{
				Name:      m.BlockName,
				InnerHTML: r.CleanMarkup(s),
			}
		}
	}

	text := s.Text()
	if nonWord.ReplaceAllString(text, "") != "" && !strings.Contains(text, "[") {
		return &blocks.Block{
			Name:      blocks.Paragraph,
			InnerHTML: "<p>" + strings.TrimSpace(r.CleanMarkup(s)) + "</p>",
		}
	}

	// Generic passthrough: unmapped markup is preserved unchanged. Text
	// containing "[" lands here too so unprocessed shortcodes survive.
	return &blocks.Block{
		Name:      blocks.HTML,
		InnerHTML: r.CleanMarkup(s),
	}
}

// CleanMarkup strips disallowed attributes from the element, then
// re-serializes it to markup. The element is mutated in place, so any
// mutation a transform performed beforehand is reflected in the capture. An
// element with zero child nodes contributes its plain text content instead
// of markup serialization.
func (r *Run) CleanMarkup(s *goquery.Selection) string {
	node := s.Get(0)
	r.cleanAttributes(node)

	if node.FirstChild == nil {
		return s.Text()
	}

	markup, err := goquery.OuterHtml(s)
	if err != nil {
		return s.Text()
	}
	return markup
}

// cleanAttributes removes every attribute not in the allow-list for the
// element's tag. class and id are always kept. The attribute slice is
// rebuilt from a stable snapshot so removal never skips entries.
func (r *Run) cleanAttributes(node *html.Node) {
	if len(node.Attr) == 0 {
		return
	}

	allowed := map[string]bool{"class": true, "id": true}
	for _, attr := range r.allow[strings.ToLower(node.Data)] {
		allowed[strings.ToLower(attr)] = true
	}

	kept := make([]html.Attribute, 0, len(node.Attr))
	for _, attr := range node.Attr {
		if allowed[strings.ToLower(attr.Key)] {
			kept = append(kept, attr)
		}
	}
	node.Attr = kept
}
