// Package autop wraps bare text runs in paragraph tags using blank-line
// paragraph detection: two or more consecutive newlines delimit paragraphs,
// single newlines inside a paragraph become line breaks, and chunks that
// already start with a block-level tag are left alone.
package autop

import (
	"regexp"
	"strings"
)

var (
	paragraphSplit = regexp.MustCompile(`\n{2,}`)
	openingTag     = regexp.MustCompile(`^<([a-zA-Z][a-zA-Z0-9]*)`)
)

// blockTags are tags that already establish block-level structure; chunks
// beginning with one of these are passed through unwrapped.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"details": true, "div": true, "dl": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "ul": true,
}

// AutoParagraph converts blank-line-delimited text runs into <p> elements.
// Existing block-level markup passes through unchanged.
func AutoParagraph(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	chunks := paragraphSplit.Split(text, -1)
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if startsWithBlockTag(chunk) {
			out = append(out, chunk)
			continue
		}
		// Single newlines inside the paragraph become line breaks.
		chunk = strings.ReplaceAll(chunk, "\n", "<br />\n")
		out = append(out, "<p>"+chunk+"</p>")
	}
	return strings.Join(out, "\n")
}

func startsWithBlockTag(chunk string) bool {
	m := openingTag.FindStringSubmatch(chunk)
	if m == nil {
		return false
	}
	return blockTags[strings.ToLower(m[1])]
}
