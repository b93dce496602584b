package blocks

import (
	"fmt"
	"strings"
)

// Namespace is the block-name namespace stripped from delimiter comments.
// "core/paragraph" and "paragraph" serialize identically.
const Namespace = "core/"

// Serialize renders a block into its delimiter-comment wire form. A nil
// block is the "no block" signal and renders as the empty string, so callers
// can append the result unconditionally.
//
// Empty attributes produce no suffix; otherwise the suffix is a single space
// followed by the JSON-encoded attribute object. Empty inner markup produces
// the self-closing form.
func Serialize(b *Block) string {
	if b == nil {
		return ""
	}

	name := strings.TrimPrefix(b.Name, Namespace)

	var suffix string
	if b.Attributes.Len() > 0 {
		if j, err := b.Attributes.JSON(); err == nil {
			suffix = " " + j
		}
	}

	if b.InnerHTML == "" {
		return fmt.Sprintf("<!-- wp:%s%s /-->", name, suffix)
	}
	return fmt.Sprintf("<!-- wp:%s%s -->%s<!-- /wp:%s -->", name, suffix, b.InnerHTML, name)
}

// Serialized paragraph fragments the post-processor looks for. The dispatch
// fallback wraps unmapped-but-texty elements in a paragraph block; when that
// element's real content was itself a single block, the paragraph wrapper
// ends up directly abutting the inner block's delimiters.
const (
	paragraphOpenWrapped  = "<!-- wp:paragraph --><p><!--"
	paragraphCloseWrapped = "--></p><!-- /wp:paragraph -->"
)

// UnwrapParagraphs removes paragraph block wrappers that were incorrectly
// placed around another block's delimiters. Both rewrites are purely textual
// and keep the inner block's own markers.
func UnwrapParagraphs(out string) string {
	out = strings.ReplaceAll(out, paragraphOpenWrapped, "<!--")
	out = strings.ReplaceAll(out, paragraphCloseWrapped, "-->")
	return out
}
