package converter

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"blockpress/internal/blocks"
)

// TransformFunc builds a block from one DOM element. Implementations may
// mutate the element (inject a class, strip attributes) before capturing its
// markup; mutation must happen before the capture. Returning a nil block
// with a nil error means this node produces nothing.
type TransformFunc func(ctx context.Context, run *Run, s *goquery.Selection) (*blocks.Block, error)

// Mapping is a tagged variant: a tag maps to either a fixed block-type name
// or a transform function. Exactly one of the two fields is set.
type Mapping struct {
	BlockName string
	Transform TransformFunc
}

// FixedMapping maps a tag to a constant block type; the block's inner markup
// is the element's cleaned outer markup.
func FixedMapping(blockName string) Mapping {
	return Mapping{BlockName: blockName}
}

// TransformMapping maps a tag to a transform function.
func TransformMapping(fn TransformFunc) Mapping {
	return Mapping{Transform: fn}
}

func defaultMappings() map[string]Mapping {
	return map[string]Mapping{
		"p":          FixedMapping(blocks.Namespace + blocks.Paragraph),
		"h1":         TransformMapping(transformHeading),
		"h2":         TransformMapping(transformHeading),
		"h3":         TransformMapping(transformHeading),
		"h4":         TransformMapping(transformHeading),
		"h5":         TransformMapping(transformHeading),
		"h6":         TransformMapping(transformHeading),
		"blockquote": TransformMapping(transformQuote),
		"ul":         TransformMapping(transformList),
		"ol":         TransformMapping(transformList),
		"table":      TransformMapping(transformTable),
		"hr":         TransformMapping(transformSeparator),
		"code":       TransformMapping(transformCode),
		"pre":        TransformMapping(transformCode),
		"img":        TransformMapping(transformImage),
	}
}

// defaultAllowList is the per-tag attribute allow-list supplied to the
// sanitizer and enforced again by the attribute cleaner. class and id are
// implicit and never listed.
func defaultAllowList() map[string][]string {
	return map[string][]string{
		"a":          {"href", "title", "target", "rel"},
		"img":        {"src", "alt", "title", "width", "height", "srcset", "sizes", "loading"},
		"ol":         {"start", "reversed", "type"},
		"td":         {"colspan", "rowspan"},
		"th":         {"colspan", "rowspan", "scope"},
		"blockquote": {"cite"},
		"q":          {"cite"},
	}
}
