package converter

import (
	"context"
	"fmt"
	stdhtml "html"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"blockpress/internal/blocks"
	"blockpress/internal/media"
)

func transformHeading(_ context.Context, r *Run, s *goquery.Selection) (*blocks.Block, error) {
	tag := goquery.NodeName(s)
	level, err := strconv.Atoi(strings.TrimLeft(strings.ToLower(tag), "h"))
	if err != nil {
		return nil, fmt.Errorf("heading tag %q: %w", tag, err)
	}

	b := &blocks.Block{Name: blocks.Heading}
	b.Attributes.Set("level", level)
	b.InnerHTML = r.CleanMarkup(s)
	return b, nil
}

func transformQuote(_ context.Context, r *Run, s *goquery.Selection) (*blocks.Block, error) {
	// Mutate first, capture second: the injected class must appear in the
	// rendered markup.
	s.SetAttr("class", "wp-block-quote")
	return &blocks.Block{
		Name:      blocks.Quote,
		InnerHTML: r.CleanMarkup(s),
	}, nil
}

// transformList handles both ul and ol. Every descendant li becomes its own
// list-item block; their serialized forms are concatenated inside a
// synthetic list wrapper.
func transformList(_ context.Context, r *Run, s *goquery.Selection) (*blocks.Block, error) {
	var inner strings.Builder
	s.Find("li").Each(func(_ int, li *goquery.Selection) {
		inner.WriteString(blocks.Serialize(&blocks.Block{
			Name:      blocks.ListItem,
			InnerHTML: r.CleanMarkup(li),
		}))
	})

	b := &blocks.Block{Name: blocks.List}
	wrapper := "ul"
	if strings.EqualFold(goquery.NodeName(s), "ol") {
		wrapper = "ol"
		b.Attributes.Set("ordered", true)
	}
	b.InnerHTML = "<" + wrapper + ">" + inner.String() + "</" + wrapper + ">"
	return b, nil
}

func transformTable(_ context.Context, r *Run, s *goquery.Selection) (*blocks.Block, error) {
	return &blocks.Block{
		Name:      blocks.Table,
		InnerHTML: `<figure class="wp-block-table">` + r.CleanMarkup(s) + `</figure>`,
	}, nil
}

func transformSeparator(_ context.Context, _ *Run, _ *goquery.Selection) (*blocks.Block, error) {
	return &blocks.Block{
		Name:      blocks.Separator,
		InnerHTML: `<hr class="wp-block-separator"/>`,
	}, nil
}

func transformCode(_ context.Context, r *Run, s *goquery.Selection) (*blocks.Block, error) {
	content := r.CleanMarkup(s)

	b := &blocks.Block{Name: blocks.Code}
	b.Attributes.Set("content", content)
	b.InnerHTML = `<pre class="wp-block-code">` + content + `</pre>`
	return b, nil
}

func transformImage(ctx context.Context, r *Run, s *goquery.Selection) (*blocks.Block, error) {
	src, _ := s.Attr("src")
	if src == "" {
		return nil, nil
	}

	alt := strings.TrimSpace(s.AttrOr("alt", ""))
	title := s.AttrOr("title", "")
	if alt == "" {
		alt = strings.TrimSpace(title)
	}

	asset := &media.Asset{ID: 1, URL: src}
	if r.Options().UploadMedia {
		var err error
		asset, err = r.Sideload(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("sideload image: %w", err)
		}
		if asset == nil || asset.URL == "" {
			return nil, nil
		}
	}

	imageURL := asset.URL
	if r.Options().ForceHTTPS {
		imageURL = forceHTTPS(imageURL)
	}

	b := &blocks.Block{Name: blocks.Image}
	b.Attributes.Set("id", asset.ID)
	b.Attributes.Set("url", imageURL)
	b.Attributes.Set("alt", alt)
	b.Attributes.Set("title", title)
	b.Attributes.Set("sizeSlug", "full")
	b.Attributes.Set("linkDestination", "none")
	b.InnerHTML = fmt.Sprintf(
		`<figure class="wp-block-image"><img src="%s" alt="%s" class="wp-image-%d" /></figure>`,
		escapeURL(imageURL), stdhtml.EscapeString(alt), asset.ID,
	)
	return b, nil
}

// forceHTTPS rewrites a leading http:// scheme, case-insensitive on the
// scheme token only.
func forceHTTPS(u string) string {
	if len(u) >= 7 && strings.EqualFold(u[:7], "http://") {
		return "https://" + u[7:]
	}
	return u
}

// escapeURL normalizes a URL through net/url and entity-escapes it for
// attribute embedding. Unparseable URLs are entity-escaped as-is.
func escapeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return stdhtml.EscapeString(raw)
	}
	return stdhtml.EscapeString(u.String())
}
