package blocks

import (
	"testing"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name  string
		block *Block
		want  string
	}{
		{
			name:  "nil block renders nothing",
			block: nil,
			want:  "",
		},
		{
			name:  "empty attributes and empty inner markup self-close",
			block: &Block{Name: "separator"},
			want:  "<!-- wp:separator /-->",
		},
		{
			name: "non-empty inner markup uses the two-comment form",
			block: &Block{
				Name:      "separator",
				InnerHTML: "<hr/>",
			},
			want: "<!-- wp:separator --><hr/><!-- /wp:separator -->",
		},
		{
			name: "namespaced block name serializes bare in both delimiters",
			block: &Block{
				Name:      "core/paragraph",
				InnerHTML: "<p>hello</p>",
			},
			want: "<!-- wp:paragraph --><p>hello</p><!-- /wp:paragraph -->",
		},
		{
			name: "attributes join with a single space",
			block: &Block{
				Name:      "heading",
				InnerHTML: "<h2>Title</h2>",
				Attributes: func() Attributes {
					var a Attributes
					a.Set("level", 2)
					return a
				}(),
			},
			want: `<!-- wp:heading {"level":2} --><h2>Title</h2><!-- /wp:heading -->`,
		},
		{
			name: "self-closing form keeps the attribute suffix",
			block: &Block{
				Name: "image",
				Attributes: func() Attributes {
					var a Attributes
					a.Set("id", 7)
					return a
				}(),
			},
			want: `<!-- wp:image {"id":7} /-->`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Serialize(tt.block); got != tt.want {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttributesOrder(t *testing.T) {
	var a Attributes
	a.Set("id", 12)
	a.Set("url", "https://example.com/cat.jpg")
	a.Set("alt", "a cat")
	a.Set("sizeSlug", "full")

	got, err := a.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	want := `{"id":12,"url":"https://example.com/cat.jpg","alt":"a cat","sizeSlug":"full"}`
	if got != want {
		t.Errorf("JSON() = %q, want %q", got, want)
	}
}

func TestAttributesSetReplacesInPlace(t *testing.T) {
	var a Attributes
	a.Set("ordered", false)
	a.Set("start", 3)
	a.Set("ordered", true)

	got, err := a.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	want := `{"ordered":true,"start":3}`
	if got != want {
		t.Errorf("JSON() = %q, want %q", got, want)
	}
}

func TestUnwrapParagraphs(t *testing.T) {
	in := `<!-- wp:paragraph --><p><!-- wp:separator --><hr class="wp-block-separator"/><!-- /wp:separator --></p><!-- /wp:paragraph -->`
	want := `<!-- wp:separator --><hr class="wp-block-separator"/><!-- /wp:separator -->`
	if got := UnwrapParagraphs(in); got != want {
		t.Errorf("UnwrapParagraphs() = %q, want %q", got, want)
	}
}

func TestUnwrapParagraphsLeavesRealParagraphsAlone(t *testing.T) {
	in := `<!-- wp:paragraph --><p>plain text</p><!-- /wp:paragraph -->`
	if got := UnwrapParagraphs(in); got != in {
		t.Errorf("UnwrapParagraphs() = %q, want unchanged", got)
	}
}
