package autop

import (
	"testing"
)

func TestAutoParagraph(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single bare run",
			in:   "hello world",
			want: "<p>hello world</p>",
		},
		{
			name: "blank line delimits paragraphs",
			in:   "first\n\nsecond",
			want: "<p>first</p>\n<p>second</p>",
		},
		{
			name: "extra blank lines collapse",
			in:   "first\n\n\n\nsecond",
			want: "<p>first</p>\n<p>second</p>",
		},
		{
			name: "single newline becomes a line break",
			in:   "line one\nline two",
			want: "<p>line one<br />\nline two</p>",
		},
		{
			name: "existing block-level tag left alone",
			in:   "<h2>Title</h2>\n\nbody text",
			want: "<h2>Title</h2>\n<p>body text</p>",
		},
		{
			name: "inline tag still gets wrapped",
			in:   "<em>emphasis</em> only",
			want: "<p><em>emphasis</em> only</p>",
		},
		{
			name: "windows line endings",
			in:   "first\r\n\r\nsecond",
			want: "<p>first</p>\n<p>second</p>",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AutoParagraph(tt.in); got != tt.want {
				t.Errorf("AutoParagraph(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
