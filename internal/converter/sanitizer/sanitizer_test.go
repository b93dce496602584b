package sanitizer

import (
	"strings"
	"testing"
)

func TestSanitizeStripsScripts(t *testing.T) {
	s := New(nil)
	got := s.Sanitize(`<p>hello</p><script>alert(1)</script>`)
	if strings.Contains(got, "script") {
		t.Errorf("Sanitize() kept a script tag: %q", got)
	}
	if !strings.Contains(got, "<p>hello</p>") {
		t.Errorf("Sanitize() dropped safe content: %q", got)
	}
}

func TestSanitizeKeepsClassAndIDEverywhere(t *testing.T) {
	s := New(nil)
	got := s.Sanitize(`<p class="lead" id="intro" onclick="x()">hi</p>`)
	if !strings.Contains(got, `class="lead"`) || !strings.Contains(got, `id="intro"`) {
		t.Errorf("Sanitize() dropped class/id: %q", got)
	}
	if strings.Contains(got, "onclick") {
		t.Errorf("Sanitize() kept an event handler: %q", got)
	}
}

func TestSanitizeMergesAllowList(t *testing.T) {
	s := New(map[string][]string{
		"img": {"src", "alt", "title"},
	})
	got := s.Sanitize(`<img src="https://example.com/a.png" alt="a" title="t" data-x="1">`)
	for _, want := range []string{`src=`, `alt="a"`, `title="t"`} {
		if !strings.Contains(got, want) {
			t.Errorf("Sanitize() missing %s in %q", want, got)
		}
	}
	if strings.Contains(got, "data-x") {
		t.Errorf("Sanitize() kept a disallowed attribute: %q", got)
	}
}
