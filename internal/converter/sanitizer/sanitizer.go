// Package sanitizer builds the HTML sanitization policy applied before
// parsing. The engine supplies its per-tag attribute allow-list; bluemonday
// does the actual rewriting.
package sanitizer

import (
	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer strips tags and attributes not covered by the merged policy.
//
// Thread-safe for concurrent use once built; the policy must not be mutated
// after construction.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// New creates a sanitizer from the baseline safe-published-content policy
// merged with the engine's allow-list. The baseline (bluemonday's UGC
// policy) governs tags the allow-list does not mention; allow-list entries
// are merged in additively. class and id are allowed on every element and
// never need to be listed.
func New(allowList map[string][]string) *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class", "id").Globally()

	for tag, attrs := range allowList {
		if len(attrs) == 0 {
			policy.AllowElements(tag)
			continue
		}
		policy.AllowAttrs(attrs...).OnElements(tag)
	}

	return &HTMLSanitizer{policy: policy}
}

// Sanitize rewrites html so it contains only allowed tags and attributes.
func (s *HTMLSanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
