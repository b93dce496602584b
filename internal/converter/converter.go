// Package converter turns semi-structured HTML fragments into
// block-annotated markup: each top-level element of the input is rewritten
// into a typed block wrapped in delimiter comments.
package converter

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"blockpress/internal/blocks"
	"blockpress/internal/media"
)

// Options control per-instance conversion behavior. Set at construction and
// mutable via setters between runs.
type Options struct {
	// UploadMedia sends image sources to the media storage service instead
	// of referencing them in place.
	UploadMedia bool
	// ForceHTTPS rewrites a leading http:// on resolved image URLs.
	ForceHTTPS bool
	// AutoParagraph wraps bare text runs in paragraph tags before parsing.
	AutoParagraph bool
}

// Converter holds the mapping table, attribute allow-list, and options for
// conversion runs.
//
// A Converter must not be mutated concurrently with an in-flight Convert on
// the same instance. Callers needing concurrent conversions use independent
// instances; construction is cheap.
type Converter struct {
	opts      Options
	mappings  map[string]Mapping
	allowList map[string][]string
	uploader  media.Uploader
	logger    *slog.Logger

	// OnMappings, if set, may inspect and replace the mapping table at the
	// start of each run. It receives a copy; the converter's own table is
	// untouched.
	OnMappings func(map[string]Mapping) map[string]Mapping
	// OnAllowList is the allow-list counterpart of OnMappings.
	OnAllowList func(map[string][]string) map[string][]string
}

// New creates a converter with the default mapping table and allow-list.
// uploader may be nil when Options.UploadMedia is off.
func New(opts Options, uploader media.Uploader, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		opts:      opts,
		mappings:  defaultMappings(),
		allowList: defaultAllowList(),
		uploader:  uploader,
		logger:    logger,
	}
}

// Options returns the current options.
func (c *Converter) Options() Options { return c.opts }

// SetUploadMedia toggles media sideloading.
func (c *Converter) SetUploadMedia(v bool) { c.opts.UploadMedia = v }

// SetForceHTTPS toggles http→https rewriting of image URLs.
func (c *Converter) SetForceHTTPS(v bool) { c.opts.ForceHTTPS = v }

// SetAutoParagraph toggles the auto-paragraph normalizer.
func (c *Converter) SetAutoParagraph(v bool) { c.opts.AutoParagraph = v }

// SetMapping adds or replaces the mapping entry for tag.
func (c *Converter) SetMapping(tag string, m Mapping) {
	c.mappings[strings.ToLower(tag)] = m
}

// RemoveMapping deletes the mapping entry for tag; the tag falls back to the
// generic paragraph/html rules.
func (c *Converter) RemoveMapping(tag string) {
	delete(c.mappings, strings.ToLower(tag))
}

// Mappings returns a copy of the mapping table.
func (c *Converter) Mappings() map[string]Mapping {
	return maps.Clone(c.mappings)
}

// AllowAttrs adds attribute names to the allow-list for tag. class and id
// are implicitly allowed everywhere and never need to be listed.
func (c *Converter) AllowAttrs(tag string, attrs ...string) {
	tag = strings.ToLower(tag)
	for _, attr := range attrs {
		attr = strings.ToLower(attr)
		if !slices.Contains(c.allowList[tag], attr) {
			c.allowList[tag] = append(c.allowList[tag], attr)
		}
	}
}

// RemoveAllowedAttrs removes tag's allow-list entry entirely.
func (c *Converter) RemoveAllowedAttrs(tag string) {
	delete(c.allowList, strings.ToLower(tag))
}

// AllowList returns a copy of the per-tag allow-list.
func (c *Converter) AllowList() map[string][]string {
	return cloneAllowList(c.allowList)
}

// Convert loads raw HTML, converts each top-level element into a block, and
// renders the concatenated delimiter-comment output. If conversion produces
// nothing usable the original raw input is returned verbatim so content is
// never silently lost.
func (c *Converter) Convert(ctx context.Context, raw string) (string, error) {
	run := c.newRun()

	doc, err := run.load(raw)
	if err != nil {
		return "", err
	}

	out := run.convertBody(ctx, doc)
	if out == "" {
		return raw, nil
	}
	return blocks.UnwrapParagraphs(out), nil
}

// newRun snapshots the mapping table and allow-list for one conversion,
// giving the override hooks their chance to inspect or replace either.
func (c *Converter) newRun() *Run {
	mappings := maps.Clone(c.mappings)
	if c.OnMappings != nil {
		mappings = c.OnMappings(mappings)
	}
	allow := cloneAllowList(c.allowList)
	if c.OnAllowList != nil {
		allow = c.OnAllowList(allow)
	}
	return &Run{
		conv:     c,
		mappings: mappings,
		allow:    allow,
	}
}

func cloneAllowList(src map[string][]string) map[string][]string {
	out := make(map[string][]string, len(src))
	for tag, attrs := range src {
		out[tag] = slices.Clone(attrs)
	}
	return out
}
