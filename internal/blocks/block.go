// Package blocks defines the block record produced by the conversion engine
// and its delimiter-comment wire format.
package blocks

import (
	"strings"

	"github.com/tidwall/sjson"
)

// Block type names emitted by the engine. Names may also be given in
// namespaced form ("core/paragraph"); Serialize strips the namespace.
const (
	Paragraph = "paragraph"
	HTML      = "html"
	Heading   = "heading"
	Quote     = "quote"
	List      = "list"
	ListItem  = "list-item"
	Table     = "table"
	Separator = "separator"
	Code      = "code"
	Image     = "image"
)

// Block is one unit of structured content: a type name, an optional JSON
// attribute payload, and optional inner markup. Blocks are transient - they
// are built by a transform function and serialized immediately.
type Block struct {
	Name       string
	Attributes Attributes
	InnerHTML  string
}

// Attributes is an insertion-ordered string-keyed map. The wire format
// requires attribute JSON to preserve the order in which the transform
// set the keys, which map[string]any cannot guarantee.
type Attributes struct {
	pairs []attrPair
}

type attrPair struct {
	key   string
	value any
}

// Set appends a key/value pair, replacing the value in place if the key was
// already set. Returns the receiver for chaining.
func (a *Attributes) Set(key string, value any) *Attributes {
	for i := range a.pairs {
		if a.pairs[i].key == key {
			a.pairs[i].value = value
			return a
		}
	}
	a.pairs = append(a.pairs, attrPair{key: key, value: value})
	return a
}

// Get returns the value for key and whether it was set.
func (a *Attributes) Get(key string) (any, bool) {
	for i := range a.pairs {
		if a.pairs[i].key == key {
			return a.pairs[i].value, true
		}
	}
	return nil, false
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.pairs)
}

// JSON encodes the attributes as a JSON object with keys in insertion order.
// The object is built incrementally with sjson so ordering never depends on
// map iteration.
func (a *Attributes) JSON() (string, error) {
	out := "{}"
	var err error
	for _, p := range a.pairs {
		out, err = sjson.Set(out, escapePath(p.key), p.value)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// escapePath neutralizes sjson path syntax so attribute keys are always
// treated as literal object keys.
func escapePath(key string) string {
	if !strings.ContainsAny(key, `.*?|\`) {
		return key
	}
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
