// Package media talks to the remote media storage service that ingests a
// source image URL and returns a stored asset descriptor. The engine treats
// any failure from this service as "no image block produced"; retries and
// timeouts are the service's concern.
package media

import (
	"context"
)

// Asset is the descriptor returned by the storage service. The engine does
// not interpret ID beyond echoing it into the wp-image-{id} class and the
// block's id attribute.
type Asset struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// Uploader fetches and stores a source URL, yielding the stored asset.
type Uploader interface {
	// Sideload ingests sourceURL into the media store. A nil asset with a
	// nil error means the service had nothing usable for this URL.
	Sideload(ctx context.Context, sourceURL string) (*Asset, error)
}
