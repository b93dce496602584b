package config

const (
	// MaxInputBytes is the largest HTML payload the convert endpoint
	// accepts. Conversion is in-memory and single-pass; anything larger
	// than this is almost certainly not editor content.
	MaxInputBytes = 2 << 20

	// MaxSourceURLLength is the maximum length for an image source URL
	// sent to the media storage service.
	MaxSourceURLLength = 2048
)
