package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"blockpress/internal/config"
)

// ParseJSON decodes JSON from the request body into the given destination.
// The body is capped slightly above the conversion input limit so oversized
// payloads get a proper 413 instead of being buffered.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxInputBytes+64<<10)

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
