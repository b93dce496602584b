package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/tidwall/gjson"

	"blockpress/internal/config"
)

// HTTPUploader implements Uploader against an HTTP sideload endpoint:
// POST {endpoint} with {"url": sourceURL}, optional bearer token, JSON
// response carrying id and url.
type HTTPUploader struct {
	endpoint string
	token    string
	client   *http.Client
	logger   *slog.Logger
}

// NewHTTPUploader creates an uploader for the given endpoint. token may be
// empty; client defaults to http.DefaultClient.
func NewHTTPUploader(endpoint, token string, client *http.Client, logger *slog.Logger) *HTTPUploader {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPUploader{
		endpoint: endpoint,
		token:    token,
		client:   client,
		logger:   logger,
	}
}

// Sideload posts the source URL to the storage service and parses the
// returned descriptor.
func (u *HTTPUploader) Sideload(ctx context.Context, sourceURL string) (*Asset, error) {
	if len(sourceURL) > config.MaxSourceURLLength {
		return nil, fmt.Errorf("source URL exceeds %d bytes", config.MaxSourceURLLength)
	}

	payload, err := json.Marshal(map[string]string{"url": sourceURL})
	if err != nil {
		return nil, fmt.Errorf("encode sideload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build sideload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if u.token != "" {
		req.Header.Set("Authorization", "Bearer "+u.token)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sideload %s: %w", sourceURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read sideload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sideload %s: status %d", sourceURL, resp.StatusCode)
	}

	id := gjson.GetBytes(body, "id")
	storedURL := gjson.GetBytes(body, "url")
	if !storedURL.Exists() || storedURL.String() == "" {
		// Service accepted the request but stored nothing usable.
		u.logger.Debug("sideload returned empty descriptor", "source_url", sourceURL)
		return nil, nil
	}

	return &Asset{
		ID:  id.Int(),
		URL: storedURL.String(),
	}, nil
}
