// cmd/credlens/fetcher.go
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fetcher retrieves pages for url-type requests and hands them to the
// normalizer. Failures surface as FetchError, which the pipeline maps
// to verdict=ERROR.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a new page fetcher
func NewFetcher(userAgent string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: userAgent,
	}
}

// FetchText downloads the URL and returns its normalized plain text.
func (f *Fetcher) FetchText(ctx context.Context, rawURL string) (string, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", NewFetchError("invalid URL", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", NewFetchError("could not reach the URL", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Raw HTTP status goes into the user-facing message.
		return "", NewFetchError(fmt.Sprintf("URL returned HTTP %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", NewFetchError("failed to read response body", err)
	}

	text := NormalizeHTML(string(body))
	Logger().Debug("Fetched %s: %d bytes, %d chars of text", rawURL, len(body), len(text))
	return text, nil
}
