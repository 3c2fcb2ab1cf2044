// cmd/credlens/coverage.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

const maxCoverageLinks = 5

// CoverageFinder looks up related coverage for the main claim via the
// Google News RSS feed. Keyless; any failure just yields no links.
type CoverageFinder struct {
	client *http.Client
	parser *gofeed.Parser
}

// NewCoverageFinder creates a related-coverage finder
func NewCoverageFinder() *CoverageFinder {
	return &CoverageFinder{
		client: &http.Client{Timeout: 10 * time.Second},
		parser: gofeed.NewParser(),
	}
}

// Find returns up to maxCoverageLinks articles covering the claim.
func (cf *CoverageFinder) Find(ctx context.Context, claim string) []SourceLink {
	feedURL := fmt.Sprintf(
		"https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en",
		url.QueryEscape(claim),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil
	}

	resp, err := cf.client.Do(req)
	if err != nil {
		Logger().Warning("%v", NewAdapterError("coverage lookup failed", err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		Logger().Warning("coverage lookup returned status %d", resp.StatusCode)
		return nil
	}

	feed, err := cf.parser.Parse(resp.Body)
	if err != nil {
		Logger().Warning("%v", NewAdapterError("coverage feed parse failed", err))
		return nil
	}

	var links []SourceLink
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}
		links = append(links, SourceLink{Title: item.Title, URL: item.Link})
		if len(links) >= maxCoverageLinks {
			break
		}
	}
	return links
}
