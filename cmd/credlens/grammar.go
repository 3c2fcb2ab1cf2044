// cmd/credlens/grammar.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const grammarBudget = 1500

// GrammarChecker counts grammar issues via an external check API; the
// count feeds the content-quality score. Key absence or failure yields
// an unavailable result.
type GrammarChecker struct {
	apiKey string
	client *http.Client
}

// NewGrammarChecker creates the grammar-check adapter
func NewGrammarChecker(apiKey string) *GrammarChecker {
	return &GrammarChecker{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Check returns the number of grammar issues detected in the text.
func (gc *GrammarChecker) Check(ctx context.Context, text string) GrammarResult {
	if gc.apiKey == "" {
		return GrammarResult{}
	}

	form := url.Values{}
	form.Set("text", truncateText(text, grammarBudget))
	form.Set("language", "en-US")
	form.Set("apiKey", gc.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.languagetoolplus.com/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return GrammarResult{}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := gc.client.Do(req)
	if err != nil {
		Logger().Warning("%v", NewAdapterError("grammar check failed", err))
		return GrammarResult{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		Logger().Warning("%v", NewAdapterError(fmt.Sprintf("grammar check returned %s", resp.Status), nil))
		return GrammarResult{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return GrammarResult{}
	}

	var parsed struct {
		Matches []json.RawMessage `json:"matches"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		Logger().Warning("%v", NewAdapterError("grammar response parse failed", err))
		return GrammarResult{}
	}

	return GrammarResult{ErrorCount: len(parsed.Matches), Available: true}
}
