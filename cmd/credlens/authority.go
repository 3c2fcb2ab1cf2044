// cmd/credlens/authority.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// AuthorityClient queries a domain-authority API for url-type inputs.
// When available, the authority blends into the resolver's credibility
// score; otherwise it is simply skipped.
type AuthorityClient struct {
	apiKey string
	client *http.Client
}

// NewAuthorityClient creates the domain-authority adapter
func NewAuthorityClient(apiKey string) *AuthorityClient {
	return &AuthorityClient{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Score returns the domain's authority on a 0..1 scale.
func (ac *AuthorityClient) Score(ctx context.Context, domain string) AuthorityResult {
	if ac.apiKey == "" || domain == "" {
		return AuthorityResult{}
	}

	apiURL := fmt.Sprintf(
		"https://openpagerank.com/api/v1.0/getPageRank?domains[]=%s",
		url.QueryEscape(domain),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return AuthorityResult{}
	}
	req.Header.Set("API-OPR", ac.apiKey)

	resp, err := ac.client.Do(req)
	if err != nil {
		Logger().Warning("%v", NewAdapterError("domain authority lookup failed", err))
		return AuthorityResult{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		Logger().Warning("%v", NewAdapterError(fmt.Sprintf("domain authority returned %s", resp.Status), nil))
		return AuthorityResult{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return AuthorityResult{}
	}

	var parsed struct {
		Response []struct {
			PageRankDecimal float64 `json:"page_rank_decimal"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Response) == 0 {
		return AuthorityResult{}
	}

	// Page rank comes back on a 0..10 scale.
	return AuthorityResult{
		Authority: clampFloat(parsed.Response[0].PageRankDecimal/10, 0, 1),
		Available: true,
	}
}
