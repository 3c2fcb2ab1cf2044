// cmd/credlens/factcheck.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	mainClaimBudget       = 150
	minResultsBeforeNews  = 2
	placeholderConclusion = "Manual verification required - no automated fact check matched this claim"
)

var claimTokenPattern = regexp.MustCompile(`[^\pL\pN]+`)

var claimStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"to": true, "of": true, "in": true, "on": true, "for": true,
	"with": true, "is": true, "are": true, "was": true, "were": true,
	"this": true, "that": true, "has": true, "have": true, "had": true,
	"its": true, "his": true, "her": true, "from": true, "been": true,
}

// FactCheckLookup queries the claim-search and news-search APIs and
// ranks results by lexical overlap with the main claim. Both clients
// are optional; failures degrade to whatever results were obtained.
type FactCheckLookup struct {
	client     *http.Client
	factAPIKey string
	newsAPIKey string
}

// NewFactCheckLookup creates the lookup with its (possibly empty) keys.
func NewFactCheckLookup(factAPIKey, newsAPIKey string) *FactCheckLookup {
	return &FactCheckLookup{
		client:     &http.Client{Timeout: 10 * time.Second},
		factAPIKey: factAPIKey,
		newsAPIKey: newsAPIKey,
	}
}

// Lookup returns fact-check entries sorted by relevance descending.
// The list is never empty: a placeholder entry is appended when every
// external lookup fails or returns nothing.
func (fl *FactCheckLookup) Lookup(ctx context.Context, content string, claims []string) []FactCheckEntry {
	mainClaim := MainClaim(content, claims)

	var entries []FactCheckEntry

	if fl.factAPIKey != "" {
		results, err := fl.searchClaims(ctx, mainClaim)
		if err != nil {
			Logger().Warning("%v", NewAdapterError("claim search failed", err))
		} else {
			entries = append(entries, results...)
		}
	}

	if len(entries) < minResultsBeforeNews && fl.newsAPIKey != "" {
		results, err := fl.searchNews(ctx, mainClaim)
		if err != nil {
			Logger().Warning("%v", NewAdapterError("news search failed", err))
		} else {
			entries = append(entries, results...)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Relevance > entries[j].Relevance
	})

	if len(entries) == 0 {
		entries = append(entries, FactCheckEntry{
			Claim:      mainClaim,
			Conclusion: placeholderConclusion,
			Relevance:  0,
		})
	}

	return entries
}

// MainClaim picks the claim to verify: the first extracted claim, or
// the leading slice of the content.
func MainClaim(content string, claims []string) string {
	if len(claims) > 0 && strings.TrimSpace(claims[0]) != "" {
		return strings.TrimSpace(claims[0])
	}
	return strings.TrimSpace(truncateText(content, mainClaimBudget))
}

// ComputeRelevance is the token-overlap similarity between two texts:
// |intersection| / max(|A|, |B|) over their token sets. Returns a
// value in [0,1]; 1 for identical token sets, 0 for disjoint sets.
// Two empty token sets (stopword-only input) count as unrelated, not
// identical: a stopword match carries no evidence either way.
func ComputeRelevance(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	larger := len(setA)
	if len(setB) > larger {
		larger = len(setB)
	}
	if larger == 0 {
		return 0
	}

	common := 0
	for token := range setA {
		if setB[token] {
			common++
		}
	}
	return float64(common) / float64(larger)
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, raw := range claimTokenPattern.Split(strings.ToLower(text), -1) {
		if len(raw) < 3 || claimStopwords[raw] {
			continue
		}
		set[raw] = true
	}
	return set
}

// googleFactCheckResponse is the claims:search response shape.
type googleFactCheckResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		ClaimReview []struct {
			Publisher struct {
				Name string `json:"name"`
				Site string `json:"site"`
			} `json:"publisher"`
			URL           string `json:"url"`
			TextualRating string `json:"textualRating"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// searchClaims queries the Google Fact Check Tools claim-search API.
func (fl *FactCheckLookup) searchClaims(ctx context.Context, claim string) ([]FactCheckEntry, error) {
	apiURL := fmt.Sprintf(
		"https://factchecktools.googleapis.com/v1alpha1/claims:search?query=%s&key=%s",
		url.QueryEscape(claim),
		fl.factAPIKey,
	)

	var parsed googleFactCheckResponse
	if err := fl.getJSON(ctx, apiURL, &parsed); err != nil {
		return nil, err
	}

	var entries []FactCheckEntry
	for _, c := range parsed.Claims {
		if len(c.ClaimReview) == 0 {
			continue
		}
		review := c.ClaimReview[0]
		entries = append(entries, FactCheckEntry{
			Claim:        c.Text,
			Conclusion:   review.TextualRating,
			SourceURL:    review.URL,
			ReviewerName: review.Publisher.Name,
			Relevance:    ComputeRelevance(claim, c.Text),
		})
	}
	return entries, nil
}

// newsAPIResponse is the everything-endpoint response shape.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// searchNews queries the news-search API for coverage of the claim.
func (fl *FactCheckLookup) searchNews(ctx context.Context, claim string) ([]FactCheckEntry, error) {
	apiURL := fmt.Sprintf(
		"https://newsapi.org/v2/everything?q=%s&pageSize=5&apiKey=%s",
		url.QueryEscape(claim),
		fl.newsAPIKey,
	)

	var parsed newsAPIResponse
	if err := fl.getJSON(ctx, apiURL, &parsed); err != nil {
		return nil, err
	}

	var entries []FactCheckEntry
	for _, article := range parsed.Articles {
		entries = append(entries, FactCheckEntry{
			Claim:        article.Title,
			Conclusion:   article.Description,
			SourceURL:    article.URL,
			ReviewerName: article.Source.Name,
			Relevance:    ComputeRelevance(claim, article.Title),
		})
	}
	return entries, nil
}

func (fl *FactCheckLookup) getJSON(ctx context.Context, apiURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return err
	}

	resp, err := fl.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
