// cmd/credlens/inference.go
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Character budgets per endpoint.
const (
	classifyBudget   = 1500
	sentimentBudget  = 512
	nerBudget        = 1500
	similarityBudget = 512
)

const inferenceBaseURL = "https://api-inference.huggingface.co/models"

// Zero-shot candidate labels mapped onto verdicts.
var zeroShotLabels = []string{"reliable news", "fake news", "opinion piece"}

// InferenceClient wraps the hosted-inference endpoints. All methods
// follow the same contract: no key means an immediate empty result
// with no call attempted, and any failure is logged and converted to
// a zero-filled result. Calls are rate limited to stay inside the
// free-tier budget.
type InferenceClient struct {
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewInferenceClient creates the hosted-inference adapter
func NewInferenceClient(apiKey string) *InferenceClient {
	return &InferenceClient{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second), 4),
	}
}

// Configured reports whether the adapter has a key.
func (ic *InferenceClient) Configured() bool {
	return ic.apiKey != ""
}

// ClassifyZeroShot labels the text REAL or FAKE via zero-shot
// classification. Unavailable or failed calls return a zero verdict.
func (ic *InferenceClient) ClassifyZeroShot(ctx context.Context, text string) EngineVerdict {
	out := EngineVerdict{Verdict: VerdictUnverified, Engine: "zero-shot"}
	if !ic.Configured() {
		return out
	}

	payload := map[string]interface{}{
		"inputs": truncateText(text, classifyBudget),
		"parameters": map[string]interface{}{
			"candidate_labels": zeroShotLabels,
		},
	}

	var result struct {
		Labels []string  `json:"labels"`
		Scores []float64 `json:"scores"`
	}
	if err := ic.post(ctx, "facebook/bart-large-mnli", payload, &result); err != nil {
		Logger().Warning("%v", NewAdapterError("zero-shot classification failed", err))
		return out
	}
	if len(result.Labels) == 0 || len(result.Scores) == 0 {
		return out
	}

	out.Available = true
	out.Confidence = result.Scores[0]
	switch result.Labels[0] {
	case "reliable news":
		out.Verdict = VerdictReal
	case "fake news":
		out.Verdict = VerdictFake
	default:
		out.Verdict = VerdictUnverified
	}
	return out
}

// AnalyzeSentiment runs the transformer sentiment model.
func (ic *InferenceClient) AnalyzeSentiment(ctx context.Context, text string) RemoteSentiment {
	if !ic.Configured() {
		return RemoteSentiment{}
	}

	payload := map[string]interface{}{
		"inputs": truncateText(text, sentimentBudget),
	}

	// The API nests label/score pairs one level deep.
	var result [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := ic.post(ctx, "distilbert-base-uncased-finetuned-sst-2-english", payload, &result); err != nil {
		Logger().Warning("%v", NewAdapterError("remote sentiment failed", err))
		return RemoteSentiment{}
	}
	if len(result) == 0 || len(result[0]) == 0 {
		return RemoteSentiment{}
	}

	best := result[0][0]
	for _, cand := range result[0][1:] {
		if cand.Score > best.Score {
			best = cand
		}
	}
	return RemoteSentiment{Label: best.Label, Score: best.Score, Available: true}
}

// ExtractEntities runs the hosted NER model and merges the output into
// the naive extraction shape.
func (ic *InferenceClient) ExtractEntities(ctx context.Context, text string) ExtractedEntities {
	entities := ExtractedEntities{Persons: []string{}, Organizations: []string{}, Locations: []string{}}
	if !ic.Configured() {
		return entities
	}

	payload := map[string]interface{}{
		"inputs": truncateText(text, nerBudget),
	}

	var result []struct {
		EntityGroup string `json:"entity_group"`
		Word        string `json:"word"`
	}
	if err := ic.post(ctx, "dslim/bert-base-NER", payload, &result); err != nil {
		Logger().Warning("%v", NewAdapterError("remote NER failed", err))
		return entities
	}

	seen := make(map[string]bool)
	for _, e := range result {
		word := strings.TrimSpace(e.Word)
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		switch e.EntityGroup {
		case "PER":
			entities.Persons = append(entities.Persons, word)
		case "ORG":
			entities.Organizations = append(entities.Organizations, word)
		case "LOC":
			entities.Locations = append(entities.Locations, word)
		}
	}
	return entities
}

// SemanticSimilarity scores how close the claim sits to the candidate
// sentences. Returns 0 when unavailable.
func (ic *InferenceClient) SemanticSimilarity(ctx context.Context, source string, candidates []string) float64 {
	if !ic.Configured() || len(candidates) == 0 {
		return 0
	}

	trimmed := make([]string, 0, len(candidates))
	for _, c := range candidates {
		trimmed = append(trimmed, truncateText(c, similarityBudget))
	}

	payload := map[string]interface{}{
		"inputs": map[string]interface{}{
			"source_sentence": truncateText(source, similarityBudget),
			"sentences":       trimmed,
		},
	}

	var scores []float64
	if err := ic.post(ctx, "sentence-transformers/all-MiniLM-L6-v2", payload, &scores); err != nil {
		Logger().Warning("%v", NewAdapterError("semantic similarity failed", err))
		return 0
	}

	best := 0.0
	for _, s := range scores {
		if s > best {
			best = s
		}
	}
	return clampFloat(best, 0, 1)
}

func (ic *InferenceClient) post(ctx context.Context, model string, payload interface{}, out interface{}) error {
	if err := ic.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/%s", inferenceBaseURL, model), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+ic.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ic.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
