// cmd/credlens/types.go
package main

import (
	"time"
)

// Verdict is the final categorical outcome of an analysis.
type Verdict string

const (
	VerdictReal       Verdict = "REAL"
	VerdictFake       Verdict = "FAKE"
	VerdictUnverified Verdict = "UNVERIFIED"
	VerdictError      Verdict = "ERROR"
)

// InputType identifies how the content reached the pipeline.
type InputType string

const (
	InputText InputType = "text"
	InputURL  InputType = "url"
	InputFile InputType = "file"
)

// AnalysisRequest is a single user submission. It is immutable once
// handed to the pipeline.
type AnalysisRequest struct {
	Content   string    `json:"content"`
	InputType InputType `json:"type"`
	FileName  string    `json:"fileName,omitempty"`
}

// PatternScore is the output of an individual heuristic scorer.
type PatternScore struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// CredibilityPatterns carries the citation/style check result with
// the ordered list of detected issues.
type CredibilityPatterns struct {
	Score     float64  `json:"score"`
	HasIssues bool     `json:"hasIssues"`
	Issues    []string `json:"issues"`
}

// ExtractedEntities holds the naive entity extraction output.
// Locations are always empty; no location heuristic is implemented.
type ExtractedEntities struct {
	Persons       []string `json:"persons"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// SourceMatch is a known outlet from the trust table.
type SourceMatch struct {
	Domain      string  `yaml:"domain" json:"domain"`
	DisplayName string  `yaml:"name" json:"displayName"`
	BaseTrust   float64 `yaml:"trust" json:"baseTrust"`
	Local       bool    `yaml:"local" json:"local"`
}

// SourceResolution is what the source resolver produces for a request.
type SourceResolution struct {
	CredibilityScore float64       `json:"credibilityScore"`
	Label            string        `json:"label"`
	CanonicalURL     string        `json:"canonicalUrl,omitempty"`
	RelatedSources   []SourceMatch `json:"relatedSources,omitempty"`
	Matched          bool          `json:"matched"`
}

// FactCheckEntry is one claim-review candidate, ranked by lexical
// relevance to the main claim.
type FactCheckEntry struct {
	Claim        string  `json:"claim"`
	Conclusion   string  `json:"conclusion"`
	SourceURL    string  `json:"sourceUrl,omitempty"`
	ReviewerName string  `json:"reviewerName,omitempty"`
	Relevance    float64 `json:"relevance"`
}

// SourceLink is a related-coverage link attached to the result.
type SourceLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// EngineVerdict is one remote engine's opinion, normalized.
type EngineVerdict struct {
	Verdict    Verdict `json:"verdict"`
	Confidence float64 `json:"confidence"` // 0..1
	Engine     string  `json:"engine"`
	Available  bool    `json:"available"`
}

// EnsembleVote tallies up/down votes from the remote engines.
type EnsembleVote struct {
	Real    int             `json:"real"`
	Fake    int             `json:"fake"`
	Engines []EngineVerdict `json:"engines"`
}

// RemoteSignals bundles everything the optional adapters produced.
// Zero values mean the corresponding adapter was skipped or failed.
type RemoteSignals struct {
	ZeroShot   EngineVerdict
	Completion EngineVerdict
	Sentiment  RemoteSentiment
	Entities   ExtractedEntities
	Similarity float64
	Grammar    GrammarResult
	Authority  AuthorityResult
}

// RemoteSentiment is the transformer sentiment adapter output.
type RemoteSentiment struct {
	Label     string  `json:"label"`
	Score     float64 `json:"score"`
	Available bool    `json:"available"`
}

// GrammarResult is the grammar-check adapter output.
type GrammarResult struct {
	ErrorCount int  `json:"errorCount"`
	Available  bool `json:"available"`
}

// AuthorityResult is the domain-authority adapter output.
type AuthorityResult struct {
	Authority float64 `json:"authority"` // 0..1
	Available bool    `json:"available"`
}

// AnalysisResult is the terminal, immutable output of the pipeline.
type AnalysisResult struct {
	ID                string              `json:"id"`
	Verdict           Verdict             `json:"verdict"`
	ConfidenceScore   int                 `json:"confidenceScore"` // always 0..99
	Explanation       string              `json:"explanation"`
	SourceCredibility float64             `json:"sourceCredibility"`
	ContentQuality    float64             `json:"contentQuality"`
	Sentiment         PatternScore        `json:"sentiment"`
	Clickbait         PatternScore        `json:"clickbait"`
	Patterns          CredibilityPatterns `json:"patterns"`
	Entities          ExtractedEntities   `json:"entities"`
	FactChecks        []FactCheckEntry    `json:"factChecks"`
	SourceLinks       []SourceLink        `json:"sourceLinks"`
	InputType         InputType           `json:"inputType"`
	FileName          string              `json:"fileName,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
}
