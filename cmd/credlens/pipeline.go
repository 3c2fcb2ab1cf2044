// cmd/credlens/pipeline.go
package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Pipeline wires the scorers, resolver and optional adapters into one
// analysis flow. It holds no request state and is safe for concurrent
// use.
type Pipeline struct {
	cfg        *Config
	emotions   *EmotionLexicon
	clickbait  *ClickbaitLexicon
	resolver   *SourceResolver
	fetcher    *Fetcher
	factChecks *FactCheckLookup
	coverage   *CoverageFinder
	inference  *InferenceClient
	completion *CompletionEngine
	grammar    *GrammarChecker
	authority  *AuthorityClient
	progress   func(string)
}

// NewPipeline builds the pipeline from configuration. Lexicons and the
// outlet table are loaded once here; scorers receive them as data.
func NewPipeline(cfg *Config) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		emotions:   DefaultEmotionLexicon(),
		clickbait:  DefaultClickbaitLexicon(),
		resolver:   NewSourceResolver(cfg.SourcesPath),
		fetcher:    NewFetcher(cfg.UserAgentString),
		factChecks: NewFactCheckLookup(cfg.GoogleFactCheckAPIKey, cfg.NewsAPIKey),
		coverage:   NewCoverageFinder(),
		inference:  NewInferenceClient(cfg.HFAPIKey),
		completion: NewCompletionEngine(cfg.OpenAIAPIKey),
		grammar:    NewGrammarChecker(cfg.GrammarAPIKey),
		authority:  NewAuthorityClient(cfg.DomainAuthorityAPIKey),
		progress:   func(string) {},
	}
}

// SetProgress installs a progress callback (websocket broadcast).
func (p *Pipeline) SetProgress(fn func(string)) {
	if fn != nil {
		p.progress = fn
	}
}

// Analyze runs the full pipeline for one request. Input and fetch
// failures come back as verdict=ERROR results, not errors; only
// unexpected fusion failures return an error.
func (p *Pipeline) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	started := time.Now()

	text, errResult := p.prepare(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	p.progress("Scoring content patterns")

	sentiment := ScoreSentiment(p.emotions, text)
	clickbait := ScoreClickbait(p.clickbait, text)
	patterns := ScoreCredibilityPatterns(text)
	entities := ExtractEntities(text)
	source := p.resolver.Resolve(req.Content, req.InputType)
	claims := ExtractClaims(text)
	mainClaim := MainClaim(text, claims)

	p.progress("Gathering external signals")
	remote, factChecks, links := p.gatherRemote(ctx, text, mainClaim, claims, source)

	// Remote NER augments the naive extraction when it ran.
	if len(remote.Entities.Persons)+len(remote.Entities.Organizations)+len(remote.Entities.Locations) > 0 {
		entities = remote.Entities
	}

	quality := ScoreContentQuality(text, patterns, entities, remote.Grammar)

	p.progress("Fusing verdict")

	in := FusionInput{
		ContentLength: len(text),
		Source:        source,
		Sentiment:     sentiment,
		Clickbait:     clickbait,
		Patterns:      patterns,
		Entities:      entities,
		FactChecks:    factChecks,
		Remote:        remote,
		EnsembleRan:   p.cfg.HasEnsembleKeys(),
		RawQuality:    quality,
	}
	fused := FuseVerdict(in)

	result := &AnalysisResult{
		ID:                uuid.NewString(),
		Verdict:           fused.Verdict,
		ConfidenceScore:   fused.ConfidenceScore,
		Explanation:       fused.Explanation,
		SourceCredibility: fused.SourceCredibility,
		ContentQuality:    fused.ContentQuality,
		Sentiment:         sentiment,
		Clickbait:         clickbait,
		Patterns:          patterns,
		Entities:          entities,
		FactChecks:        factChecks,
		SourceLinks:       links,
		InputType:         req.InputType,
		FileName:          req.FileName,
		CreatedAt:         time.Now().UTC(),
	}

	Logger().Info("Analysis %s: verdict=%s confidence=%d in %v",
		result.ID, result.Verdict, result.ConfidenceScore, time.Since(started))
	return result, nil
}

// prepare validates the request and produces the normalized text. A
// non-nil result means the pipeline short-circuits with verdict=ERROR
// before any scorer or adapter runs.
func (p *Pipeline) prepare(ctx context.Context, req AnalysisRequest) (string, *AnalysisResult) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return "", p.errorResult(req, "No content was provided for analysis.")
	}

	var text string
	switch req.InputType {
	case InputURL:
		p.progress("Fetching URL")
		fetched, err := p.fetcher.FetchText(ctx, content)
		if err != nil {
			Logger().Warning("Fetch failed: %v", err)
			return "", p.errorResult(req, "Could not fetch the URL: "+err.Error())
		}
		text = fetched
	case InputText, InputFile:
		text = NormalizeContent(content)
	default:
		return "", p.errorResult(req, "Unknown input type: "+string(req.InputType))
	}

	if len(text) < p.cfg.MinContentLength {
		return "", p.errorResult(req, "The content is too short to analyze reliably.")
	}
	text = truncateText(text, p.cfg.MaxContentLength)
	return text, nil
}

// errorResult builds the fixed-shape ERROR result: all scoring fields
// stay at their defaults.
func (p *Pipeline) errorResult(req AnalysisRequest, message string) *AnalysisResult {
	return &AnalysisResult{
		ID:          uuid.NewString(),
		Verdict:     VerdictError,
		Explanation: message,
		Sentiment:   PatternScore{Label: "Neutral"},
		Clickbait:   PatternScore{Label: "Low clickbait"},
		FactChecks:  []FactCheckEntry{},
		SourceLinks: []SourceLink{},
		Entities:    ExtractedEntities{Persons: []string{}, Organizations: []string{}, Locations: []string{}},
		InputType:   req.InputType,
		FileName:    req.FileName,
		CreatedAt:   time.Now().UTC(),
	}
}

// gatherRemote fans out every applicable adapter concurrently and
// joins before fusion. Each call carries its own timeout and failure
// handling; a slow or failing adapter never blocks the others.
func (p *Pipeline) gatherRemote(ctx context.Context, text, mainClaim string, claims []string, source SourceResolution) (RemoteSignals, []FactCheckEntry, []SourceLink) {
	var (
		remote     RemoteSignals
		factChecks []FactCheckEntry
		links      []SourceLink
		wg         sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		factChecks = p.factChecks.Lookup(ctx, text, claims)
	}()

	if p.cfg.EnableCoverage {
		wg.Add(1)
		go func() {
			defer wg.Done()
			links = p.coverage.Find(ctx, mainClaim)
		}()
	}

	if p.inference.Configured() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			remote.ZeroShot = p.inference.ClassifyZeroShot(ctx, text)
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			remote.Sentiment = p.inference.AnalyzeSentiment(ctx, text)
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			remote.Entities = p.inference.ExtractEntities(ctx, text)
		}()

		if len(claims) > 1 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				remote.Similarity = p.inference.SemanticSimilarity(ctx, mainClaim, claims[1:])
			}()
		}
	}

	if p.completion.Configured() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			remote.Completion = p.completion.Judge(ctx, text)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		remote.Grammar = p.grammar.Check(ctx, text)
	}()

	if source.Matched {
		wg.Add(1)
		go func() {
			defer wg.Done()
			remote.Authority = p.authority.Score(ctx, normalizeHost(source.CanonicalURL))
		}()
	}

	wg.Wait()

	if links == nil {
		links = []SourceLink{}
	}
	return remote, factChecks, links
}
