// cmd/credlens/pipeline_test.go
package main

import (
	"context"
	"strings"
	"testing"
)

// offlineConfig disables every keyed adapter and the coverage lookup so
// Analyze runs without network access.
func offlineConfig() *Config {
	return &Config{
		Version:          "test",
		MinContentLength: 30,
		MaxContentLength: 20000,
		SourcesPath:      "does-not-exist.yml",
		EnableCoverage:   false,
		UserAgentString:  "credlens-test",
	}
}

const sampleArticle = `According to the Department of Health, dengue cases rose by 15 percent in July.
Officials confirmed 1200 new infections across the region during a briefing on Monday.
Residents were advised to remove standing water around their homes.`

func TestAnalyzeEmptyContent(t *testing.T) {
	p := NewPipeline(offlineConfig())

	result, err := p.Analyze(context.Background(), AnalysisRequest{Content: "   ", InputType: InputText})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Verdict != VerdictError {
		t.Fatalf("want ERROR, got %s", result.Verdict)
	}
	if result.ConfidenceScore != 0 {
		t.Fatalf("error results carry no confidence, got %d", result.ConfidenceScore)
	}
}

func TestAnalyzeTooShort(t *testing.T) {
	p := NewPipeline(offlineConfig())

	result, err := p.Analyze(context.Background(), AnalysisRequest{Content: "Too short.", InputType: InputText})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Verdict != VerdictError {
		t.Fatalf("want ERROR, got %s", result.Verdict)
	}
	if !strings.Contains(result.Explanation, "too short") {
		t.Fatalf("unexpected explanation: %q", result.Explanation)
	}
}

func TestAnalyzeShortFactualSentence(t *testing.T) {
	// A single factual sentence must clear the default length gate and
	// fall through to a moderate-confidence UNVERIFIED verdict.
	cfg := offlineConfig()
	cfg.MinContentLength = LoadEnvConfig().MinContentLength
	p := NewPipeline(cfg)

	sentence := "The DOH reported 1,200 dengue cases this week."
	if len(sentence) < cfg.MinContentLength {
		t.Fatalf("default minimum length %d rejects a %d-char factual sentence", cfg.MinContentLength, len(sentence))
	}

	result, err := p.Analyze(context.Background(), AnalysisRequest{Content: sentence, InputType: InputText})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Verdict != VerdictUnverified {
		t.Fatalf("want UNVERIFIED, got %s (%s)", result.Verdict, result.Explanation)
	}
	if result.ConfidenceScore < 50 || result.ConfidenceScore > 59 {
		t.Fatalf("want confidence in the 50s, got %d", result.ConfidenceScore)
	}
}

func TestAnalyzeUnknownInputType(t *testing.T) {
	p := NewPipeline(offlineConfig())

	result, err := p.Analyze(context.Background(), AnalysisRequest{Content: sampleArticle, InputType: "carrier-pigeon"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Verdict != VerdictError {
		t.Fatalf("want ERROR, got %s", result.Verdict)
	}
}

func TestAnalyzeTextResult(t *testing.T) {
	p := NewPipeline(offlineConfig())

	result, err := p.Analyze(context.Background(), AnalysisRequest{Content: sampleArticle, InputType: InputText})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if result.Verdict == VerdictError {
		t.Fatalf("unexpected ERROR: %s", result.Explanation)
	}
	if result.ID == "" {
		t.Fatal("result must carry an id")
	}
	if result.ConfidenceScore < 0 || result.ConfidenceScore > 99 {
		t.Fatalf("confidence out of range: %d", result.ConfidenceScore)
	}
	if result.Explanation == "" {
		t.Fatal("result must carry an explanation")
	}
	if result.FactChecks == nil || len(result.FactChecks) == 0 {
		t.Fatal("fact checks must never be empty")
	}
	if result.SourceLinks == nil {
		t.Fatal("source links must be an empty slice, not nil")
	}
	if result.InputType != InputText {
		t.Fatalf("input type not carried through: %s", result.InputType)
	}
}

func TestAnalyzeUnconfiguredMakesNoNetworkCalls(t *testing.T) {
	p := NewPipeline(offlineConfig())
	client := noNetworkClient(t)
	p.fetcher.client = client
	p.factChecks.client = client
	p.coverage.client = client
	p.inference.client = client
	p.grammar.client = client
	p.authority.client = client

	result, err := p.Analyze(context.Background(), AnalysisRequest{Content: sampleArticle, InputType: InputText})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Verdict == VerdictError {
		t.Fatalf("unexpected ERROR: %s", result.Explanation)
	}
}

func TestAnalyzeDeterministicOffline(t *testing.T) {
	p := NewPipeline(offlineConfig())
	req := AnalysisRequest{Content: sampleArticle, InputType: InputText}

	first, err := p.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	second, err := p.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if first.Verdict != second.Verdict || first.ConfidenceScore != second.ConfidenceScore {
		t.Fatalf("offline analysis must be deterministic: %s/%d vs %s/%d",
			first.Verdict, first.ConfidenceScore, second.Verdict, second.ConfidenceScore)
	}
}

func TestAnalyzeHonorsMaxLength(t *testing.T) {
	cfg := offlineConfig()
	cfg.MaxContentLength = 200
	p := NewPipeline(cfg)

	long := strings.Repeat(sampleArticle+" ", 20)
	result, err := p.Analyze(context.Background(), AnalysisRequest{Content: long, InputType: InputText})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Verdict == VerdictError {
		t.Fatalf("truncation must not fail the analysis: %s", result.Explanation)
	}
}

func TestAnalyzeFileNameCarried(t *testing.T) {
	p := NewPipeline(offlineConfig())

	result, err := p.Analyze(context.Background(), AnalysisRequest{
		Content:   sampleArticle,
		InputType: InputFile,
		FileName:  "clipping.txt",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.FileName != "clipping.txt" {
		t.Fatalf("file name lost: %q", result.FileName)
	}
}
