// cmd/credlens/verdict_test.go
package main

import (
	"math"
	"strings"
	"testing"
)

func calmTrustedInput(trust float64) FusionInput {
	return FusionInput{
		ContentLength: 400,
		Source: SourceResolution{
			CredibilityScore: trust,
			Label:            "Reuters is a verified international source",
			Matched:          true,
		},
		Sentiment:  PatternScore{Score: 0.1, Label: "Neutral"},
		Clickbait:  PatternScore{Score: 0.05, Label: "Low clickbait"},
		Patterns:   CredibilityPatterns{Score: 0.9},
		RawQuality: 0.8,
	}
}

func TestFuseVerdictTrustedCalmSource(t *testing.T) {
	out := FuseVerdict(calmTrustedInput(0.95))
	if out.Verdict != VerdictReal {
		t.Fatalf("want REAL, got %s", out.Verdict)
	}
	if out.ConfidenceScore < 85 {
		t.Fatalf("want confidence >= 85, got %d", out.ConfidenceScore)
	}
}

func TestFuseVerdictTrustedSourceShorterText(t *testing.T) {
	in := calmTrustedInput(0.82)
	in.ContentLength = 250
	in.Patterns.Score = 0.6 // misses the top rule, hits the next

	out := FuseVerdict(in)
	if out.Verdict != VerdictReal {
		t.Fatalf("want REAL, got %s", out.Verdict)
	}
	if out.ConfidenceScore != 82 {
		t.Fatalf("want 82, got %d", out.ConfidenceScore)
	}
}

func TestFuseVerdictHeavyClickbaitUnknownSource(t *testing.T) {
	in := FusionInput{
		ContentLength: 200,
		Source:        SourceResolution{CredibilityScore: 0.40},
		Sentiment:     PatternScore{Score: 0.3},
		Clickbait:     PatternScore{Score: 0.65},
		Patterns:      CredibilityPatterns{Score: 0.5},
		RawQuality:    0.45,
	}
	out := FuseVerdict(in)
	if out.Verdict != VerdictFake {
		t.Fatalf("want FAKE, got %s", out.Verdict)
	}
	if out.ConfidenceScore != 85 {
		t.Fatalf("want 85, got %d", out.ConfidenceScore)
	}
}

func TestFuseVerdictEmotionalClickbaitNoSource(t *testing.T) {
	// Clickbait triggers plus extreme emotional words, no known source.
	in := FusionInput{
		ContentLength: 300,
		Source:        SourceResolution{CredibilityScore: 0.50},
		Sentiment:     PatternScore{Score: 0.50},
		Clickbait:     PatternScore{Score: 0.45},
		Patterns:      CredibilityPatterns{Score: 0.6},
		RawQuality:    0.5,
	}
	out := FuseVerdict(in)
	if out.Verdict != VerdictFake {
		t.Fatalf("want FAKE, got %s", out.Verdict)
	}
	if out.ConfidenceScore < 75 {
		t.Fatalf("want confidence >= 75, got %d", out.ConfidenceScore)
	}
}

func TestFuseVerdictUnverifiedFallthrough(t *testing.T) {
	// Well-written text from an unmatched source: no rule fires.
	in := FusionInput{
		ContentLength: 500,
		Source:        SourceResolution{CredibilityScore: 0.50, Label: "No known source detected in the text"},
		Sentiment:     PatternScore{Score: 0.1, Label: "Neutral"},
		Clickbait:     PatternScore{Score: 0.0, Label: "Low clickbait"},
		Patterns:      CredibilityPatterns{Score: 0.85},
		RawQuality:    0.7,
	}
	out := FuseVerdict(in)
	if out.Verdict != VerdictUnverified {
		t.Fatalf("want UNVERIFIED, got %s", out.Verdict)
	}
	// 35 + 0.85*20 = 52
	if out.ConfidenceScore != 52 {
		t.Fatalf("want 52, got %d", out.ConfidenceScore)
	}
}

func TestFuseVerdictUnverifiedConfidenceFloor(t *testing.T) {
	in := FusionInput{
		ContentLength: 500,
		Source:        SourceResolution{CredibilityScore: 0.50},
		Sentiment:     PatternScore{Score: 0.1},
		Clickbait:     PatternScore{Score: 0.0},
		Patterns:      CredibilityPatterns{Score: 0.5},
		RawQuality:    0.5,
	}
	out := FuseVerdict(in)
	if out.Verdict != VerdictUnverified {
		t.Fatalf("want UNVERIFIED, got %s", out.Verdict)
	}
	if out.ConfidenceScore != 50 {
		t.Fatalf("floor is 50, got %d", out.ConfidenceScore)
	}
}

func TestFuseVerdictBanding(t *testing.T) {
	cases := []struct {
		name           string
		in             FusionInput
		wantVerdict    Verdict
		credLo, credHi float64
		qualLo, qualHi float64
	}{
		{
			name:        "real",
			in:          calmTrustedInput(0.95),
			wantVerdict: VerdictReal,
			credLo:      0.7, credHi: 1.0,
			qualLo: 0.7, qualHi: 1.0,
		},
		{
			name: "fake",
			in: FusionInput{
				ContentLength: 200,
				Source:        SourceResolution{CredibilityScore: 0.40},
				Clickbait:     PatternScore{Score: 0.7},
				Patterns:      CredibilityPatterns{Score: 0.5},
				RawQuality:    0.9,
			},
			wantVerdict: VerdictFake,
			credLo:      0.0, credHi: 0.3,
			qualLo: 0.0, qualHi: 0.4,
		},
		{
			name: "unverified",
			in: FusionInput{
				ContentLength: 500,
				Source:        SourceResolution{CredibilityScore: 0.55},
				Patterns:      CredibilityPatterns{Score: 0.8},
				RawQuality:    0.95,
			},
			wantVerdict: VerdictUnverified,
			credLo:      0.3, credHi: 0.5,
			qualLo: 0.4, qualHi: 0.6,
		},
	}

	for _, c := range cases {
		out := FuseVerdict(c.in)
		if out.Verdict != c.wantVerdict {
			t.Errorf("%s: want %s, got %s", c.name, c.wantVerdict, out.Verdict)
			continue
		}
		if out.SourceCredibility < c.credLo || out.SourceCredibility > c.credHi {
			t.Errorf("%s: credibility %f outside [%f,%f]", c.name, out.SourceCredibility, c.credLo, c.credHi)
		}
		if out.ContentQuality < c.qualLo || out.ContentQuality > c.qualHi {
			t.Errorf("%s: quality %f outside [%f,%f]", c.name, out.ContentQuality, c.qualLo, c.qualHi)
		}
	}
}

func TestFuseVerdictConfidenceClamp(t *testing.T) {
	in := FusionInput{
		EnsembleRan: true,
		Remote: RemoteSignals{
			ZeroShot:   EngineVerdict{Verdict: VerdictReal, Confidence: 1.0, Available: true},
			Completion: EngineVerdict{Verdict: VerdictReal, Confidence: 1.0, Available: true},
		},
	}
	out := FuseVerdict(in)
	if out.ConfidenceScore > 99 {
		t.Fatalf("confidence must never exceed 99, got %d", out.ConfidenceScore)
	}
}

func TestFuseEnsembleMajority(t *testing.T) {
	in := FusionInput{
		EnsembleRan: true,
		Remote: RemoteSignals{
			ZeroShot:   EngineVerdict{Verdict: VerdictFake, Confidence: 0.9, Available: true},
			Completion: EngineVerdict{Verdict: VerdictUnverified, Confidence: 0.5, Available: true},
		},
	}
	out := FuseVerdict(in)
	if out.Verdict != VerdictFake {
		t.Fatalf("want FAKE from majority, got %s", out.Verdict)
	}
	if out.Vote == nil || out.Vote.Fake != 1 || out.Vote.Real != 0 {
		t.Fatalf("unexpected vote tally: %#v", out.Vote)
	}
	// Mean of 0.9 and 0.5, scaled to a percentage.
	if out.ConfidenceScore != 70 {
		t.Fatalf("want 70, got %d", out.ConfidenceScore)
	}
}

func TestFuseEnsembleTie(t *testing.T) {
	in := FusionInput{
		EnsembleRan: true,
		Remote: RemoteSignals{
			ZeroShot:   EngineVerdict{Verdict: VerdictReal, Confidence: 0.8, Available: true},
			Completion: EngineVerdict{Verdict: VerdictFake, Confidence: 0.8, Available: true},
		},
	}
	out := FuseVerdict(in)
	if out.Verdict != VerdictUnverified {
		t.Fatalf("tie must yield UNVERIFIED, got %s", out.Verdict)
	}
}

func TestFuseEnsembleFactCheckRefinement(t *testing.T) {
	base := FusionInput{
		EnsembleRan: true,
		Remote: RemoteSignals{
			ZeroShot:   EngineVerdict{Verdict: VerdictReal, Confidence: 0.8, Available: true},
			Completion: EngineVerdict{Verdict: VerdictReal, Confidence: 0.8, Available: true},
		},
	}

	falseCheck := base
	falseCheck.FactChecks = []FactCheckEntry{{
		Claim:        "the claim",
		Conclusion:   "False",
		ReviewerName: "Snopes",
		Relevance:    0.8,
	}}
	if out := FuseVerdict(falseCheck); out.Verdict != VerdictFake {
		t.Fatalf("published False rating must override the vote, got %s", out.Verdict)
	}

	// "Mostly untrue" contains "true"; the false check must win.
	untrue := base
	untrue.FactChecks = []FactCheckEntry{{
		Claim:      "the claim",
		Conclusion: "Mostly untrue and wrong",
		Relevance:  0.8,
	}}
	if out := FuseVerdict(untrue); out.Verdict != VerdictFake {
		t.Fatalf("untrue rating must map to FAKE, got %s", out.Verdict)
	}

	inconclusive := base
	inconclusive.FactChecks = []FactCheckEntry{{
		Claim:      "the claim",
		Conclusion: "Lacks context",
		Relevance:  0.8,
	}}
	if out := FuseVerdict(inconclusive); out.Verdict != VerdictUnverified {
		t.Fatalf("inconclusive rating must yield UNVERIFIED, got %s", out.Verdict)
	}
}

func TestFuseVerdictPlaceholderFactCheckIgnored(t *testing.T) {
	in := calmTrustedInput(0.78)
	in.ContentLength = 180 // misses the length-gated rules
	in.FactChecks = []FactCheckEntry{{
		Claim:      "the claim",
		Conclusion: placeholderConclusion,
		Relevance:  0,
	}}
	out := FuseVerdict(in)
	if out.Verdict != VerdictUnverified {
		t.Fatalf("placeholder must not count as a real fact check, got %s", out.Verdict)
	}
}

func TestBuildExplanationMentionsIssues(t *testing.T) {
	in := FusionInput{
		Source:    SourceResolution{Label: "No known source detected in the text", CredibilityScore: 0.5},
		Sentiment: PatternScore{Score: 0.1, Label: "Neutral"},
		Patterns: CredibilityPatterns{
			Score:     0.6,
			HasIssues: true,
			Issues:    []string{"No citations or references found"},
		},
	}
	out := FuseVerdict(in)
	if !strings.Contains(out.Explanation, "No citations or references found") {
		t.Fatalf("explanation missing style issues: %q", out.Explanation)
	}
	if !strings.Contains(out.Explanation, "No known source detected in the text") {
		t.Fatalf("explanation missing source label: %q", out.Explanation)
	}
}

func TestRawSourceCredibilityBlendsAuthority(t *testing.T) {
	in := FusionInput{
		Source: SourceResolution{CredibilityScore: 0.8},
		Remote: RemoteSignals{Authority: AuthorityResult{Authority: 0.4, Available: true}},
	}
	if got := rawSourceCredibility(in); math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("want 0.6, got %f", got)
	}
	in.Remote.Authority.Available = false
	if got := rawSourceCredibility(in); got != 0.8 {
		t.Fatalf("want 0.8 when authority unavailable, got %f", got)
	}
}
