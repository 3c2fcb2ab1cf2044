// cmd/credlens/verdict.go
package main

import (
	"fmt"
	"math"
	"strings"
)

// FusionInput carries every signal the decision procedure consumes.
type FusionInput struct {
	ContentLength int
	Source        SourceResolution
	Sentiment     PatternScore
	Clickbait     PatternScore
	Patterns      CredibilityPatterns
	Entities      ExtractedEntities
	FactChecks    []FactCheckEntry
	Remote        RemoteSignals
	EnsembleRan   bool

	// RawQuality is the pre-banding content-quality score computed by
	// the pipeline; fusion only bands it.
	RawQuality float64
}

// FusionOutput is the fused decision plus the banded display scores.
type FusionOutput struct {
	Verdict           Verdict
	ConfidenceScore   int
	Explanation       string
	SourceCredibility float64
	ContentQuality    float64
	Vote              *EnsembleVote
}

// verdictRule is one entry of the heuristic cascade: a predicate over
// the fused signals and its outcome. Rules are evaluated in order;
// the first match wins. The ordering is deliberate, not incidental.
type verdictRule struct {
	Name       string
	Match      func(FusionInput) bool
	Verdict    Verdict
	Confidence int
	Reason     string
}

// heuristicRules is the no-ensemble decision cascade.
var heuristicRules = []verdictRule{
	{
		Name: "trusted-source-calm-text",
		Match: func(in FusionInput) bool {
			return in.Source.CredibilityScore >= 0.9 &&
				in.ContentLength > 300 &&
				in.Sentiment.Score < 0.45 &&
				in.Patterns.Score > 0.8
		},
		Verdict:    VerdictReal,
		Confidence: 90,
		Reason:     "highly trusted source with substantial, measured reporting",
	},
	{
		Name: "trusted-source",
		Match: func(in FusionInput) bool {
			return in.Source.CredibilityScore >= 0.8 &&
				in.Sentiment.Score < 0.55 &&
				in.Clickbait.Score < 0.30 &&
				in.ContentLength > 200
		},
		Verdict:    VerdictReal,
		Confidence: 82,
		Reason:     "trusted source without sensational framing",
	},
	{
		Name: "heavy-clickbait-unknown-source",
		Match: func(in FusionInput) bool {
			return in.Clickbait.Score >= 0.60 && in.Source.CredibilityScore < 0.50
		},
		Verdict:    VerdictFake,
		Confidence: 85,
		Reason:     "heavy clickbait phrasing from an unrecognized source",
	},
	{
		Name: "extreme-emotion-with-clickbait",
		Match: func(in FusionInput) bool {
			return in.Sentiment.Score >= 0.75 && in.Clickbait.Score >= 0.35
		},
		Verdict:    VerdictFake,
		Confidence: 80,
		Reason:     "extremely emotional language combined with clickbait triggers",
	},
	{
		Name: "emotional-clickbait-no-source",
		Match: func(in FusionInput) bool {
			return in.Clickbait.Score >= 0.35 &&
				in.Sentiment.Score >= 0.40 &&
				in.Source.CredibilityScore <= 0.50
		},
		Verdict:    VerdictFake,
		Confidence: 76,
		Reason:     "emotional clickbait content with no recognizable source",
	},
	{
		Name: "broken-style-unknown-source",
		Match: func(in FusionInput) bool {
			return in.Patterns.Score < 0.30 && in.Source.CredibilityScore < 0.45
		},
		Verdict:    VerdictFake,
		Confidence: 72,
		Reason:     "multiple credibility-pattern issues and an unknown source",
	},
	{
		Name: "trusted-source-with-fact-checks",
		Match: func(in FusionInput) bool {
			return in.Source.CredibilityScore >= 0.75 && hasRealFactCheck(in.FactChecks)
		},
		Verdict:    VerdictReal,
		Confidence: 78,
		Reason:     "trusted source with corroborating fact-check coverage",
	},
}

// FuseVerdict runs the decision procedure: ensemble branch first when
// any remote engine ran, otherwise the heuristic cascade. Confidence
// is clamped to 99 at the very end regardless of branch, and display
// scores are forced into verdict-specific bands.
func FuseVerdict(in FusionInput) FusionOutput {
	var out FusionOutput

	if in.EnsembleRan {
		out = fuseEnsemble(in)
	} else {
		out = fuseHeuristic(in)
	}

	if out.ConfidenceScore > 99 {
		out.ConfidenceScore = 99
	}
	if out.ConfidenceScore < 0 {
		out.ConfidenceScore = 0
	}

	out.SourceCredibility, out.ContentQuality = applyBanding(out.Verdict, rawSourceCredibility(in), in.RawQuality)
	return out
}

// fuseEnsemble takes the majority vote between the zero-shot label and
// the chat-completion verdict. A tie yields UNVERIFIED. The top
// fact-check result can override the raw vote.
func fuseEnsemble(in FusionInput) FusionOutput {
	engines := []EngineVerdict{in.Remote.ZeroShot, in.Remote.Completion}

	vote := EnsembleVote{Engines: engines}
	confidenceSum, counted := 0.0, 0
	for _, engine := range engines {
		switch engine.Verdict {
		case VerdictReal:
			vote.Real++
		case VerdictFake:
			vote.Fake++
		}
		confidenceSum += engine.Confidence * 100
		counted++
	}

	verdict := VerdictUnverified
	if vote.Real > vote.Fake {
		verdict = VerdictReal
	} else if vote.Fake > vote.Real {
		verdict = VerdictFake
	}

	confidence := 0
	if counted > 0 {
		confidence = int(math.Round(confidenceSum / float64(counted)))
	}

	reason := fmt.Sprintf("model ensemble voted %d real / %d fake", vote.Real, vote.Fake)

	// Fact-check refinement: a matched published review outranks the
	// raw vote.
	if top, ok := topFactCheck(in.FactChecks); ok {
		conclusion := strings.ToLower(top.Conclusion)
		switch {
		case strings.Contains(conclusion, "false") || strings.Contains(conclusion, "wrong"):
			verdict = VerdictFake
			reason = fmt.Sprintf("fact check by %s rates the claim: %s", reviewerOrDefault(top), top.Conclusion)
		case strings.Contains(conclusion, "true") || strings.Contains(conclusion, "accurate"):
			verdict = VerdictReal
			reason = fmt.Sprintf("fact check by %s rates the claim: %s", reviewerOrDefault(top), top.Conclusion)
		default:
			verdict = VerdictUnverified
			reason = fmt.Sprintf("fact check by %s is inconclusive: %s", reviewerOrDefault(top), top.Conclusion)
		}
	}

	return FusionOutput{
		Verdict:         verdict,
		ConfidenceScore: confidence,
		Explanation:     buildExplanation(in, verdict, reason),
		Vote:            &vote,
	}
}

// fuseHeuristic walks the ordered rule cascade; anything unmatched
// falls through to UNVERIFIED with pattern-derived confidence.
func fuseHeuristic(in FusionInput) FusionOutput {
	for _, rule := range heuristicRules {
		if rule.Match(in) {
			return FusionOutput{
				Verdict:         rule.Verdict,
				ConfidenceScore: rule.Confidence,
				Explanation:     buildExplanation(in, rule.Verdict, rule.Reason),
			}
		}
	}

	confidence := int(math.Round(35 + in.Patterns.Score*20))
	if confidence < 50 {
		confidence = 50
	}

	return FusionOutput{
		Verdict:         VerdictUnverified,
		ConfidenceScore: confidence,
		Explanation:     buildExplanation(in, VerdictUnverified, "no heuristic rule produced a confident verdict"),
	}
}

// applyBanding forces the displayed sub-scores into verdict-specific
// bands so they never contradict the headline verdict. Post-hoc UI
// consistency carried over from the first release; do not extend it.
func applyBanding(verdict Verdict, credibility, quality float64) (float64, float64) {
	switch verdict {
	case VerdictReal:
		return bandClamp(credibility, 0.7, 1.0), bandClamp(quality, 0.7, 1.0)
	case VerdictFake:
		return bandClamp(credibility, 0.0, 0.3), bandClamp(quality, 0.0, 0.4)
	case VerdictUnverified:
		return bandClamp(credibility, 0.3, 0.5), bandClamp(quality, 0.4, 0.6)
	default:
		return credibility, quality
	}
}

func bandClamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rawSourceCredibility blends the resolver score with the optional
// domain-authority signal.
func rawSourceCredibility(in FusionInput) float64 {
	cred := in.Source.CredibilityScore
	if in.Remote.Authority.Available {
		cred = (cred + in.Remote.Authority.Authority) / 2
	}
	return cred
}

// topFactCheck returns the highest-relevance non-placeholder entry.
func topFactCheck(entries []FactCheckEntry) (FactCheckEntry, bool) {
	for _, e := range entries {
		if e.Conclusion != placeholderConclusion && e.Relevance > 0 {
			return e, true
		}
	}
	return FactCheckEntry{}, false
}

func hasRealFactCheck(entries []FactCheckEntry) bool {
	_, ok := topFactCheck(entries)
	return ok
}

func reviewerOrDefault(e FactCheckEntry) string {
	if e.ReviewerName != "" {
		return e.ReviewerName
	}
	return "an external reviewer"
}

// buildExplanation renders the human-readable summary of the decision.
func buildExplanation(in FusionInput, verdict Verdict, reason string) string {
	var sb strings.Builder

	switch verdict {
	case VerdictReal:
		sb.WriteString("This content appears credible: ")
	case VerdictFake:
		sb.WriteString("This content shows signs of misinformation: ")
	default:
		sb.WriteString("This content could not be verified: ")
	}
	sb.WriteString(reason)
	sb.WriteString(". ")

	sb.WriteString("Emotional tone: ")
	sb.WriteString(describeSentiment(in.Sentiment))
	sb.WriteString(". Source assessment: ")
	sb.WriteString(in.Source.Label)
	sb.WriteString(".")

	if in.Patterns.HasIssues {
		sb.WriteString(" Style issues: ")
		sb.WriteString(strings.Join(in.Patterns.Issues, "; "))
		sb.WriteString(".")
	}

	if top, ok := topFactCheck(in.FactChecks); ok && top.SourceURL != "" {
		sb.WriteString(fmt.Sprintf(" Related fact check: %s (%s).", top.Claim, top.SourceURL))
	}

	return sb.String()
}
