// cmd/credlens/quality.go
package main

import (
	"regexp"
	"strings"
)

var (
	numberPattern = regexp.MustCompile(`\b\d[\d,.]*\b`)
	datePattern   = regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december|monday|tuesday|wednesday|thursday|friday|saturday|sunday|\d{4})\b`)
	urlPattern    = regexp.MustCompile(`https?://\S+`)
)

// ScoreContentQuality computes the raw content-quality score from the
// style checks plus specificity and evidence signals. A configured
// grammar-check result lowers the score per detected error. The raw
// value is still subject to verdict banding downstream.
func ScoreContentQuality(text string, patterns CredibilityPatterns, entities ExtractedEntities, grammar GrammarResult) float64 {
	score := 0.5*patterns.Score + 0.3*specificityScore(text, entities) + 0.2*evidenceScore(text)

	if grammar.Available && grammar.ErrorCount > 0 {
		words := len(strings.Fields(text))
		if words > 0 {
			penalty := float64(grammar.ErrorCount) / float64(words) * 2
			score -= clampFloat(penalty, 0, 0.2)
		}
	}

	return clampFloat(score, 0, 1)
}

// specificityScore rewards concrete figures, dates and named parties.
func specificityScore(text string, entities ExtractedEntities) float64 {
	score := 0.3

	if len(numberPattern.FindAllString(text, -1)) >= 2 {
		score += 0.25
	}
	if datePattern.MatchString(text) {
		score += 0.2
	}
	if len(entities.Persons)+len(entities.Organizations) > 0 {
		score += 0.25
	}

	return clampFloat(score, 0, 1)
}

// evidenceScore rewards inline links and quoted material.
func evidenceScore(text string) float64 {
	score := 0.3

	if urlPattern.MatchString(text) {
		score += 0.35
	}
	if strings.Count(text, `"`) >= 2 {
		score += 0.2
	}
	for _, re := range citationPatterns {
		if re.MatchString(text) {
			score += 0.15
			break
		}
	}

	return clampFloat(score, 0, 1)
}
