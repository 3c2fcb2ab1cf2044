// cmd/credlens/credpattern.go
package main

import (
	"regexp"
	"strings"
)

// Citation and style patterns used by the credibility-pattern scorer.
// Compiled once; the scorer itself is pure.
var (
	citationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)according to\s+\w+`),
		regexp.MustCompile(`(?i)\bcit(?:ed|ation)\b`),
		regexp.MustCompile(`(?i)study published`),
		regexp.MustCompile(`(?i)\bresearch(?:ers)? (?:found|show|suggests?)\b`),
		regexp.MustCompile(`(?i)\bsource:\s*\S+`),
		regexp.MustCompile(`(?i)in an? (?:interview|statement|report)`),
		regexp.MustCompile(`"[^"]{10,}"\s*,?\s*(?i:said|told|stated)`),
	}

	passivePattern = regexp.MustCompile(`(?i)\b(?:was|were|been|being|is|are)\s+\w+(?:ed|en)\b`)

	vagueAttributionPattern = regexp.MustCompile(`(?i)\b(?:sources say|experts claim|some people say|insiders reveal|many believe|it is said)\b`)

	capsRunPattern = regexp.MustCompile(`\b[A-Z]{4,}\b`)

	hedgingWords = []string{
		"may", "might", "could", "allegedly", "reportedly",
		"possibly", "perhaps", "appears", "suggests", "estimated",
	}
)

// ScoreCredibilityPatterns runs the citation/style checks in a fixed
// order, adjusting a base score of 1.0 by fixed deltas and recording
// issues in check order. The final score is clamped to [0,1].
func ScoreCredibilityPatterns(text string) CredibilityPatterns {
	score := 1.0
	issues := []string{}

	// Citations
	citations := 0
	for _, re := range citationPatterns {
		if re.MatchString(text) {
			citations++
		}
	}
	switch {
	case citations >= 2:
		score += 0.15
	case citations == 0:
		score -= 0.15
		issues = append(issues, "No citations or references found")
	}

	// Passive voice ratio
	words := len(strings.Fields(text))
	if words > 0 {
		passive := len(passivePattern.FindAllString(text, -1))
		if float64(passive)/float64(words) > 0.15 {
			score -= 0.10
			issues = append(issues, "Excessive passive voice")
		}
	}

	// Hedging language reads as careful reporting
	hedges := 0
	for _, word := range hedgingWords {
		if wordPattern(word).MatchString(text) {
			hedges++
		}
	}
	if hedges >= 2 {
		score += 0.10
	}

	// Vague attribution
	if vagueAttributionPattern.MatchString(text) {
		score -= 0.12
		issues = append(issues, "Vague attribution of claims")
	}

	// Long ALL-CAPS runs
	if len(capsRunPattern.FindAllString(text, -1)) > 2 {
		score -= 0.10
		issues = append(issues, "Excessive capitalization")
	}

	// Ellipses
	if strings.Count(text, "...") > 3 {
		score -= 0.08
		issues = append(issues, "Excessive use of ellipses")
	}

	score = clampFloat(score, 0, 1)

	return CredibilityPatterns{
		Score:     score,
		HasIssues: len(issues) > 0,
		Issues:    issues,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
