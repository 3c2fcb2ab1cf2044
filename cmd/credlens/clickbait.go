// cmd/credlens/clickbait.go
package main

import (
	"strings"
)

// ClickbaitLexicon holds the trigger-phrase lists. Immutable after load.
type ClickbaitLexicon struct {
	Urgency          []string
	Exaggeration     []string
	VagueAttribution []string
}

// Fixed increments per matched phrase.
const (
	urgencyIncrement      = 0.16
	exaggerationIncrement = 0.13
	vagueIncrement        = 0.22
	questionMarkBonus     = 0.12
)

// DefaultClickbaitLexicon returns the built-in trigger phrases.
func DefaultClickbaitLexicon() *ClickbaitLexicon {
	return &ClickbaitLexicon{
		Urgency: []string{
			"breaking", "urgent", "act now", "share this", "must see",
			"right now", "before it's too late", "don't wait", "spread the word",
		},
		Exaggeration: []string{
			"you won't believe", "mind-blowing", "jaw-dropping", "will shock you",
			"doctors hate", "this one weird trick", "changed everything",
			"the truth about", "what happens next",
		},
		VagueAttribution: []string{
			"sources say", "experts claim", "some people say", "insiders reveal",
			"they don't want you to know", "it is said", "many believe",
		},
	}
}

// ScoreClickbait computes the sensationalized-phrasing score. Each
// phrase found anywhere in the lowercased text adds its fixed
// increment; more than 4 question marks adds a bonus; clamped to 1.0.
func ScoreClickbait(lex *ClickbaitLexicon, text string) PatternScore {
	lower := strings.ToLower(text)
	score := 0.0

	for _, phrase := range lex.Urgency {
		if strings.Contains(lower, phrase) {
			score += urgencyIncrement
		}
	}
	for _, phrase := range lex.Exaggeration {
		if strings.Contains(lower, phrase) {
			score += exaggerationIncrement
		}
	}
	for _, phrase := range lex.VagueAttribution {
		if strings.Contains(lower, phrase) {
			score += vagueIncrement
		}
	}

	if strings.Count(text, "?") > 4 {
		score += questionMarkBonus
	}

	if score > 1.0 {
		score = 1.0
	}

	return PatternScore{Score: score, Label: clickbaitLabel(score)}
}

func clickbaitLabel(score float64) string {
	switch {
	case score >= 0.6:
		return "Strong clickbait indicators"
	case score >= 0.3:
		return "Some clickbait indicators"
	default:
		return "Low clickbait"
	}
}
