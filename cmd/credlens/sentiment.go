// cmd/credlens/sentiment.go
package main

import (
	"fmt"
	"regexp"
	"sync"
)

// EmotionLexicon holds the three emotional vocabulary tiers. Loaded
// once at process start and treated as immutable; scorers stay pure.
type EmotionLexicon struct {
	Extreme  []string
	High     []string
	Moderate []string
}

// Per-occurrence weights for each tier.
const (
	extremeWeight  = 0.20
	highWeight     = 0.10
	moderateWeight = 0.05
)

// DefaultEmotionLexicon returns the built-in emotional vocabulary.
func DefaultEmotionLexicon() *EmotionLexicon {
	return &EmotionLexicon{
		Extreme: []string{
			"shocking", "outrageous", "horrific", "terrifying", "devastating",
			"explosive", "bombshell", "catastrophic", "unbelievable", "disgusting",
			"evil", "nightmare",
		},
		High: []string{
			"alarming", "stunning", "dramatic", "furious", "slams",
			"blasts", "chaos", "crisis", "scandal", "outrage",
			"panic", "destroyed",
		},
		Moderate: []string{
			"surprising", "concern", "worried", "fears", "warning",
			"trouble", "controversial", "criticized", "blamed", "threat",
		},
	}
}

var (
	wordPatternMu    sync.Mutex
	wordPatternCache = map[string]*regexp.Regexp{}
)

// wordPattern compiles a whole-word, case-insensitive matcher for a
// lexicon word. Compiled patterns are cached across requests.
func wordPattern(word string) *regexp.Regexp {
	wordPatternMu.Lock()
	defer wordPatternMu.Unlock()

	if re, ok := wordPatternCache[word]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	wordPatternCache[word] = re
	return re
}

// ScoreSentiment computes the emotional-language score for the text.
// Each whole-word occurrence contributes its tier weight; the sum is
// clamped to 1.0. Pure function, deterministic for identical input.
func ScoreSentiment(lex *EmotionLexicon, text string) PatternScore {
	score := 0.0

	tiers := []struct {
		words  []string
		weight float64
	}{
		{lex.Extreme, extremeWeight},
		{lex.High, highWeight},
		{lex.Moderate, moderateWeight},
	}

	for _, tier := range tiers {
		for _, word := range tier.words {
			matches := wordPattern(word).FindAllStringIndex(text, -1)
			score += float64(len(matches)) * tier.weight
		}
	}

	if score > 1.0 {
		score = 1.0
	}

	return PatternScore{Score: score, Label: sentimentLabel(score)}
}

func sentimentLabel(score float64) string {
	switch {
	case score > 0.75:
		return "Highly emotional"
	case score > 0.6:
		return "Moderately emotional"
	case score > 0.4:
		return "Slightly emotional"
	default:
		return "Neutral"
	}
}

// describeSentiment renders the score for explanations.
func describeSentiment(s PatternScore) string {
	return fmt.Sprintf("%s (%.2f)", s.Label, s.Score)
}
