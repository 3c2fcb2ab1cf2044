// cmd/credlens/claims.go
package main

import (
	"regexp"
	"strings"
)

var claimIndicators = []string{
	"according to",
	"researchers found",
	"studies show",
	"evidence suggests",
	"experts say",
	"reported",
	"announced",
	"confirmed",
}

var digitPattern = regexp.MustCompile(`\d`)

const maxExtractedClaims = 3

// ExtractClaims pulls checkable statements out of the text: sentences
// carrying a claim indicator first, then number-bearing sentences as a
// fallback.
func ExtractClaims(text string) []string {
	sentences := strings.Split(text, ".")
	var claims []string

	addClaim := func(sentence string) bool {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < 20 || len(sentence) > 250 {
			return false
		}
		for _, existing := range claims {
			if existing == sentence {
				return false
			}
		}
		claims = append(claims, sentence)
		return len(claims) >= maxExtractedClaims
	}

	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, indicator := range claimIndicators {
			if strings.Contains(lower, indicator) {
				if addClaim(sentence) {
					return claims
				}
				break
			}
		}
	}

	// Sentences with figures tend to be the checkable ones.
	if len(claims) == 0 {
		for _, sentence := range sentences {
			if digitPattern.MatchString(sentence) {
				if addClaim(sentence) {
					return claims
				}
			}
		}
	}

	return claims
}
