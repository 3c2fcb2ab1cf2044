// cmd/credlens/entities.go
package main

import (
	"strings"
	"unicode"
)

const (
	maxPersons       = 5
	maxOrganizations = 3
)

// ExtractEntities scans adjacent capitalized-word bigrams and sorts
// them into persons and organizations. This is intentionally naive:
// no location heuristic exists, so Locations is always empty.
func ExtractEntities(text string) ExtractedEntities {
	entities := ExtractedEntities{
		Persons:       []string{},
		Organizations: []string{},
		Locations:     []string{},
	}

	tokens := strings.Fields(text)
	seen := make(map[string]bool)

	for i := 0; i+1 < len(tokens); i++ {
		first := strings.Trim(tokens[i], ".,!?;:\"'()")
		second := strings.Trim(tokens[i+1], ",!?;:\"'()")

		if !isCapitalizedWord(first) || !isCapitalizedWord(second) {
			continue
		}

		name := first + " " + second
		if seen[name] {
			continue
		}
		seen[name] = true

		if isOrgSuffix(second) {
			if len(entities.Organizations) < maxOrganizations {
				entities.Organizations = append(entities.Organizations, name)
			}
		} else if len(entities.Persons) < maxPersons {
			entities.Persons = append(entities.Persons, name)
		}
	}

	return entities
}

// isCapitalizedWord reports whether the token starts with an upper-case
// letter followed by letters (periods allowed, for "Inc.").
func isCapitalizedWord(token string) bool {
	if token == "" {
		return false
	}
	runes := []rune(token)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && r != '.' {
			return false
		}
	}
	return true
}

func isOrgSuffix(word string) bool {
	return strings.Contains(word, "Inc") ||
		strings.Contains(word, "Corp") ||
		strings.Contains(word, "Ltd")
}
