// cmd/credlens/credpattern_test.go
package main

import (
	"math"
	"strings"
	"testing"
)

func TestCredibilityPatternsNoCitations(t *testing.T) {
	got := ScoreCredibilityPatterns("Something big happened downtown yesterday evening near the plaza.")
	if math.Abs(got.Score-0.85) > 1e-9 {
		t.Fatalf("want 0.85, got %f", got.Score)
	}
	if !got.HasIssues || got.Issues[0] != "No citations or references found" {
		t.Fatalf("missing citation issue: %#v", got.Issues)
	}
}

func TestCredibilityPatternsCitationBonus(t *testing.T) {
	text := "According to officials, the number rose. Researchers found the cause in a study published last year."
	got := ScoreCredibilityPatterns(text)
	if got.Score < 1.0 {
		t.Fatalf("two citation styles should clamp at 1.0, got %f", got.Score)
	}
	for _, issue := range got.Issues {
		if issue == "No citations or references found" {
			t.Fatal("citation issue flagged despite citations present")
		}
	}
}

func TestCredibilityPatternsVagueAttribution(t *testing.T) {
	got := ScoreCredibilityPatterns("According to the ministry, things changed. But sources say otherwise.")
	found := false
	for _, issue := range got.Issues {
		if issue == "Vague attribution of claims" {
			found = true
		}
	}
	if !found {
		t.Fatalf("vague attribution not flagged: %#v", got.Issues)
	}
}

func TestCredibilityPatternsCapsAndEllipses(t *testing.T) {
	text := "SHOCK HORROR DRAMA PANIC everywhere... and then... nothing... happened... at all"
	got := ScoreCredibilityPatterns(text)

	wantIssues := map[string]bool{
		"Excessive capitalization":  false,
		"Excessive use of ellipses": false,
	}
	for _, issue := range got.Issues {
		if _, ok := wantIssues[issue]; ok {
			wantIssues[issue] = true
		}
	}
	for issue, seen := range wantIssues {
		if !seen {
			t.Errorf("issue %q not flagged: %#v", issue, got.Issues)
		}
	}
}

func TestCredibilityPatternsScoreRange(t *testing.T) {
	texts := []string{
		"",
		"SHOCK HORROR DRAMA PANIC... sources say... it is said... many believe... nothing was confirmed...",
		strings.Repeat("According to a study published by researchers found evidence. ", 10),
	}
	for _, text := range texts {
		got := ScoreCredibilityPatterns(text)
		if got.Score < 0 || got.Score > 1 {
			t.Errorf("score out of range for %q: %f", text, got.Score)
		}
	}
}

func TestCredibilityPatternsIssueOrder(t *testing.T) {
	// Check order is fixed: citations before vague attribution before caps.
	text := "WILD CLAIMS EVERYWHERE TODAY AGAIN and sources say nothing else"
	got := ScoreCredibilityPatterns(text)
	want := []string{
		"No citations or references found",
		"Vague attribution of claims",
		"Excessive capitalization",
	}
	if len(got.Issues) != len(want) {
		t.Fatalf("want %d issues, got %#v", len(want), got.Issues)
	}
	for i := range want {
		if got.Issues[i] != want[i] {
			t.Fatalf("issue %d: want %q, got %q", i, want[i], got.Issues[i])
		}
	}
}
