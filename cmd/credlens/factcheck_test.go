// cmd/credlens/factcheck_test.go
package main

import (
	"context"
	"strings"
	"testing"
)

func TestComputeRelevanceRange(t *testing.T) {
	pairs := [][2]string{
		{"dengue cases rose in July", "dengue cases rose in July"},
		{"dengue cases rose", "typhoon damages farmland"},
		{"health officials confirmed the outbreak", "officials confirmed an outbreak of dengue"},
		{"", "anything here"},
	}
	for _, p := range pairs {
		got := ComputeRelevance(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("relevance out of range for %q vs %q: %f", p[0], p[1], got)
		}
	}
}

func TestComputeRelevanceIdentical(t *testing.T) {
	claim := "health officials confirmed dengue outbreak in the region"
	if got := ComputeRelevance(claim, claim); got != 1 {
		t.Fatalf("identical texts: want 1, got %f", got)
	}
}

func TestComputeRelevanceDisjoint(t *testing.T) {
	if got := ComputeRelevance("dengue outbreak manila", "stock market rally tokyo"); got != 0 {
		t.Fatalf("disjoint texts: want 0, got %f", got)
	}
}

func TestComputeRelevanceEmpty(t *testing.T) {
	if got := ComputeRelevance("", ""); got != 0 {
		t.Fatalf("both empty: want 0, got %f", got)
	}
	// Stopwords-only text has an empty token set too.
	if got := ComputeRelevance("the and of in", "the and of in"); got != 0 {
		t.Fatalf("stopword-only texts: want 0, got %f", got)
	}
}

func TestComputeRelevanceSymmetric(t *testing.T) {
	a := "dengue cases rose sharply in the capital region"
	b := "officials reported dengue cases in the capital"
	if ComputeRelevance(a, b) != ComputeRelevance(b, a) {
		t.Fatal("relevance must be symmetric")
	}
}

func TestLookupWithoutKeysReturnsPlaceholder(t *testing.T) {
	fl := NewFactCheckLookup("", "")
	entries := fl.Lookup(context.Background(), "The vaccine was approved by regulators last week.", nil)
	if len(entries) != 1 {
		t.Fatalf("want exactly the placeholder entry, got %d", len(entries))
	}
	if entries[0].Conclusion != placeholderConclusion {
		t.Fatalf("unexpected conclusion: %q", entries[0].Conclusion)
	}
	if entries[0].Relevance != 0 {
		t.Fatalf("placeholder relevance must be 0, got %f", entries[0].Relevance)
	}
}

func TestMainClaim(t *testing.T) {
	claims := []string{"Officials confirmed 120 new cases on Monday", "A second claim"}
	if got := MainClaim("full content here", claims); got != claims[0] {
		t.Fatalf("want first claim, got %q", got)
	}

	long := strings.Repeat("x", 400)
	got := MainClaim(long, nil)
	if len(got) != 150 {
		t.Fatalf("want 150-char prefix, got %d chars", len(got))
	}
}
