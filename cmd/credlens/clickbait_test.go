// cmd/credlens/clickbait_test.go
package main

import (
	"math"
	"testing"
)

func TestScoreClickbaitIncrements(t *testing.T) {
	lex := DefaultClickbaitLexicon()

	cases := []struct {
		text string
		want float64
	}{
		{"Regular council meeting recap", 0},
		{"BREAKING news from the capital", 0.16},
		{"You won't believe what happened", 0.13},
		{"Sources say the deal is off", 0.22},
		{"Breaking: sources say you won't believe this", 0.51},
	}
	for _, c := range cases {
		got := ScoreClickbait(lex, c.text).Score
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%q: want %.2f, got %.2f", c.text, c.want, got)
		}
	}
}

func TestScoreClickbaitQuestionMarkBonus(t *testing.T) {
	lex := DefaultClickbaitLexicon()

	four := ScoreClickbait(lex, "What? Why? How? When?").Score
	if four != 0 {
		t.Fatalf("4 question marks should add nothing, got %f", four)
	}
	five := ScoreClickbait(lex, "What? Why? How? When? Who?").Score
	if math.Abs(five-0.12) > 1e-9 {
		t.Fatalf("5 question marks should add 0.12, got %f", five)
	}
}

func TestClickbaitLabels(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.60, "Strong clickbait indicators"},
		{0.30, "Some clickbait indicators"},
		{0.29, "Low clickbait"},
	}
	for _, c := range cases {
		if got := clickbaitLabel(c.score); got != c.want {
			t.Errorf("score %.2f: want %q, got %q", c.score, c.want, got)
		}
	}
}
