// cmd/credlens/errors_test.go
package main

import (
	"errors"
	"fmt"
	"testing"
)

func TestCredErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := NewFetchError("URL returned HTTP 503", inner)
	if !errors.Is(err, inner) {
		t.Fatal("wrapped error not reachable via errors.Is")
	}
}

func TestIsUserError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{NewInputError("too short"), true},
		{NewFetchError("unreachable", nil), true},
		{NewAdapterError("adapter down", nil), false},
		{NewPipelineError("boom", nil), false},
		{errors.New("plain"), false},
	}
	for _, c := range cases {
		if got := IsUserError(c.err); got != c.want {
			t.Errorf("%v: want %v, got %v", c.err, c.want, got)
		}
	}
}
