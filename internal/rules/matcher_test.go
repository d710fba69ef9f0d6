package rules

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSuccessorMatcher_E(t *testing.T) {
	m := NewSuccessorMatcher('e', eSuccessors)

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty input", input: "", want: 0},
		{name: "no trigger letter", input: "quick brown fox", want: 0},
		{name: "allowed successor", input: "ebb", want: 0},
		{name: "disallowed successor", input: "eat", want: 1},
		{name: "trigger at end of input", input: "the", want: 1},
		{name: "whitespace skipped before allowed letter", input: "the lazy", want: 0},
		{name: "whitespace skipped before disallowed letter", input: "the quick", want: 1},
		{name: "mixed whitespace is skipped", input: "e \t\n b", want: 0},
		{name: "trailing whitespace counts as end", input: "e  ", want: 1},
		{name: "match consumes the successor", input: "ee", want: 1},
		{name: "third trigger ends the input", input: "eee", want: 2},
		{name: "punctuation successor is not a violation", input: "e.", want: 0},
		{name: "digit successor is not a violation", input: "e1", want: 0},
		{name: "non-latin successor is not a violation", input: "eé", want: 0},
		{name: "successor e is consumed by the match", input: "the eel ate everything", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Matches(tt.input); got != tt.want {
				t.Errorf("Matches(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSuccessorMatcher_O(t *testing.T) {
	m := NewSuccessorMatcher('o', oSuccessors)

	tests := []struct {
		input string
		want  int
	}{
		{input: "brown", want: 1},
		{input: "fox", want: 0},
		{input: "over", want: 0},
		{input: "dog", want: 0},
		{input: "zoo", want: 1},
		{input: "oo o", want: 2},
		{input: "o w", want: 1},
		{input: "job", want: 0},
		{input: "to", want: 1},
	}

	for _, tt := range tests {
		if got := m.Matches(tt.input); got != tt.want {
			t.Errorf("Matches(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSuccessorMatcher_Allows(t *testing.T) {
	m := NewSuccessorMatcher('e', "bd")

	if m.Letter() != 'e' {
		t.Errorf("Letter() = %s, want e", m.Letter())
	}
	if !m.Allows('b') || !m.Allows('d') {
		t.Error("Allows() should accept the configured successors")
	}
	if m.Allows('a') {
		t.Error("Allows('a') should be false")
	}
	if m.Allows('A') {
		t.Error("Allows() should reject letters outside a-z")
	}
}

// Feature: censor, Property: Matcher Bounds
// A matcher never reports more matches than there are trigger letters,
// and input without the trigger letter never matches.
func TestSuccessorMatcher_Bounds_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	m := NewSuccessorMatcher('o', oSuccessors)

	properties.Property("matches never exceed trigger occurrences", prop.ForAll(
		func(s string) bool {
			s = strings.ToLower(s)
			return m.Matches(s) <= strings.Count(s, "o")
		},
		gen.AnyString(),
	))

	properties.Property("input without the trigger never matches", prop.ForAll(
		func(s string) bool {
			s = strings.ReplaceAll(strings.ToLower(s), "o", "")
			return m.Matches(s) == 0
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
