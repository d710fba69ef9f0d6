package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"censor/internal/rules"
)

// pangram is the sentence the rule table was derived from
const pangram = "the quick brown fox jumps over the lazy dog"

func TestEvaluate(t *testing.T) {
	rs := rules.Default()

	tests := []struct {
		name  string
		input string
		want  Report
	}{
		{
			name:  "empty input",
			input: "",
			want:  Report{Violations: []Violation{}},
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			want:  Report{Violations: []Violation{}},
		},
		{
			name:  "allowed letters only",
			input: "Mary Has A Tiny Cat",
			want:  Report{Violations: []Violation{}},
		},
		{
			name:  "forbidden letters counted",
			input: "job",
			want: Report{
				Violations: []Violation{
					{Letter: 'b', Kind: KindSimple, Count: 1},
					{Letter: 'j', Kind: KindSimple, Count: 1},
				},
				Total: 2,
			},
		},
		{
			name:  "e before allowed consonant",
			input: "ebb",
			want: Report{
				Violations: []Violation{
					{Letter: 'b', Kind: KindSimple, Count: 2},
				},
				Total: 2,
			},
		},
		{
			name:  "e before vowel",
			input: "eat",
			want: Report{
				Violations: []Violation{
					{Letter: 'e', Kind: KindConditional, Count: 1, Result: rules.EResult},
				},
				Total: 1,
			},
		},
		{
			name:  "double o at end of input",
			input: "zoo",
			want: Report{
				Violations: []Violation{
					{Letter: 'o', Kind: KindConditional, Count: 1, Result: rules.OResult},
					{Letter: 'z', Kind: KindSimple, Count: 1},
				},
				Total: 2,
			},
		},
		{
			name:  "input is lower-cased",
			input: "EAT",
			want: Report{
				Violations: []Violation{
					{Letter: 'e', Kind: KindConditional, Count: 1, Result: rules.EResult},
				},
				Total: 1,
			},
		},
		{
			name:  "surrounding whitespace trimmed before end-of-input check",
			input: "  the lazy  ",
			want: Report{
				Violations: []Violation{
					{Letter: 'z', Kind: KindSimple, Count: 1},
				},
				Total: 1,
			},
		},
		{
			name:  "non-latin text is ignored",
			input: "привет мир",
			want:  Report{Violations: []Violation{}},
		},
		{
			name:  "pangram",
			input: pangram,
			want: Report{
				Violations: []Violation{
					{Letter: 'b', Kind: KindSimple, Count: 1},
					{Letter: 'd', Kind: KindSimple, Count: 1},
					{Letter: 'e', Kind: KindConditional, Count: 1, Result: rules.EResult},
					{Letter: 'f', Kind: KindSimple, Count: 1},
					{Letter: 'j', Kind: KindSimple, Count: 1},
					{Letter: 'k', Kind: KindSimple, Count: 1},
					{Letter: 'o', Kind: KindConditional, Count: 1, Result: rules.OResult},
					{Letter: 'q', Kind: KindSimple, Count: 1},
					{Letter: 'z', Kind: KindSimple, Count: 1},
				},
				Total: 9,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(rs, tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluate_OrderFollowsAlphabet(t *testing.T) {
	report := Evaluate(rules.Default(), "zzz qq b")

	var letters []string
	for _, v := range report.Violations {
		letters = append(letters, v.Letter.String())
	}
	if got := strings.Join(letters, ""); got != "bqz" {
		t.Errorf("violation order = %q, want %q", got, "bqz")
	}
	if report.Total != 6 {
		t.Errorf("Total = %d, want 6", report.Total)
	}
}

func TestEvaluate_ZeroRuleSet(t *testing.T) {
	report := Evaluate(rules.RuleSet{}, pangram)
	if !report.Compliant() || report.Total != 0 {
		t.Errorf("zero rule set should report nothing, got %+v", report)
	}
}

func TestReport_Lookup(t *testing.T) {
	report := Evaluate(rules.Default(), "zoo")

	v, ok := report.Lookup('o')
	if !ok || v.Count != 1 || v.Kind != KindConditional {
		t.Errorf("Lookup('o') = %+v, %v", v, ok)
	}
	if _, ok := report.Lookup('a'); ok {
		t.Error("Lookup('a') should not find a violation")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii", input: "  Hello World\n", want: "hello world"},
		{name: "non-latin lowered", input: "ÉΣ", want: "éσ"},
		{name: "kelvin sign kept", input: "\u212A", want: "\u212A"},
		{name: "dotted capital i kept", input: "\u0130", want: "\u0130"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluate_LookalikesAreNotLetters(t *testing.T) {
	rs := rules.Default()

	for _, input := range []string{"\u212A", "\u212Aing", "B\u0130"} {
		report := Evaluate(rs, input)
		if _, ok := report.Lookup('k'); ok {
			t.Errorf("Evaluate(%q) reported k: %+v", input, report)
		}
		if _, ok := report.Lookup('i'); ok {
			t.Errorf("Evaluate(%q) reported i: %+v", input, report)
		}
	}
}

// genFrom generates strings built only from the given characters
func genFrom(chars string) gopter.Gen {
	runes := []rune(chars)
	return gen.SliceOf(gen.IntRange(0, len(runes)-1)).Map(func(idx []int) string {
		var sb strings.Builder
		for _, i := range idx {
			sb.WriteRune(runes[i])
		}
		return sb.String()
	})
}

// Feature: censor, Property: Deterministic Evaluation
// For any input, evaluating twice yields structurally equal reports.
func TestEvaluate_Deterministic_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	rs := rules.Default()

	properties.Property("same input gives equal reports", prop.ForAll(
		func(s string) bool {
			return reflect.DeepEqual(Evaluate(rs, s), Evaluate(rs, s))
		},
		gen.AnyString(),
	))

	properties.Property("separately built rule sets agree", prop.ForAll(
		func(s string) bool {
			return reflect.DeepEqual(Evaluate(rules.Default(), s), Evaluate(rs, s))
		},
		genFrom("abcdefghijklmnopqrstuvwxyz ABCDEO\t.,"),
	))

	properties.TestingRun(t)
}

// Feature: censor, Property: Vacuous Compliance
// Whitespace-only input, and input made only of unconditionally allowed
// letters in any case, yields an empty report.
func TestEvaluate_Compliance_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	rs := rules.Default()

	properties.Property("whitespace-only input is compliant", prop.ForAll(
		func(s string) bool {
			r := Evaluate(rs, s)
			return r.Compliant() && r.Total == 0
		},
		genFrom(" \t\n\r\v\f"),
	))

	properties.Property("allowed letters only is compliant", prop.ForAll(
		func(s string) bool {
			r := Evaluate(rs, s)
			return r.Compliant() && r.Total == 0
		},
		genFrom("acghilmnprstuvwxyACGHILMNPRSTUVWXY "),
	))

	properties.TestingRun(t)
}

// Feature: censor, Property: Report Shape
// Violations are strictly alphabetical, counts are positive, the total is
// their sum, and simple counts equal letter occurrences.
func TestEvaluate_ReportShape_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	rs := rules.Default()

	properties.Property("violations are strictly alphabetical", prop.ForAll(
		func(s string) bool {
			r := Evaluate(rs, s)
			for i := 1; i < len(r.Violations); i++ {
				if r.Violations[i-1].Letter >= r.Violations[i].Letter {
					return false
				}
			}
			return true
		},
		genFrom("zyxwvutsrqponmlkjihgfedcba ZQJ"),
	))

	properties.Property("total is the sum of positive counts", prop.ForAll(
		func(s string) bool {
			r := Evaluate(rs, s)
			sum := 0
			for _, v := range r.Violations {
				if v.Count <= 0 {
					return false
				}
				sum += v.Count
			}
			return sum == r.Total && r.Compliant() == (r.Total == 0)
		},
		gen.AnyString(),
	))

	properties.Property("simple counts equal occurrences", prop.ForAll(
		func(s string) bool {
			r := Evaluate(rs, s)
			text := Normalize(s)
			for _, l := range "bdfjkqz" {
				want := strings.Count(text, string(l))
				v, ok := r.Lookup(rules.Letter(l))
				if want == 0 && ok {
					return false
				}
				if want > 0 && (!ok || v.Count != want || v.Kind != KindSimple) {
					return false
				}
			}
			return true
		},
		genFrom("bdfjkqzBDFJKQZaeo "),
	))

	properties.TestingRun(t)
}
