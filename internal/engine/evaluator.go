package engine

import (
	"strings"
	"unicode"

	"censor/internal/rules"
)

// Normalize lower-cases input and trims surrounding whitespace.
// Non-ASCII runes whose lower case is ASCII (KELVIN SIGN, dotted capital I)
// are kept as they are, so they never count as a Latin letter.
func Normalize(input string) string {
	return strings.TrimSpace(strings.Map(lower, input))
}

func lower(r rune) rune {
	if r <= unicode.MaxASCII {
		return unicode.ToLower(r)
	}
	if l := unicode.ToLower(r); l > unicode.MaxASCII {
		return l
	}
	return r
}

// Evaluate scores input against every rule in the set.
// It never fails: any string, including empty, yields a well-formed report.
func Evaluate(rs rules.RuleSet, input string) Report {
	report := Report{Violations: []Violation{}}

	text := Normalize(input)
	if text == "" {
		return report
	}

	rs.Each(func(l rules.Letter, rule rules.Rule) {
		if v, ok := evalRule(l, rule, text); ok {
			report.Violations = append(report.Violations, v)
			report.Total += v.Count
		}
	})

	return report
}

// evalRule checks one letter's rule against normalized text
func evalRule(l rules.Letter, rule rules.Rule, text string) (Violation, bool) {
	switch r := rule.(type) {
	case rules.Simple:
		if r.Allowed {
			return Violation{}, false
		}
		count := strings.Count(text, l.String())
		if count == 0 {
			return Violation{}, false
		}
		return Violation{Letter: l, Kind: KindSimple, Count: count}, true
	case rules.Conditional:
		if r.Matcher == nil {
			return Violation{}, false
		}
		count := r.Matcher.Matches(text)
		if count == 0 {
			return Violation{}, false
		}
		return Violation{Letter: l, Kind: KindConditional, Count: count, Result: r.Result}, true
	default:
		return Violation{}, false
	}
}
