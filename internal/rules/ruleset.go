package rules

import (
	"errors"
	"fmt"
)

// ErrIncompleteRuleSet is returned when a letter has no rule
var ErrIncompleteRuleSet = errors.New("rule set must define a rule for every letter a-z")

// ErrUnknownLetter is returned when a rule is keyed by something other than a-z
var ErrUnknownLetter = errors.New("unknown letter")

// ErrNilRule is returned when a letter maps to a nil rule
var ErrNilRule = errors.New("nil rule")

// ErrUnsupportedRule is returned for a rule that is not a Simple or Conditional value
var ErrUnsupportedRule = errors.New("unsupported rule type")

// Entry pairs a letter with its rule
type Entry struct {
	Letter Letter
	Rule   Rule
}

// RuleSet is an immutable, alphabetically ordered mapping from letter to rule.
// The zero value has no rules; use New or Default.
type RuleSet struct {
	rules [26]Rule
	valid bool
}

// New builds a RuleSet from a complete letter -> rule mapping.
// Every letter a-z must be present exactly once.
func New(byLetter map[Letter]Rule) (RuleSet, error) {
	var rs RuleSet
	for l, r := range byLetter {
		if l < 'a' || l > 'z' {
			return RuleSet{}, fmt.Errorf("%w: %q", ErrUnknownLetter, rune(l))
		}
		if err := checkRule(r); err != nil {
			return RuleSet{}, fmt.Errorf("letter %s: %w", l, err)
		}
		rs.rules[l-'a'] = r
	}

	var missing []string
	for _, l := range Alphabet {
		if rs.rules[l-'a'] == nil {
			missing = append(missing, l.String())
		}
	}
	if len(missing) > 0 {
		return RuleSet{}, fmt.Errorf("%w: missing %v", ErrIncompleteRuleSet, missing)
	}

	rs.valid = true
	return rs, nil
}

// checkRule accepts only the value variants the evaluator understands
func checkRule(r Rule) error {
	switch r := r.(type) {
	case nil:
		return ErrNilRule
	case Simple:
		return nil
	case Conditional:
		if r.Matcher == nil {
			return fmt.Errorf("conditional without matcher: %w", ErrNilRule)
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedRule, r)
	}
}

// Rule returns the rule for a letter.
// Letters outside a-z, or an unbuilt RuleSet, report ok=false.
func (rs RuleSet) Rule(l Letter) (Rule, bool) {
	if !rs.valid || l < 'a' || l > 'z' {
		return nil, false
	}
	return rs.rules[l-'a'], true
}

// Len returns the number of rules (26 for any built RuleSet)
func (rs RuleSet) Len() int {
	if !rs.valid {
		return 0
	}
	return len(rs.rules)
}

// Entries returns a copy of the rules in alphabetical order
func (rs RuleSet) Entries() []Entry {
	entries := make([]Entry, 0, rs.Len())
	rs.Each(func(l Letter, r Rule) {
		entries = append(entries, Entry{Letter: l, Rule: r})
	})
	return entries
}

// Each calls fn for every letter in alphabetical order
func (rs RuleSet) Each(fn func(Letter, Rule)) {
	if !rs.valid {
		return
	}
	for i, r := range rs.rules {
		fn(Alphabet[i], r)
	}
}
