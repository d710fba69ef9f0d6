package engine

import "censor/internal/rules"

// Kind identifies which rule variant a violation broke
type Kind string

const (
	KindSimple      Kind = "simple"
	KindConditional Kind = "conditional"
)

// Violation is a broken rule for one letter
type Violation struct {
	Letter rules.Letter
	Kind   Kind
	Count  int    // Number of occurrences triggering the rule
	Result string // Result description (conditional rules only)
}

// Report is the outcome of one evaluation.
// Violations follow rule set order; an empty report means the input complies.
type Report struct {
	Violations []Violation
	Total      int // Sum of all violation counts
}

// Compliant returns true if the report has no violations
func (r Report) Compliant() bool {
	return len(r.Violations) == 0
}

// Lookup returns the violation recorded for a letter, if any
func (r Report) Lookup(l rules.Letter) (Violation, bool) {
	for _, v := range r.Violations {
		if v.Letter == l {
			return v, true
		}
	}
	return Violation{}, false
}
