package reporter

import (
	"censor/internal/engine"
	"censor/internal/rules"
)

// Outcome is the display state for an evaluated input
type Outcome string

const (
	OutcomeIdle Outcome = "idle" // No input yet; result area hidden
	OutcomePass Outcome = "pass" // Input present, no violations
	OutcomeFail Outcome = "fail" // Input present, violations found
)

// Classify maps an input and its report to a display state.
// Empty or whitespace-only input is idle even though its report is empty.
func Classify(input string, report engine.Report) Outcome {
	if engine.Normalize(input) == "" {
		return OutcomeIdle
	}
	if report.Compliant() {
		return OutcomePass
	}
	return OutcomeFail
}

// Highlights returns the violation count per letter, for marking table rows
func Highlights(report engine.Report) map[rules.Letter]int {
	marks := make(map[rules.Letter]int, len(report.Violations))
	for _, v := range report.Violations {
		marks[v.Letter] = v.Count
	}
	return marks
}
