package reporter

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"censor/internal/engine"
)

// ReportJSON is the machine-readable form of a report
type ReportJSON struct {
	Outcome    Outcome         `json:"outcome" yaml:"outcome"`
	Compliant  bool            `json:"compliant" yaml:"compliant"`
	Total      int             `json:"total" yaml:"total"`
	Violations []ViolationJSON `json:"violations" yaml:"violations"`
}

// ViolationJSON represents a single violation in JSON/YAML output
type ViolationJSON struct {
	Letter string      `json:"letter" yaml:"letter"`
	Kind   engine.Kind `json:"kind" yaml:"kind"`
	Count  int         `json:"count" yaml:"count"`
	Result string      `json:"result,omitempty" yaml:"result,omitempty"`
}

// NewReportJSON converts a report into its serializable form
func NewReportJSON(outcome Outcome, report engine.Report) ReportJSON {
	out := ReportJSON{
		Outcome:    outcome,
		Compliant:  report.Compliant(),
		Total:      report.Total,
		Violations: make([]ViolationJSON, 0, len(report.Violations)),
	}
	for _, v := range report.Violations {
		out.Violations = append(out.Violations, ViolationJSON{
			Letter: v.Letter.String(),
			Kind:   v.Kind,
			Count:  v.Count,
			Result: v.Result,
		})
	}
	return out
}

// FormatViolation formats a single violation as one line
func FormatViolation(v engine.Violation) string {
	line := fmt.Sprintf("  %s: %d instance(s) (%s)", v.Letter.Upper(), v.Count, v.Kind)
	if v.Result != "" {
		line += " - " + v.Result
	}
	return line
}

// FormatCLI formats a report for terminal output.
// The idle outcome renders nothing.
func FormatCLI(outcome Outcome, report engine.Report) string {
	switch outcome {
	case OutcomeIdle:
		return ""
	case OutcomePass:
		return "✓ Text follows all letter rules\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("✗ Letter rules broken: %d letter(s)\n\n", len(report.Violations)))
	for _, v := range report.Violations {
		sb.WriteString(FormatViolation(v))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d instance(s)\n", report.Total))
	return sb.String()
}

// FormatCI formats violations as GitHub Actions error annotations
func FormatCI(report engine.Report) string {
	if report.Compliant() {
		return ""
	}

	var sb strings.Builder
	for _, v := range report.Violations {
		msg := fmt.Sprintf("Letter %s used %d time(s)", v.Letter.Upper(), v.Count)
		if v.Result != "" {
			msg += fmt.Sprintf(" (%s)", v.Result)
		}
		sb.WriteString(fmt.Sprintf("::error::%s\n", msg))
	}
	sb.WriteString(fmt.Sprintf("\n✗ Letter check failed: %d instance(s) across %d letter(s)\n",
		report.Total, len(report.Violations)))
	return sb.String()
}

// FormatJSON formats a report as indented JSON
func FormatJSON(outcome Outcome, report engine.Report) (string, error) {
	data, err := json.MarshalIndent(NewReportJSON(outcome, report), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

// FormatYAML formats a report as YAML
func FormatYAML(outcome Outcome, report engine.Report) (string, error) {
	data, err := yaml.Marshal(NewReportJSON(outcome, report))
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}
