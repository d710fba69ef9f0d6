// Package table renders the per-letter rule table: one row per letter with
// its alphabet status, text status and result.
package table

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"censor/internal/rules"
)

// Color is the highlight class of a status cell
type Color string

const (
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
)

// Status is one rendered cell
type Status struct {
	Text  string `json:"text" yaml:"text"`
	Color Color  `json:"color" yaml:"color"`
}

// Row is one letter of the rule table
type Row struct {
	Letter   string `json:"letter" yaml:"letter"`
	Alphabet Status `json:"alphabet" yaml:"alphabet"`
	Text     Status `json:"text" yaml:"text"`
	Result   Status `json:"result" yaml:"result"`
}

// Allowed returns the cell for an unconditional rule
func Allowed(ok bool) Status {
	if ok {
		return Status{Text: "✓ Allowed", Color: ColorGreen}
	}
	return Status{Text: "✗ Disallowed", Color: ColorRed}
}

// Partial returns the cell for a conditional rule
func Partial(text string) Status {
	return Status{Text: "~ " + text, Color: ColorYellow}
}

// Build converts a rule set into table rows in alphabetical order.
// A conditional letter counts as allowed in the plain alphabet.
func Build(rs rules.RuleSet) []Row {
	rows := make([]Row, 0, rs.Len())
	rs.Each(func(l rules.Letter, rule rules.Rule) {
		row := Row{Letter: l.Upper()}
		switch r := rule.(type) {
		case rules.Simple:
			row.Alphabet = Allowed(r.Allowed)
			row.Text = Allowed(r.Allowed)
			row.Result = Allowed(r.Allowed)
		case rules.Conditional:
			row.Alphabet = Allowed(true)
			row.Text = Partial(r.Description)
			row.Result = Partial(r.Result)
		}
		rows = append(rows, row)
	})
	return rows
}

// Format renders rows as an aligned text table.
// Letters present in highlights are marked with their violation count.
func Format(rows []Row, highlights map[rules.Letter]int) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LETTER\tALPHABET\tTEXT\tRESULT\t")
	for _, row := range rows {
		mark := ""
		if n, ok := highlights[rowLetter(row)]; ok {
			mark = fmt.Sprintf("← %d", n)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.Letter, row.Alphabet.Text, row.Text.Text, row.Result.Text, mark)
	}
	w.Flush()
	return buf.String()
}

// FormatYAML exports rows as YAML
func FormatYAML(rows []Row) (string, error) {
	data, err := yaml.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("failed to marshal rule table: %w", err)
	}
	return string(data), nil
}

// FormatStrip renders the alphabet on one line, bracketing violated
// letters with their counts (e.g. "A [B:1] C").
func FormatStrip(rows []Row, highlights map[rules.Letter]int) string {
	var buf bytes.Buffer
	for i, row := range rows {
		if i > 0 {
			buf.WriteByte(' ')
		}
		if n, ok := highlights[rowLetter(row)]; ok {
			fmt.Fprintf(&buf, "[%s:%d]", row.Letter, n)
			continue
		}
		buf.WriteString(row.Letter)
	}
	return buf.String()
}

// rowLetter maps a row's display letter back to its rule letter
func rowLetter(row Row) rules.Letter {
	if len(row.Letter) != 1 {
		return 0
	}
	return rules.Letter(row.Letter[0] - 'A' + 'a')
}
