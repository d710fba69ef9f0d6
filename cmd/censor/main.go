package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"censor/internal/artifact"
	"censor/internal/cli"
	"censor/internal/config"
	"censor/internal/engine"
	"censor/internal/logging"
	"censor/internal/reporter"
	"censor/internal/rules"
	"censor/internal/table"
)

// Exit codes
const (
	exitOK         = 0
	exitError      = 1
	exitViolations = 2
	exitConfig     = 3
)

// maxLineSize bounds a single live-mode input line
const maxLineSize = 1 << 20

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Environ())
	os.Exit(exitCode)
}

// app carries what every subcommand needs
type app struct {
	cmd    cli.Command
	cfg    *config.Config
	rs     rules.RuleSet
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// run orchestrates the full execution flow and returns the exit code.
// It is separated from main() to enable testing.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, environ []string) int {
	cmd, err := cli.ParseArgs(args)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			fmt.Fprint(stdout, cli.Usage())
			return exitOK
		}
		fmt.Fprintln(stderr, "Error:", err)
		fmt.Fprint(stderr, "\n"+cli.Usage())
		return exitError
	}

	cfg, err := config.Load(cmd.ConfigPath, environ)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}
	if err := applyFlags(cfg, cmd); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}

	logger, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}
	logger.Debug("configuration loaded",
		"source", cfg.Source, "format", cfg.Format, "ci", cfg.CI)

	a := &app{
		cmd:    cmd,
		cfg:    cfg,
		rs:     rules.Default(),
		log:    logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	switch cmd.Subcommand {
	case cli.SubcommandRules:
		return a.runRules()
	case cli.SubcommandLive:
		return a.runLive()
	default:
		return a.runCheck()
	}
}

// applyFlags lets explicit flags override the loaded configuration
func applyFlags(cfg *config.Config, cmd cli.Command) error {
	if cmd.Format != "" {
		switch f := strings.ToLower(cmd.Format); f {
		case config.FormatText, config.FormatJSON, config.FormatYAML:
			cfg.Format = f
		default:
			return fmt.Errorf("--format: %w (got %q)", config.ErrInvalidFormat, cmd.Format)
		}
	}
	if cmd.CISet {
		cfg.CI = cmd.CI
	}
	if cmd.ReportFile != "" {
		cfg.ReportFile = cmd.ReportFile
	}
	return nil
}

// runRules prints the rule table
func (a *app) runRules() int {
	rows := table.Build(a.rs)

	switch a.cfg.Format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			fmt.Fprintf(a.stderr, "Error: cannot format rule table: %v\n", err)
			return exitError
		}
		fmt.Fprintln(a.stdout, string(data))
	case config.FormatYAML:
		out, err := table.FormatYAML(rows)
		if err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return exitError
		}
		fmt.Fprint(a.stdout, out)
	default:
		fmt.Fprint(a.stdout, table.Format(rows, nil))
	}
	return exitOK
}

// runCheck evaluates the command-line text, or all of stdin, once
func (a *app) runCheck() int {
	input := strings.Join(a.cmd.Text, " ")
	if len(a.cmd.Text) == 0 {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			fmt.Fprintf(a.stderr, "Error: cannot read input: %v\n", err)
			return exitError
		}
		input = string(data)
	}

	outcome, report, err := a.evaluate(input)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitError
	}

	if err := a.printResult(outcome, report); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitError
	}

	if outcome == reporter.OutcomeFail {
		return exitViolations
	}
	return exitOK
}

// runLive mirrors the interactive page: the table is shown with an empty
// input first, then every stdin line replaces the input and is re-checked.
func (a *app) runLive() int {
	rows := table.Build(a.rs)

	outcome, report, err := a.evaluate("")
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitError
	}
	if a.cfg.Format == config.FormatText {
		fmt.Fprint(a.stdout, table.Format(rows, nil))
		fmt.Fprintln(a.stdout)
	} else if err := a.printResult(outcome, report); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitError
	}

	scanner := bufio.NewScanner(a.stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		outcome, report, err := a.evaluate(scanner.Text())
		if err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return exitError
		}

		if a.cfg.Format == config.FormatText {
			a.printLive(rows, outcome, report)
			continue
		}
		if err := a.printResult(outcome, report); err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return exitError
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(a.stderr, "Error: cannot read input: %v\n", err)
		return exitError
	}

	return exitOK
}

// evaluate runs the engine and writes the report artifact when configured
func (a *app) evaluate(input string) (reporter.Outcome, engine.Report, error) {
	report := engine.Evaluate(a.rs, input)
	outcome := reporter.Classify(input, report)
	a.log.Debug("input evaluated",
		"outcome", outcome, "letters", len(report.Violations), "total", report.Total)

	if a.cfg.ReportFile != "" {
		art := artifact.Generate(report)
		if err := art.WriteToFile(a.cfg.ReportFile); err != nil {
			return outcome, report, fmt.Errorf("cannot write report: %s: %w", a.cfg.ReportFile, err)
		}
		a.log.Debug("report written", "path", a.cfg.ReportFile, "reportVersion", art.ReportVersion)
	}

	return outcome, report, nil
}

// printResult writes one evaluation in the configured format.
// Text violations go to stderr, like the other error output.
func (a *app) printResult(outcome reporter.Outcome, report engine.Report) error {
	switch a.cfg.Format {
	case config.FormatJSON:
		out, err := reporter.FormatJSON(outcome, report)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, out)
	case config.FormatYAML:
		out, err := reporter.FormatYAML(outcome, report)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, "---")
		fmt.Fprint(a.stdout, out)
	default:
		switch {
		case outcome != reporter.OutcomeFail:
			fmt.Fprint(a.stdout, reporter.FormatCLI(outcome, report))
		case a.cfg.CI:
			fmt.Fprint(a.stderr, reporter.FormatCI(report))
		default:
			fmt.Fprint(a.stderr, reporter.FormatCLI(outcome, report))
		}
	}
	return nil
}

// printLive writes the text-mode result of one live evaluation.
// Idle input clears the result area, which here means printing nothing.
func (a *app) printLive(rows []table.Row, outcome reporter.Outcome, report engine.Report) {
	if outcome == reporter.OutcomeIdle {
		return
	}
	fmt.Fprint(a.stdout, reporter.FormatCLI(outcome, report))
	if outcome == reporter.OutcomeFail {
		fmt.Fprintln(a.stdout, table.FormatStrip(rows, reporter.Highlights(report)))
	}
	fmt.Fprintln(a.stdout)
}
