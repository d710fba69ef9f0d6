package cli

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrNoSubcommand is returned when no subcommand is provided
var ErrNoSubcommand = errors.New("missing subcommand: usage: censor <check|rules|live> [flags] [text...]")

// ErrUnknownSubcommand is returned for anything other than check, rules or live
var ErrUnknownSubcommand = errors.New("unknown subcommand")

// ErrUnexpectedArgs is returned when positional arguments are given to rules or live
var ErrUnexpectedArgs = errors.New("unexpected arguments")

// ErrHelp is returned when -h or --help is requested
var ErrHelp = flag.ErrHelp

// Subcommand represents the CLI subcommand
type Subcommand string

const (
	SubcommandCheck Subcommand = "check"
	SubcommandRules Subcommand = "rules"
	SubcommandLive  Subcommand = "live"
)

// Command represents the parsed CLI input
type Command struct {
	Subcommand Subcommand
	Text       []string // Words to check (check only); empty means read stdin

	Format     string // --format text|json|yaml; empty defers to config
	CI         bool   // --ci
	CISet      bool   // Whether --ci was given explicitly
	ReportFile string // --report-file <path>
	ConfigPath string // --config <path>
}

// ParseArgs parses CLI arguments into a Command.
// It expects args to be os.Args[1:] (excluding the program name).
func ParseArgs(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, ErrNoSubcommand
	}

	sub := Subcommand(args[0])
	switch sub {
	case SubcommandCheck, SubcommandRules, SubcommandLive:
	case "-h", "--help", "help":
		return Command{}, ErrHelp
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownSubcommand, args[0])
	}

	cmd := Command{Subcommand: sub}

	fs := newFlagSet(sub, &cmd)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Command{}, ErrHelp
		}
		return Command{}, fmt.Errorf("%s: %w", sub, err)
	}
	cmd.CISet = fs.Changed("ci")

	rest := fs.Args()
	if sub == SubcommandCheck {
		cmd.Text = rest
	} else if len(rest) > 0 {
		return Command{}, fmt.Errorf("%w for %s: %v", ErrUnexpectedArgs, sub, rest)
	}

	return cmd, nil
}

// Usage returns the help text for all subcommands
func Usage() string {
	return `Usage: censor <subcommand> [flags]

Subcommands:
  check [text...]   Check text against the letter rules (reads stdin when no text is given)
  rules             Print the letter rule table
  live              Re-check every line read from stdin

Flags:
` + newFlagSet(SubcommandCheck, &Command{}).FlagUsages()
}

func newFlagSet(sub Subcommand, cmd *Command) *flag.FlagSet {
	fs := flag.NewFlagSet("censor "+string(sub), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cmd.Format, "format", "", "Output format: text, json or yaml")
	fs.BoolVar(&cmd.CI, "ci", false, "Emit GitHub Actions annotations")
	fs.StringVar(&cmd.ReportFile, "report-file", "", "Write the hashed report artifact to this path")
	fs.StringVar(&cmd.ConfigPath, "config", "", "Path to config file")
	return fs
}
