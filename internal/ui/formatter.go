package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"checker/internal/config"
	"checker/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer

	header  *color.Color
	group   *color.Color
	test    *color.Color
	success *color.Color
	failure *color.Color
	plain   *color.Color
}

// NewFormatter creates a new Formatter writing to the color-aware stdout
func NewFormatter(cfg *config.Config) *Formatter {
	return NewFormatterTo(cfg, color.Output)
}

// NewFormatterTo creates a Formatter writing to out
func NewFormatterTo(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{
		config:  cfg,
		out:     out,
		header:  color.New(color.FgCyan),
		group:   color.New(color.FgCyan, color.Bold),
		test:    color.New(color.FgYellow),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		plain:   color.New(color.FgWhite),
	}
}

// PrintFatal prints an untagged fatal error, e.g. "[ FATAL ] Missing 'checker' folder!"
func (f *Formatter) PrintFatal(format string, args ...any) {
	f.failure.Fprintf(f.out, "[ FATAL ] "+format+"\n", args...)
}

// PrintDiagnostic prints a tagged diagnostic and, when known, where it was encountered
func (f *Formatter) PrintDiagnostic(diag *domain.Diagnostic) {
	f.failure.Fprintln(f.out, diag.Error())
	if diag.Field != "" && diag.Expected != "" && diag.Tag == domain.TagJSON {
		f.failure.Fprintf(f.out, "%s Field '%s' (expected %s)\n", diag.Label(), diag.Field, diag.Expected)
	}
	if diag.Detail != "" {
		f.failure.Fprintf(f.out, "%s %s\n", diag.Label(), diag.Detail)
	}
}

// PrintConfiguration prints the groups and tests as a tree
func (f *Formatter) PrintConfiguration(cfg *domain.Configuration) {
	f.success.Fprintf(f.out, "Found %d test group(s), %d test(s), total score %s:\n\n",
		len(cfg.TestGroups), cfg.TotalTests(), formatScore(cfg.TotalScore()))

	for i, group := range cfg.TestGroups {
		isLastGroup := i == len(cfg.TestGroups)-1
		connector, childPrefix := "├── ", "│   "
		if isLastGroup {
			connector, childPrefix = "└── ", "    "
		}

		f.group.Fprintf(f.out, "%s%s", connector, group.Name)
		fmt.Fprintf(f.out, " (folder: %s, expected: %s, score %s)\n", group.Folder, group.ExpectedFile, formatScore(group.TotalScore()))

		if len(group.Tests) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", childPrefix, f.failure.Sprint("(no tests)"))
			continue
		}
		for j, test := range group.Tests {
			testConnector := "├── "
			if j == len(group.Tests)-1 {
				testConnector = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s  %s\n", childPrefix, testConnector, f.test.Sprint(test.Name), formatScore(test.TestScore))
		}
	}
}

// PrintUndeclared lists test folders on disk that the configuration does not declare
func (f *Formatter) PrintUndeclared(dirs []string) {
	fmt.Fprintln(f.out)
	if len(dirs) == 0 {
		f.success.Fprintln(f.out, "✓ Every test folder on disk is declared")
		return
	}
	f.test.Fprintf(f.out, "%d test folder(s) on disk are not declared:\n", len(dirs))
	for i, dir := range dirs {
		connector := "├── "
		if i == len(dirs)-1 {
			connector = "└── "
		}
		fmt.Fprintf(f.out, "%s%s\n", connector, dir)
	}
}

// PrintReport prints the summary of a check run
func (f *Formatter) PrintReport(report domain.Report) {
	meta := report.Meta

	fmt.Fprintln(f.out)
	f.header.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	f.header.Fprintln(f.out, "║                     Configuration Check                       ║")
	f.header.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Config", meta.ConfigPath, f.plain},
		{"Root", meta.Root, f.plain},
		{"Test Groups", fmt.Sprint(meta.TotalGroups), f.plain},
		{"Tests", fmt.Sprint(meta.TotalTests), f.plain},
		{"Total Score", formatScore(meta.TotalScore), f.plain},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), f.plain},
		{"Timestamp", meta.Timestamp, f.plain},
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		row.c.Fprintf(f.out, "%-27s", truncate(row.value, 27))
		fmt.Fprintln(f.out, " │")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if meta.Valid {
		f.success.Fprintln(f.out, "✓ Configuration and layout are valid")
	} else {
		f.failure.Fprintln(f.out, "✗ Configuration is invalid")
	}
}

// PrintPreviousReport prints whether the check before this one passed
func (f *Formatter) PrintPreviousReport(report domain.Report) {
	if report.Meta.Valid {
		f.plain.Fprintf(f.out, "Previous check (%s): valid\n", report.Meta.Timestamp)
		return
	}
	f.plain.Fprintf(f.out, "Previous check (%s): invalid", report.Meta.Timestamp)
	if report.Diagnostic != nil {
		fmt.Fprintf(f.out, " %s", report.Diagnostic.Label())
	}
	fmt.Fprintln(f.out)
}

// PrintOutcome prints how a supervised worker ended
func (f *Formatter) PrintOutcome(outcome domain.Outcome, deadline time.Duration) {
	if out := strings.TrimSpace(outcome.Output); out != "" {
		fmt.Fprintln(f.out, out)
	}
	switch outcome.Status {
	case domain.TimedOut:
		f.failure.Fprintf(f.out, "Worker took more than %s to complete\n", deadline)
		if outcome.Killed {
			f.failure.Fprintln(f.out, "Worker ignored the termination request and was killed")
		}
	default:
		f.success.Fprintf(f.out, "Worker completed within %s\n", deadline)
	}
}

func formatScore(score float64) string {
	return fmt.Sprintf("%g", score)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "…" + string(r[len(r)-n+1:])
}
