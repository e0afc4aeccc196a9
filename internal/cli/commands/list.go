package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"checker/internal/config"
	"checker/internal/discovery"
	"checker/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	preflight *preflight
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	pf *preflight,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		preflight: pf,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, _, err := lc.preflight.run(false)
	if err != nil {
		return err
	}

	filtered := lc.filter.FilterByName(cfg, lc.config.Flags.NameFilter)
	if len(filtered.TestGroups) == 0 {
		color.Yellow("No tests found")
	} else {
		lc.formatter.PrintConfiguration(filtered)
	}

	if !lc.config.Flags.Undeclared {
		return nil
	}
	testDirs, err := lc.scanner.Scan(lc.config.RootPath)
	if err != nil {
		return err
	}
	lc.formatter.PrintUndeclared(discovery.Undeclared(cfg, testDirs))
	return nil
}
