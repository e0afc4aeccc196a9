package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"checker/internal/ui"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	preflight *preflight
	viewer    ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(pf *preflight, viewer ui.Viewer) *BrowseCommand {
	return &BrowseCommand{
		preflight: pf,
		viewer:    viewer,
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, _, err := bc.preflight.run(false)
	if err != nil {
		return err
	}
	if len(cfg.TestGroups) == 0 {
		color.Yellow("No test groups to browse")
		return nil
	}
	return bc.viewer.View(cfg)
}
