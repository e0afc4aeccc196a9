package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"checker/internal/config"
	"checker/internal/execution"
	"checker/internal/ui"
)

// DemoCommand runs the checker's own worker subcommand under a deadline
type DemoCommand struct {
	config     *config.Config
	supervisor *execution.Supervisor
	formatter  *ui.Formatter
	executable func() (string, error)
}

// NewDemoCommand creates a new DemoCommand
func NewDemoCommand(cfg *config.Config, supervisor *execution.Supervisor, formatter *ui.Formatter) *DemoCommand {
	return &DemoCommand{
		config:     cfg,
		supervisor: supervisor,
		formatter:  formatter,
		executable: os.Executable,
	}
}

// Execute runs the command
func (dc *DemoCommand) Execute(cmd *cobra.Command, args []string) error {
	self, err := dc.executable()
	if err != nil {
		return fmt.Errorf("locate checker executable: %w", err)
	}

	// Flags are applied after construction
	dc.supervisor.Deadline = dc.config.Deadline
	dc.supervisor.Grace = dc.config.Grace

	outcome, err := dc.supervisor.Run(cmd.Context(), self, "worker", "--sleep", dc.config.GetWorkerSleep().String())
	if err != nil {
		return err
	}
	dc.formatter.PrintOutcome(outcome, dc.config.Deadline)
	return nil
}
