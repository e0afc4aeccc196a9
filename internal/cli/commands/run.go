package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"checker/internal/execution"
)

// RunCommand handles the run command
type RunCommand struct {
	check    *CheckCommand
	executor execution.Executor
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(check *CheckCommand, executor execution.Executor) *RunCommand {
	return &RunCommand{
		check:    check,
		executor: executor,
	}
}

// Execute checks the configuration and then runs every test group
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := rc.check.check()
	if err != nil {
		return err
	}

	if cfg.TotalTests() == 0 {
		color.Yellow("No tests to run")
		return nil
	}

	results, err := rc.executor.RunAll(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	for _, gr := range results {
		for _, r := range gr.Results {
			fmt.Printf("%s / %s: %.0f%% %s\n", r.Group, r.Test, r.Score*100, r.Message)
		}
	}
	return nil
}
