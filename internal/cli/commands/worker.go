package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"checker/internal/config"
	"checker/internal/execution"
)

// WorkerCommand is the subordinate unit of work started by demo
type WorkerCommand struct {
	config *config.Config
}

// NewWorkerCommand creates a new WorkerCommand
func NewWorkerCommand(cfg *config.Config) *WorkerCommand {
	return &WorkerCommand{config: cfg}
}

// Execute sleeps for the configured time; SIGTERM cancels the sleep
func (wc *WorkerCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, os.Interrupt)
	defer stop()

	return execution.Work(ctx, wc.config.GetWorkerSleep(), cmd.OutOrStdout())
}
