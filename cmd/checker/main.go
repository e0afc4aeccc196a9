package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"checker/internal/cli"
	"checker/internal/cli/commands"
	"checker/internal/config"
	"checker/internal/logger"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "checker",
		Short:   "Automated assignment checker",
		Long:    `Validates the checker configuration and the on-disk test layout before any test is attempted.`,
		Version: version,
	}

	// Load defaults, .env and environment; flags are applied before each command runs
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, log)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !commands.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
