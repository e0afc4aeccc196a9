package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"checker/internal/cli"
	"checker/internal/config"
	"checker/internal/discovery"
	"checker/internal/execution"
	"checker/internal/loader"
	"checker/internal/logger"
	"checker/internal/storage"
	"checker/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Check  *CheckCommand
	Run    *RunCommand
	List   *ListCommand
	Browse *BrowseCommand
	Demo   *DemoCommand
	Worker *WorkerCommand

	logger *logger.Logger
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, log *logger.Logger) *Commands {
	// Initialize dependencies
	formatter := ui.NewFormatter(cfg)
	pf := newPreflight(cfg, loader.NewLoader(), formatter, log.Named("preflight"))
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	runner := execution.NewRunner(log.Named("runner"))
	supervisor := execution.NewSupervisor(cfg, log.Named("supervisor"))
	jsonStorage := storage.NewJSONStorage(cfg)
	browser := ui.NewBrowser(cfg)

	check := NewCheckCommand(cfg, pf, jsonStorage, formatter, log.Named("check"))

	return &Commands{
		Check:  check,
		Run:    NewRunCommand(check, runner),
		List:   NewListCommand(cfg, pf, scanner, filter, formatter),
		Browse: NewBrowseCommand(pf, browser),
		Demo:   NewDemoCommand(cfg, supervisor, formatter),
		Worker: NewWorkerCommand(cfg),
		logger: log,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVarP(&flags.RootPath, "root", "r", "", "Checker root folder (default \"checker\")")
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "Configuration file, relative to the root unless absolute (default \"config.json\")")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		c.logger.SetLevel(cfg.LogLevel)
		c.logger.Debug("configuration resolved",
			zap.String("root", cfg.RootPath),
			zap.String("config", cfg.GetConfigPath()),
			zap.String("command", cmd.Name()))
		return nil
	}

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the checker configuration and test layout",
		Long:  "Load the JSON configuration, check its structure and make sure every test folder and test.m file exists",
		RunE:  c.Check.Execute,
	}
	checkCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Do not show the layout progress bar")
	rootCmd.AddCommand(checkCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Check the configuration, then run all test groups",
		Long:  "Validate the configuration and run every test group. Test execution is not implemented yet and fails after validation.",
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Do not show the layout progress bar")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List configured test groups and tests",
		Long:  "Print the test groups and tests of the configuration without checking the folder layout",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'loop*' or '*matrix*')")
	listCmd.Flags().BoolVarP(&flags.Undeclared, "undeclared", "u", false, "Also list test folders on disk that the configuration does not declare")
	rootCmd.AddCommand(listCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse test groups interactively",
		Long:  "Display the configured test groups and tests in an interactive viewer",
		RunE:  c.Browse.Execute,
	}
	rootCmd.AddCommand(browseCmd)

	// Demo command
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a worker under a deadline",
		Long:  "Start a worker process that sleeps, wait up to the deadline and terminate it if it is still running",
		RunE:  c.Demo.Execute,
	}
	demoCmd.Flags().DurationVar(&flags.Sleep, "sleep", config.DefaultWorkerSleep, "How long the worker sleeps")
	demoCmd.Flags().DurationVar(&flags.Deadline, "deadline", 0, "How long to wait for the worker (default 2s)")
	demoCmd.Flags().DurationVar(&flags.Grace, "grace", 0, "How long a terminated worker may take to exit before it is killed (default 500ms)")
	rootCmd.AddCommand(demoCmd)

	// Worker command
	workerCmd := &cobra.Command{
		Use:    "worker",
		Short:  "Sleep, then report; used by demo",
		Hidden: true,
		RunE:   c.Worker.Execute,
	}
	workerCmd.Flags().DurationVar(&flags.Sleep, "sleep", config.DefaultWorkerSleep, "How long to sleep")
	rootCmd.AddCommand(workerCmd)
}
