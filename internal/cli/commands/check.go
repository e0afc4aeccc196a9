package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"checker/internal/config"
	"checker/internal/domain"
	"checker/internal/storage"
	"checker/internal/ui"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config    *config.Config
	preflight *preflight
	storage   storage.Storage
	formatter *ui.Formatter
	logger    *zap.Logger
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(
	cfg *config.Config,
	pf *preflight,
	st storage.Storage,
	formatter *ui.Formatter,
	logger *zap.Logger,
) *CheckCommand {
	return &CheckCommand{
		config:    cfg,
		preflight: pf,
		storage:   st,
		formatter: formatter,
		logger:    logger,
	}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	_, err := cc.check()
	return err
}

// check validates the configuration and layout, prints it and saves the report
func (cc *CheckCommand) check() (*domain.Configuration, error) {
	start := time.Now()
	cfg, diag, err := cc.preflight.run(true)
	if cfg == nil && diag == nil {
		// Not a checker problem, e.g. unreadable or malformed JSON
		return nil, err
	}

	// The previous report is read before it is overwritten
	previous, loadErr := cc.storage.Load()
	if loadErr != nil {
		cc.logger.Debug("no previous check report", zap.Error(loadErr))
	}

	report := domain.NewReport(cc.config.RootPath, cc.config.GetConfigPath(), cfg, diag, time.Since(start))
	if saveErr := cc.storage.Save(report); saveErr != nil {
		if err == nil {
			return nil, fmt.Errorf("failed to save check report: %w", saveErr)
		}
		cc.logger.Warn("failed to save check report", zap.Error(saveErr))
	}
	if err != nil {
		return nil, err
	}

	cc.formatter.PrintConfiguration(cfg)
	cc.formatter.PrintReport(report)
	if previous != nil {
		cc.formatter.PrintPreviousReport(*previous)
	}
	return cfg, nil
}

// IsReported reports whether err was already printed as a diagnostic
func IsReported(err error) bool {
	return errors.Is(err, ErrReported)
}
