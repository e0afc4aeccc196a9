package commands

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"checker/internal/config"
	"checker/internal/domain"
	"checker/internal/loader"
	"checker/internal/ui"
	"checker/internal/validation"
)

// ErrReported marks a fatal error whose diagnostic has already been printed
var ErrReported = errors.New("fatal error reported")

// preflight locates, loads and validates the configuration before any command acts on it
type preflight struct {
	config    *config.Config
	loader    *loader.Loader
	formatter *ui.Formatter
	logger    *zap.Logger
}

func newPreflight(cfg *config.Config, ld *loader.Loader, formatter *ui.Formatter, logger *zap.Logger) *preflight {
	return &preflight{config: cfg, loader: ld, formatter: formatter, logger: logger}
}

// run returns the validated configuration. When layout is false only the
// document shape is checked. A failing diagnostic is returned alongside the
// error so callers can record it.
func (p *preflight) run(layout bool) (*domain.Configuration, *domain.Diagnostic, error) {
	validator := validation.NewValidator(p.config.RootPath, p.logger)

	if err := validator.CheckRoot(); err != nil {
		p.formatter.PrintFatal("Missing '%s' folder!", p.config.RootPath)
		return nil, &domain.Diagnostic{Tag: domain.TagFatal, Message: err.Error()}, fmt.Errorf("%w: %w", ErrReported, err)
	}

	configPath := p.config.GetConfigPath()
	doc, err := p.loader.Load(configPath)
	if err != nil {
		if errors.Is(err, loader.ErrNotFound) {
			p.formatter.PrintFatal("Missing JSON config file (expected '%s')!", configPath)
			return nil, &domain.Diagnostic{Tag: domain.TagFatal, Message: err.Error(), Expected: configPath}, fmt.Errorf("%w: %w", ErrReported, err)
		}
		return nil, nil, err
	}
	p.logger.Debug("configuration loaded", zap.String("path", doc.Path), zap.Int("bytes", len(doc.Raw)))

	cfg, err := validator.Validate(doc.Raw)
	if err != nil {
		diag, err := p.invalid(configPath, err)
		return nil, diag, err
	}
	if !layout {
		return cfg, nil, nil
	}

	if !p.config.Flags.NoProgress && cfg.TotalTests() > 0 {
		validator.SetProgress(ui.NewProgressBar(cfg.TotalTests()))
	}
	if err := validator.CheckLayout(cfg); err != nil {
		diag, err := p.invalid(configPath, err)
		return nil, diag, err
	}
	return cfg, nil, nil
}

// invalid prints a validation diagnostic and splits it out of err
func (p *preflight) invalid(configPath string, err error) (*domain.Diagnostic, error) {
	var diag *domain.Diagnostic
	if !errors.As(err, &diag) {
		return nil, err
	}
	p.formatter.PrintDiagnostic(diag)
	p.formatter.PrintFatal("JSON config ('%s') is invalid!", configPath)
	return diag, fmt.Errorf("%w: %w", ErrReported, err)
}
