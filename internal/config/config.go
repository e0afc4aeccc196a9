package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidDuration is returned when a configured duration is not positive
var ErrInvalidDuration = errors.New("invalid duration")

// Config holds all configuration for the application
type Config struct {
	// Checker layout
	RootPath   string `env:"ROOT"`
	ConfigFile string `env:"CONFIG"`

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string `env:"OUTPUT_DIR"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	// Bounded-time worker settings
	Deadline time.Duration `env:"DEADLINE"`
	Grace    time.Duration `env:"GRACE"`

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	RootPath   string
	ConfigFile string
	LogLevel   string
	NameFilter string
	Undeclared bool
	NoProgress bool
	Sleep      time.Duration
	Deadline   time.Duration
	Grace      time.Duration
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		RootPath:       DefaultRootPath,
		ConfigFile:     DefaultConfigFile,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		Deadline:       DefaultDeadline,
		Grace:          DefaultGrace,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config from defaults, the .env file and the environment
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		// The .env file is optional
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := New()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Deadline <= 0 {
		return nil, fmt.Errorf("%w: %sDEADLINE must be positive, got %s", ErrInvalidDuration, EnvPrefix, cfg.Deadline)
	}
	if cfg.Grace <= 0 {
		return nil, fmt.Errorf("%w: %sGRACE must be positive, got %s", ErrInvalidDuration, EnvPrefix, cfg.Grace)
	}
	return cfg, nil
}

// Apply stores flags on the config and lets set flags override loaded values
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.RootPath != "" {
		c.RootPath = flags.RootPath
	}
	if flags.ConfigFile != "" {
		c.ConfigFile = flags.ConfigFile
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Deadline > 0 {
		c.Deadline = flags.Deadline
	}
	if flags.Grace > 0 {
		c.Grace = flags.Grace
	}
}

// GetConfigPath returns the configuration file path. A relative ConfigFile lives under the root.
func (c *Config) GetConfigPath() string {
	if filepath.IsAbs(c.ConfigFile) {
		return c.ConfigFile
	}
	return filepath.Join(c.RootPath, c.ConfigFile)
}

// GetOutputPath returns the full path to the report file.
// Resolves to an absolute path so check and list always agree on the file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetWorkerSleep returns how long the demo worker should sleep
func (c *Config) GetWorkerSleep() time.Duration {
	if c.Flags.Sleep > 0 {
		return c.Flags.Sleep
	}
	return DefaultWorkerSleep
}
