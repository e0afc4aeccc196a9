package config

import "time"

const (
	// DefaultRootPath is the folder holding the checker configuration and test assets
	DefaultRootPath = "checker"
	// DefaultConfigFile is the configuration file name, relative to the root
	DefaultConfigFile = "config.json"
	// DefaultOutputJSONFile is the default report file name
	DefaultOutputJSONFile = "check-results.json"
	// DefaultOutputJSONDir is the default report directory
	DefaultOutputJSONDir = "storage"
	// DefaultEnvFile is loaded before the environment is parsed
	DefaultEnvFile = ".env"
	// DefaultLogLevel is the default zap level
	DefaultLogLevel = "warn"
	// DefaultLogFormat is "console" or "json"
	DefaultLogFormat = "console"
	// DefaultDeadline bounds a supervised worker
	DefaultDeadline = 2 * time.Second
	// DefaultGrace is how long a cancelled worker may take to exit before it is killed
	DefaultGrace = 500 * time.Millisecond
	// DefaultWorkerSleep is how long the demo worker sleeps
	DefaultWorkerSleep = 600 * time.Millisecond
)

// EnvPrefix prefixes every environment variable the checker reads
const EnvPrefix = "CHECKER_"

// DefaultPathsToIgnore are the directories skipped when scanning the root for test folders
var DefaultPathsToIgnore = []string{
	"node_modules",
	"storage",
}
