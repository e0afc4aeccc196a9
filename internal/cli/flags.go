package cli

import (
	"time"

	"checker/internal/config"
)

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		RootPath:   f.RootPath,
		ConfigFile: f.ConfigFile,
		LogLevel:   f.LogLevel,
		NameFilter: f.NameFilter,
		Undeclared: f.Undeclared,
		NoProgress: f.NoProgress,
		Sleep:      f.Sleep,
		Deadline:   f.Deadline,
		Grace:      f.Grace,
	}
}
