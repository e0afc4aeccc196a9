// Package logger builds the zap logger shared by the checker commands.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger and keeps its level adjustable after flags are parsed
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// ParseLevel maps a level name to a zap level, defaulting to info
func ParseLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// New builds a logger writing to stderr; format "json" selects the production encoder
func New(levelStr, format string) *Logger {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(levelStr))

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	return &Logger{Logger: l, level: cfg.Level}
}

// SetLevel changes the level of this logger and everything derived from it
func (l *Logger) SetLevel(levelStr string) {
	l.level.SetLevel(ParseLevel(levelStr))
}

// Level returns the current level
func (l *Logger) Level() zapcore.Level {
	return l.level.Level()
}
