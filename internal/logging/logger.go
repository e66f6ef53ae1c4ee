// Package logging builds the zap logger shared by the CLI and the game session.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the level and destination of log output.
type Options struct {
	Level   string // debug, info, warn, error
	File    string // empty writes to stderr
	Verbose bool   // forces debug with the human-readable encoder
}

// New builds a production logger, or a development one when Verbose is set.
func New(opts Options) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		lvl = parsed
	}

	config := zap.NewProductionConfig()
	if opts.Verbose {
		config = zap.NewDevelopmentConfig()
		lvl = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	if opts.File != "" {
		config.OutputPaths = []string{opts.File}
		config.ErrorOutputPaths = []string{opts.File}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
