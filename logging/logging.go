// Package logging builds the zap loggers used across spanviz.
//
// Nothing in spanviz logs through a global: the logger built here is passed
// down explicitly (orchestrator.New, progress.NewLogSink).
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadLevel indicates a level name zap does not know.
var ErrBadLevel = errors.New("logging: unknown level")

// New returns a logger at the given level. Development mode switches to the
// console encoder with colours and caller info; otherwise JSON is written
// to stderr with sampling disabled so every step event survives.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadLevel, level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return log.Named("spanviz"), nil
}
