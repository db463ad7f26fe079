// Package logging provides structured logging for addrename using zerolog.
// Console output is used when the destination is a terminal, JSON otherwise.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("scope", "branch-dg").Int("entries", 12).Msg("Plan ready")
//
//	ctx := logging.WithScope(ctx, "branch-dg")
//	logging.FromContext(ctx).Warn().Str("object", "h-10.0.0.1").Msg("Skipped override")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger serves code that runs before the CLI configures logging
// and contexts that carry no logger.
var defaultLogger = NewLoggerFromConfig(EnvConfig())

// EnvConfig returns DefaultConfig adjusted by LOG_LEVEL, LOG_FORMAT and
// LOG_OUTPUT. DEBUG set to anything turns on debug logging when LOG_LEVEL
// is empty.
func EnvConfig() *Config {
	cfg := DefaultConfig()
	switch {
	case os.Getenv("LOG_LEVEL") != "":
		cfg.Level = os.Getenv("LOG_LEVEL")
	case os.Getenv("DEBUG") != "":
		cfg.Level = "debug"
	}
	if f := os.Getenv("LOG_FORMAT"); f != "" {
		cfg.Format = f
	}
	if o := os.Getenv("LOG_OUTPUT"); o != "" {
		cfg.Output = o
	}
	return cfg
}

// Default returns the global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the global logger, including zerolog's own.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
