// Package appcontext provides the shared application context interface
// used by all commands.
package appcontext

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/agentstation/addrename/internal/config"
	"github.com/agentstation/addrename/internal/panos"
	"github.com/agentstation/addrename/internal/prompt"
)

// Interface defines what commands need from the application. The App in
// cmd/addrename/app implements it; tests substitute their own.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Viper returns the settings store flags are bound to.
	Viper() *viper.Viper

	// Settings decodes and validates the current settings.
	Settings() (*config.Settings, error)

	// Prompter returns the console prompter.
	Prompter() *prompt.Prompter

	// Connect opens an authenticated session to the configured device,
	// prompting for whatever the settings leave out.
	Connect(ctx context.Context, s *config.Settings) (*panos.Session, error)

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
