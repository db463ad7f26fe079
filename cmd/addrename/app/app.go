// Package app provides the application context and dependency management
// for the addrename CLI: configuration, logging, console prompts and the
// device session factory.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/agentstation/addrename/internal/appcontext"
	"github.com/agentstation/addrename/internal/config"
	"github.com/agentstation/addrename/internal/prompt"
	"github.com/agentstation/addrename/pkg/logging"
)

// App represents the addrename application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	in  io.Reader
	out io.Writer

	mu       sync.Mutex
	viper    *viper.Viper
	prompter *prompt.Prompter
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		config:  LoadConfig(),
		in:      os.Stdin,
		out:     os.Stdout,
	}

	logger := NewLogger(app.config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the requested output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Viper returns the settings store, loading it on first use. An unreadable
// config file leaves only defaults and the environment.
func (a *App) Viper() *viper.Viper {
	if err := a.loadViper(); err != nil {
		a.logger.Warn().Err(err).Msg("Falling back to default settings")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.viper == nil {
		a.viper = viper.New()
		config.SetDefaults(a.viper)
	}
	return a.viper
}

// Settings decodes the current settings.
func (a *App) Settings() (*config.Settings, error) {
	return config.Load(a.Viper())
}

// Prompter returns the console prompter.
func (a *App) Prompter() *prompt.Prompter {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.prompter == nil {
		a.prompter = prompt.New(a.in, a.out)
	}
	return a.prompter
}

// loadViper builds the settings store from the config file given on the
// command line unless one is already loaded.
func (a *App) loadViper() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.viper != nil {
		return nil
	}
	v, err := config.New(a.config.ConfigFile)
	if err != nil {
		return err
	}
	a.viper = v
	return nil
}

// setLogger installs logger on the app and as the package default.
func (a *App) setLogger(logger zerolog.Logger) {
	a.logger = &logger
	logging.SetDefault(logger)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithViper sets a preloaded settings store (useful for testing).
func WithViper(v *viper.Viper) Option {
	return func(a *App) error {
		a.viper = v
		return nil
	}
}

// WithIO sets the console streams used for prompts and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) error {
		a.in = in
		a.out = out
		return nil
	}
}
