package app

import (
	"os"

	"github.com/agentstation/addrename/internal/config"
)

// Config holds the presentation and logging settings of the CLI. Device and
// run settings live in internal/config and are read through Viper.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Logging configuration. LogLevel is the --log-level flag; EnvLogLevel
	// comes from LOG_LEVEL.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig reads the environment after loading .env files. Flags are
// applied later by UpdateFromFlags.
func LoadConfig() *Config {
	config.LoadEnvFiles()

	return &Config{
		NoColor:     os.Getenv("NO_COLOR") != "",
		Format:      os.Getenv("ADDRENAME_OUTPUT"),
		ConfigFile:  os.Getenv("ADDRENAME_CONFIG"),
		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}
}

// UpdateFromFlags updates config values from parsed command flags so flag
// values take precedence over the environment.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
