package app

import (
	"testing"
)

// TestDetermineLogLevel tests the log level precedence logic.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default level when nothing set",
			config:   &Config{},
			expected: "info",
		},
		{
			name:     "verbose flag sets debug",
			config:   &Config{Verbose: true},
			expected: "debug",
		},
		{
			name:     "quiet flag sets warn",
			config:   &Config{Quiet: true},
			expected: "warn",
		},
		{
			name:     "explicit log-level overrides verbose",
			config:   &Config{LogLevel: "error", Verbose: true},
			expected: "error",
		},
		{
			name:     "both verbose and quiet prefers quiet",
			config:   &Config{Verbose: true, Quiet: true},
			expected: "warn",
		},
		{
			name:     "LOG_LEVEL used without flags",
			config:   &Config{EnvLogLevel: "debug"},
			expected: "debug",
		},
		{
			name:     "quiet beats LOG_LEVEL",
			config:   &Config{EnvLogLevel: "trace", Quiet: true},
			expected: "warn",
		},
		{
			name:     "invalid log level falls back to info",
			config:   &Config{LogLevel: "loud"},
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := determineLogLevel(tt.config)
			if result != tt.expected {
				t.Errorf("determineLogLevel() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

// TestValidateLogLevel tests log level validation.
func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		if got := validateLogLevel(level); got != level {
			t.Errorf("validateLogLevel(%q) = %q", level, got)
		}
	}
	for _, level := range []string{"", "INFO", "verbose"} {
		if got := validateLogLevel(level); got != "info" {
			t.Errorf("validateLogLevel(%q) = %q, expected info", level, got)
		}
	}
}
