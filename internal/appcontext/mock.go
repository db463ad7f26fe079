package appcontext

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/agentstation/addrename/internal/config"
	"github.com/agentstation/addrename/internal/panos"
	"github.com/agentstation/addrename/internal/prompt"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	SettingsFunc     func() (*config.Settings, error)
	ConnectFunc      func(context.Context, *config.Settings) (*panos.Session, error)

	// In feeds the default prompter.
	In io.Reader

	viper    *viper.Viper
	prompter *prompt.Prompter
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Viper returns a settings store holding only defaults.
func (m *Mock) Viper() *viper.Viper {
	if m.viper == nil {
		m.viper = viper.New()
		config.SetDefaults(m.viper)
	}
	return m.viper
}

// Settings returns settings using the mock function or the decoded defaults.
func (m *Mock) Settings() (*config.Settings, error) {
	if m.SettingsFunc != nil {
		return m.SettingsFunc()
	}
	return config.Load(m.Viper())
}

// Prompter returns a prompter reading from In and discarding output.
func (m *Mock) Prompter() *prompt.Prompter {
	if m.prompter == nil {
		in := m.In
		if in == nil {
			in = eofReader{}
		}
		m.prompter = prompt.New(in, io.Discard)
	}
	return m.prompter
}

// Connect returns a session using the mock function or an error-free nil.
func (m *Mock) Connect(ctx context.Context, s *config.Settings) (*panos.Session, error) {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx, s)
	}
	return nil, nil
}

// Version returns "dev".
func (m *Mock) Version() string { return "dev" }

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
