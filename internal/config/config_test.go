package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/addrename/pkg/constants"
	"github.com/agentstation/addrename/pkg/errors"
	"github.com/agentstation/addrename/pkg/reconcile"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := New("")
	require.NoError(t, err)

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultWorkers, s.Workers)
	assert.Equal(t, constants.DefaultHTTPTimeout, s.Timeout)
	assert.Equal(t, constants.ResultLogFile, s.ResultLog)
	assert.True(t, s.Override.IncludeCurrentScope)

	mode, err := s.MatchMode()
	require.NoError(t, err)
	assert.Equal(t, reconcile.MatchByValue, mode)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
host: panorama.example.com
workers: 4
timeout: 10s
match_by: name
override:
  include_current_scope: false
`), 0o600))
	t.Setenv("ADDRENAME_WORKERS", "8")
	t.Setenv("ADDRENAME_API_KEY", "LUFRPT1")
	t.Setenv("ADDRENAME_KEY_HEADER", "true")

	v, err := New(file)
	require.NoError(t, err)

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "panorama.example.com", s.Host)
	assert.Equal(t, 8, s.Workers)
	assert.Equal(t, 10*time.Second, s.Timeout)
	assert.Equal(t, "LUFRPT1", s.APIKey)
	assert.True(t, s.KeyHeader)
	assert.Equal(t, "name", s.MatchBy)
	assert.False(t, s.Override.IncludeCurrentScope)
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ADDRENAME_VSYS=vsys3\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("ADDRENAME_VSYS") })

	v, err := New("")
	require.NoError(t, err)
	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "vsys3", s.Vsys)
}

func TestMissingExplicitConfigFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestValidate(t *testing.T) {
	base := func() Settings {
		return Settings{Workers: 1, Timeout: time.Second, MatchBy: "value", ResultLog: "out.txt"}
	}
	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{"bad match mode", func(s *Settings) { s.MatchBy = "ip" }, "match_by"},
		{"zero workers", func(s *Settings) { s.Workers = 0 }, "workers"},
		{"zero timeout", func(s *Settings) { s.Timeout = 0 }, "timeout"},
		{"bad host", func(s *Settings) { s.Host = "not a host" }, "host"},
		{"empty log", func(s *Settings) { s.ResultLog = "" }, "result_log"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			var ve *errors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	s := base()
	s.Host = "https://127.0.0.1:8443"
	assert.NoError(t, s.Validate())
}
