// Package config resolves the device and run settings from flags,
// environment, .env files and the config file through Viper.
package config

import (
	stderrors "errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/addrename/internal/validation"
	"github.com/agentstation/addrename/pkg/constants"
	"github.com/agentstation/addrename/pkg/errors"
	"github.com/agentstation/addrename/pkg/reconcile"
)

// Settings holds everything a run needs besides the desired list.
type Settings struct {
	Host        string        `mapstructure:"host"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	APIKey      string        `mapstructure:"api_key"`
	Insecure    bool          `mapstructure:"insecure"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Vsys        string        `mapstructure:"vsys"`
	DeviceGroup string        `mapstructure:"device_group"`
	KeyHeader   bool          `mapstructure:"key_header"`

	Workers   int                      `mapstructure:"workers"`
	MatchBy   string                   `mapstructure:"match_by"`
	DryRun    bool                     `mapstructure:"dry_run"`
	Yes       bool                     `mapstructure:"yes"`
	Override  reconcile.OverridePolicy `mapstructure:"override"`
	ResultLog string                   `mapstructure:"result_log"`
}

// New returns a Viper instance wired to the ADDRENAME_ environment, the
// .env files and the config file. An explicit configFile replaces the
// search of $HOME and the working directory.
func New(configFile string) (*viper.Viper, error) {
	LoadEnvFiles()

	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !stderrors.As(err, &notFound) {
			return nil, errors.NewConfigError("file", "cannot read config", err)
		}
	}
	return v, nil
}

// SetDefaults registers every known key so environment overrides apply
// during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("host", "")
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("api_key", "")
	v.SetDefault("insecure", false)
	v.SetDefault("timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("vsys", "")
	v.SetDefault("device_group", "")
	v.SetDefault("key_header", false)
	v.SetDefault("workers", constants.DefaultWorkers)
	v.SetDefault("match_by", string(reconcile.MatchByValue))
	v.SetDefault("dry_run", false)
	v.SetDefault("yes", false)
	v.SetDefault("override.include_current_scope", reconcile.DefaultOverridePolicy().IncludeCurrentScope)
	v.SetDefault("result_log", constants.ResultLogFile)
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.NewConfigError("settings", "cannot decode settings", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects settings no run could use.
func (s *Settings) Validate() error {
	if _, err := s.MatchMode(); err != nil {
		return err
	}
	if s.Workers < 1 {
		return errors.NewValidationError("workers", "must be at least 1")
	}
	if s.Timeout <= 0 {
		return errors.NewValidationError("timeout", "must be positive")
	}
	if s.Host != "" && !strings.Contains(s.Host, "://") {
		if err := validation.Host(s.Host); err != nil {
			return err
		}
	}
	if s.ResultLog == "" {
		return errors.NewValidationError("result_log", "must not be empty")
	}
	return nil
}

// MatchMode returns the parsed match_by setting.
func (s *Settings) MatchMode() (reconcile.MatchMode, error) {
	return reconcile.ParseMatchMode(s.MatchBy)
}

// LoadEnvFiles loads .env then .env.local. Variables already set in the
// environment win.
func LoadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
