package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log      LogConfig
	Feedback FeedbackConfig
	UI       UIConfig
	Intro    IntroConfig
}

// LogConfig controls where structured logs go. An empty path disables them.
type LogConfig struct {
	Path  string
	Level string
}

// FeedbackConfig holds where users are sent to report problems.
type FeedbackConfig struct {
	URL string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartScreen string `mapstructure:"start_screen"`
}

// IntroConfig seeds the intro screen's status flags.
type IntroConfig struct {
	JustRevokedSelf            string `mapstructure:"just_revoked_self"`
	JustDeletedSelf            string `mapstructure:"just_deleted_self"`
	JustLoginFromRevokedDevice bool   `mapstructure:"just_login_from_revoked_device"`
}

// DefaultPath is the config file used when neither an explicit path nor
// LOGINFLOW_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "loginflow", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// LOGINFLOW_. An explicit path must exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("feedback.url", "https://keybase.io/docs/bug_reporting")
	v.SetDefault("ui.start_screen", "splash")
	v.SetDefault("intro.just_revoked_self", "")
	v.SetDefault("intro.just_deleted_self", "")
	v.SetDefault("intro.just_login_from_revoked_device", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("LOGINFLOW_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LOGINFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to path as toml, creating the directory if needed. It is
// used to write a starter config file.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("feedback.url", cfg.Feedback.URL)
	v.Set("ui.start_screen", cfg.UI.StartScreen)
	v.Set("intro.just_revoked_self", cfg.Intro.JustRevokedSelf)
	v.Set("intro.just_deleted_self", cfg.Intro.JustDeletedSelf)
	v.Set("intro.just_login_from_revoked_device", cfg.Intro.JustLoginFromRevokedDevice)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
