package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/pageshell/core/theme"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	History HistoryConfig
	Log     LogConfig
}

// UIConfig holds presentation and navigation settings.
type UIConfig struct {
	Title           string
	Theme           string
	InitialLocation string `mapstructure:"initial_location"`
	NotFound        string `mapstructure:"not_found"`
	// Keys rebinds actions, e.g. back = ["b", "alt+left"].
	Keys map[string][]string
}

// HistoryConfig selects the location store. Driver is "memory" or "sqlite".
type HistoryConfig struct {
	Driver string
	Path   string
}

// LogConfig holds zap sink settings. An empty Path disables logging.
type LogConfig struct {
	Path  string
	Debug bool
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "pageshell")
}

// DefaultPath is where Load looks for config.toml when PAGESHELL_CONFIG is unset.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "pageshell", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.title", "Disaster Disruption Peripherals")
	v.SetDefault("ui.theme", theme.DefaultName)
	v.SetDefault("ui.initial_location", "/")
	v.SetDefault("ui.not_found", "blank")
	v.SetDefault("history.driver", "memory")
	v.SetDefault("history.path", filepath.Join(dataDir(), "history.db"))
	v.SetDefault("log.path", filepath.Join(dataDir(), "pageshell.log"))
	v.SetDefault("log.debug", false)
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from path (or PAGESHELL_CONFIG, or the default
// location) and env. Env var overrides use prefix PAGESHELL_.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("PAGESHELL_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PAGESHELL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the shell cannot start with.
func (c Config) Validate() error {
	if names := theme.Names(); !slices.Contains(names, c.UI.Theme) {
		return fmt.Errorf("config: unknown ui.theme %q (have %s)", c.UI.Theme, strings.Join(names, ", "))
	}
	for action, keys := range c.UI.Keys {
		if len(keys) == 0 {
			return fmt.Errorf("config: ui.keys.%s has no keys", action)
		}
	}
	switch c.History.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("config: unknown history.driver %q", c.History.Driver)
	}
	switch c.UI.NotFound {
	case "blank", "page":
	default:
		return fmt.Errorf("config: unknown ui.not_found %q", c.UI.NotFound)
	}
	if !strings.HasPrefix(strings.TrimSpace(c.UI.InitialLocation), "/") {
		return fmt.Errorf("config: ui.initial_location %q must be absolute", c.UI.InitialLocation)
	}
	return nil
}

// Save writes cfg as TOML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.initial_location", cfg.UI.InitialLocation)
	v.Set("ui.not_found", cfg.UI.NotFound)
	if len(cfg.UI.Keys) > 0 {
		v.Set("ui.keys", cfg.UI.Keys)
	}
	v.Set("history.driver", cfg.History.Driver)
	v.Set("history.path", cfg.History.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.debug", cfg.Log.Debug)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
