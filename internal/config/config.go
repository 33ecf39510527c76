package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"lokey/internal/paths"
)

// Config represents the complete lokey workspace configuration (v2 schema)
type Config struct {
	Version       int      `json:"version" mapstructure:"version"`
	LocalePaths   []string `json:"localePaths" mapstructure:"localePaths"`
	DefaultLocale string   `json:"defaultLocale" mapstructure:"defaultLocale"`
	Locales       []string `json:"locales" mapstructure:"locales"`
	Ignore        []string `json:"ignore" mapstructure:"ignore"`

	Translator TranslatorConfig `json:"translator" mapstructure:"translator"`
	Watcher    WatcherConfig    `json:"watcher" mapstructure:"watcher"`
	Logging    LoggingConfig    `json:"logging" mapstructure:"logging"`
}

// TranslatorConfig contains machine translation service configuration
type TranslatorConfig struct {
	Endpoint  string `json:"endpoint" mapstructure:"endpoint"`
	APIKeyEnv string `json:"apiKeyEnv" mapstructure:"apiKeyEnv"`
	TimeoutMs int    `json:"timeoutMs" mapstructure:"timeoutMs"`
}

// WatcherConfig contains watch-mode configuration
type WatcherConfig struct {
	DebounceMs     int `json:"debounceMs" mapstructure:"debounceMs"`
	PollIntervalMs int `json:"pollIntervalMs" mapstructure:"pollIntervalMs"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:       2,
		LocalePaths:   []string{"locales"},
		DefaultLocale: "en",
		Locales:       []string{},
		Ignore:        []string{"node_modules", ".lokey"},
		Translator: TranslatorConfig{
			Endpoint:  "",
			APIKeyEnv: "LOKEY_TRANSLATE_KEY",
			TimeoutMs: 15000,
		},
		Watcher: WatcherConfig{
			DebounceMs:     1500,
			PollIntervalMs: 2000,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load loads configuration from .lokey/config.json, falling back to the
// defaults when no config file exists.
func Load(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 2)
	v.SetDefault("localePaths", []string{"locales"})
	v.SetDefault("defaultLocale", "en")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")
	v.SetDefault("translator.apiKeyEnv", "LOKEY_TRANSLATE_KEY")
	v.SetDefault("translator.timeoutMs", 15000)
	v.SetDefault("watcher.debounceMs", 1500)
	v.SetDefault("watcher.pollIntervalMs", 2000)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(paths.StateDir(root))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to .lokey/config.json
func (c *Config) Save(root string) error {
	if _, err := paths.EnsureStateDir(root); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(paths.StateDir(root), "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 2 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.DefaultLocale == "" {
		return &ConfigError{Field: "defaultLocale", Message: "must not be empty"}
	}
	if len(c.LocalePaths) == 0 {
		return &ConfigError{Field: "localePaths", Message: "at least one locale path is required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
