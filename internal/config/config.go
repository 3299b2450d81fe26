// Package config provides configuration management for isitdark with Viper integration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config represents the complete configuration for isitdark.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Theme    ThemeConfig    `mapstructure:"theme" toml:"theme" json:"theme"`
	Location LocationConfig `mapstructure:"location" toml:"location" json:"location"`
	Schedule ScheduleConfig `mapstructure:"schedule" toml:"schedule" json:"schedule"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// ThemeConfig controls the fallback chain.
type ThemeConfig struct {
	// DefaultDark makes "dark" the answer when no source can report the theme.
	// Mutually exclusive with DefaultLight.
	DefaultDark bool `mapstructure:"default_dark" toml:"default_dark" json:"default_dark"`
	// DefaultLight makes "light" the answer when no source can report the theme.
	// This is also what happens when neither option is set.
	DefaultLight bool `mapstructure:"default_light" toml:"default_light" json:"default_light"`
	// TimeFallback enables the time-based fallback when the platform cannot answer.
	TimeFallback bool `mapstructure:"time_fallback" toml:"time_fallback" json:"time_fallback"`
}

// LocationConfig places the observer for sunrise/sunset computation.
// All-zero coordinates disable solar computation in favor of Schedule.
type LocationConfig struct {
	Latitude  float64 `mapstructure:"latitude" toml:"latitude" json:"latitude" jsonschema:"minimum=-90,maximum=90"`
	Longitude float64 `mapstructure:"longitude" toml:"longitude" json:"longitude" jsonschema:"minimum=-180,maximum=180"`
	// Elevation above sea level in meters.
	Elevation float64 `mapstructure:"elevation" toml:"elevation" json:"elevation"`
}

// ScheduleConfig holds fixed light/dark times of day ("HH:MM" or "HH:MM:SS"),
// used when no location is configured.
type ScheduleConfig struct {
	Light string `mapstructure:"light" toml:"light" json:"light"`
	Dark  string `mapstructure:"dark" toml:"dark" json:"dark"`
}

// Manager handles configuration loading.
type Manager struct {
	config *Config
	viper  *viper.Viper
	mu     sync.RWMutex
}

// NewManager creates a new configuration manager.
// An empty configFile searches the XDG config directory and the working directory.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config") // Name without extension
		v.SetConfigType("toml")

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}

	// Set up environment variable support (ISITDARK_THEME_DEFAULT_DARK, ...)
	v.SetEnvPrefix("ISITDARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "ISITDARK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind ISITDARK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "ISITDARK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind ISITDARK_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error unless it was named explicitly.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w\nCheck the file format (must be valid TOML) and permissions", err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used,
// or an empty string when running on defaults.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}
	config.Schedule.Light = strings.TrimSpace(config.Schedule.Light)
	config.Schedule.Dark = strings.TrimSpace(config.Schedule.Dark)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Logging defaults
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	// Theme defaults
	m.viper.SetDefault("theme.default_dark", defaults.Theme.DefaultDark)
	m.viper.SetDefault("theme.default_light", defaults.Theme.DefaultLight)
	m.viper.SetDefault("theme.time_fallback", defaults.Theme.TimeFallback)

	// Location defaults
	m.viper.SetDefault("location.latitude", defaults.Location.Latitude)
	m.viper.SetDefault("location.longitude", defaults.Location.Longitude)
	m.viper.SetDefault("location.elevation", defaults.Location.Elevation)

	// Schedule defaults
	m.viper.SetDefault("schedule.light", defaults.Schedule.Light)
	m.viper.SetDefault("schedule.dark", defaults.Schedule.Dark)
}
