// Package config provides default configuration values for isitdark.
package config

// Default configuration constants
const (
	// Schedule defaults, used when no location is configured
	defaultLightTime = "07:00"
	defaultDarkTime  = "19:00"

	// Logging defaults
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration values for isitdark.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Theme: ThemeConfig{
			DefaultDark:  false,
			DefaultLight: false,
			TimeFallback: true,
		},
		Schedule: ScheduleConfig{
			Light: defaultLightTime,
			Dark:  defaultDarkTime,
		},
	}
}
