// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"strings"

	"github.com/bnema/isitdark/internal/domain/theme"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateTheme(config)...)
	validationErrors = append(validationErrors, validateLocation(config)...)
	validationErrors = append(validationErrors, validateSchedule(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	return validationErrors
}

func validateTheme(config *Config) []string {
	if _, err := theme.ResolveDefault(config.Theme.DefaultDark, config.Theme.DefaultLight); err != nil {
		return []string{"theme.default_dark and theme.default_light cannot both be enabled"}
	}
	return nil
}

func validateLocation(config *Config) []string {
	var validationErrors []string
	if config.Location.Latitude < -90 || config.Location.Latitude > 90 {
		validationErrors = append(validationErrors, "location.latitude must be between -90 and 90")
	}
	if config.Location.Longitude < -180 || config.Location.Longitude > 180 {
		validationErrors = append(validationErrors, "location.longitude must be between -180 and 180")
	}
	return validationErrors
}

func validateSchedule(config *Config) []string {
	var validationErrors []string
	if _, err := theme.ParseTimeOfDay(config.Schedule.Light); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("schedule.light: %v", err))
	}
	if _, err := theme.ParseTimeOfDay(config.Schedule.Dark); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("schedule.dark: %v", err))
	}
	return validationErrors
}
