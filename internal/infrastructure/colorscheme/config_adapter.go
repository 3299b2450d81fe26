package colorscheme

import (
	"fmt"

	"github.com/bnema/isitdark/internal/application/port"
	"github.com/bnema/isitdark/internal/config"
	"github.com/bnema/isitdark/internal/domain/theme"
)

// SolarFallbackFromConfig builds the time-based fallback described by cfg.
// A configured location makes it geo-aware; otherwise the schedule times are used.
// It returns nil when the time fallback is disabled.
func SolarFallbackFromConfig(cfg *config.Config, opts ...SolarOption) (*SolarFallback, error) {
	if cfg == nil || !cfg.Theme.TimeFallback {
		return nil, nil
	}

	loc := cfg.Location
	if loc.Latitude != 0 || loc.Longitude != 0 || loc.Elevation != 0 {
		return NewSolarFallback(loc.Longitude, loc.Latitude, loc.Elevation, opts...)
	}

	light, err := theme.ParseTimeOfDay(cfg.Schedule.Light)
	if err != nil {
		return nil, fmt.Errorf("schedule.light: %w", err)
	}
	dark, err := theme.ParseTimeOfDay(cfg.Schedule.Dark)
	if err != nil {
		return nil, fmt.Errorf("schedule.dark: %w", err)
	}
	return NewFixedSolarFallback(light, dark, opts...), nil
}

// DetectorFromConfig composes primary with the fallback and default described by cfg.
func DetectorFromConfig(cfg *config.Config, primary port.ThemeCapability, opts ...SolarOption) (*FallbackDetector, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	defaultDark, err := theme.ResolveDefault(cfg.Theme.DefaultDark, cfg.Theme.DefaultLight)
	if err != nil {
		return nil, err
	}

	secondary, err := SolarFallbackFromConfig(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return NewFallbackDetector(primary, secondary, WithDefaultDark(defaultDark)), nil
}
