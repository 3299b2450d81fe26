package colorscheme

import (
	"context"

	"github.com/bnema/isitdark/internal/application/port"
	"github.com/bnema/isitdark/internal/domain/theme"
)

const (
	// sourceDefault indicates no theme source answered and the configured default was used.
	sourceDefault = "default"
	// sourcePrimary names a primary capability that does not implement port.NamedSource.
	sourcePrimary = "system"
)

// FallbackDetector composes the native platform capability with an optional
// time-based fallback.
//
// Reads ask the primary first and return its answer verbatim. When the primary
// fails, the secondary answers; without a secondary, the configured default does.
// A primary failure is never surfaced from a read (permissive configuration).
//
// Writes go to the primary only and are never retried or redirected: reporting
// success against the local time model would desynchronize the reported theme
// from the real one.
type FallbackDetector struct {
	primary     port.ThemeCapability
	secondary   *SolarFallback
	defaultDark bool
}

// DetectorOption configures a FallbackDetector.
type DetectorOption func(*FallbackDetector)

// WithDefaultDark sets the answer used when the primary fails and no secondary exists.
func WithDefaultDark(dark bool) DetectorOption {
	return func(d *FallbackDetector) {
		d.defaultDark = dark
	}
}

// NewDetector binds the native capability for this platform.
// secondary may be nil.
func NewDetector(secondary *SolarFallback, opts ...DetectorOption) *FallbackDetector {
	return NewFallbackDetector(NewSystem(), secondary, opts...)
}

// NewFallbackDetector composes primary with an optional secondary.
func NewFallbackDetector(primary port.ThemeCapability, secondary *SolarFallback, opts ...DetectorOption) *FallbackDetector {
	d := &FallbackDetector{
		primary:   primary,
		secondary: secondary,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Resolve walks the fallback chain once and reports which link answered.
// Only a secondary failure is returned as an error.
func (d *FallbackDetector) Resolve(ctx context.Context) (port.ColorSchemePreference, error) {
	prefersDark, primaryErr := d.primary.IsDark(ctx)
	if primaryErr == nil {
		return port.ColorSchemePreference{
			PrefersDark: prefersDark,
			Source:      sourceName(d.primary),
		}, nil
	}

	if d.secondary != nil {
		prefersDark, err := d.secondary.IsDark(ctx)
		if err != nil {
			return port.ColorSchemePreference{}, err
		}
		return port.ColorSchemePreference{
			PrefersDark: prefersDark,
			Source:      sourceSolar,
			Fallback:    primaryErr,
		}, nil
	}

	return port.ColorSchemePreference{
		PrefersDark: d.defaultDark,
		Source:      sourceDefault,
		Fallback:    primaryErr,
	}, nil
}

// IsDark implements port.ThemeCapability.
func (d *FallbackDetector) IsDark(ctx context.Context) (bool, error) {
	pref, err := d.Resolve(ctx)
	if err != nil {
		return false, err
	}
	return pref.PrefersDark, nil
}

// IsLight implements port.ThemeCapability.
func (d *FallbackDetector) IsLight(ctx context.Context) (bool, error) {
	return theme.Invert(d.IsDark(ctx))
}

// SetDark implements port.ThemeCapability.
func (d *FallbackDetector) SetDark(ctx context.Context) (bool, error) {
	return d.primary.SetDark(ctx)
}

// SetLight implements port.ThemeCapability.
func (d *FallbackDetector) SetLight(ctx context.Context) (bool, error) {
	return d.primary.SetLight(ctx)
}

// Secondary returns the time-based fallback, or nil.
func (d *FallbackDetector) Secondary() *SolarFallback {
	return d.secondary
}

func sourceName(c port.ThemeCapability) string {
	if named, ok := c.(port.NamedSource); ok {
		return named.Name()
	}
	return sourcePrimary
}
