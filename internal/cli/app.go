// Package cli wires configuration, logging and use cases for the CLI commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/isitdark/internal/application/port"
	"github.com/bnema/isitdark/internal/application/usecase"
	"github.com/bnema/isitdark/internal/cli/styles"
	"github.com/bnema/isitdark/internal/config"
	"github.com/bnema/isitdark/internal/domain/build"
	"github.com/bnema/isitdark/internal/infrastructure/colorscheme"
	"github.com/bnema/isitdark/internal/logging"
)

// Options controls how the App is assembled.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// LogLevel overrides logging.level when non-empty.
	LogLevel string
	// Primary overrides the native capability for this platform.
	Primary port.ThemeCapability
	// SolarOptions are passed to the time-based fallback.
	SolarOptions []colorscheme.SolarOption
}

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info
	Detector   *colorscheme.FallbackDetector

	// Use cases
	QueryThemeUC *usecase.QueryThemeUseCase
	SetThemeUC   *usecase.SetThemeUseCase
	ScheduleUC   *usecase.ThemeScheduleUseCase

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	logCfg := logging.ConfigFrom(logLevel, cfg.Logging.Format)
	logCfg.TimeFormat = "15:04:05"
	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)

	primary := opts.Primary
	if primary == nil {
		primary = colorscheme.NewSystem()
	}
	detector, err := colorscheme.DetectorFromConfig(cfg, primary, opts.SolarOptions...)
	if err != nil {
		return nil, fmt.Errorf("build detector: %w", err)
	}

	// A nil *SolarFallback must not become a non-nil interface.
	var schedule port.ThemeSchedule
	if secondary := detector.Secondary(); secondary != nil {
		schedule = secondary
	}

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Bool("time_fallback", schedule != nil).
		Msg("app initialized")

	return &App{
		Config:       cfg,
		ConfigFile:   mgr.GetConfigFile(),
		Theme:        styles.NewTheme(),
		Detector:     detector,
		QueryThemeUC: usecase.NewQueryThemeUseCase(detector),
		SetThemeUC:   usecase.NewSetThemeUseCase(detector),
		ScheduleUC:   usecase.NewThemeScheduleUseCase(schedule),
		ctx:          ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
