package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Theme.DefaultDark)
	assert.False(t, cfg.Theme.DefaultLight)
	assert.True(t, cfg.Theme.TimeFallback)
	assert.Equal(t, "07:00", cfg.Schedule.Light)
	assert.Equal(t, "19:00", cfg.Schedule.Dark)
	assert.NoError(t, validateConfig(cfg))
}

func TestManager_LoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Empty(t, mgr.GetConfigFile())
}

func TestManager_LoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[theme]
default_dark = true
time_fallback = false

[location]
latitude = 48.85
longitude = 2.35
elevation = 35

[logging]
level = "DEBUG"
format = "text"
`)

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.True(t, cfg.Theme.DefaultDark)
	assert.False(t, cfg.Theme.TimeFallback)
	assert.InDelta(t, 48.85, cfg.Location.Latitude, 1e-9)
	assert.InDelta(t, 2.35, cfg.Location.Longitude, 1e-9)
	assert.InDelta(t, 35, cfg.Location.Elevation, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "07:00", cfg.Schedule.Light)
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestManager_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "[theme]\ndefault_light = false\n")
	t.Setenv("ISITDARK_THEME_DEFAULT_DARK", "true")
	t.Setenv("ISITDARK_LOG_LEVEL", "error")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.True(t, mgr.Get().Theme.DefaultDark)
	assert.Equal(t, "error", mgr.Get().Logging.Level)
}

func TestManager_LoadRejectsConflictingDefaults(t *testing.T) {
	path := writeConfig(t, "[theme]\ndefault_dark = true\ndefault_light = true\n")

	mgr, err := NewManager(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot both be enabled")
}

func TestManager_LoadMissingExplicitFile(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Error(t, mgr.Load())
}

func TestManager_GetReturnsCopy(t *testing.T) {
	mgr := &Manager{viper: viper.New(), config: DefaultConfig()}

	cfg := mgr.Get()
	cfg.Theme.DefaultDark = true

	assert.False(t, mgr.Get().Theme.DefaultDark)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(cfg *Config)
		errorField string
	}{
		{
			name:       "both defaults",
			mutate:     func(cfg *Config) { cfg.Theme.DefaultDark, cfg.Theme.DefaultLight = true, true },
			errorField: "theme.default_dark",
		},
		{
			name:       "latitude out of range",
			mutate:     func(cfg *Config) { cfg.Location.Latitude = 91 },
			errorField: "location.latitude",
		},
		{
			name:       "longitude out of range",
			mutate:     func(cfg *Config) { cfg.Location.Longitude = -181 },
			errorField: "location.longitude",
		},
		{
			name:       "malformed light time",
			mutate:     func(cfg *Config) { cfg.Schedule.Light = "7am" },
			errorField: "schedule.light",
		},
		{
			name:       "out of range dark time",
			mutate:     func(cfg *Config) { cfg.Schedule.Dark = "25:00" },
			errorField: "schedule.dark",
		},
		{
			name:       "unknown log level",
			mutate:     func(cfg *Config) { cfg.Logging.Level = "loud" },
			errorField: "logging.level",
		},
		{
			name:       "unknown log format",
			mutate:     func(cfg *Config) { cfg.Logging.Format = "xml" },
			errorField: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorField)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, "isitdark Configuration")
	assert.Contains(t, body, "default_dark")
	assert.Contains(t, body, "latitude")
	assert.Contains(t, body, "schedule")
}

func TestGetConfigFile_RespectsXDG(t *testing.T) {
	t.Setenv("ENV", "")
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "isitdark", "config.toml"), path)
}

func TestGetManDir_RespectsXDG(t *testing.T) {
	t.Setenv("ENV", "")
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	path, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "man", "man1"), path)
}
