package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
		ok   bool
	}{
		{"trace", zerolog.TraceLevel, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{" info ", zerolog.InfoLevel, true},
		{"warn", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"verbose", zerolog.NoLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFrom_KeepsDefaultsForUnknownValues(t *testing.T) {
	cfg := ConfigFrom("loud", "xml")
	assert.Equal(t, DefaultConfig().Level, cfg.Level)
	assert.Equal(t, "console", cfg.Format)

	cfg = ConfigFrom("debug", "json")
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := ConfigFrom("info", "json")
	cfg.Output = &buf
	logger := New(cfg)

	logger.Debug().Msg("hidden")
	logger.Info().Str("source", "solar").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"source":"solar"`)
	assert.Contains(t, out, `"message":"shown"`)
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	cfg := ConfigFrom("debug", "json")
	cfg.Output = &buf

	ctx := WithContext(context.Background(), New(cfg))
	ctx = WithComponent(ctx, "detector")
	FromContext(ctx).Debug().Msg("resolved")

	assert.Contains(t, buf.String(), `"component":"detector"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Error().Msg("dropped")
}
