package colorscheme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/isitdark/internal/application/port"
	"github.com/bnema/isitdark/internal/domain/theme"
)

var _ port.ThemeCapability = (*Windows)(nil)

// fakeRegistry holds DWORD values in memory. When pinned is set, writes
// succeed but leave the stored value unchanged.
type fakeRegistry struct {
	values  map[string]uint64
	pinned  bool
	readErr error
	setErr  error
}

func (f *fakeRegistry) getDWord(name string) (uint64, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	v, ok := f.values[name]
	if !ok {
		return 0, theme.IOError(sourceWindows, "read "+name, errors.New("value not found"))
	}
	return v, nil
}

func (f *fakeRegistry) setDWord(name string, value uint32) error {
	if f.setErr != nil {
		return f.setErr
	}
	if !f.pinned {
		f.values[name] = uint64(value)
	}
	return nil
}

func TestWindows_IsDark(t *testing.T) {
	ctx := context.Background()

	w := newWindows(&fakeRegistry{values: map[string]uint64{appsUseLightTheme: 0}})
	dark, err := w.IsDark(ctx)
	require.NoError(t, err)
	assert.True(t, dark)

	w = newWindows(&fakeRegistry{values: map[string]uint64{appsUseLightTheme: 1}})
	light, err := w.IsLight(ctx)
	require.NoError(t, err)
	assert.True(t, light)

	w = newWindows(&fakeRegistry{values: map[string]uint64{}})
	_, err = w.IsDark(ctx)
	assert.ErrorIs(t, err, theme.ErrIO)
}

func TestWindows_SetReadsBack(t *testing.T) {
	ctx := context.Background()

	t.Run("applied", func(t *testing.T) {
		reg := &fakeRegistry{values: map[string]uint64{appsUseLightTheme: 1}}
		w := newWindows(reg)

		ok, err := w.SetDark(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, uint64(0), reg.values[appsUseLightTheme])

		ok, err = w.SetLight(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, uint64(1), reg.values[appsUseLightTheme])
	})

	t.Run("pinned by policy", func(t *testing.T) {
		w := newWindows(&fakeRegistry{values: map[string]uint64{appsUseLightTheme: 1}, pinned: true})

		ok, err := w.SetDark(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("read back fails", func(t *testing.T) {
		reg := &fakeRegistry{values: map[string]uint64{}}
		reg.readErr = theme.IOError(sourceWindows, "read "+appsUseLightTheme, errors.New("access denied"))
		w := newWindows(reg)

		ok, err := w.SetDark(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("write fails", func(t *testing.T) {
		reg := &fakeRegistry{values: map[string]uint64{}}
		reg.setErr = theme.IOError(sourceWindows, "write "+appsUseLightTheme, errors.New("access denied"))
		w := newWindows(reg)

		_, err := w.SetLight(ctx)
		assert.ErrorIs(t, err, theme.ErrIO)
	})
}
