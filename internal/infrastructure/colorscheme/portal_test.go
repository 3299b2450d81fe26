package colorscheme

import (
	"context"
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/isitdark/internal/domain/theme"
)

func TestDecodePortalValue(t *testing.T) {
	tests := []struct {
		name    string
		value   dbus.Variant
		want    uint32
		wantErr error
	}{
		{name: "flat", value: dbus.MakeVariant(uint32(1)), want: portalPreferDark},
		{name: "nested legacy read", value: dbus.MakeVariant(dbus.MakeVariant(uint32(2))), want: portalPreferLight},
		{name: "no preference", value: dbus.MakeVariant(uint32(0)), want: portalNoPreference},
		{name: "out of range", value: dbus.MakeVariant(uint32(7)), wantErr: theme.ErrDecode},
		{name: "wrong type", value: dbus.MakeVariant("dark"), wantErr: theme.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodePortalValue(tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPortal_ConnectFailure(t *testing.T) {
	p := &Portal{connect: func() (*dbus.Conn, error) {
		return nil, errors.New("no session bus")
	}}

	_, err := p.ReadColorScheme(context.Background())
	assert.ErrorIs(t, err, theme.ErrIO)
}
