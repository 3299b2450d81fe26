package colorscheme

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/isitdark/internal/domain/theme"
)

const (
	sourcePortal = "xdg-desktop-portal"

	portalBusName    = "org.freedesktop.portal.Desktop"
	portalObjectPath = "/org/freedesktop/portal/desktop"
	portalReadOne    = "org.freedesktop.portal.Settings.ReadOne"
	portalRead       = "org.freedesktop.portal.Settings.Read"
	portalNamespace  = "org.freedesktop.appearance"
	portalKey        = "color-scheme"
)

// Values of org.freedesktop.appearance color-scheme.
const (
	portalNoPreference uint32 = 0
	portalPreferDark   uint32 = 1
	portalPreferLight  uint32 = 2
)

// colorSchemeReader reads the desktop-wide color-scheme preference.
type colorSchemeReader interface {
	ReadColorScheme(ctx context.Context) (uint32, error)
}

// Portal reads the color-scheme setting exposed by xdg-desktop-portal on the
// D-Bus session bus. It works across GNOME, KDE and wlroots desktops that ship a portal.
type Portal struct {
	connect func() (*dbus.Conn, error)
}

// NewPortal creates a portal reader using the session bus.
func NewPortal() *Portal {
	return &Portal{connect: func() (*dbus.Conn, error) {
		return dbus.ConnectSessionBus()
	}}
}

// ReadColorScheme returns the raw portal value (0 no preference, 1 dark, 2 light).
func (p *Portal) ReadColorScheme(ctx context.Context) (uint32, error) {
	conn, err := p.connect()
	if err != nil {
		return 0, theme.IOError(sourcePortal, "connect", err)
	}
	defer conn.Close()

	obj := conn.Object(portalBusName, dbus.ObjectPath(portalObjectPath))

	var value dbus.Variant
	err = obj.CallWithContext(ctx, portalReadOne, 0, portalNamespace, portalKey).Store(&value)
	if err != nil {
		// ReadOne appeared in portal v2; older portals only offer the nested-variant Read.
		if legacyErr := obj.CallWithContext(ctx, portalRead, 0, portalNamespace, portalKey).Store(&value); legacyErr != nil {
			return 0, theme.IOError(sourcePortal, "read "+portalKey, legacyErr)
		}
	}

	return decodePortalValue(value)
}

// decodePortalValue unwraps the (possibly nested) variant holding the color-scheme.
func decodePortalValue(value dbus.Variant) (uint32, error) {
	v := value.Value()
	for {
		inner, ok := v.(dbus.Variant)
		if !ok {
			break
		}
		v = inner.Value()
	}

	scheme, ok := v.(uint32)
	if !ok {
		return 0, theme.DecodeError(sourcePortal, "read "+portalKey,
			fmt.Errorf("unexpected value type %T", v))
	}
	if scheme > portalPreferLight {
		return 0, theme.DecodeError(sourcePortal, "read "+portalKey,
			fmt.Errorf("unknown color-scheme value %d", scheme))
	}
	return scheme, nil
}
