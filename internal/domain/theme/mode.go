package theme

import "fmt"

// Mode is the override state of a synthetic theme source.
type Mode int

const (
	// ModeAuto derives dark/light from time boundaries.
	ModeAuto Mode = iota
	// ModeDark pins the source to dark.
	ModeDark
	// ModeLight pins the source to light.
	ModeLight
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeDark:
		return "dark"
	case ModeLight:
		return "light"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}
