package colorscheme

import (
	"errors"

	"golang.org/x/sys/windows/registry"

	"github.com/bnema/isitdark/internal/domain/theme"
)

// personalizeRegistry is the HKCU Personalize key.
type personalizeRegistry struct{}

// NewWindows creates the Windows capability over the current user's registry.
func NewWindows() *Windows {
	return newWindows(personalizeRegistry{})
}

func (personalizeRegistry) getDWord(name string) (uint64, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return 0, theme.IOError(sourceWindows, "open "+personalizeKey, err)
	}
	defer key.Close()

	v, _, err := key.GetIntegerValue(name)
	if err != nil {
		if errors.Is(err, registry.ErrUnexpectedType) {
			return 0, theme.DecodeError(sourceWindows, "read "+name, err)
		}
		return 0, theme.IOError(sourceWindows, "read "+name, err)
	}
	return v, nil
}

func (personalizeRegistry) setDWord(name string, value uint32) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.SET_VALUE)
	if err != nil {
		return theme.IOError(sourceWindows, "open "+personalizeKey, err)
	}
	defer key.Close()

	if err := key.SetDWordValue(name, value); err != nil {
		return theme.IOError(sourceWindows, "write "+name, err)
	}
	return nil
}
