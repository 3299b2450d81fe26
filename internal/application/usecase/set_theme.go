package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/isitdark/internal/application/port"
	"github.com/bnema/isitdark/internal/logging"
)

// SetThemeUseCase switches the system theme.
type SetThemeUseCase struct {
	capability port.ThemeCapability
}

// NewSetThemeUseCase creates a new use case.
func NewSetThemeUseCase(capability port.ThemeCapability) *SetThemeUseCase {
	return &SetThemeUseCase{capability: capability}
}

// SetThemeInput selects the requested side.
type SetThemeInput struct {
	Dark bool
}

// SetThemeOutput reports the outcome of a switch.
type SetThemeOutput struct {
	Dark bool
	// Applied is whether the requested side is in effect afterwards.
	Applied bool
}

// Execute performs the switch. Failures are never redirected to a fallback.
func (uc *SetThemeUseCase) Execute(ctx context.Context, input SetThemeInput) (*SetThemeOutput, error) {
	ctx = logging.WithComponent(ctx, "set-theme")
	log := logging.FromContext(ctx)

	side := "light"
	set := uc.capability.SetLight
	if input.Dark {
		side = "dark"
		set = uc.capability.SetDark
	}

	applied, err := set(ctx)
	if err != nil {
		return nil, fmt.Errorf("set theme to %s: %w", side, err)
	}

	if !applied {
		log.Warn().Str("requested", side).Msg("theme switch was overridden")
	} else {
		log.Info().Str("theme", side).Msg("theme switched")
	}

	return &SetThemeOutput{Dark: input.Dark, Applied: applied}, nil
}
