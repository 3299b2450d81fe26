// Package usecase contains application business logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/isitdark/internal/application/port"
	"github.com/bnema/isitdark/internal/logging"
)

// QueryThemeUseCase answers whether the theme is currently dark.
type QueryThemeUseCase struct {
	resolver port.ThemeResolver
}

// NewQueryThemeUseCase creates a new use case.
func NewQueryThemeUseCase(resolver port.ThemeResolver) *QueryThemeUseCase {
	return &QueryThemeUseCase{resolver: resolver}
}

// QueryThemeInput contains options for a theme query.
type QueryThemeInput struct{}

// QueryThemeOutput contains the resolved theme.
type QueryThemeOutput struct {
	Dark   bool
	Source string
	// FellBack is true when the native platform source could not answer.
	FellBack bool
}

// Execute resolves the theme once.
func (uc *QueryThemeUseCase) Execute(ctx context.Context, _ QueryThemeInput) (*QueryThemeOutput, error) {
	ctx = logging.WithComponent(ctx, "query-theme")
	log := logging.FromContext(ctx)

	pref, err := uc.resolver.Resolve(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("theme fallback failed")
		return nil, fmt.Errorf("resolve theme: %w", err)
	}

	if pref.Fallback != nil {
		log.Debug().
			Err(pref.Fallback).
			Str("source", pref.Source).
			Msg("native theme source unavailable, using fallback")
	}
	log.Debug().
		Bool("dark", pref.PrefersDark).
		Str("source", pref.Source).
		Msg("theme resolved")

	return &QueryThemeOutput{
		Dark:     pref.PrefersDark,
		Source:   pref.Source,
		FellBack: pref.Fallback != nil,
	}, nil
}
