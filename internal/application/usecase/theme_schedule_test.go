package usecase_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/isitdark/internal/application/port"
	"github.com/bnema/isitdark/internal/application/port/mocks"
	"github.com/bnema/isitdark/internal/application/usecase"
	"github.com/bnema/isitdark/internal/domain/theme"
)

func expectScheduleState(schedule *mocks.MockThemeSchedule, mode theme.Mode) {
	schedule.EXPECT().Mode().Return(mode)
	schedule.EXPECT().IsGeoAware().Return(true)
	schedule.EXPECT().Boundaries().Return(theme.NewTimeOfDay(6, 12, 0), theme.NewTimeOfDay(20, 3, 0))
}

func TestThemeScheduleUseCase_Execute(t *testing.T) {
	t.Run("next switch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		schedule := mocks.NewMockThemeSchedule(ctrl)
		expectScheduleState(schedule, theme.ModeAuto)

		at := time.Date(2024, time.June, 21, 20, 3, 0, 0, time.UTC)
		schedule.EXPECT().NextTransition().Return(port.Transition{At: at, ToDark: true}, true, nil)

		out, err := usecase.NewThemeScheduleUseCase(schedule).
			Execute(context.Background(), usecase.ThemeScheduleInput{})

		require.NoError(t, err)
		assert.Equal(t, theme.ModeAuto, out.Mode)
		assert.True(t, out.GeoAware)
		assert.Equal(t, "06:12:00", out.Light.String())
		require.NotNil(t, out.Next)
		assert.Equal(t, at, out.Next.At)
		assert.True(t, out.Next.ToDark)
	})

	t.Run("pinned has no next switch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		schedule := mocks.NewMockThemeSchedule(ctrl)
		expectScheduleState(schedule, theme.ModeDark)
		schedule.EXPECT().NextTransition().Return(port.Transition{}, false, nil)

		var buf bytes.Buffer
		out, err := usecase.NewThemeScheduleUseCase(schedule).
			Execute(debugContext(&buf), usecase.ThemeScheduleInput{})

		require.NoError(t, err)
		assert.Equal(t, theme.ModeDark, out.Mode)
		assert.Nil(t, out.Next)
		assert.Contains(t, buf.String(), `"component":"theme-schedule"`)
	})

	t.Run("computation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		schedule := mocks.NewMockThemeSchedule(ctrl)
		expectScheduleState(schedule, theme.ModeAuto)
		schedule.EXPECT().NextTransition().Return(port.Transition{}, false, theme.Unsupported("suncalc", "calculate"))

		_, err := usecase.NewThemeScheduleUseCase(schedule).
			Execute(context.Background(), usecase.ThemeScheduleInput{})

		assert.ErrorIs(t, err, theme.ErrUnsupported)
	})

	t.Run("disabled", func(t *testing.T) {
		_, err := usecase.NewThemeScheduleUseCase(nil).
			Execute(context.Background(), usecase.ThemeScheduleInput{})

		assert.ErrorIs(t, err, usecase.ErrNoSchedule)
	})
}
