package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/isitdark/internal/application/usecase"
	"github.com/bnema/isitdark/internal/cli/styles"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the time-based fallback and its next switch",
	Long: `Show the light/dark boundaries used when the platform cannot answer,
and when the next switch happens.

Boundaries come from sunrise and sunset when a location is configured,
otherwise from the fixed schedule times.`,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.ScheduleUC.Execute(app.Ctx(), usecase.ThemeScheduleInput{})
	if errors.Is(err, usecase.ErrNoSchedule) {
		return fmt.Errorf("%w: set theme.time_fallback = true to enable it", err)
	}
	if err != nil {
		return err
	}

	report := styles.ScheduleReport{
		Mode:     out.Mode.String(),
		GeoAware: out.GeoAware,
		Light:    out.Light.String(),
		Dark:     out.Dark.String(),
	}
	if out.Next != nil {
		report.HasNext = true
		report.Next = out.Next.At
		report.NextToDark = out.Next.ToDark
	}

	renderer := styles.NewReportRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSchedule(report, time.Now()))
	return nil
}
