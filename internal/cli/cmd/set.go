package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/isitdark/internal/application/usecase"
	"github.com/bnema/isitdark/internal/cli/styles"
)

var setCmd = &cobra.Command{
	Use:   "set dark|light",
	Short: "Switch the desktop theme",
	Long: `Switch the desktop theme through the native platform source.

The time-based fallback is never used for writes: on a platform without a
native source this command fails. When the desktop still reports the other
side afterwards (for example GTK_THEME forces a variant), a warning is
printed and the exit status is 1.

Examples:
  isitdark set dark
  isitdark set light`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"dark", "light"},
	RunE:      runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.SetThemeUC.Execute(app.Ctx(), usecase.SetThemeInput{Dark: args[0] == "dark"})
	if err != nil {
		return err
	}

	renderer := styles.NewReportRenderer(app.Theme)
	if !out.Applied {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderSwitched(out.Dark, false))
		return &exitCodeError{code: 1}
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSwitched(out.Dark, true))
	return nil
}
