package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/isitdark/internal/application/usecase"
	"github.com/bnema/isitdark/internal/cli/styles"
)

var (
	getJSON     bool
	getLong     bool
	getExitCode bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print whether the theme is dark or light",
	Long: `Print "dark" or "light".

The native platform source is asked first. If it fails, the time-based
fallback answers, or the configured default when the fallback is disabled.

Examples:
  isitdark get                  # dark
  isitdark get --long           # which source answered
  isitdark get --json           # machine-readable
  isitdark get --exit-code && echo dark`,
	RunE: runGet,
}

type getResult struct {
	Theme    string `json:"theme"`
	Dark     bool   `json:"dark"`
	Source   string `json:"source"`
	Fallback bool   `json:"fallback"`
}

func init() {
	rootCmd.AddCommand(getCmd)
	addGetFlags(getCmd)
}

func addGetFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&getJSON, "json", false, "print the answer as JSON")
	cmd.Flags().BoolVarP(&getLong, "long", "l", false, "show which source answered")
	cmd.Flags().BoolVar(&getExitCode, "exit-code", false, "exit with status 1 when the theme is light")
}

func runGet(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.QueryThemeUC.Execute(app.Ctx(), usecase.QueryThemeInput{})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch {
	case getJSON:
		data, err := json.Marshal(getResult{
			Theme:    styles.SideName(out.Dark),
			Dark:     out.Dark,
			Source:   out.Source,
			Fallback: out.FellBack,
		})
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case getLong:
		renderer := styles.NewReportRenderer(app.Theme)
		fmt.Fprintln(w, renderer.RenderTheme(styles.ThemeReport{
			Dark:     out.Dark,
			Source:   out.Source,
			FellBack: out.FellBack,
		}))
	default:
		fmt.Fprintln(w, styles.SideName(out.Dark))
	}

	if getExitCode && !out.Dark {
		return &exitCodeError{code: 1}
	}
	return nil
}
