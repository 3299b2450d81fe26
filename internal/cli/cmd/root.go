// Package cmd provides Cobra CLI commands for isitdark.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/isitdark/internal/cli"
	"github.com/bnema/isitdark/internal/domain/build"
)

var (
	app        *cli.App
	appOptions cli.Options
	buildInfo  build.Info
	rootCmd    = &cobra.Command{
		Use:   "isitdark",
		Short: "Tell whether the desktop theme is dark, and switch it",
		Long: `isitdark - is the desktop theme dark right now?

Asks the platform first (xdg-desktop-portal, gsettings or GTK_THEME on Linux,
AppleInterfaceStyle on macOS, the Personalize registry key on Windows).
When the platform cannot answer, a time-based fallback decides: fixed
light/dark times of day, or sunrise and sunset at a configured location.

Run without a subcommand to print "dark" or "light".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "about", "config", "path", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOptions)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		RunE: runGet,
	}
)

// exitCodeError ends the process with a status and no message.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&appOptions.ConfigFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/isitdark/config.toml)")
	rootCmd.PersistentFlags().StringVar(&appOptions.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	addGetFlags(rootCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
