// Package cmd provides Cobra CLI commands for webwindow.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/webwindow/internal/cli"
	"github.com/bnema/webwindow/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	configFile string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "webwindow",
		Short: "Native windows hosting web content",
		Long: `webwindow opens native windows whose content is served from custom URL
schemes, with frameless chrome, drag regions declared by the page and
script messages routed back to the shell.

Windows, schemes and key bindings come from config.toml in
$XDG_CONFIG_HOME/webwindow. Scenario files replay input against the
window and content core and print every notification it emits.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "about":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: configFile, LogLevel: logLevel})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/webwindow/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
