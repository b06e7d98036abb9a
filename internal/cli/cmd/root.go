// Package cmd provides Cobra CLI commands for webfonts.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/webfonts/internal/cli"
	"github.com/bnema/webfonts/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "webfonts",
		Short: "Google Webfonts settings for the Woo Framework",
		Long: `webfonts serves the Google Webfonts options page of a Woo Framework theme.

The options page lets an administrator store the Google Developer API key and
shows which framework fonts and newly introduced fonts the theme uses.

Use 'webfonts serve' to start the admin server, or the fonts, apikey and theme
subcommands to inspect and change the same settings from a terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			if skipAppInit(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.AppOptions{ConfigFile: configFile})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
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
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/webfonts/config.toml)")
}

func skipAppInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "version":
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "config"
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
