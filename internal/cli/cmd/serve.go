package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/webfonts/internal/infrastructure/config"
	"github.com/bnema/webfonts/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin options page server",
	Long: `Serve the Google Webfonts options page over HTTP.

The page is protected by HTTP basic auth using admin.username and
admin.password_hash from the config file. Expired transients are purged
hourly while the server runs.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	srv, err := app.NewServer()
	if err != nil {
		return err
	}

	app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
		app.Catalog.Reset(cfg.Catalog.Path)
		log.Info().Str("level", cfg.Logging.Level).Msg("config reloaded")
	})
	if err := app.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	if err := srv.Run(ctx); err != nil {
		return err
	}
	log.Info().Msg("admin server stopped")
	return nil
}
