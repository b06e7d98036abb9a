// Package cli wires the application for the command line.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/webfonts/internal/application/settings"
	"github.com/bnema/webfonts/internal/application/usecase"
	"github.com/bnema/webfonts/internal/cli/styles"
	"github.com/bnema/webfonts/internal/domain/build"
	"github.com/bnema/webfonts/internal/domain/repository"
	"github.com/bnema/webfonts/internal/infrastructure/auth"
	"github.com/bnema/webfonts/internal/infrastructure/cache"
	"github.com/bnema/webfonts/internal/infrastructure/config"
	"github.com/bnema/webfonts/internal/infrastructure/fonts"
	"github.com/bnema/webfonts/internal/infrastructure/googlefonts"
	"github.com/bnema/webfonts/internal/infrastructure/i18n"
	"github.com/bnema/webfonts/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/webfonts/internal/infrastructure/theme"
	"github.com/bnema/webfonts/internal/logging"
	"github.com/bnema/webfonts/internal/ui/admin"
	"github.com/bnema/webfonts/internal/ui/web"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	Translator    *i18n.Translator
	Logger        zerolog.Logger

	db         *sql.DB
	Options    repository.OptionRepository
	Transients repository.TransientRepository
	FontCache  *cache.FontList
	Catalog    *fonts.CatalogLoader
	ThemeStore *theme.OptionsStore

	// Use cases
	ValidateAPIKeyUC  *usecase.ValidateAPIKeyUseCase
	APIKeyUC          *usecase.ManageAPIKeyUseCase
	ThemeFontsUC      *usecase.ThemeFontsUseCase
	RefreshFontListUC *usecase.RefreshFontListUseCase
	PurgeTransientsUC *usecase.PurgeTransientsUseCase

	// Context with logger
	ctx context.Context
}

// AppOptions selects where the configuration is read from.
type AppOptions struct {
	// ConfigFile overrides the XDG config file when set.
	ConfigFile string
}

// NewApp loads the configuration, opens the database and wires every
// use case.
func NewApp(opts AppOptions) (*App, error) {
	mgr, err := newConfigManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	translator, err := i18n.New(cfg.Locale.Language)
	if err != nil {
		return nil, fmt.Errorf("initialize translations: %w", err)
	}

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Create repositories
	optionRepo := sqlite.NewOptionRepository(db)
	transientRepo := sqlite.NewTransientRepository(db)

	fontCache := cache.NewFontList(transientRepo)
	catalog := fonts.NewCatalogLoader(cfg.Catalog.Path)
	themeStore := theme.NewOptionsStore(optionRepo)
	fetcher := googlefonts.NewClient(cfg.Google.APIBase, cfg.Google.RequestTimeout)

	// Create use cases
	validateUC := usecase.NewValidateAPIKeyUseCase(fontCache, cfg.Google.CacheKey, translator)
	apiKeyUC := usecase.NewManageAPIKeyUseCase(optionRepo, validateUC)
	themeFontsUC := usecase.NewThemeFontsUseCase(catalog, themeStore, usecase.NewResolveUsedFontsUseCase())
	refreshUC := usecase.NewRefreshFontListUseCase(fontCache, fetcher, apiKeyUC, cfg.Google.CacheKey, cfg.Google.CacheTTL)
	purgeUC := usecase.NewPurgeTransientsUseCase(transientRepo)

	logger.Debug().Str("db_path", cfg.Database.Path).Msg("database connected")

	return &App{
		Config:            cfg,
		ConfigManager:     mgr,
		Theme:             styles.NewTheme(),
		Translator:        translator,
		Logger:            logger,
		db:                db,
		Options:           optionRepo,
		Transients:        transientRepo,
		FontCache:         fontCache,
		Catalog:           catalog,
		ThemeStore:        themeStore,
		ValidateAPIKeyUC:  validateUC,
		APIKeyUC:          apiKeyUC,
		ThemeFontsUC:      themeFontsUC,
		RefreshFontListUC: refreshUC,
		PurgeTransientsUC: purgeUC,
		ctx:               ctx,
	}, nil
}

// NewServer registers the admin plugin, runs the admin_menu and admin_init
// hooks once and returns the HTTP server.
func (a *App) NewServer() (*web.Server, error) {
	registry := settings.NewRegistry()
	hooks := settings.NewHooks()

	plugin := admin.NewPlugin(admin.Deps{
		Registry:   registry,
		Hooks:      hooks,
		Fonts:      a.ThemeFontsUC,
		Validator:  a.ValidateAPIKeyUC,
		Translator: a.Translator,
		CSSBase:    a.Config.Google.CSSBase,
	})
	plugin.Init()

	ctx := logging.WithComponent(a.ctx, "admin")
	for _, event := range []string{settings.EventAdminMenu, settings.EventAdminInit} {
		if err := hooks.Run(ctx, event, nil); err != nil {
			return nil, fmt.Errorf("run %s hooks: %w", event, err)
		}
	}

	if a.Config.Admin.PasswordHash == "" {
		a.Logger.Warn().Msg("admin.password_hash is empty, every request will be denied")
	}

	srvCfg := a.Config.Server
	return web.New(web.Config{
		Listen:          srvCfg.Listen,
		ReadTimeout:     srvCfg.ReadTimeout,
		ShutdownTimeout: srvCfg.ShutdownTimeout,
	}, web.Deps{
		Plugin:     plugin,
		Registry:   registry,
		Options:    a.Options,
		Transients: a.Transients,
		Authorizer: auth.NewBasicAuthorizer(a.Config.Admin.Username, a.Config.Admin.PasswordHash),
		Translator: a.Translator,
		Fonts:      a.ThemeFontsUC,
		Purge:      a.PurgeTransientsUC,
	}, a.Logger.With().Str("component", "web").Logger()), nil
}

// Close releases all resources.
func (a *App) Close() error {
	return sqlite.Close(a.db)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

func newConfigManager(path string) (*config.Manager, error) {
	if path != "" {
		return config.NewManagerForFile(path)
	}
	return config.NewManager()
}
