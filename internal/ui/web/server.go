// Package web serves the admin options page over HTTP.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/webfonts/internal/application/port"
	"github.com/bnema/webfonts/internal/application/settings"
	"github.com/bnema/webfonts/internal/application/usecase"
	"github.com/bnema/webfonts/internal/domain/repository"
	"github.com/bnema/webfonts/internal/ui/admin"
)

// Route paths.
const (
	PathOptionsPage = "/options-general.php"
	PathOptions     = "/options.php"
	PathUsedFonts   = "/admin/fonts/used"
)

const (
	// settingsErrorsTransient holds the errors of the last submission until
	// the redirected page shows them.
	settingsErrorsTransient = "settings_errors"
	settingsErrorsTTL       = 30 * time.Second

	defaultPurgeInterval = time.Hour
	maxFormBytes         = 64 * 1024
)

// Deps contains the collaborators of the server.
type Deps struct {
	Plugin     *admin.Plugin
	Registry   *settings.Registry
	Options    repository.OptionRepository
	Transients repository.TransientRepository
	Authorizer port.Authorizer
	Translator port.Translator
	Fonts      *usecase.ThemeFontsUseCase
	Purge      *usecase.PurgeTransientsUseCase
}

// Config holds the listener settings.
type Config struct {
	Listen          string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
	// PurgeInterval is how often expired transients are removed; 0 uses one hour.
	PurgeInterval time.Duration
}

// Server is the admin HTTP server.
type Server struct {
	cfg  Config
	deps Deps
	log  zerolog.Logger
}

// New creates a server.
func New(cfg Config, deps Deps, log zerolog.Logger) *Server {
	if cfg.PurgeInterval <= 0 {
		cfg.PurgeInterval = defaultPurgeInterval
	}
	return &Server{cfg: cfg, deps: deps, log: log}
}

// Handler returns the routed handler with logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+PathOptionsPage, s.handleOptionsPage)
	mux.HandleFunc("POST "+PathOptions, s.handleOptionsSubmit)
	mux.HandleFunc("GET "+PathUsedFonts, s.handleUsedFonts)

	var h http.Handler = mux
	h = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(h)
	h = hlog.RequestIDHandler("request_id", "X-Request-Id")(h)
	h = hlog.NewHandler(s.log)(h)
	return h
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info().Str("listen", s.cfg.Listen).Msg("admin server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", s.cfg.Listen, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.log.Info().Msg("admin server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if s.deps.Purge != nil {
		g.Go(func() error {
			s.purgeLoop(s.log.WithContext(gctx))
			return nil
		})
	}

	return g.Wait()
}

func (s *Server) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.PurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.deps.Purge.Execute(ctx); err != nil {
				s.log.Warn().Err(err).Msg("transient purge failed")
			}
		}
	}
}
