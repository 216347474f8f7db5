package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/uos-projects/pages/config"
	"github.com/uos-projects/pages/internal/content"
	"github.com/uos-projects/pages/internal/locale"
	"github.com/uos-projects/pages/internal/metrics"
	"github.com/uos-projects/pages/internal/rest"
	"github.com/uos-projects/pages/internal/site"
)

type App struct {
	Manager  *site.Manager
	Logger   *slog.Logger
	Echo     *echo.Echo
	Config   config.Config
	Registry *prometheus.Registry

	watcher *site.Watcher
}

// New loads the locale table and prepares the content manager. Content is
// not read until Load or Run.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	table, err := locale.LoadTable(os.DirFS(cfg.I18n.Dir), ".", Languages(cfg.I18n), cfg.I18n.Default, cfg.I18n.Messages)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)

	manager := site.NewManager(os.DirFS(cfg.Content.Dir), Definitions(cfg.Content), table, logger)
	handler := rest.NewHandler(manager, logger)

	return &App{
		Manager:  manager,
		Logger:   logger,
		Echo:     handler.RegisterRoutes(cfg.App.PublicDir, reg),
		Config:   cfg,
		Registry: reg,
	}, nil
}

// Load reads all collections once.
func (a *App) Load(ctx context.Context) (*site.Snapshot, error) {
	return a.Manager.Reload(ctx)
}

// Start loads content and optionally starts the watcher. It must return
// before Serve and GracefulShutdown are called.
func (a *App) Start(ctx context.Context, watch bool) error {
	if _, err := a.Load(ctx); err != nil {
		return err
	}

	if watch {
		w, err := site.NewWatcher(a.Config.Content.Dir, a.Config.Content.Debounce, a.Manager, a.Logger)
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		a.watcher = w
	}

	return nil
}

// Serve blocks until the server is shut down.
func (a *App) Serve() error {
	addr := net.JoinHostPort(a.Config.App.Host, strconv.Itoa(a.Config.App.Port))
	a.Logger.Info("preview server listening", "addr", addr)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			a.Logger.Warn("stop watcher", "error", err)
		}
	}

	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Export loads content and writes it to dir.
func (a *App) Export(ctx context.Context, dir string) error {
	if _, err := a.Load(ctx); err != nil {
		return err
	}
	return a.Manager.Export(dir)
}

func Languages(cfg config.I18n) []locale.Language {
	languages := make([]locale.Language, len(cfg.Languages))
	for i, l := range cfg.Languages {
		languages[i] = locale.Language{Code: l.Code, Name: l.Name}
	}
	return languages
}

func Definitions(cfg config.Content) []content.Definition {
	defs := make([]content.Definition, len(cfg.Collections))
	for i, c := range cfg.Collections {
		defs[i] = content.Definition{
			Name:    c.Name,
			Dir:     filepath.ToSlash(c.Dir),
			Pattern: c.Pattern,
		}
	}
	return defs
}
