package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"

	"github.com/uos-projects/pages/internal/locale"
)

const (
	apiV1Prefix = "/api/v1"

	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"

	languagesPath    = "/languages"
	resolvePath      = "/resolve"
	dictionaryPath   = "/translations/:lang"
	translationPath  = "/translations/:lang/:key"
	collectionsPath  = "/collections"
	entriesPath      = "/collections/:name/entries"
	entryBySlugPath  = "/collections/:name/entries/*"
	diagnosticsPath  = "/diagnostics"
	reloadPath       = "/reload"
	contentTypeJSON  = "application/json"
	staticPathPrefix = "/"
)

// RegisterRoutes builds the echo server. publicDir is served as static
// files when set; gatherer backs the metrics endpoint.
func (h *Handler) RegisterRoutes(publicDir string, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.requestLogger())
	e.Use(locale.Middleware(h.manager.Table()))

	h.registerAPIRoutes(e.Group(apiV1Prefix))
	h.registerServiceRoutes(e, gatherer)

	if publicDir != "" {
		e.Static(staticPathPrefix, publicDir)
	}

	return e
}

func (h *Handler) registerAPIRoutes(g *echo.Group) {
	g.GET(languagesPath, h.Languages)
	g.GET(resolvePath, h.Resolve)
	g.GET(dictionaryPath, h.Dictionary)
	g.GET(translationPath, h.Translate)
	g.GET(collectionsPath, h.Collections)
	g.GET(entriesPath, h.Entries)
	g.GET(entryBySlugPath, h.EntryBySlug)
	g.GET(diagnosticsPath, h.Diagnostics)
	g.POST(reloadPath, h.Reload)
}

func (h *Handler) registerServiceRoutes(e *echo.Echo, gatherer prometheus.Gatherer) {
	e.GET(healthPath, h.Health)

	if gatherer != nil {
		e.GET(metricsPath, echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	e.GET(swaggerPath, h.swaggerDoc)
}

func (h *Handler) swaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "api documentation is not available")
	}
	return c.Blob(http.StatusOK, contentTypeJSON, []byte(doc))
}

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			}
			if v.Error != nil {
				h.log.Warn("HTTP request", append(attrs, "error", v.Error)...)
				return nil
			}
			h.log.Info("HTTP request", attrs...)
			return nil
		},
	})
}
