package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/uos-projects/pages/internal/locale"
	"github.com/uos-projects/pages/internal/metrics"
	"github.com/uos-projects/pages/internal/site"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

type EntriesRequest struct {
	Lang     string `query:"lang"`
	Page     *int   `query:"page"`
	PageSize *int   `query:"pageSize"`
}

type ResolveRequest struct {
	Path string `query:"path"`
}

type Handler struct {
	manager *site.Manager
	log     *slog.Logger
}

func NewHandler(manager *site.Manager, log *slog.Logger) *Handler {
	return &Handler{
		manager: manager,
		log:     log,
	}
}

var errUnsupportedLanguage = errors.New("unsupported language")

// handleError logs client errors at warn level and server errors at error level.
func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	level := slog.LevelError
	if statusCode < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	h.log.Log(c.Request().Context(), level, "handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Languages handles GET /api/v1/languages
// @Summary Supported languages
// @Description Returns the default language and the supported languages in configuration order
// @Tags locale
// @Produce json
// @Success 200 {object} rest.Languages
// @Router /api/v1/languages [get]
func (h *Handler) Languages(c echo.Context) error {
	table := h.manager.Table()

	return c.JSON(http.StatusOK, Languages{
		Default:   table.Default(),
		Languages: Map(table.Languages(), NewLanguage),
	})
}

// Resolve handles GET /api/v1/resolve
// @Summary Resolve a request path
// @Description Returns the language addressed by path and the path without its language prefix
// @Tags locale
// @Produce json
// @Param path query string false "Request path, e.g. /en/about"
// @Success 200 {object} rest.Resolution
// @Failure 400 {object} map[string]string
// @Router /api/v1/resolve [get]
func (h *Handler) Resolve(c echo.Context) error {
	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	table := h.manager.Table()
	lang, rest := locale.SplitPath(req.Path, table.Codes(), table.Default())

	return c.JSON(http.StatusOK, Resolution{Lang: lang, Path: rest})
}

// Dictionary handles GET /api/v1/translations/:lang
// @Summary All translations of a language
// @Description Every known key resolved for lang, falling back to the default language
// @Tags locale
// @Produce json
// @Param lang path string true "Language code"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/translations/{lang} [get]
func (h *Handler) Dictionary(c echo.Context) error {
	lang := c.Param("lang")

	table := h.manager.Table()
	if !table.Supports(lang) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unsupported language"})
	}

	return c.JSON(http.StatusOK, table.Dictionary(lang))
}

// Translate handles GET /api/v1/translations/:lang/:key
// @Summary Translate a key
// @Description Looks key up for lang, then for the default language
// @Tags locale
// @Produce json
// @Param lang path string true "Language code"
// @Param key path string true "Translation key"
// @Success 200 {object} rest.Translation
// @Failure 404 {object} map[string]string
// @Router /api/v1/translations/{lang}/{key} [get]
func (h *Handler) Translate(c echo.Context) error {
	lang, key := c.Param("lang"), c.Param("key")

	value, err := h.manager.Table().Translate(lang, key)
	if err != nil {
		var missing *locale.MissingTranslationError
		if errors.As(err, &missing) {
			metrics.MissingTranslations.WithLabelValues(lang).Inc()
			h.log.Warn("missing translation", "lang", lang, "key", key)
			return c.JSON(http.StatusNotFound, map[string]string{"error": missing.Error()})
		}
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Translation{Lang: lang, Key: key, Value: value})
}

// Collections handles GET /api/v1/collections
// @Summary List collections
// @Tags content
// @Produce json
// @Success 200 {array} rest.CollectionSummary
// @Router /api/v1/collections [get]
func (h *Handler) Collections(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.manager.Collections(), NewCollectionSummary))
}

// Entries handles GET /api/v1/collections/:name/entries
// @Summary List entries of a collection
// @Description Returns entry summaries (without body) sorted by pubDate DESC, optionally filtered by language
// @Tags content
// @Produce json
// @Param name path string true "Collection name"
// @Param lang query string false "Language code"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.EntriesPage
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/collections/{name}/entries [get]
func (h *Handler) Entries(c echo.Context) error {
	var req EntriesRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, pageSize := defaultPage, defaultPageSize
	if req.Page != nil {
		page = *req.Page
	}
	if req.PageSize != nil {
		pageSize = min(*req.PageSize, maxPageSize)
	}

	table := h.manager.Table()
	if req.Lang != "" && !table.Supports(req.Lang) {
		return h.handleError(c, fmt.Errorf("%w %q", errUnsupportedLanguage, req.Lang), http.StatusBadRequest, "unsupported language")
	}

	entries, total, err := h.manager.Entries(c.Param("name"), site.Filter{Language: req.Lang}, page, pageSize)
	switch {
	case errors.Is(err, site.ErrInvalidPage):
		return h.handleError(c, err, http.StatusBadRequest, "invalid page")
	case errors.Is(err, site.ErrCollectionNotFound):
		return h.handleError(c, err, http.StatusNotFound, "collection not found")
	case err != nil:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, EntriesPage{
		Items:    Map(entries, NewEntrySummaryFunc(table.Default())),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// EntryBySlug handles GET /api/v1/collections/:name/entries/*
// @Summary Get an entry
// @Description Returns a single entry with its body. The slug may contain slashes
// @Tags content
// @Produce json
// @Param name path string true "Collection name"
// @Param slug path string true "Entry slug"
// @Success 200 {object} rest.Entry
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/collections/{name}/entries/{slug} [get]
func (h *Handler) EntryBySlug(c echo.Context) error {
	slug := strings.Trim(c.Param("*"), "/")
	if slug == "" {
		return h.handleError(c, fmt.Errorf("%w: empty slug", site.ErrEntryNotFound), http.StatusNotFound, "entry not found")
	}

	entry, err := h.manager.EntryBySlug(c.Param("name"), slug)
	switch {
	case errors.Is(err, site.ErrCollectionNotFound):
		return h.handleError(c, err, http.StatusNotFound, "collection not found")
	case errors.Is(err, site.ErrEntryNotFound):
		return h.handleError(c, err, http.StatusNotFound, "entry not found")
	case err != nil:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewEntry(*entry, h.manager.Table().Default()))
}

// Diagnostics handles GET /api/v1/diagnostics
// @Summary Rejected documents
// @Description Validation errors of the current snapshot
// @Tags content
// @Produce json
// @Success 200 {array} rest.Diagnostic
// @Router /api/v1/diagnostics [get]
func (h *Handler) Diagnostics(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.manager.Diagnostics(), NewDiagnostic))
}

// Reload handles POST /api/v1/reload
// @Summary Reload content
// @Description Reads all collections again; the previous content is kept when reading fails
// @Tags content
// @Produce json
// @Success 200 {object} rest.ReloadResult
// @Failure 500 {object} map[string]string
// @Router /api/v1/reload [post]
func (h *Handler) Reload(c echo.Context) error {
	snap, err := h.manager.Reload(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "reload failed")
	}

	return c.JSON(http.StatusOK, ReloadResult{
		LoadedAt:    snap.LoadedAt,
		Collections: len(snap.Collections),
		Rejected:    len(snap.Diagnostics),
	})
}
