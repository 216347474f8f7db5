package site

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/uos-projects/pages/internal/content"
	"github.com/uos-projects/pages/internal/locale"
	"github.com/uos-projects/pages/internal/metrics"
)

// Reloader rebuilds the published content.
type Reloader interface {
	Reload(ctx context.Context) (*Snapshot, error)
}

type Manager struct {
	loader *content.Loader
	defs   []content.Definition
	schema content.Schema
	table  *locale.Table
	logger *slog.Logger

	reloadMu sync.Mutex
	current  atomic.Pointer[Snapshot]
}

// NewManager serves the collections in defs read from fsys. Documents are
// checked against the default schema for the languages of table. Nothing is
// loaded until Reload is called.
func NewManager(fsys fs.FS, defs []content.Definition, table *locale.Table, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		loader: content.NewLoader(fsys),
		defs:   slices.Clone(defs),
		schema: content.DefaultSchema(table.Codes()),
		table:  table,
		logger: logger,
	}
	m.current.Store(newSnapshot(time.Time{}, nil, nil))

	return m
}

// Reload loads all collections concurrently and publishes them as a new
// snapshot. On error the previous snapshot stays in place.
func (m *Manager) Reload(ctx context.Context) (*Snapshot, error) {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	start := time.Now()
	collections := make([]*content.Collection, len(m.defs))
	diagnostics := make([][]*content.ValidationError, len(m.defs))

	g, gctx := errgroup.WithContext(ctx)
	for i, def := range m.defs {
		g.Go(func() error {
			coll, diags, err := m.loader.Load(gctx, def, m.schema)
			if err != nil {
				return fmt.Errorf("load collection %q: %w", def.Name, err)
			}
			collections[i] = coll
			diagnostics[i] = diags
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		metrics.Reloads.WithLabelValues("error").Inc()
		m.logger.Error("content reload failed", "error", err)
		return nil, err
	}

	snap := newSnapshot(time.Now(), collections, slices.Concat(diagnostics...))

	total := 0
	for _, c := range snap.Collections {
		total += len(c.Entries)
		metrics.DocumentsLoaded.WithLabelValues(c.Name).Add(float64(len(c.Entries)))
		metrics.Entries.WithLabelValues(c.Name).Set(float64(len(c.Entries)))
	}

	for _, d := range snap.Diagnostics {
		metrics.DocumentsRejected.WithLabelValues(d.Collection, string(d.Reason)).Inc()
		m.logger.Warn("document rejected",
			"collection", d.Collection,
			"document", d.Document,
			"field", d.Field,
			"reason", d.Reason,
			"detail", d.Detail)
	}

	m.current.Store(snap)
	metrics.Reloads.WithLabelValues("ok").Inc()

	m.logger.Info("content loaded",
		"collections", len(snap.Collections),
		"entries", total,
		"rejected", len(snap.Diagnostics),
		"duration_ms", time.Since(start).Milliseconds())

	return snap, nil
}

// Snapshot returns the currently published snapshot.
func (m *Manager) Snapshot() *Snapshot {
	return m.current.Load()
}

func (m *Manager) Table() *locale.Table {
	return m.table
}

func (m *Manager) Collections() []CollectionInfo {
	snap := m.Snapshot()

	rejected := map[string]int{}
	for _, d := range snap.Diagnostics {
		rejected[d.Collection]++
	}

	infos := make([]CollectionInfo, len(snap.Collections))
	for i, c := range snap.Collections {
		infos[i] = CollectionInfo{
			Name:     c.Name,
			Entries:  len(c.Entries),
			Rejected: rejected[c.Name],
		}
	}

	return infos
}

// Entries returns one page of a collection sorted newest first together
// with the number of entries matching the filter.
func (m *Manager) Entries(name string, filter Filter, page, pageSize int) ([]content.Entry, int, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, ErrInvalidPage
	}

	coll, ok := m.Snapshot().Collection(name)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}

	list := EntryList(coll.Entries).
		ByLanguage(filter.Language, m.table.Default()).
		SortByDate()

	return list.Page(page, pageSize), len(list), nil
}

func (m *Manager) EntryBySlug(name, slug string) (*content.Entry, error) {
	coll, ok := m.Snapshot().Collection(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}

	e, ok := EntryList(coll.Entries).IndexBySlug()[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrEntryNotFound, name, slug)
	}

	return &e, nil
}

func (m *Manager) Diagnostics() []*content.ValidationError {
	return slices.Clone(m.Snapshot().Diagnostics)
}

// Audit reports rejected documents and keys missing from non-default
// languages.
func (m *Manager) Audit() Report {
	return Report{
		Diagnostics:         m.Diagnostics(),
		MissingTranslations: m.table.MissingKeys(),
	}
}
