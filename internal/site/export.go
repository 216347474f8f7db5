package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uos-projects/pages/internal/content"
)

// Export writes the current snapshot as JSON for the rendering layer:
// <dir>/<collection>.json, <dir>/i18n/<lang>.json and
// <dir>/diagnostics.json. Records keep their discovery order.
func (m *Manager) Export(dir string) error {
	snap := m.Snapshot()

	if err := os.MkdirAll(filepath.Join(dir, "i18n"), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	for _, c := range snap.Collections {
		if err := writeJSON(filepath.Join(dir, c.Name+".json"), c.Entries); err != nil {
			return err
		}
	}

	for _, code := range m.table.Codes() {
		if err := writeJSON(filepath.Join(dir, "i18n", code+".json"), m.table.Dictionary(code)); err != nil {
			return err
		}
	}

	diags := snap.Diagnostics
	if diags == nil {
		diags = []*content.ValidationError{}
	}

	if err := writeJSON(filepath.Join(dir, "diagnostics.json"), diags); err != nil {
		return err
	}

	m.logger.Info("snapshot exported", "dir", dir, "collections", len(snap.Collections))

	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
