package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover reads every document matching the definition pattern below
// def.Dir, in lexical path order. The context is checked before each read.
func Discover(ctx context.Context, fsys fs.FS, def Definition) ([]RawDocument, []*ValidationError, error) {
	dir := path.Clean(def.Dir)
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("open collection %q dir %q: %w", def.Name, dir, err)
	}

	matches, err := doublestar.Glob(sub, def.pattern(), doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, nil, fmt.Errorf("glob collection %q: %w", def.Name, err)
	}
	slices.Sort(matches)

	docs := make([]RawDocument, 0, len(matches))
	var errs []*ValidationError

	for _, name := range matches {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		raw, err := fs.ReadFile(sub, name)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s/%s: %w", dir, name, err)
		}

		doc, err := ParseDocument(name, raw)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				verr.Collection = def.Name
				errs = append(errs, verr)
				continue
			}
			return nil, nil, err
		}

		docs = append(docs, doc)
	}

	return docs, errs, nil
}

// Loader discovers and validates collections from one filesystem.
type Loader struct {
	fsys fs.FS
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load returns the collection together with the per-document diagnostics.
// The error is reserved for failures reading the source location.
func (l *Loader) Load(ctx context.Context, def Definition, schema Schema) (*Collection, []*ValidationError, error) {
	docs, parseErrs, err := Discover(ctx, l.fsys, def)
	if err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	entries, validationErrs := LoadCollection(def.Name, schema, docs)

	return &Collection{
		Name:    def.Name,
		Schema:  schema,
		Entries: entries,
	}, append(parseErrs, validationErrs...), nil
}
