package site

import (
	"errors"
	"time"

	"github.com/uos-projects/pages/internal/content"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrInvalidPage        = errors.New("page and page size must be positive")
)

// Snapshot is one consistent view of all collections. It is never modified
// after it has been published by Reload.
type Snapshot struct {
	LoadedAt    time.Time
	Collections []*content.Collection
	Diagnostics []*content.ValidationError

	byName map[string]*content.Collection
}

func newSnapshot(loadedAt time.Time, collections []*content.Collection, diagnostics []*content.ValidationError) *Snapshot {
	s := &Snapshot{
		LoadedAt:    loadedAt,
		Collections: collections,
		Diagnostics: diagnostics,
		byName:      make(map[string]*content.Collection, len(collections)),
	}
	for _, c := range collections {
		s.byName[c.Name] = c
	}
	return s
}

func (s *Snapshot) Collection(name string) (*content.Collection, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// CollectionInfo summarizes one collection of the current snapshot.
type CollectionInfo struct {
	Name     string
	Entries  int
	Rejected int
}

// Filter narrows Entries. The zero value matches everything.
type Filter struct {
	Language string
}

// Report is the outcome of an audit of content and translations.
type Report struct {
	Diagnostics         []*content.ValidationError
	MissingTranslations map[string][]string
}

// Clean reports whether the audit found nothing to fix.
func (r Report) Clean() bool {
	return len(r.Diagnostics) == 0 && len(r.MissingTranslations) == 0
}
