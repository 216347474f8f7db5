package site

import (
	"slices"
	"strings"

	"github.com/uos-projects/pages/internal/content"
)

type EntryList []content.Entry

// ByLanguage keeps entries written in lang. Entries that omit their language
// belong to defaultLang.
func (ll EntryList) ByLanguage(lang, defaultLang string) EntryList {
	if lang == "" {
		return ll
	}

	out := make(EntryList, 0, len(ll))
	for _, e := range ll {
		if e.LanguageOr(defaultLang) == lang {
			out = append(out, e)
		}
	}
	return out
}

// SortByDate returns a copy ordered newest first; equal dates are ordered by
// slug.
func (ll EntryList) SortByDate() EntryList {
	out := slices.Clone(ll)
	slices.SortStableFunc(out, func(a, b content.Entry) int {
		if c := b.PublicationDate.Compare(a.PublicationDate); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	return out
}

// Page returns the 1-based page of size entries, empty past the end.
func (ll EntryList) Page(page, size int) EntryList {
	if page < 1 || size < 1 || page-1 > len(ll)/size {
		return EntryList{}
	}
	start := (page - 1) * size
	if start >= len(ll) {
		return EntryList{}
	}
	end := min(start+size, len(ll))
	return ll[start:end]
}

func (ll EntryList) IndexBySlug() map[string]content.Entry {
	r := make(map[string]content.Entry, len(ll))
	for _, e := range ll {
		r[e.Slug] = e
	}
	return r
}

func (ll EntryList) Slugs() []string {
	r := make([]string, len(ll))
	for i := range ll {
		r[i] = ll[i].Slug
	}
	return r
}
