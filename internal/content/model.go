package content

import (
	"path"
	"strings"
	"time"
)

const DefaultPattern = "**/*.{md,markdown,mdx}"

// RawDocument is a discovered source file split into front-matter and body.
type RawDocument struct {
	// Path is slash separated and relative to the collection directory.
	Path        string
	Frontmatter map[string]any
	Body        string
}

// Entry is a validated document of a collection.
type Entry struct {
	Collection      string    `json:"collection"`
	Slug            string    `json:"slug"`
	Path            string    `json:"path"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PublicationDate time.Time `json:"pubDate"`
	Language        string    `json:"lang,omitempty"`
	Image           string    `json:"image,omitempty"`
	Body            string    `json:"body"`
}

// LanguageOr returns the entry language, or fallback when lang was omitted.
func (e Entry) LanguageOr(fallback string) string {
	if e.Language == "" {
		return fallback
	}
	return e.Language
}

type Collection struct {
	Name    string
	Schema  Schema
	Entries []Entry
}

// Definition describes where the raw documents of a collection live.
type Definition struct {
	Name    string
	Dir     string
	Pattern string
}

func (d Definition) pattern() string {
	if d.Pattern == "" {
		return DefaultPattern
	}
	return d.Pattern
}

func slugFromPath(p string) string {
	return strings.TrimSuffix(p, path.Ext(p))
}
