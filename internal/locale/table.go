package locale

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Language is a supported language code with its display name.
type Language struct {
	Code string `json:"code" toml:"code"`
	Name string `json:"name" toml:"name"`
}

// Table holds the supported languages and their string tables. It is
// immutable after NewTable returns and safe for concurrent use.
type Table struct {
	languages   []Language
	codes       []string
	defaultCode string
	entries     map[string]map[string]string

	// formatter renders templated messages; it never has messages added.
	formatter *i18n.Bundle
}

var (
	ErrNoLanguages     = errors.New("no supported languages")
	ErrUnknownDefault  = errors.New("default language is not supported")
	ErrDuplicateLang   = errors.New("duplicate language code")
	ErrInvalidLanguage = errors.New("invalid language code")
)

// NewTable validates the language set and deep-copies entries, which are
// keyed by language code and then by translation key.
func NewTable(languages []Language, defaultCode string, entries map[string]map[string]string) (*Table, error) {
	if len(languages) == 0 {
		return nil, ErrNoLanguages
	}

	t := &Table{
		languages:   make([]Language, 0, len(languages)),
		codes:       make([]string, 0, len(languages)),
		defaultCode: defaultCode,
		entries:     make(map[string]map[string]string, len(languages)),
	}

	for _, l := range languages {
		if strings.TrimSpace(l.Code) == "" || strings.Contains(l.Code, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, l.Code)
		}
		if _, err := language.Parse(l.Code); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, l.Code, err)
		}
		if slices.Contains(t.codes, l.Code) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLang, l.Code)
		}
		if l.Name == "" {
			l.Name = l.Code
		}

		t.languages = append(t.languages, l)
		t.codes = append(t.codes, l.Code)
		t.entries[l.Code] = map[string]string{}
	}

	if !slices.Contains(t.codes, defaultCode) {
		return nil, fmt.Errorf("%w: %q not in %v", ErrUnknownDefault, defaultCode, t.codes)
	}

	for code, msgs := range entries {
		table, ok := t.entries[code]
		if !ok {
			return nil, fmt.Errorf("translations for unsupported language %q", code)
		}
		maps.Copy(table, msgs)
	}

	t.formatter = i18n.NewBundle(language.Make(defaultCode))

	return t, nil
}

// Languages returns the supported languages in configuration order.
func (t *Table) Languages() []Language {
	return slices.Clone(t.languages)
}

// Codes returns the supported language codes in configuration order.
func (t *Table) Codes() []string {
	return slices.Clone(t.codes)
}

func (t *Table) Default() string {
	return t.defaultCode
}

func (t *Table) Supports(code string) bool {
	return slices.Contains(t.codes, code)
}

// Resolve returns the language addressed by a request path.
func (t *Table) Resolve(requestPath string) string {
	return ResolveLanguage(requestPath, t.codes, t.defaultCode)
}

// Len reports the number of keys registered for code.
func (t *Table) Len(code string) int {
	return len(t.entries[code])
}
