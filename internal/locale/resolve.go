package locale

import (
	"slices"
	"strings"
)

// ResolveLanguage returns the first non-empty segment of requestPath when it
// is exactly one of the supported codes, and defaultLang otherwise. Query and
// fragment are ignored.
func ResolveLanguage(requestPath string, supported []string, defaultLang string) string {
	lang, _ := SplitPath(requestPath, supported, defaultLang)
	return lang
}

// SplitPath separates the language prefix from the rest of the path. The
// rest always starts with "/". A path without a supported prefix belongs to
// the default language and is returned unchanged apart from query and
// fragment removal.
func SplitPath(requestPath string, supported []string, defaultLang string) (lang, rest string) {
	p := requestPath
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}

	trimmed := strings.TrimLeft(p, "/")
	segment, remainder, _ := strings.Cut(trimmed, "/")

	if segment != "" && slices.Contains(supported, segment) {
		return segment, "/" + remainder
	}

	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return defaultLang, p
}

// LocalizedPath prefixes p with lang unless lang is the default language.
func (t *Table) LocalizedPath(lang, p string) string {
	_, rest := SplitPath(p, t.codes, t.defaultCode)
	if lang == t.defaultCode || !t.Supports(lang) {
		return rest
	}
	if rest == "/" {
		return "/" + lang + "/"
	}
	return "/" + lang + rest
}
