package locale

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// MissingTranslationError is returned when neither the requested nor the
// default language has a string for Key.
type MissingTranslationError struct {
	Language string `json:"lang"`
	Key      string `json:"key"`
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("missing translation for key %q (language %q)", e.Key, e.Language)
}

// Translate looks key up for lang, then for the default language. An
// unsupported lang has no keys of its own.
func (t *Table) Translate(lang, key string) (string, error) {
	if s, ok := t.entries[lang][key]; ok {
		return s, nil
	}
	if s, ok := t.entries[t.defaultCode][key]; ok {
		return s, nil
	}
	return "", &MissingTranslationError{Language: lang, Key: key}
}

// Translator is Translate bound to one resolved language.
type Translator struct {
	table *Table
	lang  string
}

func (t *Table) Translator(lang string) Translator {
	return Translator{table: t, lang: lang}
}

func (tr Translator) Language() string {
	return tr.lang
}

func (tr Translator) T(key string) (string, error) {
	return tr.table.Translate(tr.lang, key)
}

// Format translates key and executes it as a template with data, e.g.
// "{{.Count}} articles".
func (tr Translator) Format(key string, data map[string]any) (string, error) {
	text, err := tr.T(key)
	if err != nil {
		return "", err
	}
	if !strings.Contains(text, "{{") {
		return text, nil
	}

	localizer := i18n.NewLocalizer(tr.table.formatter, tr.lang)
	out, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: key, Other: text},
		TemplateData:   data,
	})
	if err != nil {
		return "", fmt.Errorf("format %q: %w", key, err)
	}

	return out, nil
}

// Dictionary resolves every key known to lang or the default language.
func (t *Table) Dictionary(lang string) map[string]string {
	dict := make(map[string]string, len(t.entries[t.defaultCode]))
	for key, s := range t.entries[t.defaultCode] {
		dict[key] = s
	}
	for key, s := range t.entries[lang] {
		dict[key] = s
	}
	return dict
}

// MissingKeys lists, per non-default language, the default-language keys it
// lacks. Languages with full coverage are omitted.
func (t *Table) MissingKeys() map[string][]string {
	missing := map[string][]string{}

	for _, code := range t.codes {
		if code == t.defaultCode {
			continue
		}
		for key := range t.entries[t.defaultCode] {
			if _, ok := t.entries[code][key]; !ok {
				missing[code] = append(missing[code], key)
			}
		}
		slices.Sort(missing[code])
	}

	return missing
}
