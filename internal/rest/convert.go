package rest

import (
	"github.com/uos-projects/pages/internal/content"
	"github.com/uos-projects/pages/internal/locale"
	"github.com/uos-projects/pages/internal/site"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewLanguage(l locale.Language) Language {
	return Language{
		Code: l.Code,
		Name: l.Name,
	}
}

// NewEntrySummaryFunc reports entries without a language as written in
// defaultLang.
func NewEntrySummaryFunc(defaultLang string) func(content.Entry) EntrySummary {
	return func(e content.Entry) EntrySummary {
		return EntrySummary{
			Slug:        e.Slug,
			Title:       e.Title,
			Description: e.Description,
			PubDate:     e.PublicationDate,
			Lang:        e.LanguageOr(defaultLang),
			Image:       e.Image,
		}
	}
}

func NewEntry(e content.Entry, defaultLang string) Entry {
	return Entry{
		EntrySummary: NewEntrySummaryFunc(defaultLang)(e),
		Collection:   e.Collection,
		Path:         e.Path,
		Body:         e.Body,
	}
}

func NewCollectionSummary(c site.CollectionInfo) CollectionSummary {
	return CollectionSummary{
		Name:     c.Name,
		Entries:  c.Entries,
		Rejected: c.Rejected,
	}
}

func NewDiagnostic(e *content.ValidationError) Diagnostic {
	return Diagnostic{
		Collection: e.Collection,
		Document:   e.Document,
		Field:      e.Field,
		Reason:     string(e.Reason),
		Detail:     e.Detail,
		Message:    e.Error(),
	}
}
