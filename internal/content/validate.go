package content

import (
	"time"
)

// Validate turns a raw document into an Entry of the named collection.
// Exactly one of the results is set.
func Validate(collection string, schema Schema, doc RawDocument) (Entry, *ValidationError) {
	entry := Entry{
		Collection: collection,
		Slug:       slugFromPath(doc.Path),
		Path:       doc.Path,
		Body:       doc.Body,
	}

	for _, f := range schema.Fields {
		raw, ok := doc.Frontmatter[f.Name]
		if !ok || raw == nil {
			if f.Required {
				return Entry{}, &ValidationError{
					Collection: collection,
					Document:   doc.Path,
					Field:      f.Name,
					Reason:     ReasonMissing,
				}
			}
			continue
		}

		value, reason, detail := schema.checkValue(f, raw)
		if reason != "" {
			return Entry{}, &ValidationError{
				Collection: collection,
				Document:   doc.Path,
				Field:      f.Name,
				Reason:     reason,
				Detail:     detail,
			}
		}

		assign(&entry, f.Name, value)
	}

	return entry, nil
}

func assign(e *Entry, field string, value any) {
	switch field {
	case FieldTitle:
		e.Title, _ = value.(string)
	case FieldDescription:
		e.Description, _ = value.(string)
	case FieldPubDate:
		e.PublicationDate, _ = value.(time.Time)
	case FieldLang:
		e.Language, _ = value.(string)
	case FieldImage:
		e.Image, _ = value.(string)
	}
}

// LoadCollection validates docs independently. Accepted entries keep the
// input order; every rejected document contributes exactly one error.
func LoadCollection(name string, schema Schema, docs []RawDocument) ([]Entry, []*ValidationError) {
	entries := make([]Entry, 0, len(docs))
	var errs []*ValidationError

	for _, doc := range docs {
		entry, verr := Validate(name, schema, doc)
		if verr != nil {
			errs = append(errs, verr)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, errs
}
