package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

type FieldKind int

const (
	KindText FieldKind = iota
	KindDate
	KindLanguage
	KindPath
)

func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindDate:
		return "date"
	case KindLanguage:
		return "language"
	case KindPath:
		return "path"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field is one front-matter constraint.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	NonEmpty bool
}

// Schema is fixed for the lifetime of a collection. Fields are checked in order
// and the first failing one is reported.
type Schema struct {
	Fields    []Field
	Languages []string
}

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPubDate     = "pubDate"
	FieldLang        = "lang"
	FieldImage       = "image"
)

// DefaultSchema is shared by the news and docs collections.
func DefaultSchema(languages []string) Schema {
	return Schema{
		Fields: []Field{
			{Name: FieldTitle, Kind: KindText, Required: true, NonEmpty: true},
			{Name: FieldDescription, Kind: KindText, Required: true},
			{Name: FieldPubDate, Kind: KindDate, Required: true},
			{Name: FieldLang, Kind: KindLanguage},
			{Name: FieldImage, Kind: KindPath},
		},
		Languages: append([]string(nil), languages...),
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"Jan 2 2006",
	"Jan 02 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// checkValue returns the typed value for a present field or the reason it
// was refused.
func (s Schema) checkValue(f Field, raw any) (any, Reason, string) {
	switch f.Kind {
	case KindText:
		str, ok := raw.(string)
		if !ok {
			return nil, ReasonWrongType, fmt.Sprintf("expected text, got %T", raw)
		}
		if f.NonEmpty && govalidator.IsNull(strings.TrimSpace(str)) {
			return nil, ReasonInvalidValue, "must not be empty"
		}
		return str, "", ""

	case KindDate:
		switch v := raw.(type) {
		case time.Time:
			return v, "", ""
		case string:
			t, ok := parseDate(v)
			if !ok {
				return nil, ReasonInvalidValue, fmt.Sprintf("cannot parse date %q", v)
			}
			return t, "", ""
		default:
			return nil, ReasonWrongType, fmt.Sprintf("expected date, got %T", raw)
		}

	case KindLanguage:
		str, ok := raw.(string)
		if !ok {
			return nil, ReasonWrongType, fmt.Sprintf("expected language code, got %T", raw)
		}
		if !govalidator.IsIn(str, s.Languages...) {
			return nil, ReasonInvalidValue,
				fmt.Sprintf("unsupported language %q (supported: %s)", str, strings.Join(s.Languages, ", "))
		}
		return str, "", ""

	case KindPath:
		str, ok := raw.(string)
		if !ok {
			return nil, ReasonWrongType, fmt.Sprintf("expected path, got %T", raw)
		}
		if !strings.HasPrefix(str, "/") && !govalidator.IsURL(str) {
			return nil, ReasonInvalidValue, fmt.Sprintf("%q is neither an absolute path nor a URL", str)
		}
		if strings.HasPrefix(str, "/") && !govalidator.IsRequestURI(str) {
			return nil, ReasonInvalidValue, fmt.Sprintf("%q is not a valid path", str)
		}
		return str, "", ""
	}

	return nil, ReasonInvalidValue, fmt.Sprintf("unknown field kind %s", f.Kind)
}
