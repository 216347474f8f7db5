package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLanguages = []string{"zh", "en"}

func validFrontmatter() map[string]any {
	return map[string]any{
		"title":       "UOS 1.0 发布",
		"description": "第一个公开版本",
		"pubDate":     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func withField(key string, value any) map[string]any {
	fm := validFrontmatter()
	fm[key] = value
	return fm
}

func withoutField(key string) map[string]any {
	fm := validFrontmatter()
	delete(fm, key)
	return fm
}

func TestLoadCollection_MissingRequiredField(t *testing.T) {
	schema := DefaultSchema(testLanguages)

	for _, field := range []string{FieldTitle, FieldDescription, FieldPubDate} {
		t.Run(field, func(t *testing.T) {
			docs := []RawDocument{
				{Path: "a.md", Frontmatter: validFrontmatter(), Body: "a"},
				{Path: "broken.md", Frontmatter: withoutField(field), Body: "broken"},
				{Path: "c.md", Frontmatter: validFrontmatter(), Body: "c"},
			}

			entries, errs := LoadCollection("news", schema, docs)

			require.Len(t, errs, 1)
			assert.Equal(t, "news", errs[0].Collection)
			assert.Equal(t, "broken.md", errs[0].Document)
			assert.Equal(t, field, errs[0].Field)
			assert.Equal(t, ReasonMissing, errs[0].Reason)

			require.Len(t, entries, 2)
			assert.Equal(t, "a.md", entries[0].Path)
			assert.Equal(t, "c.md", entries[1].Path)
		})
	}
}

func TestLoadCollection_NullCountsAsMissing(t *testing.T) {
	docs := []RawDocument{{Path: "x.md", Frontmatter: withField(FieldTitle, nil)}}

	entries, errs := LoadCollection("news", DefaultSchema(testLanguages), docs)

	assert.Empty(t, entries)
	require.Len(t, errs, 1)
	assert.Equal(t, FieldTitle, errs[0].Field)
	assert.Equal(t, ReasonMissing, errs[0].Reason)
}

func TestLoadCollection_OneErrorPerDocument(t *testing.T) {
	fm := validFrontmatter()
	delete(fm, FieldTitle)
	delete(fm, FieldPubDate)

	_, errs := LoadCollection("news", DefaultSchema(testLanguages), []RawDocument{{Path: "x.md", Frontmatter: fm}})

	require.Len(t, errs, 1)
	assert.Equal(t, FieldTitle, errs[0].Field)
}

func TestLoadCollection_Language(t *testing.T) {
	schema := DefaultSchema(testLanguages)

	tests := []struct {
		name        string
		frontmatter map[string]any
		wantLang    string
		wantReason  Reason
	}{
		{name: "omitted", frontmatter: validFrontmatter()},
		{name: "supported", frontmatter: withField(FieldLang, "en"), wantLang: "en"},
		{name: "unsupported", frontmatter: withField(FieldLang, "fr"), wantReason: ReasonInvalidValue},
		{name: "case sensitive", frontmatter: withField(FieldLang, "EN"), wantReason: ReasonInvalidValue},
		{name: "not text", frontmatter: withField(FieldLang, 1), wantReason: ReasonWrongType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, errs := LoadCollection("news", schema, []RawDocument{{Path: "x.md", Frontmatter: tt.frontmatter}})

			if tt.wantReason != "" {
				assert.Empty(t, entries)
				require.Len(t, errs, 1)
				assert.Equal(t, FieldLang, errs[0].Field)
				assert.Equal(t, tt.wantReason, errs[0].Reason)
				return
			}

			require.Empty(t, errs)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLang, entries[0].Language)
		})
	}
}

func TestLoadCollection_WrongTypes(t *testing.T) {
	schema := DefaultSchema(testLanguages)

	tests := []struct {
		name       string
		field      string
		value      any
		wantReason Reason
	}{
		{"numeric title", FieldTitle, 2024, ReasonWrongType},
		{"blank title", FieldTitle, "   ", ReasonInvalidValue},
		{"list description", FieldDescription, []any{"a"}, ReasonWrongType},
		{"boolean date", FieldPubDate, true, ReasonWrongType},
		{"unparseable date", FieldPubDate, "next tuesday", ReasonInvalidValue},
		{"numeric image", FieldImage, 42, ReasonWrongType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := LoadCollection("docs", schema, []RawDocument{{Path: "x.md", Frontmatter: withField(tt.field, tt.value)}})

			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.wantReason, errs[0].Reason)
			assert.Contains(t, errs[0].Error(), "docs/x.md")
		})
	}
}

func TestLoadCollection_EmptyDescriptionAccepted(t *testing.T) {
	entries, errs := LoadCollection("docs", DefaultSchema(testLanguages),
		[]RawDocument{{Path: "x.md", Frontmatter: withField(FieldDescription, "")}})

	require.Empty(t, errs)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Description)
}

func TestLoadCollection_RoundTrip(t *testing.T) {
	doc := RawDocument{
		Path: "2024/release.md",
		Frontmatter: map[string]any{
			"title":       "Release",
			"description": "The first release",
			"pubDate":     "Jul 08 2024",
			"lang":        "en",
			"image":       "/images/release.png",
			"tags":        []any{"ignored"},
		},
		Body: "# Release\n",
	}

	entries, errs := LoadCollection("news", DefaultSchema(testLanguages), []RawDocument{doc})

	require.Empty(t, errs)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{
		Collection:      "news",
		Slug:            "2024/release",
		Path:            "2024/release.md",
		Title:           "Release",
		Description:     "The first release",
		PublicationDate: time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC),
		Language:        "en",
		Image:           "/images/release.png",
		Body:            "# Release\n",
	}, entries[0])
}

func TestLoadCollection_Idempotent(t *testing.T) {
	docs := []RawDocument{
		{Path: "b.md", Frontmatter: validFrontmatter(), Body: "b"},
		{Path: "bad.md", Frontmatter: withoutField(FieldTitle)},
		{Path: "a.md", Frontmatter: withField(FieldLang, "zh"), Body: "a"},
	}
	schema := DefaultSchema(testLanguages)

	first, firstErrs := LoadCollection("news", schema, docs)
	second, secondErrs := LoadCollection("news", schema, docs)

	assert.Equal(t, first, second)
	assert.Equal(t, firstErrs, secondErrs)
	require.Len(t, first, 2)
	assert.Equal(t, "b.md", first[0].Path, "input order is kept, not sorted")
}

func TestLoadCollection_DoesNotMutateInput(t *testing.T) {
	fm := validFrontmatter()
	docs := []RawDocument{{Path: "a.md", Frontmatter: fm, Body: "body"}}

	_, _ = LoadCollection("news", DefaultSchema(testLanguages), docs)

	assert.Equal(t, validFrontmatter(), docs[0].Frontmatter)
	assert.Equal(t, "body", docs[0].Body)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"2023-01-15", "2023/01/15", "Jan 15 2023", "January 15, 2023", "15 Jan 2023", " 2023-01-15 "} {
		got, ok := parseDate(in)
		require.True(t, ok, in)
		assert.True(t, want.Equal(got), in)
	}

	_, ok := parseDate("15.01.2023")
	assert.False(t, ok)
}
