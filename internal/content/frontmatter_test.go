package content

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantFM   map[string]any
		wantBody string
	}{
		{
			name:     "front-matter and body",
			content:  "---\ntitle: Hello\nlang: en\n---\n\n# Hello\n",
			wantFM:   map[string]any{"title": "Hello", "lang": "en"},
			wantBody: "# Hello\n",
		},
		{
			name:     "crlf line endings",
			content:  "---\r\ntitle: Hello\r\n---\r\nbody",
			wantFM:   map[string]any{"title": "Hello"},
			wantBody: "body",
		},
		{
			name:     "byte order mark",
			content:  "\ufeff---\ntitle: Hello\n---\nbody",
			wantFM:   map[string]any{"title": "Hello"},
			wantBody: "body",
		},
		{
			name:     "empty block",
			content:  "---\n---\nbody",
			wantFM:   map[string]any{},
			wantBody: "body",
		},
		{
			name:     "closing delimiter with trailing spaces",
			content:  "---\ntitle: Hello\n---  \nbody",
			wantFM:   map[string]any{"title": "Hello"},
			wantBody: "body",
		},
		{
			name:     "closing delimiter at end of file",
			content:  "---\ntitle: Hello\n---",
			wantFM:   map[string]any{"title": "Hello"},
			wantBody: "",
		},
		{
			name:     "no front-matter",
			content:  "# Just a body\n",
			wantFM:   map[string]any{},
			wantBody: "# Just a body\n",
		},
		{
			name:     "unicode values",
			content:  "---\ntitle: 统信操作系统\n---\n正文",
			wantFM:   map[string]any{"title": "统信操作系统"},
			wantBody: "正文",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument("doc.md", []byte(tt.content))

			require.NoError(t, err)
			assert.Equal(t, "doc.md", doc.Path)
			assert.Equal(t, tt.wantFM, doc.Frontmatter)
			assert.Equal(t, tt.wantBody, doc.Body)
		})
	}
}

func TestParseDocument_UnquotedDate(t *testing.T) {
	doc, err := ParseDocument("doc.md", []byte("---\npubDate: 2024-05-20\n---\n"))

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), doc.Frontmatter["pubDate"])
}

func TestParseDocument_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unterminated", content: "---\ntitle: Hello\n"},
		{name: "invalid yaml", content: "---\ntitle: [unclosed\n---\nbody"},
		{name: "not a mapping", content: "---\n- a\n- b\n---\nbody"},
		{name: "dash run inside block", content: "---\ntitle: x\n----- not a delimiter\ndescription: d\n---\nbody"},
		{name: "delimiter prefix only", content: "---\ntitle: x\n---foo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument("bad.md", []byte(tt.content))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "bad.md", verr.Document)
			assert.Equal(t, FieldFrontmatter, verr.Field)
			assert.Equal(t, ReasonMalformed, verr.Reason)
			assert.NotEmpty(t, verr.Detail)
		})
	}
}
