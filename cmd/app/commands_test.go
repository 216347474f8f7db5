package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uos-projects/pages/internal/content"
	"github.com/uos-projects/pages/internal/site"
)

func TestStrictResult(t *testing.T) {
	rejected := []*content.ValidationError{{
		Collection: "news",
		Document:   "bad.md",
		Field:      content.FieldTitle,
		Reason:     content.ReasonMissing,
	}}
	fallback := map[string][]string{"en": {"footer.copyright"}}

	tests := []struct {
		name    string
		report  site.Report
		strict  bool
		wantErr bool
	}{
		{name: "clean", report: site.Report{}, strict: true},
		{name: "fallback keys only", report: site.Report{MissingTranslations: fallback}, strict: true},
		{name: "rejected lenient", report: site.Report{Diagnostics: rejected}, strict: false},
		{name: "rejected strict", report: site.Report{Diagnostics: rejected, MissingTranslations: fallback}, strict: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := strictResult(tt.report, tt.strict)
			if tt.wantErr {
				assert.ErrorContains(t, err, "1 rejected documents")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, site.Report{MissingTranslations: map[string][]string{
		"ja": {"nav.home"},
		"en": {"footer.copyright", "nav.news"},
	}})

	assert.Equal(t, "fallback  en: footer.copyright\nfallback  en: nav.news\nfallback  ja: nav.home\n", buf.String())

	buf.Reset()
	printReport(&buf, site.Report{})
	assert.Equal(t, "ok\n", buf.String())
}
