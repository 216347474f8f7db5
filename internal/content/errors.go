package content

import (
	"fmt"
	"strings"
)

type Reason string

const (
	ReasonMissing      Reason = "missing"
	ReasonWrongType    Reason = "wrong_type"
	ReasonInvalidValue Reason = "invalid_value"
	ReasonMalformed    Reason = "malformed"
)

// FieldFrontmatter is reported as the field of a ValidationError when the
// front-matter block itself could not be parsed.
const FieldFrontmatter = "frontmatter"

// ValidationError rejects a single document of a collection.
type ValidationError struct {
	Collection string `json:"collection"`
	Document   string `json:"document"`
	Field      string `json:"field"`
	Reason     Reason `json:"reason"`
	Detail     string `json:"detail,omitempty"`
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Collection != "" {
		b.WriteString(e.Collection)
		b.WriteString("/")
	}
	b.WriteString(e.Document)
	fmt.Fprintf(&b, ": field %q: %s", e.Field, e.Reason)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}
