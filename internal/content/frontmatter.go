package content

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

var errUnterminatedFrontmatter = errors.New("no closing front-matter delimiter")

// ParseDocument splits YAML front-matter from the body. Content without a
// leading delimiter is all body. A broken front-matter block is returned as
// a *ValidationError so that only this document is rejected.
func ParseDocument(path string, content []byte) (RawDocument, error) {
	doc := RawDocument{
		Path:        path,
		Frontmatter: map[string]any{},
	}

	str := strings.TrimPrefix(string(content), "\ufeff")
	if !strings.HasPrefix(str, frontmatterDelimiter+"\n") && !strings.HasPrefix(str, frontmatterDelimiter+"\r\n") {
		doc.Body = str
		return doc, nil
	}

	frontmatter, body, err := splitFrontmatter(str)
	if err != nil {
		return RawDocument{}, &ValidationError{
			Document: path,
			Field:    FieldFrontmatter,
			Reason:   ReasonMalformed,
			Detail:   err.Error(),
		}
	}

	if frontmatter != nil {
		doc.Frontmatter = frontmatter
	}
	doc.Body = body

	return doc, nil
}

func splitFrontmatter(content string) (map[string]any, string, error) {
	start := len(frontmatterDelimiter)
	if len(content) > start && content[start] == '\r' {
		start++
	}
	if len(content) > start && content[start] == '\n' {
		start++
	}

	yamlEnd, bodyStart, ok := closingDelimiter(content, start)
	if !ok {
		return nil, "", errUnterminatedFrontmatter
	}
	yamlContent := content[start:yamlEnd]

	for bodyStart < len(content) && (content[bodyStart] == '\n' || content[bodyStart] == '\r') {
		bodyStart++
	}

	body := ""
	if bodyStart < len(content) {
		body = content[bodyStart:]
	}

	var frontmatter map[string]any
	if err := yaml.Unmarshal([]byte(yamlContent), &frontmatter); err != nil {
		return nil, "", fmt.Errorf("parse YAML front-matter: %w", err)
	}

	return frontmatter, body, nil
}

// closingDelimiter finds the first line after from that is exactly the
// delimiter, ignoring trailing spaces and tabs and a carriage return. It returns
// the offset of that line and the offset just past it.
func closingDelimiter(content string, from int) (lineStart, next int, ok bool) {
	for pos := from; pos <= len(content); {
		line, rest, found := strings.Cut(content[pos:], "\n")
		end := len(content)
		if found {
			end = len(content) - len(rest)
		}

		if strings.TrimRight(line, " \t\r") == frontmatterDelimiter {
			return pos, end, true
		}
		if !found {
			break
		}
		pos = end
	}

	return 0, 0, false
}
