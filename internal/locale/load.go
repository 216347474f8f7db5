package locale

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"gopkg.in/yaml.v3"
)

var messageFormats = []string{"toml", "yaml", "yml", "json"}

var unmarshalers = map[string]i18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
}

// LoadTable reads messages.<code>.<format> files from dir and overlays the
// inline messages on top. Only the default language is required to have a
// message file.
func LoadTable(fsys fs.FS, dir string, languages []Language, defaultCode string, inline map[string]map[string]string) (*Table, error) {
	entries := make(map[string]map[string]string, len(languages))

	for _, l := range languages {
		msgs, found, err := loadMessages(fsys, dir, l.Code)
		if err != nil {
			return nil, err
		}
		if !found && l.Code == defaultCode && len(inline[l.Code]) == 0 {
			return nil, fmt.Errorf("no message file for default language %q in %q", defaultCode, dir)
		}
		entries[l.Code] = msgs
	}

	for code, msgs := range inline {
		if _, ok := entries[code]; !ok {
			return nil, fmt.Errorf("inline messages for unsupported language %q", code)
		}
		for key, s := range msgs {
			entries[code][key] = s
		}
	}

	return NewTable(languages, defaultCode, entries)
}

func loadMessages(fsys fs.FS, dir, code string) (map[string]string, bool, error) {
	msgs := map[string]string{}
	found := false

	for _, format := range messageFormats {
		p := path.Join(dir, "messages."+code+"."+format)

		buf, err := fs.ReadFile(fsys, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, false, fmt.Errorf("read %s: %w", p, err)
		}
		found = true

		file, err := i18n.ParseMessageFileBytes(buf, p, unmarshalers)
		if err != nil {
			return nil, false, fmt.Errorf("parse %s: %w", p, err)
		}

		for _, m := range file.Messages {
			text := m.Other
			if text == "" {
				text = m.One
			}
			msgs[m.ID] = text
		}
	}

	return msgs, found, nil
}
