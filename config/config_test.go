package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[app]
host = "127.0.0.1"
port = 8080
public_dir = "site"

[content]
dir = "src/content"
watch = true
debounce = "1s"

[[content.collections]]
name = "news"

[[content.collections]]
name = "docs"
dir = "documentation"
pattern = "**/*.md"

[i18n]
default = "zh"
dir = "src/locales"
languages = [
  { code = "zh", name = "简体中文" },
  { code = "en", name = "English" },
]

[i18n.messages.en]
"site.title" = "UOS Projects"

[build]
strict = true

[log]
level = "debug"
`

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	cfg, err := LoadWithEnv(writeConfig(t, sampleConfig), map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, App{Host: "127.0.0.1", Port: 8080, PublicDir: "site"}, cfg.App)
	assert.Equal(t, "src/content", cfg.Content.Dir)
	assert.True(t, cfg.Content.Watch)
	assert.Equal(t, time.Second, cfg.Content.Debounce)
	assert.Equal(t, []Collection{
		{Name: "news", Dir: "news"},
		{Name: "docs", Dir: "documentation", Pattern: "**/*.md"},
	}, cfg.Content.Collections)
	assert.Equal(t, []string{"zh", "en"}, cfg.I18n.Codes())
	assert.Equal(t, "简体中文", cfg.I18n.Languages[0].Name)
	assert.Equal(t, map[string]map[string]string{"en": {"site.title": "UOS Projects"}}, cfg.I18n.Messages)
	assert.True(t, cfg.Build.Strict)
	assert.Equal(t, "dist", cfg.Build.Out)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	cfg, err := LoadWithEnv(writeConfig(t, sampleConfig), map[string]string{
		"PAGES_PORT":             "9000",
		"PAGES_CONTENT_DIR":      "/srv/content",
		"PAGES_DEFAULT_LANGUAGE": "en",
		"PAGES_STRICT":           "false",
		"PAGES_LOG_COLORED":      "true",
		"PAGES_WATCH_DEBOUNCE":   "250ms",
	})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, "127.0.0.1", cfg.App.Host)
	assert.Equal(t, "/srv/content", cfg.Content.Dir)
	assert.Equal(t, 250*time.Millisecond, cfg.Content.Debounce)
	assert.Equal(t, "en", cfg.I18n.Default)
	assert.False(t, cfg.Build.Strict)
	assert.True(t, cfg.Log.Colored)
	assert.Len(t, cfg.Content.Collections, 2)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithEnv("", map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.App.Port)
	assert.Equal(t, "public", cfg.App.PublicDir)
	assert.Equal(t, "content", cfg.Content.Dir)
	assert.Equal(t, []Collection{{Name: "news", Dir: "news"}, {Name: "docs", Dir: "docs"}}, cfg.Content.Collections)
	assert.Equal(t, "zh", cfg.I18n.Default)
	assert.Equal(t, []string{"zh", "en"}, cfg.I18n.Codes())
	assert.Equal(t, "locales", cfg.I18n.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		environ map[string]string
		wantErr string
	}{
		{
			name:    "default not supported",
			config:  "[i18n]\ndefault = \"fr\"\n",
			wantErr: `i18n.default "fr"`,
		},
		{
			name:    "duplicate collection",
			config:  "[[content.collections]]\nname = \"news\"\n[[content.collections]]\nname = \"news\"\n",
			wantErr: `duplicate collection "news"`,
		},
		{
			name:    "unnamed collection",
			config:  "[[content.collections]]\ndir = \"x\"\n",
			wantErr: "collection without name",
		},
		{
			name:    "port range",
			config:  "[app]\nport = 70000\n",
			wantErr: "app.port",
		},
		{
			name:    "log level",
			config:  "[log]\nlevel = \"loud\"\n",
			wantErr: "log.level",
		},
		{
			name:    "bad toml",
			config:  "[app\n",
			wantErr: "decode config",
		},
		{
			name:    "bad env",
			config:  "",
			environ: map[string]string{"PAGES_PORT": "eighty"},
			wantErr: "parse environment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			environ := tt.environ
			if environ == nil {
				environ = map[string]string{}
			}

			_, err := LoadWithEnv(writeConfig(t, tt.config), environ)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := LoadWithEnv(filepath.Join(t.TempDir(), "nope.toml"), map[string]string{})
	assert.Error(t, err)
}
