package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	App     App     `toml:"app"`
	Content Content `toml:"content"`
	I18n    I18n    `toml:"i18n"`
	Build   Build   `toml:"build"`
	Log     Log     `toml:"log"`
}

type App struct {
	Host      string `toml:"host" env:"PAGES_HOST"`
	Port      int    `toml:"port" env:"PAGES_PORT"`
	PublicDir string `toml:"public_dir" env:"PAGES_PUBLIC_DIR"`
}

type Content struct {
	Dir         string        `toml:"dir" env:"PAGES_CONTENT_DIR"`
	Watch       bool          `toml:"watch" env:"PAGES_WATCH"`
	Debounce    time.Duration `toml:"debounce" env:"PAGES_WATCH_DEBOUNCE"`
	Collections []Collection  `toml:"collections" env:"-"`
}

// Collection is relative to Content.Dir.
type Collection struct {
	Name    string `toml:"name"`
	Dir     string `toml:"dir"`
	Pattern string `toml:"pattern"`
}

type I18n struct {
	Default   string                       `toml:"default" env:"PAGES_DEFAULT_LANGUAGE"`
	Dir       string                       `toml:"dir" env:"PAGES_LOCALES_DIR"`
	Languages []Language                   `toml:"languages" env:"-"`
	Messages  map[string]map[string]string `toml:"messages" env:"-"`
}

type Language struct {
	Code string `toml:"code"`
	Name string `toml:"name"`
}

type Build struct {
	Strict bool   `toml:"strict" env:"PAGES_STRICT"`
	Out    string `toml:"out" env:"PAGES_EXPORT_DIR"`
}

type Log struct {
	Level   string `toml:"level" env:"PAGES_LOG_LEVEL"`
	Colored bool   `toml:"colored" env:"PAGES_LOG_COLORED"`
}

const (
	DefaultPort      = 4321
	DefaultLanguage  = "zh"
	defaultPublicDir = "public"
	defaultContent   = "content"
	defaultLocales   = "locales"
	defaultOut       = "dist"
)

// Load reads the TOML file at path, applies PAGES_* environment overrides and
// defaults, and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, nil)
}

// LoadWithEnv is Load with an explicit environment; nil means the process
// environment.
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	var cfg Config

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.App.Port == 0 {
		c.App.Port = DefaultPort
	}
	if c.App.PublicDir == "" {
		c.App.PublicDir = defaultPublicDir
	}

	if c.Content.Dir == "" {
		c.Content.Dir = defaultContent
	}
	if len(c.Content.Collections) == 0 {
		c.Content.Collections = []Collection{{Name: "news"}, {Name: "docs"}}
	}
	for i := range c.Content.Collections {
		if c.Content.Collections[i].Dir == "" {
			c.Content.Collections[i].Dir = c.Content.Collections[i].Name
		}
	}

	if c.I18n.Dir == "" {
		c.I18n.Dir = defaultLocales
	}
	if len(c.I18n.Languages) == 0 {
		c.I18n.Languages = []Language{{Code: "zh", Name: "简体中文"}, {Code: "en", Name: "English"}}
	}
	if c.I18n.Default == "" {
		c.I18n.Default = DefaultLanguage
	}

	if c.Build.Out == "" {
		c.Build.Out = defaultOut
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c Config) Validate() error {
	var errs []error

	if c.App.Port < 1 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("app.port %d out of range", c.App.Port))
	}

	codes := c.I18n.Codes()
	if len(codes) == 0 {
		errs = append(errs, errors.New("i18n.languages is empty"))
	} else if !slices.Contains(codes, c.I18n.Default) {
		errs = append(errs, fmt.Errorf("i18n.default %q is not one of %v", c.I18n.Default, codes))
	}

	names := map[string]bool{}
	for _, coll := range c.Content.Collections {
		if coll.Name == "" {
			errs = append(errs, errors.New("content.collections: collection without name"))
			continue
		}
		if names[coll.Name] {
			errs = append(errs, fmt.Errorf("content.collections: duplicate collection %q", coll.Name))
		}
		names[coll.Name] = true
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (i I18n) Codes() []string {
	codes := make([]string, len(i.Languages))
	for n, l := range i.Languages {
		codes[n] = l.Code
	}
	return codes
}

func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
