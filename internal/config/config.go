package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*). Nested keys use a double
// underscore: FOLIO_CONTENT__BASE_URL -> content.base_url.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults. List fields are left nil so a file can replace
	// them rather than merge element-wise.
	cfg := DefaultConfig()
	cfg.Render.RichTextFields = nil
	cfg.Serve.WatchPatterns = nil

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("FOLIO_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.Render.RichTextFields == nil {
		cfg.Render.RichTextFields = DefaultRichTextFields
	}
	if cfg.Serve.WatchPatterns == nil {
		cfg.Serve.WatchPatterns = DefaultWatchPatterns
	}

	return cfg, nil
}

// envKey maps FOLIO_SERVE__PORT to serve.port.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validSources = map[SourceType]bool{
	SourceDir:  true,
	SourceHTTP: true,
}

var validFormats = map[TextFormat]bool{
	FormatHTML:     true,
	FormatMarkdown: true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validSources[c.Content.Source] {
		return fmt.Errorf("invalid content.source %q: must be one of dir, http", c.Content.Source)
	}
	switch c.Content.Source {
	case SourceDir:
		if c.Content.Dir == "" {
			return fmt.Errorf("content.dir is required when content.source is dir")
		}
	case SourceHTTP:
		u, err := url.Parse(c.Content.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("content.base_url must be an absolute URL, got %q", c.Content.BaseURL)
		}
	}
	if c.Content.FetchTimeout < 0 {
		return fmt.Errorf("content.fetch_timeout must be non-negative")
	}

	if c.Site.OutputDir == "" {
		return fmt.Errorf("site.output_dir is required")
	}

	if c.Render.RevealDelay < 0 {
		return fmt.Errorf("render.reveal_delay must be non-negative")
	}
	if c.Render.ViewportHeight <= 0 {
		return fmt.Errorf("render.viewport_height must be positive")
	}
	for i, f := range c.Render.RichTextFields {
		if f.Section == "" || f.Field == "" {
			return fmt.Errorf("render.rich_text_fields[%d]: section and field are required", i)
		}
		if f.Format != "" && !validFormats[f.Format] {
			return fmt.Errorf("render.rich_text_fields[%d]: invalid format %q: must be one of html, markdown", i, f.Format)
		}
	}

	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port %d out of range", c.Serve.Port)
	}

	if c.Log.Format != "" && !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be one of json, console", c.Log.Format)
	}

	return nil
}
