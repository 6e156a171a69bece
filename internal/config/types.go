package config

import "time"

// SourceType identifies where section documents are fetched from.
type SourceType string

const (
	SourceDir  SourceType = "dir"
	SourceHTTP SourceType = "http"
)

// TextFormat controls how a rich-text field is inserted into the page.
type TextFormat string

const (
	FormatHTML     TextFormat = "html"
	FormatMarkdown TextFormat = "markdown"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Content ContentConfig `yaml:"content" koanf:"content"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Render  RenderConfig  `yaml:"render" koanf:"render"`
	Serve   ServeConfig   `yaml:"serve" koanf:"serve"`
	Journal JournalConfig `yaml:"journal" koanf:"journal"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// ContentConfig describes the data provider for section documents.
type ContentConfig struct {
	Source       SourceType    `yaml:"source" koanf:"source"`
	Dir          string        `yaml:"dir" koanf:"dir"`
	BaseURL      string        `yaml:"base_url" koanf:"base_url"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" koanf:"fetch_timeout"`
}

// SiteConfig holds the page skeleton and output location.
type SiteConfig struct {
	Skeleton  string `yaml:"skeleton" koanf:"skeleton"`
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
}

// RenderConfig tunes the render pass.
type RenderConfig struct {
	RevealDelay    time.Duration   `yaml:"reveal_delay" koanf:"reveal_delay"`
	ViewportHeight float64         `yaml:"viewport_height" koanf:"viewport_height"`
	RichTextFields []RichTextField `yaml:"rich_text_fields" koanf:"rich_text_fields"`
}

// RichTextField declares a content field that is trusted markup rather than
// plain text.
type RichTextField struct {
	Section string     `yaml:"section" koanf:"section"`
	Field   string     `yaml:"field" koanf:"field"`
	Format  TextFormat `yaml:"format" koanf:"format"`
}

// ServeConfig holds settings for the local preview server.
type ServeConfig struct {
	Port            int      `yaml:"port" koanf:"port"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	WatchPatterns   []string `yaml:"watch_patterns" koanf:"watch_patterns"`
}

// JournalConfig locates the build journal database. An empty path disables it.
type JournalConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
