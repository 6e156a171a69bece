package config

import "time"

// DefaultWatchPatterns are the doublestar globs that trigger a rebuild in serve mode.
var DefaultWatchPatterns = []string{
	"data/**/*.json",
	"*.html",
}

// DefaultRichTextFields lists the fields that carry trusted markup out of the box.
// hero.summary has always accepted inline HTML; everything else is plain text.
var DefaultRichTextFields = []RichTextField{
	{Section: "hero", Field: "summary", Format: FormatHTML},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			Source: SourceDir,
			Dir:    ".",
		},
		Site: SiteConfig{
			OutputDir: "public",
		},
		Render: RenderConfig{
			RevealDelay:    100 * time.Millisecond,
			ViewportHeight: 900,
			RichTextFields: DefaultRichTextFields,
		},
		Serve: ServeConfig{
			Port:          8080,
			WatchPatterns: DefaultWatchPatterns,
		},
		Journal: JournalConfig{
			Path: ".folio/journal.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
