package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/google/renameio/v2"

	"github.com/srikarvechalapu/folio/internal/dom"
	"github.com/srikarvechalapu/folio/internal/interaction"
)

// Skeleton returns the page skeleton: the file at path, or the embedded
// default when path is empty.
func Skeleton(path string) (*dom.Document, error) {
	if path == "" {
		return dom.ParseString(skeletonHTML)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening skeleton: %w", err)
	}
	defer f.Close()
	return dom.Parse(f)
}

// DefaultSkeleton returns the embedded skeleton markup.
func DefaultSkeleton() string { return skeletonHTML }

// Generator writes a rendered page and its assets to an output directory.
type Generator struct {
	OutputDir string
	// DataDir is copied to <OutputDir>/data so the published page ships
	// with its content. Empty skips the copy.
	DataDir string
	// LiveReload is the websocket path the page listens on for reload
	// messages. Empty leaves live reload out of script.js.
	LiveReload string
}

// NewGenerator creates a Generator.
func NewGenerator(outputDir, dataDir string) *Generator {
	return &Generator{OutputDir: outputDir, DataDir: dataDir}
}

// Write renders doc to index.html and writes style.css, script.js and the
// data copy. Every file is replaced atomically so a server reading the
// output never sees a partial page. It returns the number of files written.
func (g *Generator) Write(doc *dom.Document) (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	var page bytes.Buffer
	if err := doc.Render(&page); err != nil {
		return 0, err
	}
	script, err := Script(g.LiveReload)
	if err != nil {
		return 0, err
	}

	files := map[string][]byte{
		"index.html": page.Bytes(),
		"style.css":  []byte(cssContent),
		"script.js":  script,
	}
	for name, data := range files {
		if err := renameio.WriteFile(filepath.Join(g.OutputDir, name), data, 0o644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	written := len(files)

	if g.DataDir != "" {
		n, err := copyDir(g.DataDir, filepath.Join(g.OutputDir, "data"))
		if err != nil {
			return written, fmt.Errorf("copying data: %w", err)
		}
		written += n
	}
	return written, nil
}

var scriptTmpl = template.Must(template.New("script").Parse(jsTemplate))

type scriptData struct {
	RevealSelector     string
	MenuOpenClass      string
	HeaderOffset       float64
	RevealMargin       float64
	ShownTransform     string
	ElevationThreshold float64
	ShadowElevated     string
	ShadowResting      string
	SectionOffset      float64
	ActiveLinkColor    string
	LiveReload         string
}

// Script renders script.js with the interaction constants. A non-empty
// liveReload path adds a socket that reloads the page on every message.
func Script(liveReload string) ([]byte, error) {
	var buf bytes.Buffer
	err := scriptTmpl.Execute(&buf, scriptData{
		RevealSelector:     interaction.RevealSelector,
		MenuOpenClass:      interaction.MenuOpenClass,
		HeaderOffset:       interaction.HeaderOffset,
		RevealMargin:       interaction.RevealMargin,
		ShownTransform:     interaction.ShownTransform,
		ElevationThreshold: interaction.ElevationThreshold,
		ShadowElevated:     interaction.ShadowElevated,
		ShadowResting:      interaction.ShadowResting,
		SectionOffset:      interaction.SectionOffset,
		ActiveLinkColor:    interaction.ActiveLinkColor,
		LiveReload:         liveReload,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering script: %w", err)
	}
	return buf.Bytes(), nil
}

// copyDir recursively copies the regular files under src into dst.
func copyDir(src, dst string) (int, error) {
	n := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(destPath, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(path, destPath); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

// copyFile copies a single file, replacing dst atomically.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return renameio.WriteFile(dst, data, 0o644)
}
