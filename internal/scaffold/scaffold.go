// Package scaffold writes the starter content for a new portfolio: one
// document per section, each with an "_instructions" placeholder entry
// that documents the format and is never rendered.
package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/google/renameio/v2"

	"github.com/srikarvechalapu/folio/internal/config"
	"github.com/srikarvechalapu/folio/internal/site"
)

// Result lists what Write did, as paths relative to the target directory.
type Result struct {
	Written []string
	Skipped []string
}

// Options controls Write.
type Options struct {
	// Skeleton also writes index.html with the embedded skeleton.
	Skeleton bool
	// Force overwrites existing files.
	Force bool
}

// Write creates data/<section>.json under dir for every section, plus the
// skeleton when asked. Existing files are kept unless opts.Force is set.
func Write(dir string, owner config.Owner, opts Options) (*Result, error) {
	if owner.Name == "" {
		owner.Name = "Your Name"
	}
	if owner.Title == "" {
		owner.Title = "Software Engineer"
	}
	if owner.Email == "" {
		owner.Email = "you@example.com"
	}

	data := starterData{Owner: owner, Year: time.Now().Year()}
	res := &Result{}
	for _, name := range sectionNames {
		var buf bytes.Buffer
		if err := starters.ExecuteTemplate(&buf, name, data); err != nil {
			return res, fmt.Errorf("rendering %s: %w", name, err)
		}
		if err := writeFile(dir, filepath.Join("data", name+".json"), buf.Bytes(), opts.Force, res); err != nil {
			return res, err
		}
	}

	if opts.Skeleton {
		if err := writeFile(dir, "index.html", []byte(site.DefaultSkeleton()), opts.Force, res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func writeFile(dir, rel string, body []byte, force bool, res *Result) error {
	path := filepath.Join(dir, rel)
	if !force {
		if _, err := os.Stat(path); err == nil {
			res.Skipped = append(res.Skipped, filepath.ToSlash(rel))
			return nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(rel), err)
	}
	if err := renameio.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	res.Written = append(res.Written, filepath.ToSlash(rel))
	return nil
}

type starterData struct {
	config.Owner
	Year int
}

var sectionNames = []string{
	"site-config", "navigation", "hero", "about", "experience",
	"skills", "projects", "education", "contact", "footer",
}

var starters = template.Must(template.New("starters").Funcs(template.FuncMap{
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
}).Parse(starterSource))
