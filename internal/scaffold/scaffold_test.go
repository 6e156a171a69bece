package scaffold

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikarvechalapu/folio/internal/config"
	"github.com/srikarvechalapu/folio/internal/content"
	"github.com/srikarvechalapu/folio/internal/loader"
	"github.com/srikarvechalapu/folio/internal/site"
)

func TestWriteStarterRendersCleanly(t *testing.T) {
	dir := t.TempDir()
	res, err := Write(dir, config.Owner{Name: `Ada "The Countess" Lovelace`, Title: "Analyst", Email: "ada@example.com"}, Options{Skeleton: true})
	require.NoError(t, err)
	assert.Len(t, res.Written, len(sectionNames)+1)
	assert.Empty(t, res.Skipped)

	doc, err := site.Skeleton(filepath.Join(dir, "index.html"))
	require.NoError(t, err)

	f := content.NewDirFetcher(dir)
	env := &loader.Env{Log: zerolog.Nop(), Text: loader.DefaultTextPolicy()}
	for _, l := range loader.All() {
		assert.NoError(t, loader.Run(context.Background(), f, l, doc, env), l.Name())
	}

	assert.Equal(t, `Ada "The Countess" Lovelace`, doc.ByID("heroName").Text())
	assert.Equal(t, 6, doc.Find("#navMenu .nav-link").Length(), "placeholder entries are not rendered")
	assert.Equal(t, 1, doc.Find("#projectsGrid .project-card").Length())
	assert.Equal(t, 3, doc.Find("#contactForm .form-group").Length())
}

func TestWriteKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	hero := filepath.Join(dir, "data", "hero.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(hero), 0o755))
	require.NoError(t, os.WriteFile(hero, []byte(`{"name":"mine"}`), 0o644))

	res, err := Write(dir, config.Owner{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"data/hero.json"}, res.Skipped)
	assert.NotContains(t, res.Written, "index.html")

	body, err := os.ReadFile(hero)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"mine"}`, string(body))

	res, err = Write(dir, config.Owner{}, Options{Force: true})
	require.NoError(t, err)
	assert.Empty(t, res.Skipped)

	var doc map[string]any
	body, err = os.ReadFile(hero)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "Your Name", doc["name"])
}
