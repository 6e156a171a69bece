package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/srikarvechalapu/folio/internal/logging"
)

// DefaultDebounce collapses editor save bursts into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// Watcher calls OnChange when files under Root that match Patterns change.
// Events are debounced: OnChange receives every path that changed during
// the quiet period, relative to Root and sorted.
type Watcher struct {
	Root     string
	Patterns []string
	// Ignore lists directories, relative to Root, that are never watched.
	// The output directory belongs here so a rebuild does not trigger itself.
	Ignore   []string
	Debounce time.Duration
	OnChange func(ctx context.Context, changed []string)

	log zerolog.Logger

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
}

// NewWatcher returns a watcher with the default debounce.
func NewWatcher(root string, patterns []string, onChange func(context.Context, []string)) *Watcher {
	return &Watcher{
		Root:     root,
		Patterns: patterns,
		Debounce: DefaultDebounce,
		OnChange: onChange,
	}
}

// Matches reports whether rel, a slash-separated path relative to Root,
// matches one of the watch patterns.
func (w *Watcher) Matches(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range w.Patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// DefaultExcludes are directory names never watched, wherever they appear.
var DefaultExcludes = []string{
	".git",
	".folio",
	"node_modules",
	".idea",
	".vscode",
}

func (w *Watcher) ignored(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, dir := range w.Ignore {
		dir = filepath.ToSlash(filepath.Clean(dir))
		if rel == dir || strings.HasPrefix(rel, dir+"/") {
			return true
		}
	}
	for _, part := range strings.Split(rel, "/") {
		for _, excl := range DefaultExcludes {
			if strings.EqualFold(part, excl) {
				return true
			}
		}
	}
	return false
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	w.log = logging.WithComponent("watch")
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addTree(fw, w.Root); err != nil {
		return err
	}
	w.log.Info().Str("root", w.Root).Strs("patterns", w.Patterns).Msg("watching for changes")

	defer w.stopTimer()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, fw, ev)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) handle(ctx context.Context, fw *fsnotify.Watcher, ev fsnotify.Event) {
	rel, err := filepath.Rel(w.Root, ev.Name)
	if err != nil || w.ignored(rel) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(fw, ev.Name); err != nil {
				w.log.Warn().Err(err).Str("dir", rel).Msg("cannot watch new directory")
			}
			return
		}
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}
	if !w.Matches(rel) {
		return
	}
	w.log.Debug().Str("path", rel).Str("op", ev.Op.String()).Msg("file changed")
	w.schedule(ctx, filepath.ToSlash(rel))
}

// schedule records a change and restarts the debounce timer.
func (w *Watcher) schedule(ctx context.Context, rel string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		w.pending = make(map[string]struct{})
	}
	w.pending[rel] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	d := w.Debounce
	if d <= 0 {
		d = DefaultDebounce
	}
	w.timer = time.AfterFunc(d, func() { w.flush(ctx) })
}

func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	changed := make([]string, 0, len(w.pending))
	for p := range w.pending {
		changed = append(changed, p)
	}
	w.pending = nil
	w.mu.Unlock()

	if len(changed) == 0 || ctx.Err() != nil {
		return
	}
	slices.Sort(changed)
	w.OnChange(ctx, changed)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

// addTree watches dir and every directory below it that is not ignored.
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(w.Root, path)
		if err != nil {
			return err
		}
		if rel != "." && w.ignored(rel) {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", rel, err)
		}
		return nil
	})
}
