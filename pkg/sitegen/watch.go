package sitegen

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/inkwellmd/inkwell/internal/logging"
	"github.com/inkwellmd/inkwell/pkg/fsutil"
)

// debounceDelay batches bursts of filesystem events (editors fire
// several per save) into one rebuild.
const debounceDelay = 200 * time.Millisecond

// Watch builds once, then rebuilds whenever a Markdown source under
// the input dir changes, until ctx is cancelled. Build failures are
// logged and watching continues; only watcher failures end the loop.
func (g *Generator) Watch(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	if _, err := g.Build(ctx); err != nil {
		logger.Error("initial build failed", logging.FieldError, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addDirsRecursive(watcher, g.cfg.InputDir); err != nil {
		return err
	}
	logger.Info("watching for changes", logging.FieldInput, g.cfg.InputDir)

	var timer *time.Timer
	var rebuild <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !g.relevant(event) {
				continue
			}
			// New directories need their own watch.
			if event.Op.Has(fsnotify.Create) {
				if err := addDirsRecursive(watcher, event.Name); err == nil {
					logger.Debug("watching new path", logging.FieldPath, event.Name)
				}
			}
			logger.Debug("source changed", logging.FieldPath, event.Name)
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			rebuild = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", logging.FieldError, err)

		case <-rebuild:
			rebuild = nil
			if _, err := g.Build(ctx); err != nil {
				logger.Error("rebuild failed", logging.FieldError, err)
			}
		}
	}
}

// relevant reports whether an event should trigger a rebuild: Markdown
// files and directory-level changes, ignoring the output dir and
// hidden paths.
func (g *Generator) relevant(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	if within(g.cfg.OutputDir, event.Name) {
		return false
	}
	if fsutil.IsMarkdown(event.Name) {
		return true
	}
	// Creations and removals may be directories of sources.
	return event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Remove)
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// addDirsRecursive watches root and every directory below it. Files
// are covered by their parent directory's watch.
func addDirsRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil //nolint:nilerr // unreadable entries are skipped, not fatal
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
