// Package watcher reloads the in-memory search index when the index file
// on disk is replaced.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"portfolio/internal/contextutil"
)

// DefaultDebounce is how long the watcher waits after the last change
// before reloading.
const DefaultDebounce = 250 * time.Millisecond

// Reloader is implemented by search.Index.
type Reloader interface {
	Reload(ctx context.Context) error
}

// IndexWatcher triggers a reload after writes to a single file.
type IndexWatcher struct {
	path     string
	reloader Reloader
	debounce time.Duration
}

// New creates a watcher for path. A non-positive debounce uses
// DefaultDebounce.
func New(path string, reloader Reloader, debounce time.Duration) *IndexWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &IndexWatcher{
		path:     filepath.Clean(path),
		reloader: reloader,
		debounce: debounce,
	}
}

// Run watches until ctx is cancelled. The parent directory is watched
// rather than the file itself so atomic renames are seen.
func (w *IndexWatcher) Run(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx).With("component", "watcher", "path", w.path)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		_ = fsw.Close()
	}()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.InfoContext(ctx, "watching search index")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.DebugContext(ctx, "index file changed", "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.WarnContext(ctx, "file watcher error", "error", err)

		case <-timer.C:
			if err := w.reloader.Reload(ctx); err != nil {
				logger.WarnContext(ctx, "search index reload failed", "error", err)
				continue
			}
			logger.DebugContext(ctx, "search index reloaded")
		}
	}
}
