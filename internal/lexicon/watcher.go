package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher hot-reloads a lexicon override file into a Store when the file
// changes on disk. The parent directory is watched rather than the file
// itself so editor rename-and-replace saves are still seen.
type Watcher struct {
	path    string
	store   *Store
	logger  *slog.Logger
	watcher *fsnotify.Watcher
}

func NewWatcher(path string, store *Store, logger *slog.Logger) (*Watcher, error) {
	fileWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		path:    filepath.Clean(path),
		store:   store,
		logger:  logger,
		watcher: fileWatcher,
	}, nil
}

func (w *Watcher) Start(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch lexicon dir: %w", err)
	}
	w.logger.Info("lexicon watcher started", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("lexicon watcher stopped")
			return nil
		case event := <-w.watcher.Events:
			w.handleEvent(event)
		case err := <-w.watcher.Errors:
			if err != nil {
				w.logger.Error("lexicon watcher error", "error", err)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	// Reload logs its own failure and keeps the previous lexicon.
	_ = w.store.Reload(w.path)
}
