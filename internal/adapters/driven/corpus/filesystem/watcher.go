package filesystem

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aldergate-labs/physika-cli/internal/logger"
)

// debounceWindow coalesces bursts of filesystem events. Editors
// commonly fire several writes per save.
const debounceWindow = 500 * time.Millisecond

// Watcher re-runs a callback whenever the notes directory changes.
type Watcher struct {
	root     string
	watcher  *fsnotify.Watcher
	onChange func(ctx context.Context)
}

// NewWatcher watches root and its subdirectories. onChange runs
// after each debounced batch of events.
func NewWatcher(root string, onChange func(ctx context.Context)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{root: root, watcher: fw, onChange: onChange}
	if err := w.addRecursive(root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// addRecursive registers root and every subdirectory with fsnotify.
// fsnotify watches are not recursive on their own.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

// Run blocks, dispatching debounced change notifications until the
// context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("notes changed: %s (%s)", event.Name, event.Op)

			// New directories need their own watch.
			if event.Op.Has(fsnotify.Create) {
				_ = w.addRecursive(w.root)
			}

			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.onChange(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// relevant filters out events that cannot affect the corpus.
func relevant(event fsnotify.Event) bool {
	if event.Op.Has(fsnotify.Chmod) && event.Op&^fsnotify.Chmod == 0 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	if ext == "" {
		// Could be a directory create or remove.
		return true
	}
	_, ok := extensions[ext]
	return ok
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
