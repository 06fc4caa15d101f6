package preset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to preset documents in one directory.
type Watcher struct {
	fs  *fsnotify.Watcher
	dir string
}

// NewWatcher starts watching dir.
func NewWatcher(dir string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("preset: watcher: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("preset: watch %s: %w", dir, err)
	}
	return &Watcher{fs: fs, dir: dir}, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string { return w.dir }

// Run calls onChange for every create, write, remove or rename of a preset
// file until ctx is done or the watcher is closed. Watch errors go to
// onError, which may be nil.
func (w *Watcher) Run(ctx context.Context, onChange func(path string), onError func(error)) {
	const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&relevant == 0 || !strings.EqualFold(filepath.Ext(ev.Name), Ext) {
				continue
			}
			onChange(ev.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
