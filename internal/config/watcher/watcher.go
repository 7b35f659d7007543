// Package watcher watches the config file and reports changes, so theme
// and option edits apply without restarting the editor.
package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the bursts of writes editors produce when
// saving a file.
const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to a single file.
type Watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
}

// New watches path and invokes onChange (from the watcher's goroutine)
// after the file is written, created, or renamed. The parent directory
// is watched rather than the file itself: most editors save by renaming
// a temp file over the target, which would drop a direct watch.
func New(path string, onChange func()) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, err
	}

	w := &Watcher{fs: fs, done: make(chan struct{})}
	go w.run(filepath.Base(path), onChange)
	return w, nil
}

func (w *Watcher) run(base string, onChange func()) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				fire = timer.C
			} else {
				timer.Reset(debounceWindow)
			}
		case <-fire:
			timer = nil
			fire = nil
			onChange()
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
