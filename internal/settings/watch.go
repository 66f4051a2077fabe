package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/thiagokokada/tkforms/internal/debounce"
)

const reloadDebounceDelay = 350 * time.Millisecond

// Watcher reloads a settings file whenever it changes on disk. Editors often
// replace files instead of writing them, so the parent directory is watched.
type Watcher struct {
	mu       sync.Mutex
	path     string
	watcher  *fsnotify.Watcher
	debounce *debounce.Debouncer
	onChange func(*Settings)
	post     func(func())
}

// Watch starts watching path. onChange receives every successfully parsed
// version of the file and runs through post, which callers use to get back
// onto the UI thread.
func Watch(path string, post func(func()), onChange func(*Settings)) (*Watcher, error) {
	if post == nil {
		post = func(f func()) { f() }
	}
	w := &Watcher{path: filepath.Clean(path), onChange: onChange, post: post}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	dir := filepath.Dir(w.path)
	slog.Debug("adding path to FS watcher", slog.String("path", dir))
	if err := fw.Add(dir); err != nil {
		err := errors.Join(err, fw.Close())
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w.watcher = fw
	w.debounce = debounce.New(reloadDebounceDelay, w.reload)
	go w.loop(fw)
	return w, nil
}

func (w *Watcher) loop(fw *fsnotify.Watcher) {
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			slog.Debug("fsnotify event",
				slog.String("op", ev.Op.String()),
				slog.String("path", ev.Name),
			)
			w.schedule()
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Error("fsnotify error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(ev.Name) == w.path
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce == nil {
		return
	}
	w.debounce.Trigger()
}

func (w *Watcher) reload() {
	s, err := LoadOptional(w.path)
	if err != nil {
		slog.Error("settings reload", slog.String("path", w.path), slog.Any("error", err))
		return
	}
	slog.Debug("settings reloaded", slog.String("path", w.path))
	if w.onChange != nil {
		w.post(func() { w.onChange(s) })
	}
}

// Close stops watching. Pending reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
		w.debounce = nil
	}
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}
