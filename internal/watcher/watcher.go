// Package watcher wraps fsnotify with recursive directory registration and
// debouncing, feeding the preview server's live-reload channel.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stanza-dev/stanza/internal/logging"
)

// ChangeEvent is one debounced batch of file changes.
type ChangeEvent struct {
	Paths []string
	Time  time.Time
}

// Handler receives debounced change batches.
type Handler func(ChangeEvent)

// Watcher watches directories recursively and delivers debounced change
// batches to registered handlers.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   logging.Logger

	mu       sync.Mutex
	handlers []Handler
	pending  map[string]struct{}
	timer    *time.Timer
}

// New creates a watcher with the given debounce window.
func New(debounce time.Duration, logger logging.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Watcher{
		fsw:      fsw,
		debounce: debounce,
		logger:   logger.WithComponent("watcher"),
		pending:  make(map[string]struct{}),
	}, nil
}

// AddRecursive registers dir and all its subdirectories.
func (w *Watcher) AddRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// OnChange registers a handler for debounced change batches.
func (w *Watcher) OnChange(h Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// Start processes events until ctx is canceled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories join the watch set so nested creates keep
			// arriving.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.AddRecursive(event.Name)
				}
			}
			w.record(event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn(ctx, err, "watch error")
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) record(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	handlers := append([]Handler{}, w.handlers...)
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}

	event := ChangeEvent{Paths: paths, Time: time.Now()}
	for _, h := range handlers {
		h(event)
	}
}
