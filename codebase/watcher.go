package codebase

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type WatcherOption func(*FileWatcher)

// WithInterval sets how often the watcher polls the file system.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *FileWatcher) {
		if d > 0 {
			w.pollInterval = d
		}
	}
}

// WithOnChange registers a callback run after a file is parsed again. It
// receives a FileInfo with only Path set when the file was removed.
func WithOnChange(fn func(f *FileInfo, removed bool)) WatcherOption {
	return func(w *FileWatcher) {
		w.onChange = fn
	}
}

// WithSkip registers a predicate for paths whose disk contents must not
// replace what the codebase holds, such as files open in an editor.
func WithSkip(fn func(path string) bool) WatcherOption {
	return func(w *FileWatcher) {
		w.skip = fn
	}
}

// FileWatcher polls the codebase root for modified, new and deleted
// source files.
type FileWatcher struct {
	codebase     *Codebase
	stopCh       chan struct{}
	doneCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
	onChange     func(f *FileInfo, removed bool)
	skip         func(path string) bool

	mu       sync.Mutex
	started  bool
	stopOnce sync.Once
}

func NewFileWatcher(c *Codebase, opts ...WatcherOption) *FileWatcher {
	w := &FileWatcher{
		codebase:     c,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start launches the polling goroutine. Calls after the first, or after
// Stop, do nothing.
func (w *FileWatcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.stopped() {
		return
	}
	w.started = true
	go w.run()
}

// Stop ends polling and waits for an in-flight scan to finish. It is safe
// to call more than once, and without a prior Start.
func (w *FileWatcher) Stop() {
	w.mu.Lock()
	w.stopOnce.Do(func() { close(w.stopCh) })
	started := w.started
	w.mu.Unlock()
	if started {
		<-w.doneCh
	}
}

func (w *FileWatcher) stopped() bool {
	select {
	case <-w.stopCh:
		return true
	default:
		return false
	}
}

func (w *FileWatcher) skipped(path string) bool {
	return w.skip != nil && w.skip(path)
}

func (w *FileWatcher) run() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.Scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Scan()
		}
	}
}

// Scan runs one polling pass. It is exported so callers can drive the
// watcher without the background goroutine.
func (w *FileWatcher) Scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(w.codebase.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.codebase.RootDir() && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsSource(path) {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			if w.skipped(path) {
				log.Debugf("skipped %s", path)
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				log.Warningf("read %s: %s", path, err)
				return nil
			}
			w.modTimes[path] = info.ModTime()
			f := w.codebase.UpdateFile(path, content)
			log.Infof("parsed %s", path)
			if w.onChange != nil {
				w.onChange(f, false)
			}
		}
		return nil
	})

	for path := range w.modTimes {
		if !currentFiles[path] {
			if w.skipped(path) {
				continue
			}
			delete(w.modTimes, path)
			w.codebase.RemoveFile(path)
			log.Infof("removed %s", path)
			if w.onChange != nil {
				w.onChange(&FileInfo{Path: path}, true)
			}
		}
	}
}
