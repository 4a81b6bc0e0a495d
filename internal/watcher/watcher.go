package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/prettymuchbryce/reportdetails/internal/facts"
	"github.com/prettymuchbryce/reportdetails/internal/rules"
)

// Handler receives the result of re-evaluating a snapshot file. err is set
// when the file could not be loaded.
type Handler func(path string, result *rules.Result, err error)

// Watcher re-evaluates snapshot files when they change.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	fs        afero.Fs
	evaluator *rules.Evaluator
	handler   Handler

	// Debounce delay for re-evaluating after events
	debounceDelay time.Duration

	files *WatchedFiles

	// Per-file timers for debounced evaluation
	fileTimers       map[string]*time.Timer
	fileDebounceChan chan ChangedFile

	// Closed when the watcher is stopping to unblock timer goroutines
	done chan struct{}
}

// New creates a Watcher for the given snapshot files.
func New(paths []string, debounce time.Duration, evaluator *rules.Evaluator, handler Handler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := newWatcher(fsw, fsw, afero.NewOsFs(), debounce, evaluator, handler)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("invalid path %s: %w", p, err)
		}
		if err := w.files.Add(abs); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

func newWatcher(fsw *fsnotify.Watcher, watches fsnotifyWatcher, afs afero.Fs, debounce time.Duration, evaluator *rules.Evaluator, handler Handler) *Watcher {
	if evaluator == nil {
		evaluator = rules.NewEvaluator(nil)
	}
	return &Watcher{
		fsWatcher:        fsw,
		fs:               afs,
		evaluator:        evaluator,
		handler:          handler,
		debounceDelay:    debounce,
		files:            NewWatchedFiles(watches),
		fileTimers:       make(map[string]*time.Timer),
		fileDebounceChan: make(chan ChangedFile),
		done:             make(chan struct{}),
	}
}

// Run evaluates every file once, then re-evaluates on change until the
// context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	slog.Info("watcher started", "files", len(w.files.Files()), "debounce", w.debounceDelay)

	for _, path := range w.files.Files() {
		w.evaluate(path)
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("watcher stopping")
			close(w.done)
			for _, timer := range w.fileTimers {
				timer.Stop()
			}
			return w.fsWatcher.Close()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.processEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher error", "error", err)

		case changed := <-w.fileDebounceChan:
			slog.Debug("re-evaluating snapshot", "path", changed.Path)
			w.evaluate(changed.Path)
		}
	}
}

// processEvent schedules evaluation for writes to tracked files.
func (w *Watcher) processEvent(event fsnotify.Event) {
	if !w.files.Covers(event.Name) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		slog.Debug("ignoring event", "path", event.Name, "op", event.Op.String())
		return
	}
	w.schedule(filepath.Clean(event.Name))
}

// schedule (re)starts the debounce timer for path.
func (w *Watcher) schedule(path string) {
	if timer, ok := w.fileTimers[path]; ok {
		timer.Reset(w.debounceDelay)
		return
	}

	w.fileTimers[path] = time.AfterFunc(w.debounceDelay, func() {
		select {
		case w.fileDebounceChan <- ChangedFile{Path: path, Time: time.Now()}:
		case <-w.done:
		}
	})
}

// evaluate loads path and hands the result to the handler.
func (w *Watcher) evaluate(path string) {
	f, err := facts.LoadWithFs(path, w.fs)
	if err != nil {
		slog.Warn("failed to load snapshot", "path", path, "error", err)
		w.handler(path, nil, err)
		return
	}
	w.handler(path, w.evaluator.Evaluate(f), nil)
}

// WatchCount returns the number of directories currently being watched.
func (w *Watcher) WatchCount() int {
	return w.files.WatchCount()
}
