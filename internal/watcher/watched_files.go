package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
)

// fsnotifyWatcher is the interface for fsnotify operations, allowing mocking in tests.
type fsnotifyWatcher interface {
	Add(name string) error
	Remove(name string) error
}

// WatchedFiles tracks snapshot files and the directories watched for them.
// Directories are watched rather than files, so a file replaced through a
// rename (as most editors save) keeps being noticed.
type WatchedFiles struct {
	fsWatcher fsnotifyWatcher

	// entries stores WatchEntry objects indexed by directory.
	entries map[string]*WatchEntry
}

// NewWatchedFiles creates an empty WatchedFiles.
func NewWatchedFiles(fsWatcher fsnotifyWatcher) *WatchedFiles {
	return &WatchedFiles{
		fsWatcher: fsWatcher,
		entries:   make(map[string]*WatchEntry),
	}
}

// Add starts tracking path. The containing directory is watched on first use.
func (w *WatchedFiles) Add(path string) error {
	path = filepath.Clean(path)
	dir, name := filepath.Split(path)
	dir = filepath.Clean(dir)

	entry, ok := w.entries[dir]
	if !ok {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		entry = newWatchEntry(dir)
		w.entries[dir] = entry
		slog.Debug("watching directory", "path", dir)
	}

	entry.files[name] = struct{}{}
	return nil
}

// Remove stops tracking path. The directory watch is dropped with its last file.
func (w *WatchedFiles) Remove(path string) {
	path = filepath.Clean(path)
	dir, name := filepath.Split(path)
	dir = filepath.Clean(dir)

	entry, ok := w.entries[dir]
	if !ok {
		return
	}
	delete(entry.files, name)

	if entry.isEmpty() {
		delete(w.entries, dir)
		if err := w.fsWatcher.Remove(dir); err != nil {
			slog.Debug("failed to remove watch", "path", dir, "error", err)
		}
	}
}

// Covers returns true if path is a tracked snapshot file.
func (w *WatchedFiles) Covers(path string) bool {
	path = filepath.Clean(path)
	dir, name := filepath.Split(path)
	entry, ok := w.entries[filepath.Clean(dir)]
	if !ok {
		return false
	}
	_, ok = entry.files[name]
	return ok
}

// Files returns the tracked files in sorted order.
func (w *WatchedFiles) Files() []string {
	var files []string
	for dir, entry := range w.entries {
		for name := range entry.files {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files
}

// WatchCount returns the number of directories currently being watched.
func (w *WatchedFiles) WatchCount() int {
	return len(w.entries)
}
