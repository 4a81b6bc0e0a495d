package watcher

import "time"

// WatchEntry is a watched directory and the snapshot files in it.
type WatchEntry struct {
	// The directory being watched.
	path string

	// Snapshot files under this directory, by base name.
	files map[string]struct{}
}

func newWatchEntry(path string) *WatchEntry {
	return &WatchEntry{path: path, files: make(map[string]struct{})}
}

func (we *WatchEntry) isEmpty() bool {
	return len(we.files) == 0
}

// ChangedFile is a snapshot file whose debounce timer fired.
type ChangedFile struct {
	Path string
	Time time.Time
}
