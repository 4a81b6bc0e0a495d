package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading ~ to the user's home directory. Paths that
// cannot be expanded are returned unchanged.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ExpandAll applies ExpandTilde to every path, returning a new slice.
func ExpandAll(paths []string) []string {
	expanded := make([]string, len(paths))
	for i, p := range paths {
		expanded[i] = ExpandTilde(p)
	}
	return expanded
}
