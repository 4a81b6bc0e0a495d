package testutil

import (
	"path/filepath"
	"runtime"
)

// Path joins parts into a platform-specific path. A leading "/" makes it
// absolute: Path("/", "fixtures", "group.yaml") is "/fixtures/group.yaml"
// on Unix and "C:\fixtures\group.yaml" on Windows, so snapshot and config
// paths in afero-backed tests work on both.
func Path(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	if parts[0] == "/" && runtime.GOOS == "windows" {
		// C: alone would be drive-relative.
		return "C:\\" + filepath.Join(parts[1:]...)
	}
	return filepath.Join(parts...)
}
