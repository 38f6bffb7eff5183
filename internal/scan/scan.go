// Package scan walks the videos root and yields candidate files for
// upload. Every cycle runs a fresh scan; there is no stateful cursor.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// videoExtensions is the suffix convention for candidate files.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".flv":  true,
	".wmv":  true,
	".webm": true,
	".m4v":  true,
}

// skipDirName is the working directory used for in-progress recordings;
// files inside it are never upload candidates.
const skipDirName = "temp"

// IsVideo reports whether name carries a recognized video extension.
func IsVideo(name string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(name))]
}

// Videos walks root recursively and returns the paths of video files
// relative to root, skipping any directory literally named "temp".
// The relative path is the stable identity used as the ledger key.
func Videos(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == skipDirName && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsVideo(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		found = append(found, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk videos root %s: %w", root, err)
	}
	return found, nil
}
