// Package meta derives the upload job for a video file: title,
// description, tags and thumbnail, either from the filename alone or
// from a sidecar JSON file when archive mode is enabled.
package meta

import (
	"path/filepath"
	"strings"

	"github.com/ccfrost/tubeflow/internal/config"
)

// Job describes one video upload. It is transient; nothing about it is
// persisted beyond the ledger entry written after a successful upload.
type Job struct {
	// Path is the absolute path of the video file.
	Path string
	// Key is the path relative to the videos root, the ledger identity.
	Key string

	Title       string
	Description string
	Tags        []string
	CategoryID  string
	Privacy     string

	// Thumbnail is an optional image path attached after upload.
	Thumbnail string

	// Folder is the immediate subfolder under the root, used for
	// auto-playlist naming. Empty for files directly in the root.
	Folder string
}

// BuildJob derives the upload job for the video at key (relative to
// root). With archiveMode, a sidecar JSON sharing the video's numeric ID
// prefix supplies title, date and thumbnail; otherwise, or when no
// sidecar exists, the title falls back to the bare filename.
func BuildJob(root, key string, defaults config.UploadDefaults, archiveMode bool) Job {
	path := filepath.Join(root, key)
	base := filepath.Base(key)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	job := Job{
		Path:        path,
		Key:         key,
		Title:       CleanTitle(title),
		Description: defaults.Description,
		Tags:        defaults.Tags,
		CategoryID:  defaults.CategoryID,
		Privacy:     defaults.Privacy,
		Folder:      topFolder(key),
	}

	if archiveMode {
		applySidecar(&job)
	}
	return job
}

// topFolder returns the first path element of key, or "" when the file
// sits directly in the root.
func topFolder(key string) string {
	dir := filepath.Dir(key)
	if dir == "." {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(dir), "/")
	return parts[0]
}
