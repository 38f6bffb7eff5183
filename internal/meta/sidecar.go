package meta

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// sidecar is the archive metadata format: a JSON file sharing the
// video's numeric ID prefix, e.g. 123-info.json next to 123-video.mp4.
type sidecar struct {
	Title string `json:"title"`

	CreatedAt   string `json:"created_at"`
	PublishedAt string `json:"published_at"`
	StartedAt   string `json:"started_at"`

	Channel string `json:"channel"`
	Game    string `json:"game"`
}

var thumbnailExtensions = []string{".jpg", ".jpeg", ".png"}

// applySidecar enriches job from its sidecar metadata, if present.
// Parse failures are advisory; the filename-derived metadata stands.
func applySidecar(job *Job) {
	prefix := numericPrefix(filepath.Base(job.Path))
	if prefix == "" {
		return
	}
	dir := filepath.Dir(job.Path)

	sidecarPath, ok := findWithPrefix(dir, prefix, []string{".json"})
	if ok {
		sc, err := readSidecar(sidecarPath)
		if err != nil {
			logger.Warn("ignoring unreadable sidecar metadata",
				slog.String("path", sidecarPath),
				slog.String("error", err.Error()))
		} else {
			if sc.Title != "" {
				job.Title = CleanTitle(sc.Title)
			}
			if desc := sc.describe(job.Description); desc != "" {
				job.Description = desc
			}
		}
	}

	if thumb, ok := findWithPrefix(dir, prefix, thumbnailExtensions); ok {
		job.Thumbnail = thumb
	}
}

func readSidecar(path string) (*sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := &sidecar{}
	if err := json.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("failed to parse sidecar %s: %w", path, err)
	}
	return sc, nil
}

// describe builds the description from the base text plus whatever the
// sidecar knows about the recording.
func (sc *sidecar) describe(base string) string {
	var lines []string
	if base != "" {
		lines = append(lines, base)
	}
	if date, ok := sc.date(); ok {
		lines = append(lines, "Recorded "+date.Format("2006-01-02 15:04"))
	}
	if sc.Channel != "" {
		lines = append(lines, "Channel: "+sc.Channel)
	}
	if sc.Game != "" {
		lines = append(lines, "Game: "+sc.Game)
	}
	return strings.Join(lines, "\n")
}

// date returns the recording date from the first populated field of
// created_at, published_at, started_at.
func (sc *sidecar) date() (time.Time, bool) {
	for _, raw := range []string{sc.CreatedAt, sc.PublishedAt, sc.StartedAt} {
		if raw == "" {
			continue
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, true
			}
		}
		logger.Warn("unparseable sidecar date", slog.String("value", raw))
	}
	return time.Time{}, false
}

// numericPrefix returns the leading digit run of name, or "" when the
// name does not start with digits.
func numericPrefix(name string) string {
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	if i == 0 || i == len(name) {
		return ""
	}
	return name[:i]
}

// findWithPrefix returns the first file in dir whose name starts with
// the numeric prefix and carries one of the wanted extensions.
func findWithPrefix(dir, prefix string, exts []string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if numericPrefix(name) != prefix {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		for _, want := range exts {
			if ext == want {
				return filepath.Join(dir, name), true
			}
		}
	}
	return "", false
}
