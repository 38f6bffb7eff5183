// Package ledger persists the mapping from local video files to the
// remote assets they were uploaded as, keyed by path relative to the
// videos root. Presence of a key means "do not upload again".
package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Entry records the outcome of one upload.
type Entry struct {
	Title      string    `json:"title"`
	VideoID    string    `json:"video_id"`
	UploadDate time.Time `json:"upload_date"`
	URL        string    `json:"url"`
}

// Ledger is the persisted idempotency record. It is written through:
// every Record flushes to disk before returning, so a crash loses at
// most the entry being written.
type Ledger struct {
	path    string
	entries map[string]Entry
}

// Open loads the ledger at path. A missing file yields an empty ledger;
// a file that exists but fails to parse also yields an empty ledger with
// a warning, since an empty ledger only risks duplicate uploads.
func Open(path string) (*Ledger, error) {
	l := &Ledger{
		path:    path,
		entries: make(map[string]Entry),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("failed to read ledger file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &l.entries); err != nil {
		logger.Warn("ledger file is corrupt, starting with an empty ledger",
			slog.String("path", path),
			slog.String("error", err.Error()))
		l.entries = make(map[string]Entry)
	}
	return l, nil
}

// IsUploaded reports whether key is already recorded.
func (l *Ledger) IsUploaded(key string) bool {
	_, ok := l.entries[key]
	return ok
}

// Get returns the entry for key, if any.
func (l *Ledger) Get(key string) (Entry, bool) {
	e, ok := l.entries[key]
	return e, ok
}

// Record adds or overwrites the entry for key and flushes the ledger to
// disk immediately.
func (l *Ledger) Record(key, title, videoID, url string) error {
	l.entries[key] = Entry{
		Title:      title,
		VideoID:    videoID,
		UploadDate: time.Now().UTC(),
		URL:        url,
	}
	return l.save()
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

func (l *Ledger) save() error {
	writer, err := newAtomicWriter(l.path)
	if err != nil {
		return fmt.Errorf("failed to open ledger for writing: %w", err)
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(l.entries); err != nil {
		writer.abort()
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	if err := writer.commit(); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}
