package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFile(t *testing.T) {
	l, err := Open(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.IsUploaded("anything"))
}

func TestRecord_PersistsImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	l, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, l.Record("clips/a.mp4", "a", "vid-123", "https://www.youtube.com/watch?v=vid-123"))
	assert.True(t, l.IsUploaded("clips/a.mp4"))

	// Reopen from disk; the entry must survive with the same fields.
	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Len())
	entry, ok := reloaded.Get("clips/a.mp4")
	require.True(t, ok)
	assert.Equal(t, "a", entry.Title)
	assert.Equal(t, "vid-123", entry.VideoID)
	assert.Equal(t, "https://www.youtube.com/watch?v=vid-123", entry.URL)
	assert.False(t, entry.UploadDate.IsZero())
}

func TestRecord_OverwritesExistingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	l, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, l.Record("a.mp4", "a", "old-id", "old-url"))
	require.NoError(t, l.Record("a.mp4", "a", "new-id", "new-url"))

	assert.Equal(t, 1, l.Len(), "at most one entry per key")
	entry, _ := l.Get("a.mp4")
	assert.Equal(t, "new-id", entry.VideoID)
}

func TestOpen_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0644))

	l, err := Open(path)
	require.NoError(t, err, "a corrupt ledger must not abort the run")
	assert.Equal(t, 0, l.Len())

	// The ledger is writable again after corruption.
	require.NoError(t, l.Record("a.mp4", "a", "vid", "url"))
	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.True(t, reloaded.IsUploaded("a.mp4"))
}
