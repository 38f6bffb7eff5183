package meta

import (
	"strings"
	"time"
	"unicode"
)

// maxTitleLen is YouTube's maximum title length in characters.
const maxTitleLen = 100

// CleanTitle makes a string acceptable as a YouTube video title: control
// characters and the disallowed angle brackets are stripped, surrounding
// whitespace trimmed, and the result truncated to the platform maximum.
// Cleaning is idempotent. An input that cleans down to nothing yields a
// timestamp placeholder so the upload never fails on an empty title.
func CleanTitle(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '<' || r == '>' {
			return -1
		}
		return r
	}, s)
	cleaned = strings.TrimSpace(cleaned)

	if runes := []rune(cleaned); len(runes) > maxTitleLen {
		cleaned = strings.TrimSpace(string(runes[:maxTitleLen]))
	}

	if cleaned == "" {
		return "Upload " + time.Now().Format("2006-01-02 15:04:05")
	}
	return cleaned
}
