// Package notify posts cycle summaries to a configured chat webhook.
// Delivery is fire-and-forget: failures are logged, never retried, and
// never fatal.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Notifier posts JSON payloads to one webhook URL. A Notifier with an
// empty URL is a no-op.
type Notifier struct {
	url    string
	client *http.Client
}

func New(url string) *Notifier {
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// embed is the Discord-style webhook payload fragment.
type embed struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Color       int     `json:"color"`
	Fields      []field `json:"fields,omitempty"`
}

type field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type payload struct {
	Username string  `json:"username"`
	Embeds   []embed `json:"embeds"`
}

// CycleSummary announces the outcome of one scan-and-upload cycle.
func (n *Notifier) CycleSummary(ctx context.Context, candidates, uploaded, skipped, failed int) {
	if n.url == "" {
		return
	}
	color := 0x2ecc71 // green
	if failed > 0 {
		color = 0xe67e22 // orange
	}
	n.post(ctx, payload{
		Username: "tubeflow",
		Embeds: []embed{{
			Title:       "Upload cycle finished",
			Description: fmt.Sprintf("%d candidate(s) scanned", candidates),
			Color:       color,
			Fields: []field{
				{Name: "Uploaded", Value: fmt.Sprint(uploaded), Inline: true},
				{Name: "Skipped", Value: fmt.Sprint(skipped), Inline: true},
				{Name: "Failed", Value: fmt.Sprint(failed), Inline: true},
			},
		}},
	})
}

// Uploaded announces a single finished upload.
func (n *Notifier) Uploaded(ctx context.Context, title, url string) {
	if n.url == "" {
		return
	}
	n.post(ctx, payload{
		Username: "tubeflow",
		Embeds: []embed{{
			Title:       "Uploaded: " + title,
			Description: url,
			Color:       0x3498db, // blue
		}},
	})
}

func (n *Notifier) post(ctx context.Context, p payload) {
	body, err := json.Marshal(p)
	if err != nil {
		logger.Warn("failed to encode webhook payload", slog.String("error", err.Error()))
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		logger.Warn("failed to build webhook request", slog.String("error", err.Error()))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		logger.Warn("webhook delivery failed", slog.String("error", err.Error()))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		logger.Warn("webhook delivery rejected", slog.Int("status", resp.StatusCode))
	}
}
