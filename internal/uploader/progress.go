package uploader

import (
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

func NewProgressBar(size int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetDescription(description+":"),
		progressbar.OptionSetWidth(20), // Fit in an 80-column terminal.
		progressbar.OptionShowBytes(true),
		progressbar.OptionUseIECUnits(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowTotalBytes(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
}

// coarseProgress feeds the progress bar and logs advancement only when
// it moves at least five percentage points, to keep unattended logs
// readable.
type coarseProgress struct {
	key     string
	total   int64
	lastPct int64
	bar     *progressbar.ProgressBar
}

func (p *coarseProgress) update(current, total int64) {
	if p.bar != nil {
		_ = p.bar.Set64(current)
	}
	if p.total <= 0 {
		return
	}
	pct := current * 100 / p.total
	if pct >= p.lastPct+5 || (pct >= 100 && p.lastPct < 100) {
		p.lastPct = pct
		logger.Debug("upload progress",
			slog.String("file", p.key),
			slog.Int64("percent", pct))
	}
}
