//go:generate go run github.com/golang/mock/mockgen -source=${GOFILE} -destination=mock_platform_test.go -package=runner Platform

// Package runner composes the scan-and-upload cycle: scan the videos
// root, filter through the ledger, upload what is new, poll processing,
// and record the outcome.
package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/ccfrost/tubeflow/internal/config"
	"github.com/ccfrost/tubeflow/internal/ledger"
	"github.com/ccfrost/tubeflow/internal/meta"
	"github.com/ccfrost/tubeflow/internal/notify"
	"github.com/ccfrost/tubeflow/internal/scan"
	"github.com/ccfrost/tubeflow/internal/uploader"
	"golang.org/x/time/rate"
)

// uploadDelay is the fixed pause between successive uploads, to avoid
// bursting the remote API.
const uploadDelay = 10 * time.Second

// Platform is the remote video platform as the runner sees it. The real
// implementation is *uploader.Uploader.
type Platform interface {
	Upload(ctx context.Context, job meta.Job) (uploader.Result, error)
	AwaitProcessing(ctx context.Context, videoID string) error
	UploadedTitles(ctx context.Context) (map[string]string, error)
	AddToPlaylist(ctx context.Context, title, videoID string) error
}

// Summary counts the outcomes of one cycle.
type Summary struct {
	Candidates int
	Uploaded   int
	Skipped    int
	Failed     int
}

// Runner runs scan-and-upload cycles against one videos root.
type Runner struct {
	cfg      config.TubeflowConfig
	ledger   *ledger.Ledger
	platform Platform
	notifier *notify.Notifier
	limiter  *rate.Limiter
}

func New(cfg config.TubeflowConfig, led *ledger.Ledger, platform Platform, notifier *notify.Notifier) *Runner {
	return &Runner{
		cfg:      cfg,
		ledger:   led,
		platform: platform,
		notifier: notifier,
		limiter:  rate.NewLimiter(rate.Every(uploadDelay), 1),
	}
}

// Cycle runs one linear pass: every candidate is either skipped via the
// ledger, skipped and backfilled via remote title dedupe, or uploaded.
// A single job's failure never aborts the pass.
func (r *Runner) Cycle(ctx context.Context) (Summary, error) {
	var summary Summary

	// Catch assets uploaded by other means: anything on the channel
	// whose title matches a derived title is recorded, not re-uploaded.
	remote := map[string]string{}
	if r.cfg.RemoteDedupe {
		titles, err := r.platform.UploadedTitles(ctx)
		if err != nil {
			logger.Warn("could not list remote uploads, skipping title dedupe",
				slog.String("error", err.Error()))
		} else {
			remote = titles
		}
	}

	candidates, err := scan.Videos(r.cfg.VideosRoot)
	if err != nil {
		return summary, err
	}
	summary.Candidates = len(candidates)
	logger.Info("scan finished", slog.Int("candidates", len(candidates)))

	for _, key := range candidates {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if r.ledger.IsUploaded(key) {
			logger.Debug("already in ledger", slog.String("file", key))
			summary.Skipped++
			continue
		}

		job := meta.BuildJob(r.cfg.VideosRoot, key, r.cfg.Defaults, r.cfg.ArchiveMode)

		if videoID, ok := remote[job.Title]; ok {
			logger.Info("already on channel, backfilling ledger",
				slog.String("file", key),
				slog.String("video_id", videoID))
			if err := r.ledger.Record(key, job.Title, videoID, uploader.WatchURL(videoID)); err != nil {
				logger.Warn("ledger backfill failed", slog.String("error", err.Error()))
			}
			summary.Skipped++
			continue
		}

		if err := r.limiter.Wait(ctx); err != nil {
			return summary, err
		}

		result, err := r.platform.Upload(ctx, job)
		if err != nil {
			logger.Error("upload failed, will retry on a later scan",
				slog.String("file", key),
				slog.String("error", err.Error()))
			summary.Failed++
			continue
		}
		if err := r.platform.AwaitProcessing(ctx, result.VideoID); err != nil {
			// The file stays un-ledgered and is retried next scan.
			logger.Error("processing check failed",
				slog.String("file", key),
				slog.String("error", err.Error()))
			summary.Failed++
			continue
		}

		if r.cfg.AutoPlaylist {
			name := job.Folder
			if name == "" {
				name = r.cfg.DefaultPlaylist
			}
			if err := r.platform.AddToPlaylist(ctx, name, result.VideoID); err != nil {
				logger.Warn("failed to add video to playlist",
					slog.String("playlist", name),
					slog.String("error", err.Error()))
			}
		}

		if err := r.ledger.Record(key, job.Title, result.VideoID, result.URL); err != nil {
			// The upload succeeded; losing the record risks a duplicate
			// next run, nothing worse.
			logger.Error("failed to record upload in ledger",
				slog.String("file", key),
				slog.String("error", err.Error()))
		}
		if r.notifier != nil {
			r.notifier.Uploaded(ctx, job.Title, result.URL)
		}
		summary.Uploaded++
	}

	logger.Info("cycle finished",
		slog.Int("candidates", summary.Candidates),
		slog.Int("uploaded", summary.Uploaded),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed))
	if r.notifier != nil {
		r.notifier.CycleSummary(ctx, summary.Candidates, summary.Uploaded, summary.Skipped, summary.Failed)
	}
	return summary, nil
}
