// Package uploader performs the chunked resumable upload of one video,
// attaches its thumbnail, and polls the platform until the asset leaves
// the uploading state.
package uploader

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ccfrost/tubeflow/internal/meta"
	"google.golang.org/api/youtube/v3"
)

const (
	defaultPollInterval = 15 * time.Second
	defaultMaxChecks    = 12
)

// Result identifies the uploaded asset.
type Result struct {
	VideoID string
	URL     string
}

// Uploader runs uploads against an authenticated YouTube service.
type Uploader struct {
	svc Service

	pollInterval time.Duration
	maxChecks    int

	channel   *Channel
	playlists map[string]string // title -> ID, lazily populated
}

// New verifies the credential with a lightweight channel read and
// returns an Uploader bound to it. A verification failure is an
// authentication failure and propagates.
func New(ctx context.Context, httpClient *http.Client) (*Uploader, error) {
	svc, err := newYouTubeService(ctx, httpClient)
	if err != nil {
		return nil, err
	}
	channel, err := svc.MyChannel(ctx)
	if err != nil {
		return nil, fmt.Errorf("credential verification failed: %w", err)
	}
	logger.Debug("authenticated", slog.String("channel_id", channel.ID))
	return &Uploader{
		svc:          svc,
		pollInterval: defaultPollInterval,
		maxChecks:    defaultMaxChecks,
		channel:      channel,
	}, nil
}

// buildVideo maps a job to the wire format the API expects, keeping
// wire-format knowledge out of the orchestration code.
func buildVideo(job meta.Job, title string) *youtube.Video {
	return &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       title,
			Description: job.Description,
			Tags:        job.Tags,
			CategoryId:  job.CategoryID,
		},
		Status: &youtube.VideoStatus{PrivacyStatus: job.Privacy},
	}
}

// WatchURL constructs the public URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// Upload sends the job's file as a chunked resumable upload and returns
// the new asset's identity. A transport error aborts the job and is
// surfaced verbatim; there is no partial-upload handle to resume from, a
// later attempt starts over.
func (u *Uploader) Upload(ctx context.Context, job meta.Job) (Result, error) {
	title := meta.CleanTitle(job.Title)

	file, err := os.Open(job.Path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open video file: %w", err)
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat video file: %w", err)
	}

	logger.Info("starting upload",
		slog.String("file", job.Key),
		slog.String("title", title),
		slog.Int64("size", stat.Size()))

	bar := NewProgressBar(stat.Size(), "Uploading "+filepath.Base(job.Path))
	progress := &coarseProgress{key: job.Key, total: stat.Size(), bar: bar}

	inserted, err := u.svc.InsertVideo(ctx, buildVideo(job, title), file, progress.update)
	_ = bar.Finish()
	fmt.Println() // End the progress bar line.
	if err != nil {
		return Result{}, fmt.Errorf("upload of %s failed: %w", job.Key, err)
	}

	result := Result{VideoID: inserted.Id, URL: WatchURL(inserted.Id)}
	logger.Info("upload finished",
		slog.String("file", job.Key),
		slog.String("video_id", result.VideoID),
		slog.String("url", result.URL))

	u.setThumbnail(ctx, result.VideoID, job.Thumbnail)

	return result, nil
}

// setThumbnail attaches the thumbnail image, if one was supplied and
// exists. Failure here never fails the job.
func (u *Uploader) setThumbnail(ctx context.Context, videoID, thumbnailPath string) {
	if thumbnailPath == "" {
		return
	}
	img, err := os.Open(thumbnailPath)
	if err != nil {
		logger.Warn("thumbnail not readable, skipping",
			slog.String("path", thumbnailPath),
			slog.String("error", err.Error()))
		return
	}
	defer img.Close()
	if err := u.svc.SetThumbnail(ctx, videoID, img); err != nil {
		logger.Warn("failed to set thumbnail",
			slog.String("video_id", videoID),
			slog.String("error", err.Error()))
		return
	}
	logger.Debug("thumbnail set", slog.String("video_id", videoID))
}

// AwaitProcessing polls the asset's status, bounded by maxChecks.
// It returns nil once the asset is fully processed, or once it has held
// "uploaded" for a full polling round, so one slow transcode does not
// stall the whole batch. Exhausting the checks is not a failure either;
// processing simply continues server-side.
func (u *Uploader) AwaitProcessing(ctx context.Context, videoID string) error {
	seenUploaded := false
	for attempt := 0; attempt < u.maxChecks; attempt++ {
		status, err := u.svc.VideoStatus(ctx, videoID)
		if err != nil {
			return fmt.Errorf("failed to poll processing status: %w", err)
		}

		switch {
		case status.Upload == "processed" || status.Processing == "succeeded":
			logger.Info("video processed", slog.String("video_id", videoID))
			return nil
		case status.Upload == "failed" || status.Upload == "rejected":
			return fmt.Errorf("platform rejected video %s (status %q)", videoID, status.Upload)
		case status.Upload == "uploaded":
			if seenUploaded {
				logger.Info("video accepted, processing continues in the background",
					slog.String("video_id", videoID))
				return nil
			}
			seenUploaded = true
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(u.pollInterval):
		}
	}
	logger.Info("processing check budget exhausted, continuing optimistically",
		slog.String("video_id", videoID))
	return nil
}

// UploadedTitles lists the channel's existing uploads as title -> video
// ID, following continuation tokens to the end.
func (u *Uploader) UploadedTitles(ctx context.Context) (map[string]string, error) {
	titles := make(map[string]string)
	if u.channel == nil || u.channel.UploadsPlaylistID == "" {
		return titles, nil
	}
	pageToken := ""
	for {
		page, err := u.svc.UploadsPage(ctx, u.channel.UploadsPlaylistID, pageToken)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			if _, dup := titles[item.Title]; !dup {
				titles[item.Title] = item.VideoID
			}
		}
		if page.NextPageToken == "" {
			return titles, nil
		}
		pageToken = page.NextPageToken
	}
}

// AddToPlaylist files the video into the named playlist, creating the
// playlist when it does not exist yet.
func (u *Uploader) AddToPlaylist(ctx context.Context, title, videoID string) error {
	if u.playlists == nil {
		playlists := make(map[string]string)
		pageToken := ""
		for {
			page, next, err := u.svc.MyPlaylists(ctx, pageToken)
			if err != nil {
				return err
			}
			for _, p := range page {
				playlists[p.Title] = p.ID
			}
			if next == "" {
				break
			}
			pageToken = next
		}
		u.playlists = playlists
	}

	playlistID, ok := u.playlists[title]
	if !ok {
		id, err := u.svc.CreatePlaylist(ctx, title)
		if err != nil {
			return err
		}
		u.playlists[title] = id
		playlistID = id
		logger.Info("created playlist", slog.String("title", title), slog.String("playlist_id", id))
	}
	return u.svc.AddPlaylistItem(ctx, playlistID, videoID)
}
